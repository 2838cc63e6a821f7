package usecase

import (
	"context"
	"errors"

	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTaxNotFound      = errors.New("tax rate not found")
	ErrDuplicateTaxRate = errors.New("tax rate already exists for state")
)

type TaxRepository interface {
	TaxReader
	Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params CreateTaxParams) (*readmodel.TaxRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.TaxRM, error)
	FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.TaxRM, int64, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateTaxParams) (*readmodel.TaxRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateTaxParams struct {
	Street       string
	City         string
	Zip          string
	State        string
	Country      string
	StandardRate decimal.Decimal
	Enabled      bool
}

type UpdateTaxParams struct {
	Street       *string
	City         *string
	Zip          *string
	State        *string
	Country      *string
	StandardRate *decimal.Decimal
	Enabled      *bool
}

type TaxUseCase interface {
	CreateTax(ctx context.Context, merchantCode string, params CreateTaxParams) (*readmodel.TaxRM, error)
	GetTax(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.TaxRM, error)
	ListTaxes(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.TaxRM], error)
	UpdateTax(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateTaxParams) (*readmodel.TaxRM, error)
	DeleteTax(ctx context.Context, merchantCode string, id uuid.UUID) error
}

type taxUseCaseImpl struct {
	merchantRepo MerchantRepository
	taxRepo      TaxRepository
}

func NewTaxUseCase(merchantRepo MerchantRepository, taxRepo TaxRepository) TaxUseCase {
	return &taxUseCaseImpl{merchantRepo: merchantRepo, taxRepo: taxRepo}
}

func (u *taxUseCaseImpl) CreateTax(ctx context.Context, merchantCode string, params CreateTaxParams) (*readmodel.TaxRM, error) {
	merchant, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.taxRepo.Create(ctx, merchant.ID, merchant.MerchantCode, params)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateTaxRate
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *taxUseCaseImpl) GetTax(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.TaxRM, error) {
	return u.findOwned(ctx, merchantCode, id)
}

func (u *taxUseCaseImpl) ListTaxes(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.TaxRM], error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	taxes, count, err := u.taxRepo.FindByMerchant(ctx, merchantCode, page, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewPage(taxes, page, limit, count), nil
}

func (u *taxUseCaseImpl) UpdateTax(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateTaxParams) (*readmodel.TaxRM, error) {
	if _, err := u.findOwned(ctx, merchantCode, id); err != nil {
		return nil, err
	}

	rm, err := u.taxRepo.Update(ctx, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTaxNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *taxUseCaseImpl) DeleteTax(ctx context.Context, merchantCode string, id uuid.UUID) error {
	if _, err := u.findOwned(ctx, merchantCode, id); err != nil {
		return err
	}

	if err := u.taxRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTaxNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *taxUseCaseImpl) findOwned(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.TaxRM, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.taxRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTaxNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.MerchantCode != merchantCode {
		return nil, ErrTaxNotFound
	}
	return rm, nil
}
