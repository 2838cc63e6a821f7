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
	ErrShippingNotFound      = errors.New("shipping fee not found")
	ErrDuplicateShippingFee  = errors.New("shipping fee already exists for state")
)

type ShippingRepository interface {
	ShippingReader
	Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params CreateShippingParams) (*readmodel.ShippingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ShippingRM, error)
	FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.ShippingRM, int64, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateShippingParams) (*readmodel.ShippingRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateShippingParams struct {
	State   string
	Country string
	Amount  decimal.Decimal
}

type UpdateShippingParams struct {
	State   *string
	Country *string
	Amount  *decimal.Decimal
}

type ShippingUseCase interface {
	CreateShipping(ctx context.Context, merchantCode string, params CreateShippingParams) (*readmodel.ShippingRM, error)
	GetShipping(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.ShippingRM, error)
	ListShippings(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.ShippingRM], error)
	UpdateShipping(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateShippingParams) (*readmodel.ShippingRM, error)
	DeleteShipping(ctx context.Context, merchantCode string, id uuid.UUID) error
}

type shippingUseCaseImpl struct {
	merchantRepo MerchantRepository
	shippingRepo ShippingRepository
}

func NewShippingUseCase(merchantRepo MerchantRepository, shippingRepo ShippingRepository) ShippingUseCase {
	return &shippingUseCaseImpl{merchantRepo: merchantRepo, shippingRepo: shippingRepo}
}

func (u *shippingUseCaseImpl) CreateShipping(ctx context.Context, merchantCode string, params CreateShippingParams) (*readmodel.ShippingRM, error) {
	merchant, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.shippingRepo.Create(ctx, merchant.ID, merchant.MerchantCode, params)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateShippingFee
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *shippingUseCaseImpl) GetShipping(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.ShippingRM, error) {
	return u.findOwned(ctx, merchantCode, id)
}

func (u *shippingUseCaseImpl) ListShippings(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.ShippingRM], error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	fees, count, err := u.shippingRepo.FindByMerchant(ctx, merchantCode, page, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewPage(fees, page, limit, count), nil
}

func (u *shippingUseCaseImpl) UpdateShipping(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateShippingParams) (*readmodel.ShippingRM, error) {
	if _, err := u.findOwned(ctx, merchantCode, id); err != nil {
		return nil, err
	}

	rm, err := u.shippingRepo.Update(ctx, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShippingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *shippingUseCaseImpl) DeleteShipping(ctx context.Context, merchantCode string, id uuid.UUID) error {
	if _, err := u.findOwned(ctx, merchantCode, id); err != nil {
		return err
	}

	if err := u.shippingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShippingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *shippingUseCaseImpl) findOwned(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.ShippingRM, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.shippingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShippingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.MerchantCode != merchantCode {
		return nil, ErrShippingNotFound
	}
	return rm, nil
}
