package usecase

import (
	"context"
	"errors"

	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrDuplicateMerchantCode = errors.New("merchant code already taken")

type MerchantWriter interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateMerchantParams) (*readmodel.MerchantRM, error)
	Update(ctx context.Context, merchantCode string, params UpdateMerchantParams) (*readmodel.MerchantRM, error)
}

type CreateMerchantParams struct {
	MerchantCode  string
	MerchantName  string
	MerchantEmail string
	Currency      string
	Logo          string
}

type UpdateMerchantParams struct {
	MerchantName  *string
	MerchantEmail *string
	Currency      *string
	Logo          *string
}

type MerchantUseCase interface {
	CreateMerchant(ctx context.Context, ownerID uuid.UUID, params CreateMerchantParams) (*readmodel.MerchantRM, error)
	GetMerchant(ctx context.Context, merchantCode string) (*readmodel.MerchantRM, error)
	UpdateMerchant(ctx context.Context, ownerID uuid.UUID, merchantCode string, params UpdateMerchantParams) (*readmodel.MerchantRM, error)
}

type merchantUseCaseImpl struct {
	merchantRepo MerchantRepository
	writer       MerchantWriter
}

func NewMerchantUseCase(merchantRepo MerchantRepository, writer MerchantWriter) MerchantUseCase {
	return &merchantUseCaseImpl{merchantRepo: merchantRepo, writer: writer}
}

func (u *merchantUseCaseImpl) CreateMerchant(ctx context.Context, ownerID uuid.UUID, params CreateMerchantParams) (*readmodel.MerchantRM, error) {
	rm, err := u.writer.Create(ctx, ownerID, params)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateMerchantCode
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *merchantUseCaseImpl) GetMerchant(ctx context.Context, merchantCode string) (*readmodel.MerchantRM, error) {
	rm, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *merchantUseCaseImpl) UpdateMerchant(ctx context.Context, ownerID uuid.UUID, merchantCode string, params UpdateMerchantParams) (*readmodel.MerchantRM, error) {
	existing, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing.OwnerID != ownerID {
		return nil, ErrForbiddenMerchant
	}

	rm, err := u.writer.Update(ctx, merchantCode, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}
