package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrDiscountNotFound      = errors.New("discount not found")
	ErrDuplicateDiscountCode = errors.New("discount code already exists")
)

type DiscountRepository interface {
	DiscountReader
	Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params CreateDiscountParams) (*readmodel.DiscountRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.DiscountRM, error)
	FindByMerchant(ctx context.Context, merchantCode string, page, limit int) ([]*readmodel.DiscountRM, int64, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateDiscountParams) (*readmodel.DiscountRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateDiscountParams struct {
	Code         string
	PercentValue decimal.Decimal
	MinQuantity  int
	StartDate    *time.Time
	EndDate      *time.Time
	Enabled      bool
	ProductIDs   []uuid.UUID
}

// UpdateDiscountParams is a partial update. Nil fields keep their stored
// value.
type UpdateDiscountParams struct {
	PercentValue *decimal.Decimal
	MinQuantity  *int
	StartDate    *time.Time
	EndDate      *time.Time
	Enabled      *bool
	ProductIDs   []uuid.UUID
}

type DiscountUseCase interface {
	CreateDiscount(ctx context.Context, merchantCode string, params CreateDiscountParams) (*readmodel.DiscountRM, error)
	GetDiscount(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.DiscountRM, error)
	ListDiscounts(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.DiscountRM], error)
	UpdateDiscount(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateDiscountParams) (*readmodel.DiscountRM, error)
	DeleteDiscount(ctx context.Context, merchantCode string, id uuid.UUID) error
}

type discountUseCaseImpl struct {
	merchantRepo MerchantRepository
	discountRepo DiscountRepository
	cache        DiscountCache
}

func NewDiscountUseCase(merchantRepo MerchantRepository, discountRepo DiscountRepository, cache DiscountCache) DiscountUseCase {
	return &discountUseCaseImpl{
		merchantRepo: merchantRepo,
		discountRepo: discountRepo,
		cache:        cache,
	}
}

func (u *discountUseCaseImpl) CreateDiscount(ctx context.Context, merchantCode string, params CreateDiscountParams) (*readmodel.DiscountRM, error) {
	merchant, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.discountRepo.Create(ctx, merchant.ID, merchant.MerchantCode, params)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateDiscountCode
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *discountUseCaseImpl) GetDiscount(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.DiscountRM, error) {
	rm, err := u.findOwned(ctx, merchantCode, id)
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (u *discountUseCaseImpl) ListDiscounts(ctx context.Context, merchantCode string, page, limit int) (*readmodel.Page[*readmodel.DiscountRM], error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rules, count, err := u.discountRepo.FindByMerchant(ctx, merchantCode, page, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewPage(rules, page, limit, count), nil
}

func (u *discountUseCaseImpl) UpdateDiscount(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateDiscountParams) (*readmodel.DiscountRM, error) {
	existing, err := u.findOwned(ctx, merchantCode, id)
	if err != nil {
		return nil, err
	}

	rm, err := u.discountRepo.Update(ctx, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.invalidate(ctx, merchantCode, existing.Code)
	return rm, nil
}

func (u *discountUseCaseImpl) DeleteDiscount(ctx context.Context, merchantCode string, id uuid.UUID) error {
	existing, err := u.findOwned(ctx, merchantCode, id)
	if err != nil {
		return err
	}

	if err := u.discountRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDiscountNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.invalidate(ctx, merchantCode, existing.Code)
	return nil
}

func (u *discountUseCaseImpl) findOwned(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.DiscountRM, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.discountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.MerchantCode != merchantCode {
		return nil, ErrDiscountNotFound
	}
	return rm, nil
}

// invalidate drops the cached rule after a write. A failed invalidation is
// logged only; the store-side TTL bounds how long the stale entry survives.
func (u *discountUseCaseImpl) invalidate(ctx context.Context, merchantCode, code string) {
	if err := u.cache.Invalidate(ctx, merchantCode, code); err != nil {
		slog.Warn("discount cache invalidation failed",
			"merchant_code", merchantCode, "code", code, "error", err.Error())
	}
}
