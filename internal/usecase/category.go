package usecase

import (
	"context"
	"errors"

	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrDuplicateCategoryName = errors.New("category name already exists")
)

type CategoryRepository interface {
	Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params CreateCategoryParams) (*readmodel.CategoryRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CategoryRM, error)
	FindByMerchant(ctx context.Context, merchantCode string) ([]*readmodel.CategoryRM, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateCategoryParams) (*readmodel.CategoryRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateCategoryParams struct {
	Name        string
	Description string
	Image       string
}

// UpdateCategoryParams is a partial update. Nil fields keep their stored
// value.
type UpdateCategoryParams struct {
	Name        *string
	Description *string
	Image       *string
}

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, merchantCode string, params CreateCategoryParams) (*readmodel.CategoryRM, error)
	GetCategory(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.CategoryRM, error)
	ListCategories(ctx context.Context, merchantCode string) ([]*readmodel.CategoryRM, error)
	UpdateCategory(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateCategoryParams) (*readmodel.CategoryRM, error)
	DeleteCategory(ctx context.Context, merchantCode string, id uuid.UUID) error
}

type categoryUseCaseImpl struct {
	merchantRepo MerchantRepository
	categoryRepo CategoryRepository
}

func NewCategoryUseCase(merchantRepo MerchantRepository, categoryRepo CategoryRepository) CategoryUseCase {
	return &categoryUseCaseImpl{
		merchantRepo: merchantRepo,
		categoryRepo: categoryRepo,
	}
}

func (u *categoryUseCaseImpl) CreateCategory(ctx context.Context, merchantCode string, params CreateCategoryParams) (*readmodel.CategoryRM, error) {
	merchant, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.categoryRepo.Create(ctx, merchant.ID, merchant.MerchantCode, params)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateCategoryName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *categoryUseCaseImpl) GetCategory(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.CategoryRM, error) {
	return u.findOwnedCategory(ctx, merchantCode, id)
}

func (u *categoryUseCaseImpl) ListCategories(ctx context.Context, merchantCode string) ([]*readmodel.CategoryRM, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	categories, err := u.categoryRepo.FindByMerchant(ctx, merchantCode)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return categories, nil
}

func (u *categoryUseCaseImpl) UpdateCategory(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateCategoryParams) (*readmodel.CategoryRM, error) {
	if _, err := u.findOwnedCategory(ctx, merchantCode, id); err != nil {
		return nil, err
	}

	rm, err := u.categoryRepo.Update(ctx, id, params)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCategoryNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateCategoryName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *categoryUseCaseImpl) DeleteCategory(ctx context.Context, merchantCode string, id uuid.UUID) error {
	if _, err := u.findOwnedCategory(ctx, merchantCode, id); err != nil {
		return err
	}

	if err := u.categoryRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCategoryNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *categoryUseCaseImpl) findOwnedCategory(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.CategoryRM, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.MerchantCode != merchantCode {
		return nil, ErrCategoryNotFound
	}
	return rm, nil
}
