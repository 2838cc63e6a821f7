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
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateProductSlug = errors.New("product slug already exists")
)

type ProductRepository interface {
	Create(ctx context.Context, merchantID uuid.UUID, merchantCode string, params CreateProductParams) (*readmodel.ProductRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error)
	FindBySlug(ctx context.Context, merchantCode, slug string) (*readmodel.ProductRM, error)
	FindByMerchant(ctx context.Context, merchantCode string, filter ProductFilter, page, limit int) ([]*readmodel.ProductRM, int64, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateProductParams) (*readmodel.ProductRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateProductParams struct {
	Name        string
	Slug        string
	Description string
	Category    string
	Brand       string
	Price       decimal.Decimal
	Images      []string
	Condition   string
	IsActive    bool
	InStock     bool
}

// UpdateProductParams is a partial update. Nil fields keep their stored value.
type UpdateProductParams struct {
	Name        *string
	Slug        *string
	Description *string
	Category    *string
	Brand       *string
	Price       *decimal.Decimal
	Images      []string
	Condition   *string
	IsActive    *bool
	InStock     *bool
}

// ProductFilter narrows a catalog listing. Query matches name, description
// and brand. ActiveOnly hides disabled products from storefront browsing.
type ProductFilter struct {
	Category   string
	Condition  string
	Query      string
	ActiveOnly bool
}

type ProductUseCase interface {
	CreateProduct(ctx context.Context, merchantCode string, params CreateProductParams) (*readmodel.ProductRM, error)
	GetProduct(ctx context.Context, merchantCode, slug string) (*readmodel.ProductRM, error)
	ListProducts(ctx context.Context, merchantCode string, filter ProductFilter, page, limit int) (*readmodel.Page[*readmodel.ProductRM], error)
	UpdateProduct(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateProductParams) (*readmodel.ProductRM, error)
	DeleteProduct(ctx context.Context, merchantCode string, id uuid.UUID) error
}

type productUseCaseImpl struct {
	merchantRepo MerchantRepository
	productRepo  ProductRepository
}

func NewProductUseCase(merchantRepo MerchantRepository, productRepo ProductRepository) ProductUseCase {
	return &productUseCaseImpl{
		merchantRepo: merchantRepo,
		productRepo:  productRepo,
	}
}

func (u *productUseCaseImpl) CreateProduct(ctx context.Context, merchantCode string, params CreateProductParams) (*readmodel.ProductRM, error) {
	merchant, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.productRepo.Create(ctx, merchant.ID, merchant.MerchantCode, params)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateProductSlug
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *productUseCaseImpl) GetProduct(ctx context.Context, merchantCode, slug string) (*readmodel.ProductRM, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.productRepo.FindBySlug(ctx, merchantCode, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *productUseCaseImpl) ListProducts(ctx context.Context, merchantCode string, filter ProductFilter, page, limit int) (*readmodel.Page[*readmodel.ProductRM], error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	products, count, err := u.productRepo.FindByMerchant(ctx, merchantCode, filter, page, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewPage(products, page, limit, count), nil
}

func (u *productUseCaseImpl) UpdateProduct(ctx context.Context, merchantCode string, id uuid.UUID, params UpdateProductParams) (*readmodel.ProductRM, error) {
	if _, err := u.findOwnedProduct(ctx, merchantCode, id); err != nil {
		return nil, err
	}

	rm, err := u.productRepo.Update(ctx, id, params)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrProductNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateProductSlug
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *productUseCaseImpl) DeleteProduct(ctx context.Context, merchantCode string, id uuid.UUID) error {
	if _, err := u.findOwnedProduct(ctx, merchantCode, id); err != nil {
		return err
	}

	if err := u.productRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *productUseCaseImpl) findOwnedProduct(ctx context.Context, merchantCode string, id uuid.UUID) (*readmodel.ProductRM, error) {
	if _, err := u.merchantRepo.FindByCode(ctx, merchantCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.MerchantCode != merchantCode {
		return nil, ErrProductNotFound
	}
	return rm, nil
}
