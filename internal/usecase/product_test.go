//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"storefront-api/internal/infra"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"
	usecasemock "storefront-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	merchantRepo *usecasemock.MockMerchantRepository
	productRepo  *usecasemock.MockProductRepository
	products     usecase.ProductUseCase

	merchant *readmodel.MerchantRM
}

func TestProductUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ProductUseCaseTestSuite))
}

func (s *ProductUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.merchantRepo = usecasemock.NewMockMerchantRepository(s.mockCtrl)
	s.productRepo = usecasemock.NewMockProductRepository(s.mockCtrl)
	s.products = usecase.NewProductUseCase(s.merchantRepo, s.productRepo)

	s.merchant = &readmodel.MerchantRM{
		ID:           uuid.New(),
		MerchantCode: "acme",
		MerchantName: "Acme Store",
	}
}

func (s *ProductUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ProductUseCaseTestSuite) expectAcme() {
	s.merchantRepo.EXPECT().FindByCode(gomock.Any(), "acme").Return(s.merchant, nil)
}

func (s *ProductUseCaseTestSuite) repoNotFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

func (s *ProductUseCaseTestSuite) productRM() *readmodel.ProductRM {
	return &readmodel.ProductRM{
		ID:           uuid.New(),
		MerchantID:   s.merchant.ID,
		MerchantCode: "acme",
		Name:         "Wireless Mouse",
		Slug:         "wireless-mouse",
		Description:  "Compact wireless mouse",
		Category:     "Electronics",
		Price:        decimal.NewFromInt(50),
		Condition:    "new",
		IsActive:     true,
		InStock:      true,
	}
}

func createProductParams() usecase.CreateProductParams {
	return usecase.CreateProductParams{
		Name:        "Wireless Mouse",
		Slug:        "wireless-mouse",
		Description: "Compact wireless mouse",
		Category:    "Electronics",
		Price:       decimal.NewFromInt(50),
		IsActive:    true,
		InStock:     true,
	}
}

// ================================================================================
// TestCreateProduct
// ================================================================================

func (s *ProductUseCaseTestSuite) TestCreateProduct() {
	s.Run("success: creates under the merchant's store", func() {
		s.expectAcme()
		rm := s.productRM()
		s.productRepo.EXPECT().
			Create(gomock.Any(), s.merchant.ID, "acme", createProductParams()).
			Return(rm, nil)

		got, err := s.products.CreateProduct(context.Background(), "acme", createProductParams())

		s.Require().NoError(err)
		s.Equal(rm.Slug, got.Slug)
	})

	s.Run("error: unknown merchant", func() {
		s.merchantRepo.EXPECT().FindByCode(gomock.Any(), "ghost").
			Return(nil, s.repoNotFound("merchant"))

		_, err := s.products.CreateProduct(context.Background(), "ghost", createProductParams())

		s.ErrorIs(err, usecase.ErrMerchantNotFound)
	})

	s.Run("error: duplicate slug", func() {
		s.expectAcme()
		s.productRepo.EXPECT().
			Create(gomock.Any(), s.merchant.ID, "acme", gomock.Any()).
			Return(nil, infra.WrapRepoErr("dup", errors.New("unique"), infra.KindDuplicateKey))

		_, err := s.products.CreateProduct(context.Background(), "acme", createProductParams())

		s.ErrorIs(err, usecase.ErrDuplicateProductSlug)
	})
}

// ================================================================================
// TestGetProduct
// ================================================================================

func (s *ProductUseCaseTestSuite) TestGetProduct() {
	s.Run("success: resolves by slug", func() {
		s.expectAcme()
		rm := s.productRM()
		s.productRepo.EXPECT().
			FindBySlug(gomock.Any(), "acme", "wireless-mouse").
			Return(rm, nil)

		got, err := s.products.GetProduct(context.Background(), "acme", "wireless-mouse")

		s.Require().NoError(err)
		s.Equal(rm.ID, got.ID)
	})

	s.Run("error: unknown slug", func() {
		s.expectAcme()
		s.productRepo.EXPECT().
			FindBySlug(gomock.Any(), "acme", "missing").
			Return(nil, s.repoNotFound("product"))

		_, err := s.products.GetProduct(context.Background(), "acme", "missing")

		s.ErrorIs(err, usecase.ErrProductNotFound)
	})
}

// ================================================================================
// TestListProducts
// ================================================================================

func (s *ProductUseCaseTestSuite) TestListProducts() {
	s.Run("success: wraps rows in the pagination envelope", func() {
		s.expectAcme()
		filter := usecase.ProductFilter{Category: "Electronics", ActiveOnly: true}
		rows := []*readmodel.ProductRM{s.productRM(), s.productRM(), s.productRM()}
		s.productRepo.EXPECT().
			FindByMerchant(gomock.Any(), "acme", filter, 2, 3).
			Return(rows, int64(7), nil)

		page, err := s.products.ListProducts(context.Background(), "acme", filter, 2, 3)

		s.Require().NoError(err)
		s.Equal(2, page.CurrentPage)
		s.Equal(3, page.TotalPages)
		s.Equal(int64(7), page.Count)
		s.Len(page.Items, 3)
	})

	s.Run("error: repository failure", func() {
		s.expectAcme()
		s.productRepo.EXPECT().
			FindByMerchant(gomock.Any(), "acme", usecase.ProductFilter{}, 1, 10).
			Return(nil, int64(0), infra.WrapRepoErr("boom", errors.New("down"), infra.KindDBFailure))

		_, err := s.products.ListProducts(context.Background(), "acme", usecase.ProductFilter{}, 1, 10)

		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})
}

// ================================================================================
// TestUpdateProduct / TestDeleteProduct
// ================================================================================

func (s *ProductUseCaseTestSuite) TestUpdateProduct() {
	s.Run("success: partial update on an owned product", func() {
		s.expectAcme()
		rm := s.productRM()
		s.productRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		price := decimal.NewFromInt(45)
		updated := *rm
		updated.Price = price
		s.productRepo.EXPECT().
			Update(gomock.Any(), rm.ID, usecase.UpdateProductParams{Price: &price}).
			Return(&updated, nil)

		got, err := s.products.UpdateProduct(context.Background(), "acme", rm.ID, usecase.UpdateProductParams{Price: &price})

		s.Require().NoError(err)
		s.True(price.Equal(got.Price))
	})

	s.Run("error: product owned by another merchant", func() {
		s.expectAcme()
		rm := s.productRM()
		rm.MerchantCode = "other"
		s.productRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)

		_, err := s.products.UpdateProduct(context.Background(), "acme", rm.ID, usecase.UpdateProductParams{})

		s.ErrorIs(err, usecase.ErrProductNotFound)
	})
}

func (s *ProductUseCaseTestSuite) TestDeleteProduct() {
	s.Run("success", func() {
		s.expectAcme()
		rm := s.productRM()
		s.productRepo.EXPECT().FindByID(gomock.Any(), rm.ID).Return(rm, nil)
		s.productRepo.EXPECT().Delete(gomock.Any(), rm.ID).Return(nil)

		s.NoError(s.products.DeleteProduct(context.Background(), "acme", rm.ID))
	})

	s.Run("error: unknown product", func() {
		s.expectAcme()
		id := uuid.New()
		s.productRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, s.repoNotFound("product"))

		err := s.products.DeleteProduct(context.Background(), "acme", id)

		s.ErrorIs(err, usecase.ErrProductNotFound)
	})
}
