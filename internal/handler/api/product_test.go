//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"storefront-api/internal/domain/user"
	"storefront-api/internal/handler/api"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	usecasemock "storefront-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockProducts *usecasemock.MockProductUseCase
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProducts = usecasemock.NewMockProductUseCase(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockProducts)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleMerchant)
		c.Next()
	}

	store := s.router.Group("/stores/:merchantCode")
	store.GET("/products", s.handler.List)
	store.GET("/products/:slug", s.handler.Get)
	store.POST("/products", authMiddleware, s.handler.Create)
	store.PATCH("/products/:productId", authMiddleware, s.handler.Update)
	store.DELETE("/products/:productId", authMiddleware, s.handler.Delete)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func createProductRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Name:        "Wireless Mouse",
		Slug:        "wireless-mouse",
		Description: "Compact wireless mouse",
		Category:    "Electronics",
		Price:       decimal.NewFromInt(50),
	}
}

func (s *ProductHandlerTestSuite) productRM() *readmodel.ProductRM {
	return &readmodel.ProductRM{
		ID:           uuid.New(),
		MerchantID:   uuid.New(),
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

// ================================================================================
// TestCreate
// ================================================================================

func (s *ProductHandlerTestSuite) TestCreate() {
	url := "/stores/acme/products"

	s.Run("success: 201 with the created product", func() {
		rm := s.productRM()
		s.mockProducts.EXPECT().
			CreateProduct(gomock.Any(), "acme", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params usecase.CreateProductParams) (*readmodel.ProductRM, error) {
				s.Equal("wireless-mouse", params.Slug)
				s.True(params.IsActive)
				s.True(params.InStock)
				return rm, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createProductRequestDTO(), "bearer-token")

		var body readmodel.ProductRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rm.ID, body.ID)
		s.Equal("wireless-mouse", body.Slug)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createProductRequestDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: slug (required)", mutate: testutil.Field("slug", nil)},
			{name: "missing field: description (required)", mutate: testutil.Field("description", nil)},
			{name: "missing field: category (required)", mutate: testutil.Field("category", nil)},
			{name: "missing field: price (required)", mutate: testutil.Field("price", nil)},
			{name: "name too short", mutate: testutil.Field("name", "a")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), createProductRequestDTO(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 404 for an unknown merchant", func() {
		s.mockProducts.EXPECT().
			CreateProduct(gomock.Any(), "ghost", gomock.Any()).
			Return(nil, usecase.ErrMerchantNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/stores/ghost/products", createProductRequestDTO(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Merchant not found")
	})

	s.Run("error: 409 on a duplicate slug", func() {
		s.mockProducts.EXPECT().
			CreateProduct(gomock.Any(), "acme", gomock.Any()).
			Return(nil, usecase.ErrDuplicateProductSlug)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createProductRequestDTO(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Product slug already exists")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ProductHandlerTestSuite) TestGet() {
	s.Run("success: public lookup by slug", func() {
		rm := s.productRM()
		s.mockProducts.EXPECT().
			GetProduct(gomock.Any(), "acme", "wireless-mouse").
			Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/acme/products/wireless-mouse", nil, "")

		var body readmodel.ProductRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(rm.ID, body.ID)
	})

	s.Run("error: 404 for an unknown slug", func() {
		s.mockProducts.EXPECT().
			GetProduct(gomock.Any(), "acme", "missing").
			Return(nil, usecase.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/acme/products/missing", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestList() {
	s.Run("success: plain listing shows the full catalog", func() {
		rows := []*readmodel.ProductRM{s.productRM()}
		s.mockProducts.EXPECT().
			ListProducts(gomock.Any(), "acme", usecase.ProductFilter{}, 1, 10).
			Return(readmodel.NewPage(rows, 1, 10, 1), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/acme/products", nil, "")

		var body readmodel.Page[*readmodel.ProductRM]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
	})

	s.Run("success: filters narrow to active products", func() {
		want := usecase.ProductFilter{Category: "Electronics", Condition: "new", Query: "mouse", ActiveOnly: true}
		s.mockProducts.EXPECT().
			ListProducts(gomock.Any(), "acme", want, 2, 5).
			Return(readmodel.NewPage([]*readmodel.ProductRM{}, 2, 5, 0), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/stores/acme/products?category=Electronics&condition=new&q=mouse&page=2&limit=5", nil, "")

		var body readmodel.Page[*readmodel.ProductRM]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	})

	s.Run("error: 404 for an unknown merchant", func() {
		s.mockProducts.EXPECT().
			ListProducts(gomock.Any(), "ghost", gomock.Any(), 1, 10).
			Return(nil, usecase.ErrMerchantNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/ghost/products", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Merchant not found")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *ProductHandlerTestSuite) TestUpdate() {
	s.Run("success: partial update", func() {
		rm := s.productRM()
		rm.Price = decimal.NewFromInt(45)
		s.mockProducts.EXPECT().
			UpdateProduct(gomock.Any(), "acme", rm.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, params usecase.UpdateProductParams) (*readmodel.ProductRM, error) {
				s.Require().NotNil(params.Price)
				s.True(decimal.NewFromInt(45).Equal(*params.Price))
				s.Nil(params.Name)
				return rm, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/stores/acme/products/"+rm.ID.String(), map[string]any{"price": 45}, "bearer-token")

		var body readmodel.ProductRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(decimal.NewFromInt(45).Equal(body.Price))
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/stores/acme/products/not-a-uuid", map[string]any{"price": 45}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ProductHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		id := uuid.New()
		s.mockProducts.EXPECT().DeleteProduct(gomock.Any(), "acme", id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/stores/acme/products/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown product", func() {
		id := uuid.New()
		s.mockProducts.EXPECT().DeleteProduct(gomock.Any(), "acme", id).Return(usecase.ErrProductNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/stores/acme/products/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
