//go:build unit

package api_test

import (
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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCategories *usecasemock.MockCategoryUseCase
	handler        *api.CategoryHandler
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCategories = usecasemock.NewMockCategoryUseCase(s.mockCtrl)
	s.handler = api.NewCategoryHandler(s.mockCategories)

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
	store.GET("/categories", s.handler.List)
	store.GET("/categories/:id", s.handler.Get)
	store.POST("/categories", authMiddleware, s.handler.Create)
	store.PATCH("/categories/:id", authMiddleware, s.handler.Update)
	store.DELETE("/categories/:id", authMiddleware, s.handler.Delete)
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) categoryRM() *readmodel.CategoryRM {
	return &readmodel.CategoryRM{
		ID:           uuid.New(),
		MerchantID:   uuid.New(),
		MerchantCode: "acme",
		Name:         "Electronics",
		Description:  "Gadgets and accessories",
	}
}

func (s *CategoryHandlerTestSuite) TestCreate() {
	url := "/stores/acme/categories"
	reqBody := reqdto.CreateCategoryRequest{Name: "Electronics", Description: "Gadgets and accessories"}

	s.Run("success: 201 with the created category", func() {
		rm := s.categoryRM()
		s.mockCategories.EXPECT().
			CreateCategory(gomock.Any(), "acme", usecase.CreateCategoryParams{
				Name:        "Electronics",
				Description: "Gadgets and accessories",
			}).
			Return(rm, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body readmodel.CategoryRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rm.ID, body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: description (required)", mutate: testutil.Field("description", nil)},
			{name: "name too short", mutate: testutil.Field("name", "a")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 on a duplicate name", func() {
		s.mockCategories.EXPECT().
			CreateCategory(gomock.Any(), "acme", gomock.Any()).
			Return(nil, usecase.ErrDuplicateCategoryName)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Category name already exists")
	})
}

func (s *CategoryHandlerTestSuite) TestList() {
	s.Run("success: public listing", func() {
		rows := []*readmodel.CategoryRM{s.categoryRM(), s.categoryRM()}
		s.mockCategories.EXPECT().ListCategories(gomock.Any(), "acme").Return(rows, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/acme/categories", nil, "")

		var body []*readmodel.CategoryRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("error: 404 for an unknown merchant", func() {
		s.mockCategories.EXPECT().ListCategories(gomock.Any(), "ghost").
			Return(nil, usecase.ErrMerchantNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/ghost/categories", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Merchant not found")
	})
}

func (s *CategoryHandlerTestSuite) TestUpdate() {
	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/stores/acme/categories/not-a-uuid", map[string]any{"name": "Audio"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 for a category of another merchant", func() {
		id := uuid.New()
		s.mockCategories.EXPECT().
			UpdateCategory(gomock.Any(), "acme", id, gomock.Any()).
			Return(nil, usecase.ErrCategoryNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/stores/acme/categories/"+id.String(), map[string]any{"name": "Audio"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Category not found")
	})
}

func (s *CategoryHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		id := uuid.New()
		s.mockCategories.EXPECT().DeleteCategory(gomock.Any(), "acme", id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
			"/stores/acme/categories/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
