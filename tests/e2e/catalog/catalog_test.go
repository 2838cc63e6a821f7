//go:build e2e

package catalog_test

import (
	"net/http"
	"testing"

	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/usecase/readmodel"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type catalogSuite struct {
	e2e.SharedSuite
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) registerMerchant() string {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "acme-owner",
		"email":    "owner@acme.test",
		"password": "password123",
		"role":     "merchant",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "owner@acme.test",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var login resdto.LoginResponse
	httptest.DecodeResponseBody(t, rec.Body, &login)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/merchants", map[string]any{
		"merchantCode":  "acme",
		"merchantName":  "Acme Store",
		"merchantEmail": "store@acme.test",
	}, login.AccessToken)
	require.Equal(t, http.StatusCreated, rec.Code, "merchant creation failed: %s", rec.Body.String())

	return login.AccessToken
}

func (s *catalogSuite) addProduct(token, name, slug, category string, active bool, body map[string]any) readmodel.ProductRM {
	t := s.T()

	payload := map[string]any{
		"name":        name,
		"slug":        slug,
		"description": name + " description",
		"category":    category,
		"price":       "50",
		"isActive":    active,
	}
	for k, v := range body {
		payload[k] = v
	}

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/acme/products", payload, token)
	require.Equal(t, http.StatusCreated, rec.Code, "product creation failed: %s", rec.Body.String())

	var rm readmodel.ProductRM
	httptest.DecodeResponseBody(t, rec.Body, &rm)
	return rm
}

func (s *catalogSuite) TestProductLifecycle() {
	s.Run("create, browse, update and delete a product", func() {
		token := s.registerMerchant()

		created := s.addProduct(token, "Wireless Mouse", "wireless-mouse", "Electronics", true, nil)
		s.Equal("acme", created.MerchantCode)
		s.True(created.InStock)
		s.Equal("new", created.Condition)

		// Public lookup by slug needs no token.
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/products/wireless-mouse", nil, "")
		var fetched readmodel.ProductRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal(created.ID, fetched.ID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/stores/acme/products/"+created.ID.String(), map[string]any{"price": "45", "inStock": false}, token)
		var updated readmodel.ProductRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.True(decimal.RequireFromString("45").Equal(updated.Price))
		s.False(updated.InStock)
		s.Equal("Wireless Mouse", updated.Name)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/stores/acme/products/"+created.ID.String(), nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/products/wireless-mouse", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("duplicate slug is rejected", func() {
		token := s.registerMerchant()
		s.addProduct(token, "Wireless Mouse", "wireless-mouse", "Electronics", true, nil)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/products", map[string]any{
			"name":        "Another Mouse",
			"slug":        "wireless-mouse",
			"description": "duplicate slug",
			"category":    "Electronics",
			"price":       "60",
		}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Product slug already exists")
	})

	s.Run("filtered listing hides inactive products", func() {
		token := s.registerMerchant()
		s.addProduct(token, "Wireless Mouse", "wireless-mouse", "Electronics", true, nil)
		s.addProduct(token, "Mechanical Keyboard", "mech-keyboard", "Electronics", true, map[string]any{"brand": "Keychron"})
		s.addProduct(token, "Retired Webcam", "retired-webcam", "Electronics", false, nil)
		s.addProduct(token, "Desk Lamp", "desk-lamp", "Home", true, nil)

		// Unfiltered listing is the merchant's full catalog.
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/products", nil, "")
		var all readmodel.Page[*readmodel.ProductRM]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &all)
		s.Equal(int64(4), all.Count)

		// Category browsing is case-insensitive and active-only.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/products?category=electronics", nil, "")
		var electronics readmodel.Page[*readmodel.ProductRM]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &electronics)
		s.Equal(int64(2), electronics.Count)
		for _, p := range electronics.Items {
			s.True(p.IsActive)
		}

		// Search spans name, description and brand.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/products?q=keychron", nil, "")
		var search readmodel.Page[*readmodel.ProductRM]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &search)
		s.Equal(int64(1), search.Count)
		s.Equal("mech-keyboard", search.Items[0].Slug)
	})
}

func (s *catalogSuite) TestCategoryLifecycle() {
	s.Run("create, list, update and delete a category", func() {
		token := s.registerMerchant()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/categories", map[string]any{
			"name":        "Electronics",
			"description": "Gadgets and accessories",
		}, token)
		var created readmodel.CategoryRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/categories", nil, "")
		var listed []*readmodel.CategoryRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listed)
		s.Len(listed, 1)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch,
			"/api/stores/acme/categories/"+created.ID.String(), map[string]any{"description": "All gadgets"}, token)
		var updated readmodel.CategoryRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.Equal("All gadgets", updated.Description)
		s.Equal("Electronics", updated.Name)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/stores/acme/categories/"+created.ID.String(), nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/categories", nil, "")
		var empty []*readmodel.CategoryRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &empty)
		s.Empty(empty)
	})

	s.Run("duplicate name is rejected", func() {
		token := s.registerMerchant()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/categories", map[string]any{
			"name":        "Electronics",
			"description": "Gadgets",
		}, token)
		s.Equal(http.StatusCreated, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/categories", map[string]any{
			"name":        "Electronics",
			"description": "Gadgets again",
		}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Category name already exists")
	})
}
