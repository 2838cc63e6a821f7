//go:build e2e

package checkout_test

import (
	"net/http"
	"testing"

	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/usecase/readmodel"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) registerAndLogin(username, email, role string) string {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", map[string]any{
		"username": username,
		"email":    email,
		"password": "password123",
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    email,
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())

	var login resdto.LoginResponse
	httptest.DecodeResponseBody(t, rec.Body, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}

// setupStore creates a merchant account, its store, and the CA pricing rules.
func (s *checkoutSuite) setupStore() string {
	t := s.T()
	merchantToken := s.registerAndLogin("acme-owner", "owner@acme.test", "merchant")

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/merchants", map[string]any{
		"merchantCode":  "acme",
		"merchantName":  "Acme Store",
		"merchantEmail": "store@acme.test",
		"currency":      "USD",
	}, merchantToken)
	require.Equal(t, http.StatusCreated, rec.Code, "merchant creation failed: %s", rec.Body.String())

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/acme/taxes", map[string]any{
		"state":        "CA",
		"country":      "US",
		"standardRate": "7.5",
	}, merchantToken)
	require.Equal(t, http.StatusCreated, rec.Code, "tax creation failed: %s", rec.Body.String())

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/acme/shippings", map[string]any{
		"state":   "CA",
		"country": "US",
		"amount":  "500",
	}, merchantToken)
	require.Equal(t, http.StatusCreated, rec.Code, "shipping creation failed: %s", rec.Body.String())

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/stores/acme/discounts", map[string]any{
		"discountCode":  "SUMMER10",
		"discountValue": "10",
	}, merchantToken)
	require.Equal(t, http.StatusCreated, rec.Code, "discount creation failed: %s", rec.Body.String())

	return merchantToken
}

func orderBody(state, discountCode string) map[string]any {
	return map[string]any{
		"orderItems": []map[string]any{
			{"productId": uuid.New().String(), "name": "Wireless Mouse", "price": "50", "quantity": 2},
		},
		"quantity": 2,
		"shippingDetails": map[string]any{
			"address": "1 Market St",
			"city":    "San Francisco",
			"state":   state,
		},
		"paymentMethod": "card",
		"subTotal":      "100",
		"discountCode":  discountCode,
	}
}

func (s *checkoutSuite) TestCheckoutFlow() {
	s.Run("preview and order commit produce identical pricing", func() {
		merchantToken := s.setupStore()
		clientToken := s.registerAndLogin("jordan", "jordan@example.test", "client")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/checkout/preview", map[string]any{
			"subTotal": "100",
			"quantity": 2,
			"shippingDetails": map[string]any{
				"address": "1 Market St",
				"city":    "San Francisco",
				"state":   "CA",
			},
			"discountCode": "SUMMER10",
		}, "")

		var preview resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &preview)
		s.True(decimal.RequireFromString("7.50").Equal(preview.TaxPrice))
		s.True(decimal.RequireFromString("500").Equal(preview.ShippingFee))
		s.True(decimal.RequireFromString("10").Equal(preview.Discount))
		s.True(decimal.RequireFromString("597.50").Equal(preview.Total))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/orders",
			orderBody("CA", "SUMMER10"), clientToken)

		var created resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
		s.Require().NotNil(created.Order)
		s.True(preview.Total.Equal(created.Order.Total), "preview %s != committed %s", preview.Total, created.Order.Total)
		s.True(preview.TaxPrice.Equal(created.Order.TaxAmount))
		s.True(preview.ShippingFee.Equal(created.Order.ShippingFee))
		s.True(preview.Discount.Equal(created.Order.DiscountAmount))
		s.Equal("pending", created.Order.Status)
		s.Empty(created.Warnings)

		// Merchant sees the buyer's aggregate rebuilt from the order history.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/customers/jordan", nil, merchantToken)

		var cust readmodel.CustomerRM
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cust)
		s.Equal(1, cust.TotalOrders)
		s.True(decimal.RequireFromString("597.50").Equal(cust.TotalSpent))

		// A second order recomputes, never double-counts.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/orders",
			orderBody("CA", ""), clientToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/customers/jordan", nil, merchantToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cust)
		s.Equal(2, cust.TotalOrders)
		s.True(decimal.RequireFromString("1205.00").Equal(cust.TotalSpent))
	})

	s.Run("unknown state falls back to the configured defaults", func() {
		s.setupStore()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/checkout/preview", map[string]any{
			"subTotal": "100",
			"quantity": 1,
			"shippingDetails": map[string]any{
				"address": "9 Desert Rd",
				"city":    "Reno",
				"state":   "NV",
			},
		}, "")

		var preview resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &preview)
		s.True(decimal.RequireFromString("2.00").Equal(preview.TaxPrice))
		s.True(decimal.RequireFromString("4000").Equal(preview.ShippingFee))
		s.True(decimal.RequireFromString("4102.00").Equal(preview.Total))
	})

	s.Run("invalid discount code rejects the order outright", func() {
		s.setupStore()
		clientToken := s.registerAndLogin("jordan", "jordan@example.test", "client")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/stores/acme/orders",
			orderBody("CA", "NOPE"), clientToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "discount code not valid")
	})

	s.Run("rate inquiry endpoints resolve through the same lookups", func() {
		s.setupStore()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/rates/tax?state=CA", nil, "")
		var tax resdto.TaxRateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &tax)
		s.True(decimal.RequireFromString("7.5").Equal(tax.StandardRate))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/acme/rates/shipping?state=NV", nil, "")
		var shipping resdto.ShippingFeeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &shipping)
		s.True(decimal.RequireFromString("4000").Equal(shipping.Amount))
	})

	s.Run("unknown merchant returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/stores/ghost/rates/tax?state=CA", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Merchant not found")
	})
}
