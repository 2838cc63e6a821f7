//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"storefront-api/internal/domain/discount"
	"storefront-api/internal/domain/pricing"
	"storefront-api/internal/handler/api"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/usecase"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	usecasemock "storefront-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCheckout *usecasemock.MockCheckoutUseCase
	handler      *api.CheckoutHandler
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCheckout = usecasemock.NewMockCheckoutUseCase(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCheckout)

	store := s.router.Group("/stores/:merchantCode")
	store.POST("/checkout/preview", s.handler.Preview)
	store.POST("/discounts/validate", s.handler.ValidateDiscount)
	store.GET("/rates/tax", s.handler.TaxRate)
	store.GET("/rates/shipping", s.handler.ShippingFee)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func previewRequestDTO() reqdto.PreviewRequest {
	return reqdto.PreviewRequest{
		SubTotal: decimal.NewFromInt(100),
		Quantity: 2,
		ShippingDetails: reqdto.ShippingDetailsRequest{
			Address: "1 Market St",
			City:    "San Francisco",
			State:   "CA",
		},
		DiscountCode: "SUMMER10",
	}
}

// ================================================================================
// TestPreview
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestPreview() {
	url := "/stores/acme/checkout/preview"

	quote := &pricing.Quote{
		SubTotal:          decimal.RequireFromString("100.00"),
		TaxAmount:         decimal.RequireFromString("7.50"),
		ShippingFeeAmount: decimal.RequireFromString("500.00"),
		DiscountAmount:    decimal.RequireFromString("10.00"),
		DiscountCode:      "SUMMER10",
		Total:             decimal.RequireFromString("597.50"),
	}

	s.Run("success: returns the pricing breakdown", func() {
		s.mockCheckout.EXPECT().Quote(gomock.Any(), "acme", gomock.Any()).
			Return(quote, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, previewRequestDTO(), "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(decimal.RequireFromString("597.50").Equal(body.Total))
		s.True(decimal.RequireFromString("7.50").Equal(body.TaxPrice))
		s.Equal("SUMMER10", body.DiscountCode)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: subTotal (required)", mutate: testutil.Field("subTotal", nil)},
			{name: "missing field: shippingDetails (required)", mutate: testutil.Field("shippingDetails", nil)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
			{name: "shippingDetails missing state", mutate: testutil.Field("shippingDetails", map[string]any{"address": "1 Market St", "city": "San Francisco"})},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), previewRequestDTO(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: zero quantity reaches the discount floor check", func() {
		s.mockCheckout.EXPECT().Quote(gomock.Any(), "acme", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, params usecase.QuoteParams) (*pricing.Quote, error) {
				s.Equal(0, params.Quantity)
				return nil, &discount.QuantityTooLowError{MinQuantity: 1}
			})

		body := testutil.DtoMap(s.T(), previewRequestDTO(), testutil.Field("quantity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "valid for 1 items")
	})

	s.Run("error: maps pricing failures to status codes", func() {
		cases := []struct {
			name         string
			err          error
			expectCode   int
			expectInBody string
		}{
			{name: "unknown merchant", err: usecase.ErrMerchantNotFound, expectCode: http.StatusNotFound, expectInBody: "Merchant not found"},
			{name: "unknown discount code", err: discount.ErrCodeNotFound, expectCode: http.StatusBadRequest, expectInBody: "discount code not valid"},
			{name: "expired discount code", err: discount.ErrExpired, expectCode: http.StatusBadRequest, expectInBody: "discount code expired"},
			{name: "quantity below floor", err: &discount.QuantityTooLowError{MinQuantity: 5}, expectCode: http.StatusBadRequest, expectInBody: "valid for 5 items"},
			{name: "database failure", err: usecase.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError, expectInBody: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().Quote(gomock.Any(), "acme", gomock.Any()).
					Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, previewRequestDTO(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
			})
		}
	})
}

// ================================================================================
// TestValidateDiscount
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestValidateDiscount() {
	url := "/stores/acme/discounts/validate"

	reqBody := reqdto.ValidateDiscountRequest{
		DiscountCode: "SUMMER10",
		Quantity:     2,
		SubTotal:     decimal.NewFromInt(100),
	}

	s.Run("success: returns the discount amount", func() {
		s.mockCheckout.EXPECT().
			ValidateDiscount(gomock.Any(), "acme", "SUMMER10", 2, gomock.Any()).
			Return(decimal.RequireFromString("10.00"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.DiscountValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SUMMER10", body.DiscountCode)
		s.True(decimal.RequireFromString("10.00").Equal(body.Discount))
	})

	s.Run("error: 400 on missing code", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("discountCode", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: invalid code keeps the domain message", func() {
		s.mockCheckout.EXPECT().
			ValidateDiscount(gomock.Any(), "acme", "SUMMER10", 2, gomock.Any()).
			Return(decimal.Zero, discount.ErrCodeNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "discount code not valid")
	})
}

// ================================================================================
// TestRates
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestTaxRate() {
	s.Run("success: returns the resolved rate", func() {
		s.mockCheckout.EXPECT().TaxRate(gomock.Any(), "acme", "CA").
			Return(decimal.RequireFromString("7.5"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/acme/rates/tax?state=CA", nil, "")

		var body resdto.TaxRateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CA", body.State)
		s.True(decimal.RequireFromString("7.5").Equal(body.StandardRate))
	})

	s.Run("error: 404 for unknown merchant", func() {
		s.mockCheckout.EXPECT().TaxRate(gomock.Any(), "ghost", "CA").
			Return(decimal.Zero, usecase.ErrMerchantNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/ghost/rates/tax?state=CA", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Merchant not found")
	})
}

func (s *CheckoutHandlerTestSuite) TestShippingFee() {
	s.Run("success: returns the resolved fee", func() {
		s.mockCheckout.EXPECT().ShippingFee(gomock.Any(), "acme", "CA").
			Return(decimal.NewFromInt(500), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/acme/rates/shipping?state=CA", nil, "")

		var body resdto.ShippingFeeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CA", body.State)
		s.True(decimal.NewFromInt(500).Equal(body.Amount))
	})
}
