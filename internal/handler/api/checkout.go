package api

import (
	"errors"
	"net/http"

	"storefront-api/internal/domain/discount"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkout usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// @Summary Preview order pricing
// @Description Compute the full pricing breakdown without creating an order
// @Tags checkout
// @Accept json
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.PreviewRequest true "Preview request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var req reqdto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	quote, err := h.checkout.Quote(c.Request.Context(), c.Param("merchantCode"), req.ToParams())
	if err != nil {
		abortCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Validate a discount code
// @Description Check a discount code and return the amount it would take off
// @Tags checkout
// @Accept json
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.ValidateDiscountRequest true "Validation request"
// @Success 200 {object} resdto.DiscountValidationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/discounts/validate [post]
func (h *CheckoutHandler) ValidateDiscount(c *gin.Context) {
	var req reqdto.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	amount, err := h.checkout.ValidateDiscount(c.Request.Context(), c.Param("merchantCode"), req.DiscountCode, req.Quantity, req.SubTotal)
	if err != nil {
		abortCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DiscountValidationResponse{
		DiscountCode: req.DiscountCode,
		Discount:     amount,
	})
}

// @Summary Tax rate for a state
// @Description Resolve the tax rate applied to orders shipped to a state
// @Tags checkout
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Param state query string true "Destination state"
// @Success 200 {object} resdto.TaxRateResponse
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/rates/tax [get]
func (h *CheckoutHandler) TaxRate(c *gin.Context) {
	state := c.Query("state")

	rate, err := h.checkout.TaxRate(c.Request.Context(), c.Param("merchantCode"), state)
	if err != nil {
		abortCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.TaxRateResponse{State: state, StandardRate: rate})
}

// @Summary Shipping fee for a state
// @Description Resolve the shipping fee applied to orders shipped to a state
// @Tags checkout
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Param state query string true "Destination state"
// @Success 200 {object} resdto.ShippingFeeResponse
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/rates/shipping [get]
func (h *CheckoutHandler) ShippingFee(c *gin.Context) {
	state := c.Query("state")

	fee, err := h.checkout.ShippingFee(c.Request.Context(), c.Param("merchantCode"), state)
	if err != nil {
		abortCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ShippingFeeResponse{State: state, Amount: fee})
}

// abortCheckoutError maps pricing-path failures. Discount rejections keep
// their domain message so the storefront can surface it verbatim.
func abortCheckoutError(c *gin.Context, err error) {
	var tooLow *discount.QuantityTooLowError
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, discount.ErrCodeNotFound),
		errors.Is(err, discount.ErrExpired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.As(err, &tooLow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, tooLow.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
