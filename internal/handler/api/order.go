package api

import (
	"errors"
	"net/http"

	"storefront-api/internal/domain/discount"
	"storefront-api/internal/domain/order"
	reqdto "storefront-api/internal/handler/dto/request"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orders usecase.OrderUseCase
}

func NewOrderHandler(orders usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// @Summary Create order
// @Description Price and persist an order for the authenticated buyer
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.orders.CreateOrder(c.Request.Context(), c.Param("merchantCode"), req.ToParams(buyerID))
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{
		Order:    resdto.FromOrderRM(result.Order),
		Warnings: result.Warnings,
	})
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.orders.GetOrder(c.Request.Context(), c.Param("merchantCode"), id)
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderRM(rm))
}

// @Summary List merchant orders
// @Description Paginated orders across the whole store, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.OrderResponse]
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.orders.ListMerchantOrders(c.Request.Context(), c.Param("merchantCode"), page, limit)
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MapPage(result, resdto.FromOrderRM))
}

// @Summary List own orders
// @Description Paginated orders of the authenticated buyer, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.PageResponse[resdto.OrderResponse]
// @Failure 401 {object} httperr.Response
// @Router /stores/{merchantCode}/my-orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	page, limit := pageParams(c)

	result, err := h.orders.ListBuyerOrders(c.Request.Context(), c.Param("merchantCode"), buyerID, page, limit)
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MapPage(result, resdto.FromOrderRM))
}

// @Summary Update order status
// @Description Merchant-side status, payment and delivery updates
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status update"
// @Success 200 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, warnings, err := h.orders.UpdateOrderStatus(c.Request.Context(), c.Param("merchantCode"), id, req.ToParams())
	if err != nil {
		abortOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CreateOrderResponse{
		Order:    resdto.FromOrderRM(rm),
		Warnings: warnings,
	})
}

func abortOrderError(c *gin.Context, err error) {
	var tooLow *discount.QuantityTooLowError
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, usecase.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
	case errors.Is(err, usecase.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, usecase.ErrForbiddenMerchant):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Order belongs to another merchant", nil)
	case errors.Is(err, order.ErrEmptyLineItems),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, discount.ErrCodeNotFound),
		errors.Is(err, discount.ErrExpired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.As(err, &tooLow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, tooLow.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
