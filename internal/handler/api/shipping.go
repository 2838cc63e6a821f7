package api

import (
	"errors"
	"net/http"

	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShippingHandler struct {
	shippings usecase.ShippingUseCase
}

func NewShippingHandler(shippings usecase.ShippingUseCase) *ShippingHandler {
	return &ShippingHandler{shippings: shippings}
}

// @Summary Create shipping fee
// @Tags shippings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.CreateShippingRequest true "Create shipping request"
// @Success 201 {object} readmodel.ShippingRM
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stores/{merchantCode}/shippings [post]
func (h *ShippingHandler) Create(c *gin.Context) {
	var req reqdto.CreateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.shippings.CreateShipping(c.Request.Context(), c.Param("merchantCode"), req.ToParams())
	if err != nil {
		abortShippingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Get shipping fee
// @Tags shippings
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Shipping ID"
// @Success 200 {object} readmodel.ShippingRM
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/shippings/{id} [get]
func (h *ShippingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.shippings.GetShipping(c.Request.Context(), c.Param("merchantCode"), id)
	if err != nil {
		abortShippingError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary List shipping fees
// @Tags shippings
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} readmodel.Page[readmodel.ShippingRM]
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/shippings [get]
func (h *ShippingHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.shippings.ListShippings(c.Request.Context(), c.Param("merchantCode"), page, limit)
	if err != nil {
		abortShippingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Update shipping fee
// @Tags shippings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Shipping ID"
// @Param request body reqdto.UpdateShippingRequest true "Update shipping request"
// @Success 200 {object} readmodel.ShippingRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/shippings/{id} [patch]
func (h *ShippingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.shippings.UpdateShipping(c.Request.Context(), c.Param("merchantCode"), id, req.ToParams())
	if err != nil {
		abortShippingError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Delete shipping fee
// @Tags shippings
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Shipping ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/shippings/{id} [delete]
func (h *ShippingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.shippings.DeleteShipping(c.Request.Context(), c.Param("merchantCode"), id); err != nil {
		abortShippingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortShippingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, usecase.ErrShippingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Shipping fee not found", nil)
	case errors.Is(err, usecase.ErrDuplicateShippingFee):
		httperr.AbortWithError(c, http.StatusConflict, err, "Shipping fee already exists for state", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
