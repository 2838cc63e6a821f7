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

type DiscountHandler struct {
	discounts usecase.DiscountUseCase
}

func NewDiscountHandler(discounts usecase.DiscountUseCase) *DiscountHandler {
	return &DiscountHandler{discounts: discounts}
}

// @Summary Create discount rule
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.CreateDiscountRequest true "Create discount request"
// @Success 201 {object} readmodel.DiscountRM
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stores/{merchantCode}/discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	var req reqdto.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.discounts.CreateDiscount(c.Request.Context(), c.Param("merchantCode"), req.ToParams())
	if err != nil {
		abortDiscountError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Get discount rule
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Discount ID"
// @Success 200 {object} readmodel.DiscountRM
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/discounts/{id} [get]
func (h *DiscountHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.discounts.GetDiscount(c.Request.Context(), c.Param("merchantCode"), id)
	if err != nil {
		abortDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary List discount rules
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} readmodel.Page[readmodel.DiscountRM]
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/discounts [get]
func (h *DiscountHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.discounts.ListDiscounts(c.Request.Context(), c.Param("merchantCode"), page, limit)
	if err != nil {
		abortDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Update discount rule
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Discount ID"
// @Param request body reqdto.UpdateDiscountRequest true "Update discount request"
// @Success 200 {object} readmodel.DiscountRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/discounts/{id} [patch]
func (h *DiscountHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.discounts.UpdateDiscount(c.Request.Context(), c.Param("merchantCode"), id, req.ToParams())
	if err != nil {
		abortDiscountError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Delete discount rule
// @Tags discounts
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Discount ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/discounts/{id} [delete]
func (h *DiscountHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.discounts.DeleteDiscount(c.Request.Context(), c.Param("merchantCode"), id); err != nil {
		abortDiscountError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortDiscountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, usecase.ErrDiscountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount not found", nil)
	case errors.Is(err, usecase.ErrDuplicateDiscountCode):
		httperr.AbortWithError(c, http.StatusConflict, err, "Discount code already exists", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
