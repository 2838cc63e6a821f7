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

type TaxHandler struct {
	taxes usecase.TaxUseCase
}

func NewTaxHandler(taxes usecase.TaxUseCase) *TaxHandler {
	return &TaxHandler{taxes: taxes}
}

// @Summary Create tax rate
// @Tags taxes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.CreateTaxRequest true "Create tax request"
// @Success 201 {object} readmodel.TaxRM
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stores/{merchantCode}/taxes [post]
func (h *TaxHandler) Create(c *gin.Context) {
	var req reqdto.CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.taxes.CreateTax(c.Request.Context(), c.Param("merchantCode"), req.ToParams())
	if err != nil {
		abortTaxError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Get tax rate
// @Tags taxes
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Tax ID"
// @Success 200 {object} readmodel.TaxRM
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/taxes/{id} [get]
func (h *TaxHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.taxes.GetTax(c.Request.Context(), c.Param("merchantCode"), id)
	if err != nil {
		abortTaxError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary List tax rates
// @Tags taxes
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} readmodel.Page[readmodel.TaxRM]
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/taxes [get]
func (h *TaxHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.taxes.ListTaxes(c.Request.Context(), c.Param("merchantCode"), page, limit)
	if err != nil {
		abortTaxError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Update tax rate
// @Tags taxes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Tax ID"
// @Param request body reqdto.UpdateTaxRequest true "Update tax request"
// @Success 200 {object} readmodel.TaxRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/taxes/{id} [patch]
func (h *TaxHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.taxes.UpdateTax(c.Request.Context(), c.Param("merchantCode"), id, req.ToParams())
	if err != nil {
		abortTaxError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Delete tax rate
// @Tags taxes
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Tax ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/taxes/{id} [delete]
func (h *TaxHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.taxes.DeleteTax(c.Request.Context(), c.Param("merchantCode"), id); err != nil {
		abortTaxError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortTaxError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, usecase.ErrTaxNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tax rate not found", nil)
	case errors.Is(err, usecase.ErrDuplicateTaxRate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Tax rate already exists for state", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
