package api

import (
	"errors"
	"net/http"

	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomerHandler struct {
	customers usecase.CustomerUseCase
}

func NewCustomerHandler(customers usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// @Summary List customers
// @Description Paginated customer aggregates for the store
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} readmodel.Page[readmodel.CustomerRM]
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := h.customers.ListCustomers(c.Request.Context(), c.Param("merchantCode"), page, limit)
	if err != nil {
		abortCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param username path string true "Customer username"
// @Success 200 {object} readmodel.CustomerRM
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/customers/{username} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	rm, err := h.customers.GetCustomer(c.Request.Context(), c.Param("merchantCode"), c.Param("username"))
	if err != nil {
		abortCustomerError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Delete customer
// @Description Remove a customer record and their order history
// @Tags customers
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param userId path string true "Customer user ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/customers/{userId} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}

	if err := h.customers.DeleteCustomer(c.Request.Context(), c.Param("merchantCode"), userID); err != nil {
		abortCustomerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
