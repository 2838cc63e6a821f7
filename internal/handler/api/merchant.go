package api

import (
	"errors"
	"net/http"

	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MerchantHandler struct {
	merchants usecase.MerchantUseCase
}

func NewMerchantHandler(merchants usecase.MerchantUseCase) *MerchantHandler {
	return &MerchantHandler{merchants: merchants}
}

// @Summary Create store
// @Description Register a store owned by the authenticated merchant account
// @Tags merchants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMerchantRequest true "Create store request"
// @Success 201 {object} readmodel.MerchantRM
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /merchants [post]
func (h *MerchantHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.merchants.CreateMerchant(c.Request.Context(), ownerID, req.ToParams())
	if err != nil {
		abortMerchantError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Get store
// @Description Public storefront details
// @Tags merchants
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Success 200 {object} readmodel.MerchantRM
// @Failure 404 {object} httperr.Response
// @Router /merchants/{merchantCode} [get]
func (h *MerchantHandler) Get(c *gin.Context) {
	rm, err := h.merchants.GetMerchant(c.Request.Context(), c.Param("merchantCode"))
	if err != nil {
		abortMerchantError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Update store
// @Tags merchants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.UpdateMerchantRequest true "Update store request"
// @Success 200 {object} readmodel.MerchantRM
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /merchants/{merchantCode} [put]
func (h *MerchantHandler) Update(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.merchants.UpdateMerchant(c.Request.Context(), ownerID, c.Param("merchantCode"), req.ToParams())
	if err != nil {
		abortMerchantError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

func abortMerchantError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, usecase.ErrDuplicateMerchantCode):
		httperr.AbortWithError(c, http.StatusConflict, err, "Merchant code already taken", nil)
	case errors.Is(err, usecase.ErrForbiddenMerchant):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not the store owner", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
