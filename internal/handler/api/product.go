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

type ProductHandler struct {
	products usecase.ProductUseCase
}

func NewProductHandler(products usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{products: products}
}

// @Summary Add product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.CreateProductRequest true "Create product request"
// @Success 201 {object} readmodel.ProductRM
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stores/{merchantCode}/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.products.CreateProduct(c.Request.Context(), c.Param("merchantCode"), req.ToParams())
	if err != nil {
		abortProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Get product by slug
// @Tags products
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Param slug path string true "Product slug"
// @Success 200 {object} readmodel.ProductRM
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/products/{slug} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	rm, err := h.products.GetProduct(c.Request.Context(), c.Param("merchantCode"), c.Param("slug"))
	if err != nil {
		abortProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary List products
// @Description Browse the catalog. category, condition and q narrow the
// @Description listing to active products only.
// @Tags products
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param category query string false "Category name"
// @Param condition query string false "Product condition"
// @Param q query string false "Search over name, description and brand"
// @Success 200 {object} readmodel.Page[readmodel.ProductRM]
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	filter := usecase.ProductFilter{
		Category:  c.Query("category"),
		Condition: c.Query("condition"),
		Query:     c.Query("q"),
	}
	// A filtered listing is storefront browsing; the unfiltered one is the
	// merchant's full catalog including disabled products.
	filter.ActiveOnly = filter.Category != "" || filter.Condition != "" || filter.Query != ""

	result, err := h.products.ListProducts(c.Request.Context(), c.Param("merchantCode"), filter, page, limit)
	if err != nil {
		abortProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Update product request"
// @Success 200 {object} readmodel.ProductRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/products/{productId} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.products.UpdateProduct(c.Request.Context(), c.Param("merchantCode"), id, req.ToParams())
	if err != nil {
		abortProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param productId path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/products/{productId} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), c.Param("merchantCode"), id); err != nil {
		abortProductError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, usecase.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, usecase.ErrDuplicateProductSlug):
		httperr.AbortWithError(c, http.StatusConflict, err, "Product slug already exists", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
