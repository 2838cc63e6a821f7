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

type CategoryHandler struct {
	categories usecase.CategoryUseCase
}

func NewCategoryHandler(categories usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param request body reqdto.CreateCategoryRequest true "Create category request"
// @Success 201 {object} readmodel.CategoryRM
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /stores/{merchantCode}/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.categories.CreateCategory(c.Request.Context(), c.Param("merchantCode"), req.ToParams())
	if err != nil {
		abortCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Get category
// @Tags categories
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Category ID"
// @Success 200 {object} readmodel.CategoryRM
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.categories.GetCategory(c.Request.Context(), c.Param("merchantCode"), id)
	if err != nil {
		abortCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Param merchantCode path string true "Merchant code"
// @Success 200 {array} readmodel.CategoryRM
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context(), c.Param("merchantCode"))
	if err != nil {
		abortCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Update category request"
// @Success 200 {object} readmodel.CategoryRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.categories.UpdateCategory(c.Request.Context(), c.Param("merchantCode"), id, req.ToParams())
	if err != nil {
		abortCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Delete category
// @Tags categories
// @Security BearerAuth
// @Param merchantCode path string true "Merchant code"
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /stores/{merchantCode}/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.categories.DeleteCategory(c.Request.Context(), c.Param("merchantCode"), id); err != nil {
		abortCategoryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func abortCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrMerchantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Merchant not found", nil)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Category not found", nil)
	case errors.Is(err, usecase.ErrDuplicateCategoryName):
		httperr.AbortWithError(c, http.StatusConflict, err, "Category name already exists", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
