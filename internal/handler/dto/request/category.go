package request

import (
	"storefront-api/internal/usecase"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=64"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=64"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (r *CreateCategoryRequest) ToParams() usecase.CreateCategoryParams {
	return usecase.CreateCategoryParams{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
	}
}

func (r *UpdateCategoryRequest) ToParams() usecase.UpdateCategoryParams {
	return usecase.UpdateCategoryParams{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
	}
}
