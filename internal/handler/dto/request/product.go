package request

import (
	"storefront-api/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,min=2,max=128"`
	Slug        string           `json:"slug" binding:"required,min=2,max=128"`
	Description string           `json:"description" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	Brand       string           `json:"brand"`
	Images      []string         `json:"image"`
	Condition   string           `json:"condition"`
	IsActive    *bool            `json:"isActive"`
	InStock     *bool            `json:"inStock"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=2,max=128"`
	Slug        *string          `json:"slug" binding:"omitempty,min=2,max=128"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Brand       *string          `json:"brand"`
	Images      []string         `json:"image"`
	Condition   *string          `json:"condition"`
	IsActive    *bool            `json:"isActive"`
	InStock     *bool            `json:"inStock"`
}

func (r *CreateProductRequest) ToParams() usecase.CreateProductParams {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}

	return usecase.CreateProductParams{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Category:    r.Category,
		Brand:       r.Brand,
		Price:       r.Price,
		Images:      r.Images,
		Condition:   r.Condition,
		IsActive:    active,
		InStock:     inStock,
	}
}

func (r *UpdateProductRequest) ToParams() usecase.UpdateProductParams {
	return usecase.UpdateProductParams{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Category:    r.Category,
		Brand:       r.Brand,
		Price:       r.Price,
		Images:      r.Images,
		Condition:   r.Condition,
		IsActive:    r.IsActive,
		InStock:     r.InStock,
	}
}
