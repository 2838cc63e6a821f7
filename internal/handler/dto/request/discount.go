package request

import (
	"time"

	"storefront-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDiscountRequest struct {
	DiscountCode  string          `json:"discountCode" binding:"required,min=2,max=64"`
	DiscountValue decimal.Decimal `json:"discountValue" binding:"required"`
	Quantity      int             `json:"quantity" binding:"min=0"`
	StartDate     *time.Time      `json:"startDate"`
	EndDate       *time.Time      `json:"endDate"`
	Enabled       *bool           `json:"enabled"`
	Products      []uuid.UUID     `json:"products"`
}

type UpdateDiscountRequest struct {
	DiscountValue *decimal.Decimal `json:"discountValue"`
	Quantity      *int             `json:"quantity" binding:"omitempty,min=0"`
	StartDate     *time.Time       `json:"startDate"`
	EndDate       *time.Time       `json:"endDate"`
	Enabled       *bool            `json:"enabled"`
	Products      []uuid.UUID      `json:"products"`
}

func (r *CreateDiscountRequest) ToParams() usecase.CreateDiscountParams {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}

	return usecase.CreateDiscountParams{
		Code:         r.DiscountCode,
		PercentValue: r.DiscountValue,
		MinQuantity:  r.Quantity,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Enabled:      enabled,
		ProductIDs:   r.Products,
	}
}

func (r *UpdateDiscountRequest) ToParams() usecase.UpdateDiscountParams {
	return usecase.UpdateDiscountParams{
		PercentValue: r.DiscountValue,
		MinQuantity:  r.Quantity,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Enabled:      r.Enabled,
		ProductIDs:   r.Products,
	}
}
