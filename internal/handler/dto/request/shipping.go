package request

import (
	"storefront-api/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateShippingRequest struct {
	State   string          `json:"state" binding:"required"`
	Country string          `json:"country"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
}

type UpdateShippingRequest struct {
	State   *string          `json:"state"`
	Country *string          `json:"country"`
	Amount  *decimal.Decimal `json:"amount"`
}

func (r *CreateShippingRequest) ToParams() usecase.CreateShippingParams {
	return usecase.CreateShippingParams{
		State:   r.State,
		Country: r.Country,
		Amount:  r.Amount,
	}
}

func (r *UpdateShippingRequest) ToParams() usecase.UpdateShippingParams {
	return usecase.UpdateShippingParams{
		State:   r.State,
		Country: r.Country,
		Amount:  r.Amount,
	}
}
