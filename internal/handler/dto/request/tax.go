package request

import (
	"storefront-api/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateTaxRequest struct {
	Street       string          `json:"street"`
	City         string          `json:"city"`
	Zip          string          `json:"zip"`
	State        string          `json:"state" binding:"required"`
	Country      string          `json:"country"`
	StandardRate decimal.Decimal `json:"standardRate" binding:"required"`
	Enabled      *bool           `json:"enabled"`
}

type UpdateTaxRequest struct {
	Street       *string          `json:"street"`
	City         *string          `json:"city"`
	Zip          *string          `json:"zip"`
	State        *string          `json:"state"`
	Country      *string          `json:"country"`
	StandardRate *decimal.Decimal `json:"standardRate"`
	Enabled      *bool            `json:"enabled"`
}

func (r *CreateTaxRequest) ToParams() usecase.CreateTaxParams {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}

	return usecase.CreateTaxParams{
		Street:       r.Street,
		City:         r.City,
		Zip:          r.Zip,
		State:        r.State,
		Country:      r.Country,
		StandardRate: r.StandardRate,
		Enabled:      enabled,
	}
}

func (r *UpdateTaxRequest) ToParams() usecase.UpdateTaxParams {
	return usecase.UpdateTaxParams{
		Street:       r.Street,
		City:         r.City,
		Zip:          r.Zip,
		State:        r.State,
		Country:      r.Country,
		StandardRate: r.StandardRate,
		Enabled:      r.Enabled,
	}
}
