package request

import (
	"storefront-api/internal/domain/order"
	"storefront-api/internal/usecase"

	"github.com/shopspring/decimal"
)

type ShippingDetailsRequest struct {
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// Quantity allows zero so a rule with a minimum-quantity floor answers with
// its own threshold message instead of a generic binding error.
type PreviewRequest struct {
	SubTotal        decimal.Decimal        `json:"subTotal" binding:"required"`
	Quantity        int                    `json:"quantity" binding:"gte=0"`
	ShippingDetails ShippingDetailsRequest `json:"shippingDetails" binding:"required"`
	DiscountCode    string                 `json:"discountCode"`
}

type ValidateDiscountRequest struct {
	DiscountCode string          `json:"discountCode" binding:"required"`
	Quantity     int             `json:"quantity" binding:"gte=0"`
	SubTotal     decimal.Decimal `json:"subTotal" binding:"required"`
}

func (r *ShippingDetailsRequest) ToDomain() order.ShippingDetails {
	return order.ShippingDetails{
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Country: r.Country,
		Zip:     r.Zip,
	}
}

func (r *PreviewRequest) ToParams() usecase.QuoteParams {
	return usecase.QuoteParams{
		SubTotal:        r.SubTotal,
		Quantity:        r.Quantity,
		ShippingDetails: r.ShippingDetails.ToDomain(),
		DiscountCode:    r.DiscountCode,
	}
}
