package response

import (
	"storefront-api/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	SubTotal     decimal.Decimal `json:"subTotal"`
	TaxPrice     decimal.Decimal `json:"taxPrice"`
	ShippingFee  decimal.Decimal `json:"shippingFee"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountCode string          `json:"discountCode,omitempty"`
	Total        decimal.Decimal `json:"total"`
}

type TaxRateResponse struct {
	State        string          `json:"state"`
	StandardRate decimal.Decimal `json:"standardRate"`
}

type ShippingFeeResponse struct {
	State  string          `json:"state"`
	Amount decimal.Decimal `json:"amount"`
}

type DiscountValidationResponse struct {
	DiscountCode string          `json:"discountCode"`
	Discount     decimal.Decimal `json:"discount"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	return &QuoteResponse{
		SubTotal:     q.SubTotal,
		TaxPrice:     q.TaxAmount,
		ShippingFee:  q.ShippingFeeAmount,
		Discount:     q.DiscountAmount,
		DiscountCode: q.DiscountCode,
		Total:        q.Total,
	}
}
