package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-api/internal/domain/order"
)

type OrderRM struct {
	ID              uuid.UUID             `json:"id"`
	BuyerID         uuid.UUID             `json:"userId"`
	MerchantID      uuid.UUID             `json:"merchantId"`
	MerchantCode    string                `json:"merchantCode"`
	LineItems       []order.LineItem      `json:"orderItems"`
	Quantity        int                   `json:"quantity"`
	ShippingDetails order.ShippingDetails `json:"shippingDetails"`
	PaymentMethod   string                `json:"paymentMethod"`
	SubTotal        decimal.Decimal       `json:"subTotal"`
	TaxAmount       decimal.Decimal       `json:"taxPrice"`
	ShippingFee     decimal.Decimal       `json:"shippingFee"`
	DiscountAmount  decimal.Decimal       `json:"discount"`
	DiscountCode    string                `json:"discountCode,omitempty"`
	Total           decimal.Decimal       `json:"total"`
	Status          string                `json:"orderStatus"`
	IsPaid          bool                  `json:"isPaid"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	IsDelivered     bool                  `json:"isDelivered"`
	DeliveredAt     *time.Time            `json:"deliveredAt,omitempty"`
	Reference       string                `json:"reference,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}
