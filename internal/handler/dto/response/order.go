package response

import (
	"log/slog"
	"time"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID              uuid.UUID             `json:"id"`
	BuyerID         uuid.UUID             `json:"userId"`
	MerchantCode    string                `json:"merchantCode"`
	LineItems       []order.LineItem      `json:"orderItems"`
	Quantity        int                   `json:"quantity"`
	ShippingDetails order.ShippingDetails `json:"shippingDetails"`
	PaymentMethod   string                `json:"paymentMethod,omitempty"`
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

type CreateOrderResponse struct {
	Order    *OrderResponse `json:"order"`
	Warnings []string       `json:"warnings,omitempty"`
}

func FromOrderRM(rm *readmodel.OrderRM) *OrderResponse {
	var resp OrderResponse
	// Field names line up with the readmodel; copier keeps the mapping from
	// drifting when columns are added.
	if err := copier.Copy(&resp, rm); err != nil {
		slog.Error("order response mapping failed", "order_id", rm.ID, "error", err.Error())
	}
	return &resp
}

func FromOrderRMs(rms []*readmodel.OrderRM) []*OrderResponse {
	result := make([]*OrderResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromOrderRM(rm))
	}
	return result
}
