package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyLineItems is returned when an order is placed with no items.
	ErrEmptyLineItems = errors.New("no order items to process")
	// ErrInvalidStatus is returned for an unknown order status value.
	ErrInvalidStatus = errors.New("invalid order status")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// LineItem is a product snapshot captured at the moment of purchase.
type LineItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Photo     string          `json:"photo,omitempty"`
}

// ShippingDetails is the destination used to join tax and shipping rules.
// State is the region key.
type ShippingDetails struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip,omitempty"`
}

// Order is the persisted record. Pricing fields are copied verbatim from the
// Quote computed at commit time; they are never recomputed afterwards.
type Order struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	MerchantID      uuid.UUID
	MerchantCode    string
	LineItems       []LineItem
	Quantity        int
	ShippingDetails ShippingDetails
	PaymentMethod   string
	SubTotal        decimal.Decimal
	TaxAmount       decimal.Decimal
	ShippingFee     decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountCode    string
	Total           decimal.Decimal
	Status          Status
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	Reference       string
	CreatedAt       time.Time
}

// NewOrder builds a pending, unpaid, undelivered order. Empty line items are
// rejected here so no caller can persist a hollow order.
func NewOrder(
	buyerID, merchantID uuid.UUID,
	merchantCode string,
	items []LineItem,
	quantity int,
	shipping ShippingDetails,
	paymentMethod string,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyLineItems
	}

	return &Order{
		ID:              uuid.New(),
		BuyerID:         buyerID,
		MerchantID:      merchantID,
		MerchantCode:    merchantCode,
		LineItems:       items,
		Quantity:        quantity,
		ShippingDetails: shipping,
		PaymentMethod:   paymentMethod,
		Status:          StatusPending,
		IsPaid:          false,
		IsDelivered:     false,
	}, nil
}
