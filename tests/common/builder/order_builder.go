//go:build unit || e2e

package builder

import (
	"time"

	"storefront-api/internal/domain/order"
	reqdto "storefront-api/internal/handler/dto/request"
	"storefront-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID            uuid.UUID
	BuyerID       uuid.UUID
	MerchantID    uuid.UUID
	MerchantCode  string
	ProductID     uuid.UUID
	ProductName   string
	ProductPrice  decimal.Decimal
	Quantity      int
	State         string
	SubTotal      decimal.Decimal
	DiscountCode  string
	PaymentMethod string
	CreatedAt     time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            uuid.New(),
		BuyerID:       uuid.New(),
		MerchantID:    uuid.New(),
		MerchantCode:  "acme",
		ProductID:     uuid.New(),
		ProductName:   "Wireless Mouse",
		ProductPrice:  decimal.NewFromInt(50),
		Quantity:      2,
		State:         "CA",
		SubTotal:      decimal.NewFromInt(100),
		PaymentMethod: "card",
		CreatedAt:     time.Now(),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildShippingDetails() order.ShippingDetails {
	return order.ShippingDetails{
		Address: "1 Market St",
		City:    "San Francisco",
		State:   b.State,
		Country: "US",
		Zip:     "94105",
	}
}

func (b *OrderBuilder) BuildLineItems() []order.LineItem {
	return []order.LineItem{
		{
			ProductID: b.ProductID,
			Name:      b.ProductName,
			Price:     b.ProductPrice,
			Quantity:  b.Quantity,
		},
	}
}

func (b *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		OrderItems: []reqdto.OrderItemRequest{
			{
				ProductID: b.ProductID,
				Name:      b.ProductName,
				Price:     b.ProductPrice,
				Quantity:  b.Quantity,
			},
		},
		Quantity: b.Quantity,
		ShippingDetails: reqdto.ShippingDetailsRequest{
			Address: "1 Market St",
			City:    "San Francisco",
			State:   b.State,
			Country: "US",
			Zip:     "94105",
		},
		PaymentMethod: b.PaymentMethod,
		SubTotal:      b.SubTotal,
		DiscountCode:  b.DiscountCode,
	}
}

func (b *OrderBuilder) BuildOrderRM() *readmodel.OrderRM {
	return &readmodel.OrderRM{
		ID:              b.ID,
		BuyerID:         b.BuyerID,
		MerchantID:      b.MerchantID,
		MerchantCode:    b.MerchantCode,
		LineItems:       b.BuildLineItems(),
		Quantity:        b.Quantity,
		ShippingDetails: b.BuildShippingDetails(),
		PaymentMethod:   b.PaymentMethod,
		SubTotal:        b.SubTotal,
		TaxAmount:       decimal.RequireFromString("2.00"),
		ShippingFee:     decimal.RequireFromString("4000.00"),
		DiscountAmount:  decimal.Zero,
		Total:           decimal.RequireFromString("4102.00"),
		Status:          string(order.StatusPending),
		CreatedAt:       b.CreatedAt,
	}
}
