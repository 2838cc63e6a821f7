package request

import (
	"storefront-api/internal/domain/order"
	"storefront-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"productId" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Photo     string          `json:"photo"`
}

// CreateOrderRequest deliberately leaves orderItems unchecked at the binding
// layer; an empty list is rejected with a domain error instead of a generic
// binding message.
type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems"`
	Quantity        int                    `json:"quantity" binding:"gte=0"`
	ShippingDetails ShippingDetailsRequest `json:"shippingDetails" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod"`
	SubTotal        decimal.Decimal        `json:"subTotal" binding:"required"`
	DiscountCode    string                 `json:"discountCode"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus *string `json:"orderStatus" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
	IsPaid      *bool   `json:"isPaid"`
	IsDelivered *bool   `json:"isDelivered"`
	Reference   *string `json:"reference"`
}

func (r *CreateOrderRequest) ToParams(buyerID uuid.UUID) usecase.CreateOrderParams {
	items := make([]order.LineItem, 0, len(r.OrderItems))
	for _, item := range r.OrderItems {
		items = append(items, order.LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Photo:     item.Photo,
		})
	}

	return usecase.CreateOrderParams{
		BuyerID:         buyerID,
		LineItems:       items,
		Quantity:        r.Quantity,
		ShippingDetails: r.ShippingDetails.ToDomain(),
		PaymentMethod:   r.PaymentMethod,
		DiscountCode:    r.DiscountCode,
		SubTotal:        r.SubTotal,
	}
}

func (r *UpdateOrderStatusRequest) ToParams() usecase.UpdateOrderStatusParams {
	params := usecase.UpdateOrderStatusParams{
		IsPaid:      r.IsPaid,
		IsDelivered: r.IsDelivered,
		Reference:   r.Reference,
	}
	if r.OrderStatus != nil {
		status := order.Status(*r.OrderStatus)
		params.Status = &status
	}
	return params
}
