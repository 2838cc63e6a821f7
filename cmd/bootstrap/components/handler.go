package components

import (
	"storefront-api/internal/handler"
	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMerchantHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewProductHandler,
		api.NewCategoryHandler,
		api.NewDiscountHandler,
		api.NewTaxHandler,
		api.NewShippingHandler,
		api.NewCustomerHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	merchant *api.MerchantHandler,
	checkout *api.CheckoutHandler,
	order *api.OrderHandler,
	product *api.ProductHandler,
	category *api.CategoryHandler,
	discount *api.DiscountHandler,
	tax *api.TaxHandler,
	shipping *api.ShippingHandler,
	customer *api.CustomerHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Merchant: merchant,
		Checkout: checkout,
		Order:    order,
		Product:  product,
		Category: category,
		Discount: discount,
		Tax:      tax,
		Shipping: shipping,
		Customer: customer,
	}
}
