package components

import (
	"storefront-api/internal/domain/pricing"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		pricing.NewCalculator,
		NewPostCommitHooks,
		usecase.NewCheckoutUseCase,
		usecase.NewOrderUseCase,
		usecase.NewProductUseCase,
		usecase.NewCategoryUseCase,
		usecase.NewDiscountUseCase,
		usecase.NewTaxUseCase,
		usecase.NewShippingUseCase,
		usecase.NewCustomerUseCase,
		usecase.NewMerchantUseCase,
		usecase.NewAuthUseCase,
	),
)

func NewPostCommitHooks(dispatcher usecase.NotificationDispatcher) []usecase.PostCommitHook {
	return []usecase.PostCommitHook{
		usecase.NewOrderConfirmationHook(dispatcher),
	}
}
