package components

import (
	"storefront-api/internal/infra/repository"
	"storefront-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewMerchantRepository,
			fx.As(new(usecase.MerchantRepository)),
			fx.As(new(usecase.MerchantWriter)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
			fx.As(new(usecase.UserWriter)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			repository.NewCategoryRepository,
			fx.As(new(usecase.CategoryRepository)),
		),
		fx.Annotate(
			repository.NewDiscountRepository,
			fx.As(new(usecase.DiscountRepository)),
			fx.As(new(usecase.DiscountReader)),
		),
		fx.Annotate(
			repository.NewTaxRepository,
			fx.As(new(usecase.TaxRepository)),
			fx.As(new(usecase.TaxReader)),
		),
		fx.Annotate(
			repository.NewShippingRepository,
			fx.As(new(usecase.ShippingRepository)),
			fx.As(new(usecase.ShippingReader)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(usecase.CustomerRepository)),
		),
	),
)
