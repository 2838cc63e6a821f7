//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-api/internal/domain/discount"
	"storefront-api/internal/domain/order"
	"storefront-api/internal/domain/pricing"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/usecase"
	"storefront-api/internal/usecase/readmodel"
	usecasemock "storefront-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	merchantRepo *usecasemock.MockMerchantRepository
	discountRepo *usecasemock.MockDiscountReader
	taxRepo      *usecasemock.MockTaxReader
	shippingRepo *usecasemock.MockShippingReader
	cache        *usecasemock.MockDiscountCache
	clock        *clock.MockClock
	checkout     usecase.CheckoutUseCase

	merchant *readmodel.MerchantRM
}

func TestCheckoutUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.merchantRepo = usecasemock.NewMockMerchantRepository(s.mockCtrl)
	s.discountRepo = usecasemock.NewMockDiscountReader(s.mockCtrl)
	s.taxRepo = usecasemock.NewMockTaxReader(s.mockCtrl)
	s.shippingRepo = usecasemock.NewMockShippingReader(s.mockCtrl)
	s.cache = usecasemock.NewMockDiscountCache(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	s.checkout = usecase.NewCheckoutUseCase(
		s.merchantRepo,
		s.discountRepo,
		s.taxRepo,
		s.shippingRepo,
		s.cache,
		pricing.NewCalculator(),
		s.clock,
		config.PricingConfig{DefaultTaxRatePercent: 2, DefaultShippingFee: 4000},
	)

	s.merchant = &readmodel.MerchantRM{
		ID:           uuid.New(),
		MerchantCode: "acme",
		MerchantName: "Acme Store",
	}
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CheckoutUseCaseTestSuite) expectMerchant() {
	s.merchantRepo.EXPECT().FindByCode(gomock.Any(), "acme").Return(s.merchant, nil)
}

func (s *CheckoutUseCaseTestSuite) notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

func (s *CheckoutUseCaseTestSuite) discountRM(percent string, minQty int, endDate *time.Time) *readmodel.DiscountRM {
	return &readmodel.DiscountRM{
		ID:           uuid.New(),
		MerchantID:   s.merchant.ID,
		MerchantCode: "acme",
		Code:         "SUMMER10",
		PercentValue: decimal.RequireFromString(percent),
		MinQuantity:  minQty,
		EndDate:      endDate,
		Enabled:      true,
	}
}

func quoteParams(subTotal string, quantity int, state, code string) usecase.QuoteParams {
	return usecase.QuoteParams{
		SubTotal:        decimal.RequireFromString(subTotal),
		Quantity:        quantity,
		ShippingDetails: order.ShippingDetails{Address: "1 Market St", City: "San Francisco", State: state},
		DiscountCode:    code,
	}
}

func (s *CheckoutUseCaseTestSuite) TestQuote() {
	ctx := context.Background()

	s.Run("uses configured rates for the destination state", func() {
		s.expectMerchant()
		s.cache.EXPECT().Get(ctx, "acme", "SUMMER10").Return(nil, nil)
		s.discountRepo.EXPECT().FindEnabledByCode(ctx, "acme", "SUMMER10").
			Return(s.discountRM("10", 0, nil), nil)
		s.cache.EXPECT().Set(ctx, "acme", "SUMMER10", gomock.Any()).Return(nil)
		s.taxRepo.EXPECT().FindEnabledByState(ctx, "acme", "CA").
			Return(&readmodel.TaxRM{State: "CA", StandardRate: decimal.RequireFromString("7.5")}, nil)
		s.shippingRepo.EXPECT().FindByState(ctx, "acme", "CA").
			Return(&readmodel.ShippingRM{State: "CA", Amount: decimal.NewFromInt(500)}, nil)

		quote, err := s.checkout.Quote(ctx, "acme", quoteParams("100", 2, "CA", "SUMMER10"))

		s.Require().NoError(err)
		s.True(decimal.RequireFromString("7.50").Equal(quote.TaxAmount))
		s.True(decimal.RequireFromString("500.00").Equal(quote.ShippingFeeAmount))
		s.True(decimal.RequireFromString("10.00").Equal(quote.DiscountAmount))
		s.True(decimal.RequireFromString("597.50").Equal(quote.Total))
		s.Equal("SUMMER10", quote.DiscountCode)
	})

	s.Run("falls back to default rates when the state has none", func() {
		s.expectMerchant()
		s.taxRepo.EXPECT().FindEnabledByState(ctx, "acme", "NV").
			Return(nil, s.notFound("tax rate not found"))
		s.shippingRepo.EXPECT().FindByState(ctx, "acme", "NV").
			Return(nil, s.notFound("shipping fee not found"))

		quote, err := s.checkout.Quote(ctx, "acme", quoteParams("100", 1, "NV", ""))

		s.Require().NoError(err)
		s.True(decimal.RequireFromString("2.00").Equal(quote.TaxAmount))
		s.True(decimal.RequireFromString("4000.00").Equal(quote.ShippingFeeAmount))
		s.True(decimal.RequireFromString("4102.00").Equal(quote.Total))
	})

	s.Run("unknown merchant", func() {
		s.merchantRepo.EXPECT().FindByCode(ctx, "acme").
			Return(nil, s.notFound("merchant not found"))

		_, err := s.checkout.Quote(ctx, "acme", quoteParams("100", 1, "CA", ""))

		s.ErrorIs(err, usecase.ErrMerchantNotFound)
	})

	s.Run("unknown discount code rejects the quote", func() {
		s.expectMerchant()
		s.cache.EXPECT().Get(ctx, "acme", "NOPE").Return(nil, nil)
		s.discountRepo.EXPECT().FindEnabledByCode(ctx, "acme", "NOPE").
			Return(nil, s.notFound("discount not found"))

		_, err := s.checkout.Quote(ctx, "acme", quoteParams("100", 1, "CA", "NOPE"))

		s.ErrorIs(err, discount.ErrCodeNotFound)
	})

	s.Run("expired discount code rejects the quote", func() {
		expired := s.clock.Now().Add(-time.Hour)
		s.expectMerchant()
		s.cache.EXPECT().Get(ctx, "acme", "SUMMER10").Return(nil, nil)
		s.discountRepo.EXPECT().FindEnabledByCode(ctx, "acme", "SUMMER10").
			Return(s.discountRM("10", 0, &expired), nil)
		s.cache.EXPECT().Set(ctx, "acme", "SUMMER10", gomock.Any()).Return(nil)

		_, err := s.checkout.Quote(ctx, "acme", quoteParams("100", 1, "CA", "SUMMER10"))

		s.ErrorIs(err, discount.ErrExpired)
	})

	s.Run("quantity below the discount floor rejects the quote", func() {
		s.expectMerchant()
		s.cache.EXPECT().Get(ctx, "acme", "SUMMER10").Return(nil, nil)
		s.discountRepo.EXPECT().FindEnabledByCode(ctx, "acme", "SUMMER10").
			Return(s.discountRM("10", 5, nil), nil)
		s.cache.EXPECT().Set(ctx, "acme", "SUMMER10", gomock.Any()).Return(nil)

		_, err := s.checkout.Quote(ctx, "acme", quoteParams("100", 2, "CA", "SUMMER10"))

		var tooLow *discount.QuantityTooLowError
		s.Require().ErrorAs(err, &tooLow)
		s.Equal(5, tooLow.MinQuantity)
	})

	s.Run("database failure on rate lookup surfaces as error", func() {
		s.expectMerchant()
		s.taxRepo.EXPECT().FindEnabledByState(ctx, "acme", "CA").
			Return(nil, infra.WrapRepoErr("query failed", errors.New("boom")))

		_, err := s.checkout.Quote(ctx, "acme", quoteParams("100", 1, "CA", ""))

		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})
}

func (s *CheckoutUseCaseTestSuite) TestDiscountCache() {
	ctx := context.Background()

	s.Run("cache hit skips the repository", func() {
		s.expectMerchant()
		s.cache.EXPECT().Get(ctx, "acme", "SUMMER10").
			Return(s.discountRM("10", 0, nil), nil)

		amount, err := s.checkout.ValidateDiscount(ctx, "acme", "SUMMER10", 1, decimal.NewFromInt(100))

		s.Require().NoError(err)
		s.True(decimal.RequireFromString("10.00").Equal(amount))
	})

	s.Run("cache read failure degrades to repository lookup", func() {
		s.expectMerchant()
		s.cache.EXPECT().Get(ctx, "acme", "SUMMER10").
			Return(nil, errors.New("connection refused"))
		s.discountRepo.EXPECT().FindEnabledByCode(ctx, "acme", "SUMMER10").
			Return(s.discountRM("10", 0, nil), nil)
		s.cache.EXPECT().Set(ctx, "acme", "SUMMER10", gomock.Any()).Return(nil)

		amount, err := s.checkout.ValidateDiscount(ctx, "acme", "SUMMER10", 1, decimal.NewFromInt(100))

		s.Require().NoError(err)
		s.True(decimal.RequireFromString("10.00").Equal(amount))
	})

	s.Run("cache write failure does not fail the request", func() {
		s.expectMerchant()
		s.cache.EXPECT().Get(ctx, "acme", "SUMMER10").Return(nil, nil)
		s.discountRepo.EXPECT().FindEnabledByCode(ctx, "acme", "SUMMER10").
			Return(s.discountRM("10", 0, nil), nil)
		s.cache.EXPECT().Set(ctx, "acme", "SUMMER10", gomock.Any()).
			Return(errors.New("connection refused"))

		amount, err := s.checkout.ValidateDiscount(ctx, "acme", "SUMMER10", 1, decimal.NewFromInt(100))

		s.Require().NoError(err)
		s.True(decimal.RequireFromString("10.00").Equal(amount))
	})
}

func (s *CheckoutUseCaseTestSuite) TestTaxRate() {
	ctx := context.Background()

	s.Run("returns the configured rate", func() {
		s.expectMerchant()
		s.taxRepo.EXPECT().FindEnabledByState(ctx, "acme", "CA").
			Return(&readmodel.TaxRM{State: "CA", StandardRate: decimal.RequireFromString("7.5")}, nil)

		rate, err := s.checkout.TaxRate(ctx, "acme", "CA")

		s.Require().NoError(err)
		s.True(decimal.RequireFromString("7.5").Equal(rate))
	})

	s.Run("returns the default when no rule exists", func() {
		s.expectMerchant()
		s.taxRepo.EXPECT().FindEnabledByState(ctx, "acme", "NV").
			Return(nil, s.notFound("tax rate not found"))

		rate, err := s.checkout.TaxRate(ctx, "acme", "NV")

		s.Require().NoError(err)
		s.True(decimal.NewFromInt(2).Equal(rate))
	})
}

func (s *CheckoutUseCaseTestSuite) TestShippingFee() {
	ctx := context.Background()

	s.Run("returns the configured fee", func() {
		s.expectMerchant()
		s.shippingRepo.EXPECT().FindByState(ctx, "acme", "CA").
			Return(&readmodel.ShippingRM{State: "CA", Amount: decimal.NewFromInt(500)}, nil)

		fee, err := s.checkout.ShippingFee(ctx, "acme", "CA")

		s.Require().NoError(err)
		s.True(decimal.NewFromInt(500).Equal(fee))
	})

	s.Run("returns the default when no rule exists", func() {
		s.expectMerchant()
		s.shippingRepo.EXPECT().FindByState(ctx, "acme", "NV").
			Return(nil, s.notFound("shipping fee not found"))

		fee, err := s.checkout.ShippingFee(ctx, "acme", "NV")

		s.Require().NoError(err)
		s.True(decimal.NewFromInt(4000).Equal(fee))
	})
}
