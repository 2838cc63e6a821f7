package usecase

import (
	"context"
	"errors"
	"log/slog"

	"storefront-api/internal/domain/discount"
	"storefront-api/internal/domain/order"
	"storefront-api/internal/domain/pricing"
	"storefront-api/internal/infra"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/readmodel"

	"github.com/shopspring/decimal"
)

var (
	ErrMerchantNotFound = errors.New("merchant not found")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type MerchantRepository interface {
	FindByCode(ctx context.Context, merchantCode string) (*readmodel.MerchantRM, error)
}

// DiscountReader is the lookup the pricing path needs; the full CRUD surface
// lives on DiscountRepository.
type DiscountReader interface {
	FindEnabledByCode(ctx context.Context, merchantCode, code string) (*readmodel.DiscountRM, error)
}

type TaxReader interface {
	FindEnabledByState(ctx context.Context, merchantCode, state string) (*readmodel.TaxRM, error)
}

type ShippingReader interface {
	FindByState(ctx context.Context, merchantCode, state string) (*readmodel.ShippingRM, error)
}

// DiscountCache is a read-through cache for discount rules. A miss returns
// (nil, nil). Entries expire store-side after the configured TTL, so the
// cache is never consulted beyond its window; it is an optimization, never
// the source of truth, and any cache failure degrades to a repository read.
type DiscountCache interface {
	Get(ctx context.Context, merchantCode, code string) (*readmodel.DiscountRM, error)
	Set(ctx context.Context, merchantCode, code string, rule *readmodel.DiscountRM) error
	Invalidate(ctx context.Context, merchantCode, code string) error
}

// QuoteParams is the client-supplied portion of a checkout computation.
type QuoteParams struct {
	SubTotal        decimal.Decimal
	Quantity        int
	ShippingDetails order.ShippingDetails
	DiscountCode    string
}

// CheckoutUseCase computes pricing. Quote is the single code path behind both
// the preview endpoint and order creation; TaxRate, ShippingFee and
// ValidateDiscount back the public inquiry endpoints and resolve through the
// same lookups and defaults as Quote.
type CheckoutUseCase interface {
	Quote(ctx context.Context, merchantCode string, params QuoteParams) (*pricing.Quote, error)
	TaxRate(ctx context.Context, merchantCode, state string) (decimal.Decimal, error)
	ShippingFee(ctx context.Context, merchantCode, state string) (decimal.Decimal, error)
	ValidateDiscount(ctx context.Context, merchantCode, code string, quantity int, subTotal decimal.Decimal) (decimal.Decimal, error)
}

type checkoutUseCaseImpl struct {
	merchantRepo MerchantRepository
	discountRepo DiscountReader
	taxRepo      TaxReader
	shippingRepo ShippingReader
	cache        DiscountCache
	calculator   *pricing.Calculator
	clock        clock.Clock

	defaultTaxRate     decimal.Decimal
	defaultShippingFee decimal.Decimal
}

func NewCheckoutUseCase(
	merchantRepo MerchantRepository,
	discountRepo DiscountReader,
	taxRepo TaxReader,
	shippingRepo ShippingReader,
	cache DiscountCache,
	calculator *pricing.Calculator,
	clock clock.Clock,
	cfg config.PricingConfig,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		merchantRepo:       merchantRepo,
		discountRepo:       discountRepo,
		taxRepo:            taxRepo,
		shippingRepo:       shippingRepo,
		cache:              cache,
		calculator:         calculator,
		clock:              clock,
		defaultTaxRate:     decimal.NewFromFloat(cfg.DefaultTaxRatePercent),
		defaultShippingFee: decimal.NewFromFloat(cfg.DefaultShippingFee),
	}
}

func (u *checkoutUseCaseImpl) Quote(ctx context.Context, merchantCode string, params QuoteParams) (*pricing.Quote, error) {
	if _, err := u.requireMerchant(ctx, merchantCode); err != nil {
		return nil, err
	}

	discountAmount := decimal.Zero
	if params.DiscountCode != "" {
		amount, err := u.evaluateDiscount(ctx, merchantCode, params.DiscountCode, params.Quantity, params.SubTotal)
		if err != nil {
			return nil, err
		}
		discountAmount = amount
	}

	taxRate, err := u.resolveTaxRate(ctx, merchantCode, params.ShippingDetails.State)
	if err != nil {
		return nil, err
	}

	shippingFee, err := u.resolveShippingFee(ctx, merchantCode, params.ShippingDetails.State)
	if err != nil {
		return nil, err
	}

	quote := u.calculator.Quote(params.SubTotal, taxRate, shippingFee, discountAmount, params.DiscountCode)
	return &quote, nil
}

func (u *checkoutUseCaseImpl) TaxRate(ctx context.Context, merchantCode, state string) (decimal.Decimal, error) {
	if _, err := u.requireMerchant(ctx, merchantCode); err != nil {
		return decimal.Zero, err
	}
	return u.resolveTaxRate(ctx, merchantCode, state)
}

func (u *checkoutUseCaseImpl) ShippingFee(ctx context.Context, merchantCode, state string) (decimal.Decimal, error) {
	if _, err := u.requireMerchant(ctx, merchantCode); err != nil {
		return decimal.Zero, err
	}
	return u.resolveShippingFee(ctx, merchantCode, state)
}

func (u *checkoutUseCaseImpl) ValidateDiscount(ctx context.Context, merchantCode, code string, quantity int, subTotal decimal.Decimal) (decimal.Decimal, error) {
	if _, err := u.requireMerchant(ctx, merchantCode); err != nil {
		return decimal.Zero, err
	}
	return u.evaluateDiscount(ctx, merchantCode, code, quantity, subTotal)
}

func (u *checkoutUseCaseImpl) requireMerchant(ctx context.Context, merchantCode string) (*readmodel.MerchantRM, error) {
	merchant, err := u.merchantRepo.FindByCode(ctx, merchantCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return merchant, nil
}

// evaluateDiscount enforces the hard-failure policy: an unknown, expired, or
// below-minimum code rejects the whole request rather than degrading to a
// zero discount.
func (u *checkoutUseCaseImpl) evaluateDiscount(ctx context.Context, merchantCode, code string, quantity int, subTotal decimal.Decimal) (decimal.Decimal, error) {
	rm, err := u.lookupDiscount(ctx, merchantCode, code)
	if err != nil {
		return decimal.Zero, err
	}

	rule := &discount.Rule{
		ID:           rm.ID,
		MerchantID:   rm.MerchantID,
		MerchantCode: rm.MerchantCode,
		Code:         rm.Code,
		PercentValue: rm.PercentValue,
		MinQuantity:  rm.MinQuantity,
		StartDate:    rm.StartDate,
		EndDate:      rm.EndDate,
		Enabled:      rm.Enabled,
	}

	return rule.Evaluate(quantity, subTotal, u.clock.Now())
}

func (u *checkoutUseCaseImpl) lookupDiscount(ctx context.Context, merchantCode, code string) (*readmodel.DiscountRM, error) {
	if cached, err := u.cache.Get(ctx, merchantCode, code); err != nil {
		slog.Warn("discount cache read failed, falling back to store", "code", code, "error", err.Error())
	} else if cached != nil {
		return cached, nil
	}

	rm, err := u.discountRepo.FindEnabledByCode(ctx, merchantCode, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, discount.ErrCodeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.cache.Set(ctx, merchantCode, code, rm); err != nil {
		slog.Warn("discount cache write failed", "code", code, "error", err.Error())
	}

	return rm, nil
}

// resolveTaxRate returns the enabled rule's rate for the state, or the
// configured default when no rule exists. Absence is an expected case, never
// an error.
func (u *checkoutUseCaseImpl) resolveTaxRate(ctx context.Context, merchantCode, state string) (decimal.Decimal, error) {
	rm, err := u.taxRepo.FindEnabledByState(ctx, merchantCode, state)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return u.defaultTaxRate, nil
		}
		return decimal.Zero, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm.StandardRate, nil
}

func (u *checkoutUseCaseImpl) resolveShippingFee(ctx context.Context, merchantCode, state string) (decimal.Decimal, error) {
	rm, err := u.shippingRepo.FindByState(ctx, merchantCode, state)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return u.defaultShippingFee, nil
		}
		return decimal.Zero, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm.Amount, nil
}
