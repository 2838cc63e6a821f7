package pricing

import (
	"github.com/shopspring/decimal"
)

// Quote is the authoritative pricing breakdown for a checkout. It is
// ephemeral: the preview endpoint returns it as-is, the order commit path
// copies its fields onto the persisted order. Both paths build it through
// Calculator so the numbers cannot diverge.
type Quote struct {
	SubTotal          decimal.Decimal
	TaxAmount         decimal.Decimal
	ShippingFeeAmount decimal.Decimal
	DiscountAmount    decimal.Decimal
	DiscountCode      string
	Total             decimal.Decimal
}

// Calculator composes a Quote from already-resolved amounts. Rate and
// discount resolution happen upstream; this type owns only the arithmetic
// and the rounding contract: every monetary output carries exactly 2
// decimal places and the total is never negative.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Quote applies the tax rate to the subtotal, rounds every component, and
// composes total = round2(subTotal + tax + shippingFee - discount).
func (c *Calculator) Quote(subTotal, taxRatePercent, shippingFee, discountAmount decimal.Decimal, discountCode string) Quote {
	taxAmount := taxRatePercent.Div(decimal.NewFromInt(100)).Mul(subTotal).Round(2)
	shippingFee = shippingFee.Round(2)
	discountAmount = discountAmount.Round(2)

	total := subTotal.Add(taxAmount).Add(shippingFee).Sub(discountAmount).Round(2)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Quote{
		SubTotal:          subTotal.Round(2),
		TaxAmount:         taxAmount,
		ShippingFeeAmount: shippingFee,
		DiscountAmount:    discountAmount,
		DiscountCode:      discountCode,
		Total:             total,
	}
}
