//go:build unit

package pricing_test

import (
	"testing"

	"storefront-api/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestCalculatorQuote(t *testing.T) {
	calc := pricing.NewCalculator()
	d := decimal.RequireFromString

	tests := []struct {
		name           string
		subTotal       string
		taxRatePercent string
		shippingFee    string
		discountAmount string
		discountCode   string
		want           pricing.Quote
	}{
		{
			name:           "full breakdown",
			subTotal:       "100",
			taxRatePercent: "7.5",
			shippingFee:    "500",
			discountAmount: "10",
			discountCode:   "SUMMER10",
			want: pricing.Quote{
				SubTotal:          d("100.00"),
				TaxAmount:         d("7.50"),
				ShippingFeeAmount: d("500.00"),
				DiscountAmount:    d("10.00"),
				DiscountCode:      "SUMMER10",
				Total:             d("597.50"),
			},
		},
		{
			name:           "no discount",
			subTotal:       "250.50",
			taxRatePercent: "2",
			shippingFee:    "4000",
			discountAmount: "0",
			want: pricing.Quote{
				SubTotal:          d("250.50"),
				TaxAmount:         d("5.01"),
				ShippingFeeAmount: d("4000.00"),
				DiscountAmount:    d("0.00"),
				Total:             d("4255.51"),
			},
		},
		{
			name:           "tax amount is rounded to 2 places",
			subTotal:       "33.33",
			taxRatePercent: "7.25",
			shippingFee:    "0",
			discountAmount: "0",
			want: pricing.Quote{
				SubTotal:          d("33.33"),
				TaxAmount:         d("2.42"),
				ShippingFeeAmount: d("0.00"),
				DiscountAmount:    d("0.00"),
				Total:             d("35.75"),
			},
		},
		{
			name:           "discount larger than everything floors at zero",
			subTotal:       "10",
			taxRatePercent: "0",
			shippingFee:    "0",
			discountAmount: "50",
			discountCode:   "BIG",
			want: pricing.Quote{
				SubTotal:          d("10.00"),
				TaxAmount:         d("0.00"),
				ShippingFeeAmount: d("0.00"),
				DiscountAmount:    d("50.00"),
				DiscountCode:      "BIG",
				Total:             d("0"),
			},
		},
		{
			name:           "zero subtotal",
			subTotal:       "0",
			taxRatePercent: "7.5",
			shippingFee:    "500",
			discountAmount: "0",
			want: pricing.Quote{
				SubTotal:          d("0.00"),
				TaxAmount:         d("0.00"),
				ShippingFeeAmount: d("500.00"),
				DiscountAmount:    d("0.00"),
				Total:             d("500.00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Quote(d(tt.subTotal), d(tt.taxRatePercent), d(tt.shippingFee), d(tt.discountAmount), tt.discountCode)

			if diff := cmp.Diff(tt.want, got, decimalComparer); diff != "" {
				t.Errorf("quote mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
