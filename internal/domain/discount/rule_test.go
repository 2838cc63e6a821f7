//go:build unit

package discount_test

import (
	"testing"
	"time"

	"storefront-api/internal/domain/discount"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleEvaluate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	rule := func(percent string, minQty int, endDate *time.Time) *discount.Rule {
		return &discount.Rule{
			Code:         "SUMMER10",
			PercentValue: decimal.RequireFromString(percent),
			MinQuantity:  minQty,
			EndDate:      endDate,
			Enabled:      true,
		}
	}

	tests := []struct {
		name       string
		rule       *discount.Rule
		quantity   int
		subTotal   string
		wantAmount string
		wantErr    error
	}{
		{
			name:       "applies percentage to subtotal",
			rule:       rule("10", 0, &future),
			quantity:   2,
			subTotal:   "100",
			wantAmount: "10.00",
		},
		{
			name:       "nil end date never expires",
			rule:       rule("10", 0, nil),
			quantity:   1,
			subTotal:   "50",
			wantAmount: "5.00",
		},
		{
			name:       "end date equal to now is still valid",
			rule:       rule("10", 0, &now),
			quantity:   1,
			subTotal:   "100",
			wantAmount: "10.00",
		},
		{
			name:     "end date in the past rejects",
			rule:     rule("10", 0, &past),
			quantity: 1,
			subTotal: "100",
			wantErr:  discount.ErrExpired,
		},
		{
			name:     "expiry is checked before the quantity floor",
			rule:     rule("10", 5, &past),
			quantity: 1,
			subTotal: "100",
			wantErr:  discount.ErrExpired,
		},
		{
			name:       "quantity at the floor earns the discount",
			rule:       rule("10", 3, nil),
			quantity:   3,
			subTotal:   "300",
			wantAmount: "30.00",
		},
		{
			name:     "quantity one below the floor rejects",
			rule:     rule("10", 3, nil),
			quantity: 2,
			subTotal: "300",
			wantErr:  &discount.QuantityTooLowError{MinQuantity: 3},
		},
		{
			name:       "zero floor accepts any quantity",
			rule:       rule("10", 0, nil),
			quantity:   0,
			subTotal:   "100",
			wantAmount: "10.00",
		},
		{
			name:       "zero percent yields zero without error",
			rule:       rule("0", 0, nil),
			quantity:   1,
			subTotal:   "100",
			wantAmount: "0",
		},
		{
			name:       "amount is rounded to 2 decimal places",
			rule:       rule("12.5", 0, nil),
			quantity:   1,
			subTotal:   "33.33",
			wantAmount: "4.17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule.Evaluate(tt.quantity, decimal.RequireFromString(tt.subTotal), now)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantAmount).Equal(got),
				"expected %s, got %s", tt.wantAmount, got)
		})
	}
}

func TestQuantityTooLowErrorMessage(t *testing.T) {
	err := &discount.QuantityTooLowError{MinQuantity: 4}
	assert.Equal(t, "discount code valid for 4 items, buy more", err.Error())
}
