//go:build unit

package customer_test

import (
	"testing"

	"storefront-api/internal/domain/customer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregateRecompute(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name       string
		totals     []decimal.Decimal
		wantOrders int
		wantSpent  string
	}{
		{name: "empty history zeroes the aggregate", totals: nil, wantOrders: 0, wantSpent: "0"},
		{name: "single order", totals: []decimal.Decimal{d("597.50")}, wantOrders: 1, wantSpent: "597.50"},
		{name: "sums all totals", totals: []decimal.Decimal{d("100.25"), d("50"), d("0")}, wantOrders: 3, wantSpent: "150.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := &customer.Aggregate{}
			agg.Recompute(tt.totals)

			assert.Equal(t, tt.wantOrders, agg.TotalOrders)
			assert.True(t, d(tt.wantSpent).Equal(agg.TotalSpent),
				"expected %s, got %s", tt.wantSpent, agg.TotalSpent)
		})
	}
}

func TestAggregateRecomputeIsIdempotent(t *testing.T) {
	d := decimal.RequireFromString
	totals := []decimal.Decimal{d("100"), d("200")}

	agg := &customer.Aggregate{}
	agg.Recompute(totals)
	agg.Recompute(totals)

	assert.Equal(t, 2, agg.TotalOrders)
	assert.True(t, d("300").Equal(agg.TotalSpent))
}
