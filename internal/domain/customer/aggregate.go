package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate is the denormalized per-buyer-per-merchant order statistics row.
//
// It is always recomputed from the full order history, never incremented:
// retried or duplicated commits converge on the same numbers instead of
// double-counting, at the cost of an O(history) read per order creation.
type Aggregate struct {
	UserID       uuid.UUID
	MerchantID   uuid.UUID
	MerchantCode string
	Username     string
	Email        string
	Photo        string
	TotalOrders  int
	TotalSpent   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Recompute derives the aggregate counters from the buyer's complete order
// totals with this merchant.
func (a *Aggregate) Recompute(orderTotals []decimal.Decimal) {
	sum := decimal.Zero
	for _, t := range orderTotals {
		sum = sum.Add(t)
	}
	a.TotalOrders = len(orderTotals)
	a.TotalSpent = sum
}
