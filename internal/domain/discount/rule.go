package discount

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrCodeNotFound is returned when no enabled rule matches the code.
	ErrCodeNotFound = errors.New("discount code not valid")
	// ErrExpired is returned when the rule's end date is strictly in the past.
	ErrExpired = errors.New("discount code expired")
)

// QuantityTooLowError is returned when the purchased quantity does not reach
// the rule's minimum. The message carries the required minimum so callers can
// surface it to buyers.
type QuantityTooLowError struct {
	MinQuantity int
}

func (e *QuantityTooLowError) Error() string {
	return fmt.Sprintf("discount code valid for %d items, buy more", e.MinQuantity)
}

// Rule is a merchant-scoped discount code. PercentValue is a percentage in
// [0,100]; MinQuantity is a floor below which the code is rejected outright
// (zero means no floor). A nil EndDate never expires.
type Rule struct {
	ID           uuid.UUID
	MerchantID   uuid.UUID
	MerchantCode string
	Code         string
	PercentValue decimal.Decimal
	MinQuantity  int
	StartDate    *time.Time
	EndDate      *time.Time
	Enabled      bool
	ProductIDs   []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var hundred = decimal.NewFromInt(100)

// Evaluate validates the rule against the purchase and computes the discount
// amount, rounded to 2 decimal places.
//
// The checks run in a fixed order: expiry first, then the quantity floor.
// Expiry uses a strictly-greater comparison, so a rule whose end date equals
// the evaluation instant is still valid. The quantity floor is inclusive on
// the applied side: quantity == MinQuantity earns the discount, quantity one
// below rejects with QuantityTooLowError.
func (r *Rule) Evaluate(quantity int, subTotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if r.EndDate != nil && now.After(*r.EndDate) {
		return decimal.Zero, ErrExpired
	}

	if r.MinQuantity != 0 && quantity < r.MinQuantity {
		return decimal.Zero, &QuantityTooLowError{MinQuantity: r.MinQuantity}
	}

	if r.PercentValue.IsZero() {
		return decimal.Zero, nil
	}

	amount := r.PercentValue.Div(hundred).Mul(subTotal).Round(2)
	return amount, nil
}
