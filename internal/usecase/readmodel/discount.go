package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountRM struct {
	ID           uuid.UUID       `json:"id"`
	MerchantID   uuid.UUID       `json:"merchantId"`
	MerchantCode string          `json:"merchantCode"`
	Code         string          `json:"discountCode"`
	PercentValue decimal.Decimal `json:"discountValue"`
	MinQuantity  int             `json:"quantity"`
	StartDate    *time.Time      `json:"startDate,omitempty"`
	EndDate      *time.Time      `json:"endDate,omitempty"`
	Enabled      bool            `json:"enabled"`
	ProductIDs   []uuid.UUID     `json:"products,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
