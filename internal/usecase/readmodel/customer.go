package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerRM struct {
	UserID       uuid.UUID       `json:"userId"`
	MerchantID   uuid.UUID       `json:"merchantId"`
	MerchantCode string          `json:"merchantCode"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Photo        string          `json:"photo,omitempty"`
	TotalOrders  int             `json:"totalOrders"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
