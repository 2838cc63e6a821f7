package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductRM struct {
	ID           uuid.UUID       `json:"id"`
	MerchantID   uuid.UUID       `json:"merchantId"`
	MerchantCode string          `json:"merchantCode"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Category     string          `json:"category,omitempty"`
	Brand        string          `json:"brand,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Images       []string        `json:"image,omitempty"`
	Condition    string          `json:"condition"`
	IsActive     bool            `json:"isActive"`
	InStock      bool            `json:"inStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
