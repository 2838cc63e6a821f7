package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TaxRM struct {
	ID           uuid.UUID       `json:"id"`
	MerchantID   uuid.UUID       `json:"merchantId"`
	MerchantCode string          `json:"merchantCode"`
	Street       string          `json:"street,omitempty"`
	City         string          `json:"city,omitempty"`
	Zip          string          `json:"zip,omitempty"`
	State        string          `json:"state"`
	Country      string          `json:"country"`
	StandardRate decimal.Decimal `json:"standardRate"`
	Enabled      bool            `json:"enabled"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
