package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type MerchantRM struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	MerchantCode string    `json:"merchantCode"`
	MerchantName string    `json:"merchantName"`
	MerchantEmail string   `json:"merchantEmail"`
	Currency     string    `json:"currency,omitempty"`
	Logo         string    `json:"logo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
