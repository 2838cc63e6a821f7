package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CategoryRM struct {
	ID           uuid.UUID `json:"id"`
	MerchantID   uuid.UUID `json:"merchantId"`
	MerchantCode string    `json:"merchantCode"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
