package response

import (
	"storefront-api/internal/usecase/readmodel"
)

type LoginResponse struct {
	AccessToken string             `json:"accessToken"`
	User        *readmodel.UserRM  `json:"user"`
}
