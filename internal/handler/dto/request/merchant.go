package request

import (
	"storefront-api/internal/usecase"
)

type CreateMerchantRequest struct {
	MerchantCode  string `json:"merchantCode" binding:"required,min=2,max=64,alphanum"`
	MerchantName  string `json:"merchantName" binding:"required"`
	MerchantEmail string `json:"merchantEmail" binding:"required,email"`
	Currency      string `json:"currency"`
	Logo          string `json:"logo"`
}

type UpdateMerchantRequest struct {
	MerchantName  *string `json:"merchantName"`
	MerchantEmail *string `json:"merchantEmail" binding:"omitempty,email"`
	Currency      *string `json:"currency"`
	Logo          *string `json:"logo"`
}

func (r *CreateMerchantRequest) ToParams() usecase.CreateMerchantParams {
	return usecase.CreateMerchantParams{
		MerchantCode:  r.MerchantCode,
		MerchantName:  r.MerchantName,
		MerchantEmail: r.MerchantEmail,
		Currency:      r.Currency,
		Logo:          r.Logo,
	}
}

func (r *UpdateMerchantRequest) ToParams() usecase.UpdateMerchantParams {
	return usecase.UpdateMerchantParams{
		MerchantName:  r.MerchantName,
		MerchantEmail: r.MerchantEmail,
		Currency:      r.Currency,
		Logo:          r.Logo,
	}
}
