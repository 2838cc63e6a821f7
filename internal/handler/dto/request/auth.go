package request

import (
	"storefront-api/internal/domain/user"
	"storefront-api/internal/usecase"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=merchant client"`
	Photo    string `json:"photo"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *RegisterRequest) ToParams() usecase.RegisterParams {
	return usecase.RegisterParams{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     user.Role(r.Role),
		Photo:    r.Photo,
	}
}
