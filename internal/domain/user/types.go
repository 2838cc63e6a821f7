package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	// RoleMerchant owns a store and manages its rules and orders.
	RoleMerchant Role = "merchant"
	// RoleClient is a buyer browsing a merchant's store.
	RoleClient Role = "client"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMerchant, RoleClient:
		return true
	}
	return false
}

// User is the account record shared by merchants and buyers.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Photo        string
	CreatedAt    time.Time
}
