package user

import (
	"time"

	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/google/uuid"
)

// User represents an account on any of the three portals.
type User struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone,omitempty"`
	Role         identity.Role `json:"role"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// RegisterRequest is the sign-up payload. Admin accounts cannot self-register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Role     string `json:"role" validate:"omitempty,oneof=USER PARTNER"`
}

// ListFilter narrows the admin user listing.
type ListFilter struct {
	Role   identity.Role
	Search string
	Limit  int
	Offset int
}
