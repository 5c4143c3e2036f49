package auth

import (
	"context"
	"time"

	"github.com/georgemunganga/venuehub-backend/internal/modules/user"
	"github.com/google/uuid"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Session, error)
	Me(ctx context.Context, userID uuid.UUID) (*user.User, error)
}

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is returned to the client after a successful login.
type Session struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      *user.User `json:"user"`
}
