package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the interface for user-related business logic.
type Service interface {
	RegisterUser(ctx context.Context, req RegisterRequest) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, f ListFilter) ([]*User, int64, error)
	// EnsureAdmin creates the bootstrap administrator when no account uses email.
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}
