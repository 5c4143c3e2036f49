package partner

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for business profile storage.
type Repository interface {
	CreateBusiness(ctx context.Context, b *Business) error
	GetBusinessByID(ctx context.Context, id uuid.UUID) (*Business, error)
	GetBusinessByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Business, error)
	ListBusinesses(ctx context.Context, f ListFilter) ([]*Business, int64, error)
	UpdateBusiness(ctx context.Context, b *Business) error
	UpdateBusinessStatus(ctx context.Context, id uuid.UUID, status Status, reason string) (*Business, error)
}
