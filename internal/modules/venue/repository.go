package venue

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for venue storage.
type Repository interface {
	CreateVenue(ctx context.Context, v *Venue) error
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context, f ListFilter) ([]*Venue, int64, error)
	UpdateVenue(ctx context.Context, v *Venue) error
	UpdateVenueStatus(ctx context.Context, id uuid.UUID, status Status, reason string) (*Venue, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}
