package donation

import (
	"context"

	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/google/uuid"
)

// Repository defines the interface for donation storage.
type Repository interface {
	CreateDonation(ctx context.Context, d *Donation) error
	GetDonationByID(ctx context.Context, id uuid.UUID) (*Donation, error)
	ListDonations(ctx context.Context, f ListFilter) ([]*Donation, int64, error)
	// UpdateStatus moves a donation from one status to another, replacing the
	// admin note when note is not empty.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, note string) error
}

// VenueReader resolves the optional venue a donation comes from.
type VenueReader interface {
	GetVenueByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
}
