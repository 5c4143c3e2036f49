package booking

import (
	"context"

	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/google/uuid"
)

// Repository defines the interface for booking storage.
type Repository interface {
	CreateBooking(ctx context.Context, b *Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListBookings(ctx context.Context, f ListFilter) ([]*Booking, int64, error)
	// UpdateStatus moves a booking from one status to another. It fails with
	// a conflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
}

// VenueReader is the part of the venue store bookings depend on.
type VenueReader interface {
	GetVenueByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
}
