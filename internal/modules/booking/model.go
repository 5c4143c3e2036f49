package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Currency is the only currency bookings are priced in.
const Currency = "INR"

// Booking is a user's reservation of a venue for one date.
type Booking struct {
	ID            uuid.UUID       `json:"id"`
	BookingNumber string          `json:"booking_number"`
	VenueID       uuid.UUID       `json:"venue_id"`
	VenueName     string          `json:"venue_name,omitempty"`
	VenueOwnerID  uuid.UUID       `json:"-"`
	UserID        uuid.UUID       `json:"user_id"`
	EventDate     time.Time       `json:"event_date"`
	GuestCount    int             `json:"guest_count"`
	ContactName   string          `json:"contact_name"`
	ContactPhone  string          `json:"contact_phone"`
	Notes         string          `json:"notes,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateBookingRequest is the payload for booking a venue. EventDate is a
// calendar date, YYYY-MM-DD.
type CreateBookingRequest struct {
	VenueID      string `json:"venue_id" validate:"required,uuid"`
	EventDate    string `json:"event_date" validate:"required,datetime=2006-01-02"`
	GuestCount   int    `json:"guest_count" validate:"required,gte=1"`
	ContactName  string `json:"contact_name" validate:"required,max=120"`
	ContactPhone string `json:"contact_phone" validate:"required,phone"`
	Notes        string `json:"notes" validate:"max=2000"`
}

// UpdateStatusRequest is the payload for advancing a booking's status.
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=PENDING CONFIRMED REJECTED CANCELLED COMPLETED"`
}

// ListFilter narrows a booking listing. Nil scopes list every row.
type ListFilter struct {
	UserID       *uuid.UUID
	VenueOwnerID *uuid.UUID
	VenueID      *uuid.UUID
	Status       Status
	Limit        int
	Offset       int
}
