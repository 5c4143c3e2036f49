package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type groups notifications by the workflow that raised them.
type Type string

const (
	TypeVenueStatus    Type = "venue_status"
	TypeBusinessStatus Type = "business_status"
	TypeBooking        Type = "booking"
	TypeDonation       Type = "donation"
	TypeSystem         Type = "system"
)

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notice is what other modules hand to a Notifier.
type Notice struct {
	UserID  uuid.UUID
	Type    Type
	Title   string
	Message string
	Link    string
}

// ListFilter selects a page of one user's notifications.
type ListFilter struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int
	Offset     int
}
