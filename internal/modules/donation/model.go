package donation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a food donation.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
	StatusCollected   Status = "COLLECTED"
	StatusDistributed Status = "DISTRIBUTED"
	StatusCancelled   Status = "CANCELLED"
)

// FoodType classifies the donated food.
type FoodType string

const (
	FoodVeg    FoodType = "veg"
	FoodNonVeg FoodType = "non_veg"
	FoodBoth   FoodType = "both"
)

// Donation is an offer of surplus food awaiting pickup.
type Donation struct {
	ID            uuid.UUID       `json:"id"`
	DonorID       uuid.UUID       `json:"donor_id"`
	VenueID       *uuid.UUID      `json:"venue_id,omitempty"`
	FoodType      FoodType        `json:"food_type"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	PickupAddress string          `json:"pickup_address"`
	City          string          `json:"city"`
	PickupTime    time.Time       `json:"pickup_time"`
	ContactName   string          `json:"contact_name"`
	ContactPhone  string          `json:"contact_phone"`
	Status        Status          `json:"status"`
	AdminNote     string          `json:"admin_note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateDonationRequest is the payload for offering a donation.
type CreateDonationRequest struct {
	VenueID       string          `json:"venue_id" validate:"omitempty,uuid"`
	FoodType      FoodType        `json:"food_type" validate:"required,oneof=veg non_veg both"`
	Description   string          `json:"description" validate:"max=2000"`
	Quantity      decimal.Decimal `json:"quantity" validate:"gt=0"`
	Unit          string          `json:"unit" validate:"required,oneof=kg plates packets litres boxes"`
	PickupAddress string          `json:"pickup_address" validate:"required,max=500"`
	City          string          `json:"city" validate:"max=100"`
	PickupTime    time.Time       `json:"pickup_time" validate:"required"`
	ContactName   string          `json:"contact_name" validate:"required,max=120"`
	ContactPhone  string          `json:"contact_phone" validate:"required,phone"`
}

// UpdateStatusRequest is the admin payload for moving a donation along.
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED COLLECTED DISTRIBUTED CANCELLED"`
	Note   string `json:"note" validate:"max=1000"`
}

// ListFilter narrows a donation listing. A nil DonorID lists every donor.
type ListFilter struct {
	DonorID *uuid.UUID
	Status  Status
	City    string
	Limit   int
	Offset  int
}
