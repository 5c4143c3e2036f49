package venue

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the moderation state of a listing.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusInactive Status = "INACTIVE"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusInactive:
		return true
	}
	return false
}

// Price units that scale with the number of guests.
const (
	PriceUnitFlat      = "flat"
	PriceUnitPerPerson = "per_person"
	PriceUnitPerPlate  = "per_plate"
)

// Venue is a listed restaurant, hotel, function hall or sweet shop.
type Venue struct {
	ID              uuid.UUID              `json:"id"`
	OwnerID         uuid.UUID              `json:"owner_id"`
	Name            string                 `json:"name"`
	Type            string                 `json:"type"`
	Description     string                 `json:"description"`
	Address         string                 `json:"address"`
	City            string                 `json:"city"`
	State           string                 `json:"state"`
	Pincode         string                 `json:"pincode"`
	Phone           string                 `json:"phone"`
	Email           string                 `json:"email"`
	Capacity        int                    `json:"capacity"`
	BasePrice       decimal.Decimal        `json:"base_price"`
	PriceUnit       string                 `json:"price_unit"`
	Images          []string               `json:"images"`
	Details         map[string]interface{} `json:"details"`
	Status          Status                 `json:"status"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// PricePerGuest reports whether the base price is charged per guest.
func (v *Venue) PricePerGuest() bool {
	return v.PriceUnit == PriceUnitPerPerson || v.PriceUnit == PriceUnitPerPlate
}

// VenueRequest is the payload for creating or replacing a venue.
type VenueRequest struct {
	Name        string                 `json:"name" validate:"required,min=2,max=200"`
	Type        string                 `json:"type" validate:"required"`
	Description string                 `json:"description" validate:"max=5000"`
	Address     string                 `json:"address" validate:"required"`
	City        string                 `json:"city" validate:"required"`
	State       string                 `json:"state"`
	Pincode     string                 `json:"pincode" validate:"omitempty,pincode"`
	Phone       string                 `json:"phone" validate:"required,phone"`
	Email       string                 `json:"email" validate:"omitempty,email"`
	Capacity    int                    `json:"capacity" validate:"gte=0"`
	BasePrice   decimal.Decimal        `json:"base_price" validate:"gte=0"`
	PriceUnit   string                 `json:"price_unit"`
	Images      []string               `json:"images" validate:"omitempty,max=20,dive,url"`
	Details     map[string]interface{} `json:"details"`
}

// StatusRequest is the moderation payload.
type StatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED INACTIVE"`
	Reason string `json:"reason" validate:"max=1000"`
}

// ListFilter narrows a venue listing. A nil OwnerID lists every owner.
type ListFilter struct {
	Type    string
	Status  Status
	City    string
	Search  string
	OwnerID *uuid.UUID
	Limit   int
	Offset  int
}
