package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the moderation state of a business profile.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusInactive Status = "INACTIVE"
)

// Business is a partner's business profile.
// @Description Business profile
// @Description with identity, contact, pricing range, media links and type-specific details
type Business struct {
	ID           uuid.UUID              `json:"id"`
	OwnerID      uuid.UUID              `json:"owner_id"`
	BusinessName string                 `json:"business_name"`
	BusinessType string                 `json:"business_type"`
	GSTIN        string                 `json:"gstin,omitempty"`
	Phone        string                 `json:"phone"`
	Email        string                 `json:"email"`
	Address      string                 `json:"address"`
	City         string                 `json:"city"`
	State        string                 `json:"state"`
	Pincode      string                 `json:"pincode"`
	Description  string                 `json:"description"`
	MinPrice     *decimal.Decimal       `json:"min_price,omitempty"`
	MaxPrice     *decimal.Decimal       `json:"max_price,omitempty"`
	PriceUnit    string                 `json:"price_unit,omitempty"`
	MediaURLs    []string               `json:"media_urls"`
	Details      map[string]interface{} `json:"details"`
	Status       Status                 `json:"status"`
	StatusReason string                 `json:"status_reason,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ProfileRequest is the payload for creating or replacing the caller's profile.
type ProfileRequest struct {
	BusinessName string                 `json:"business_name" validate:"required,min=2,max=200"`
	BusinessType string                 `json:"business_type" validate:"required"`
	GSTIN        string                 `json:"gstin" validate:"omitempty,gstin"`
	Phone        string                 `json:"phone" validate:"required,phone"`
	Email        string                 `json:"email" validate:"required,email"`
	Address      string                 `json:"address" validate:"max=500"`
	City         string                 `json:"city" validate:"max=100"`
	State        string                 `json:"state" validate:"max=100"`
	Pincode      string                 `json:"pincode" validate:"omitempty,pincode"`
	Description  string                 `json:"description" validate:"max=5000"`
	MinPrice     *decimal.Decimal       `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice     *decimal.Decimal       `json:"max_price" validate:"omitempty,gte=0"`
	PriceUnit    string                 `json:"price_unit"`
	MediaURLs    []string               `json:"media_urls" validate:"omitempty,max=30,dive,url"`
	Details      map[string]interface{} `json:"details"`
}

// StatusRequest is the moderation payload.
type StatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED INACTIVE"`
	Reason string `json:"reason" validate:"max=1000"`
}

// ListFilter narrows the admin business listing.
type ListFilter struct {
	Status Status
	Type   string
	Search string
	Limit  int
	Offset int
}
