package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Counts maps a status, role or type to the number of rows holding it.
type Counts map[string]int64

// Total sums every bucket.
func (c Counts) Total() int64 {
	var n int64
	for _, v := range c {
		n += v
	}
	return n
}

// AdminSummary is the platform-wide dashboard.
type AdminSummary struct {
	UsersByRole        Counts          `json:"users_by_role"`
	VenuesByStatus     Counts          `json:"venues_by_status"`
	VenuesByType       Counts          `json:"venues_by_type"`
	BusinessesByStatus Counts          `json:"businesses_by_status"`
	BookingsByStatus   Counts          `json:"bookings_by_status"`
	DonationsByStatus  Counts          `json:"donations_by_status"`
	BookingValue       decimal.Decimal `json:"booking_value"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// PartnerSummary is one partner's dashboard.
type PartnerSummary struct {
	VenuesByStatus   Counts          `json:"venues_by_status"`
	BookingsByStatus Counts          `json:"bookings_by_status"`
	Revenue          decimal.Decimal `json:"revenue"`
	GeneratedAt      time.Time       `json:"generated_at"`
}
