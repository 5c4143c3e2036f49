package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/georgemunganga/venuehub-backend/internal/modules/notification"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/georgemunganga/venuehub-backend/internal/platform/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines the booking business logic.
type Service interface {
	// CreateBooking prices and stores a booking for an approved venue.
	CreateBooking(ctx context.Context, caller identity.Principal, req CreateBookingRequest) (*Booking, error)

	// GetBooking returns a booking visible to its booker, the venue owner or an admin.
	GetBooking(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Booking, error)

	// ListBookings scopes the listing by role: users see their own bookings,
	// partners see bookings for their venues and admins see everything.
	ListBookings(ctx context.Context, caller identity.Principal, f ListFilter) ([]*Booking, int64, error)

	// UpdateStatus advances a booking along the state machine.
	UpdateStatus(ctx context.Context, caller identity.Principal, id uuid.UUID, req UpdateStatusRequest) (*Booking, error)

	// CancelBooking cancels the caller's PENDING or CONFIRMED booking.
	CancelBooking(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Booking, error)
}

type service struct {
	repo     Repository
	venues   VenueReader
	notifier notification.Notifier
	now      func() time.Time
}

// NewService creates a new booking service.
func NewService(repo Repository, venues VenueReader, notifier notification.Notifier) Service {
	return &service{repo: repo, venues: venues, notifier: notifier, now: time.Now}
}

// validTransitions defines the allowed status state machine.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusRejected:  {},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

const numberAttempts = 3

func (s *service) CreateBooking(ctx context.Context, caller identity.Principal, req CreateBookingRequest) (*Booking, error) {
	req.ContactName = strings.TrimSpace(req.ContactName)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	eventDate, _ := time.Parse("2006-01-02", req.EventDate)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if eventDate.Before(today) {
		return nil, apperr.Invalid("event_date", "Event date cannot be in the past")
	}

	venueID := uuid.MustParse(req.VenueID)
	v, err := s.venues.GetVenueByID(ctx, venueID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.Invalid("venue_id", "Venue not found")
	}
	if err != nil {
		return nil, err
	}
	if v.Status != venue.StatusApproved {
		return nil, apperr.Invalid("venue_id", "Venue is not accepting bookings")
	}
	if v.Capacity > 0 && req.GuestCount > v.Capacity {
		return nil, apperr.Invalid("guest_count", fmt.Sprintf("Must be at most %d", v.Capacity))
	}

	b := &Booking{
		ID:           uuid.New(),
		VenueID:      v.ID,
		VenueName:    v.Name,
		VenueOwnerID: v.OwnerID,
		UserID:       caller.UserID,
		EventDate:    eventDate,
		GuestCount:   req.GuestCount,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Notes:        strings.TrimSpace(req.Notes),
		TotalAmount:  Quote(v, req.GuestCount),
		Currency:     Currency,
		Status:       StatusPending,
	}

	for attempt := 1; ; attempt++ {
		b.BookingNumber = generateBookingNumber(now)
		err = s.repo.CreateBooking(ctx, b)
		if err == nil || !errors.Is(err, apperr.ErrConflict) || attempt == numberAttempts {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.notifier.Notify(ctx, notification.Notice{
		UserID:  v.OwnerID,
		Type:    notification.TypeBooking,
		Title:   "New booking request",
		Message: fmt.Sprintf("%s requested %s for %d guests on %s.", b.ContactName, v.Name, b.GuestCount, req.EventDate),
		Link:    "/partner/bookings/" + b.ID.String(),
	})
	return b, nil
}

// Quote prices a booking: per-guest units scale with the guest count, every
// other unit is charged once.
func Quote(v *venue.Venue, guests int) decimal.Decimal {
	if v.PricePerGuest() {
		return v.BasePrice.Mul(decimal.NewFromInt(int64(guests))).Round(2)
	}
	return v.BasePrice.Round(2)
}

func (s *service) GetBooking(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && b.UserID != caller.UserID && b.VenueOwnerID != caller.UserID {
		return nil, fmt.Errorf("%w: booking belongs to another user", apperr.ErrForbidden)
	}
	return b, nil
}

func (s *service) ListBookings(ctx context.Context, caller identity.Principal, f ListFilter) ([]*Booking, int64, error) {
	f.UserID, f.VenueOwnerID = nil, nil
	switch caller.Role {
	case identity.RoleAdmin:
	case identity.RolePartner:
		f.VenueOwnerID = &caller.UserID
	default:
		f.UserID = &caller.UserID
	}
	return s.repo.ListBookings(ctx, f)
}

func (s *service) UpdateStatus(ctx context.Context, caller identity.Principal, id uuid.UUID, req UpdateStatusRequest) (*Booking, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	b, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && b.VenueOwnerID != caller.UserID {
		return nil, fmt.Errorf("%w: only the venue owner can update this booking", apperr.ErrForbidden)
	}
	if err := s.transition(ctx, b, req.Status); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notification.Notice{
		UserID:  b.UserID,
		Type:    notification.TypeBooking,
		Title:   "Booking " + strings.ToLower(string(b.Status)),
		Message: fmt.Sprintf("Your booking %s at %s is now %s.", b.BookingNumber, b.VenueName, strings.ToLower(string(b.Status))),
		Link:    "/bookings/" + b.ID.String(),
	})
	return b, nil
}

func (s *service) CancelBooking(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != caller.UserID {
		return nil, fmt.Errorf("%w: only the booker can cancel this booking", apperr.ErrForbidden)
	}
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return nil, fmt.Errorf("%w: only PENDING or CONFIRMED bookings can be cancelled (current: %s)",
			apperr.ErrInvalidTransition, b.Status)
	}
	if err := s.transition(ctx, b, StatusCancelled); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notification.Notice{
		UserID:  b.VenueOwnerID,
		Type:    notification.TypeBooking,
		Title:   "Booking cancelled",
		Message: fmt.Sprintf("Booking %s for %s was cancelled by the guest.", b.BookingNumber, b.VenueName),
		Link:    "/partner/bookings/" + b.ID.String(),
	})
	return b, nil
}

func (s *service) transition(ctx context.Context, b *Booking, to Status) error {
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("%w: cannot move booking from %s to %s", apperr.ErrInvalidTransition, b.Status, to)
	}
	if err := s.repo.UpdateStatus(ctx, b.ID, b.Status, to); err != nil {
		return err
	}
	b.Status = to
	b.UpdatedAt = s.now()
	return nil
}

// generateBookingNumber creates a human-readable booking number: BKG-YYYYMMDD-XXXX
func generateBookingNumber(now time.Time) string {
	date := now.UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("BKG-%s-%s", date, suffix)
}
