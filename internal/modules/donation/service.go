package donation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/georgemunganga/venuehub-backend/internal/modules/notification"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/georgemunganga/venuehub-backend/internal/platform/validate"
	"github.com/google/uuid"
)

// Service defines the food donation workflow.
type Service interface {
	CreateDonation(ctx context.Context, caller identity.Principal, req CreateDonationRequest) (*Donation, error)
	GetDonation(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Donation, error)
	// ListDonations returns every donation to admins and only their own to everyone else.
	ListDonations(ctx context.Context, caller identity.Principal, f ListFilter) ([]*Donation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*Donation, error)
	// CancelDonation withdraws the caller's donation while it is still PENDING.
	CancelDonation(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Donation, error)
}

type service struct {
	repo     Repository
	venues   VenueReader
	notifier notification.Notifier
	now      func() time.Time
}

func NewService(repo Repository, venues VenueReader, notifier notification.Notifier) Service {
	return &service{repo: repo, venues: venues, notifier: notifier, now: time.Now}
}

// validTransitions defines the moderation and pickup state machine. Donor
// cancellation is handled separately.
var validTransitions = map[Status][]Status{
	StatusPending:     {StatusApproved, StatusRejected},
	StatusApproved:    {StatusCollected},
	StatusCollected:   {StatusDistributed},
	StatusRejected:    {},
	StatusDistributed: {},
	StatusCancelled:   {},
}

// CanTransition reports whether an administrator may move a donation from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s *service) CreateDonation(ctx context.Context, caller identity.Principal, req CreateDonationRequest) (*Donation, error) {
	req.FoodType = FoodType(strings.ToLower(strings.TrimSpace(string(req.FoodType))))
	req.Unit = strings.ToLower(strings.TrimSpace(req.Unit))
	req.ContactName = strings.TrimSpace(req.ContactName)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if !req.PickupTime.After(s.now()) {
		return nil, apperr.Invalid("pickup_time", "Pickup time must be in the future")
	}

	d := &Donation{
		ID:            uuid.New(),
		DonorID:       caller.UserID,
		FoodType:      req.FoodType,
		Description:   strings.TrimSpace(req.Description),
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		PickupAddress: strings.TrimSpace(req.PickupAddress),
		City:          strings.TrimSpace(req.City),
		PickupTime:    req.PickupTime.UTC(),
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		Status:        StatusPending,
	}

	if req.VenueID != "" {
		venueID := uuid.MustParse(req.VenueID)
		if _, err := s.venues.GetVenueByID(ctx, venueID); err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, apperr.Invalid("venue_id", "Venue not found")
			}
			return nil, err
		}
		d.VenueID = &venueID
	}

	if err := s.repo.CreateDonation(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to persist donation: %w", err)
	}
	return d, nil
}

func (s *service) GetDonation(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Donation, error) {
	d, err := s.repo.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && d.DonorID != caller.UserID {
		return nil, fmt.Errorf("%w: donation belongs to another user", apperr.ErrForbidden)
	}
	return d, nil
}

func (s *service) ListDonations(ctx context.Context, caller identity.Principal, f ListFilter) ([]*Donation, int64, error) {
	f.DonorID = nil
	if !caller.IsAdmin() {
		f.DonorID = &caller.UserID
	}
	return s.repo.ListDonations(ctx, f)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*Donation, error) {
	req.Note = strings.TrimSpace(req.Note)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	d, err := s.repo.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(d.Status, req.Status) {
		return nil, fmt.Errorf("%w: cannot move donation from %s to %s", apperr.ErrInvalidTransition, d.Status, req.Status)
	}
	if err := s.repo.UpdateStatus(ctx, d.ID, d.Status, req.Status, req.Note); err != nil {
		return nil, err
	}
	d.Status = req.Status
	if req.Note != "" {
		d.AdminNote = req.Note
	}
	d.UpdatedAt = s.now()

	msg := fmt.Sprintf("Your %s donation is now %s.", d.Quantity.String()+" "+d.Unit, strings.ToLower(string(d.Status)))
	if req.Note != "" {
		msg += " " + req.Note
	}
	s.notifier.Notify(ctx, notification.Notice{
		UserID:  d.DonorID,
		Type:    notification.TypeDonation,
		Title:   "Donation " + strings.ToLower(string(d.Status)),
		Message: msg,
		Link:    "/donations/" + d.ID.String(),
	})
	return d, nil
}

func (s *service) CancelDonation(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Donation, error) {
	d, err := s.repo.GetDonationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.DonorID != caller.UserID {
		return nil, fmt.Errorf("%w: only the donor can cancel this donation", apperr.ErrForbidden)
	}
	if d.Status != StatusPending {
		return nil, fmt.Errorf("%w: only PENDING donations can be cancelled (current: %s)", apperr.ErrInvalidTransition, d.Status)
	}
	if err := s.repo.UpdateStatus(ctx, d.ID, StatusPending, StatusCancelled, ""); err != nil {
		return nil, err
	}
	d.Status = StatusCancelled
	d.UpdatedAt = s.now()
	return d, nil
}
