package venue

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/modules/notification"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venuetype"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/georgemunganga/venuehub-backend/internal/platform/validate"
	"github.com/google/uuid"
)

// Service defines the venue listing business logic. Every method takes the
// calling principal; anonymous callers pass the zero Principal.
type Service interface {
	// ListVenues returns a page of venues. Only administrators see
	// listings that are not APPROVED.
	ListVenues(ctx context.Context, caller identity.Principal, f ListFilter) ([]*Venue, int64, error)

	// ListOwnVenues returns the caller's venues in every status.
	ListOwnVenues(ctx context.Context, caller identity.Principal, f ListFilter) ([]*Venue, int64, error)

	GetVenue(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Venue, error)
	CreateVenue(ctx context.Context, caller identity.Principal, req VenueRequest) (*Venue, error)

	// UpdateVenue replaces a venue. Edits by the owner send an APPROVED or
	// REJECTED listing back to moderation.
	UpdateVenue(ctx context.Context, caller identity.Principal, id uuid.UUID, req VenueRequest) (*Venue, error)

	// UpdateStatus moderates a venue and notifies its owner.
	UpdateStatus(ctx context.Context, id uuid.UUID, req StatusRequest) (*Venue, error)

	DeleteVenue(ctx context.Context, caller identity.Principal, id uuid.UUID) error
}

type service struct {
	repo     Repository
	types    *venuetype.Registry
	notifier notification.Notifier
}

// NewService creates a new venue service.
func NewService(repo Repository, types *venuetype.Registry, notifier notification.Notifier) Service {
	return &service{repo: repo, types: types, notifier: notifier}
}

func (s *service) ListVenues(ctx context.Context, caller identity.Principal, f ListFilter) ([]*Venue, int64, error) {
	if !caller.IsAdmin() {
		f.Status = StatusApproved
	}
	return s.repo.ListVenues(ctx, f)
}

func (s *service) ListOwnVenues(ctx context.Context, caller identity.Principal, f ListFilter) ([]*Venue, int64, error) {
	f.OwnerID = &caller.UserID
	return s.repo.ListVenues(ctx, f)
}

func (s *service) GetVenue(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Venue, error) {
	v, err := s.repo.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != StatusApproved && !caller.IsAdmin() && v.OwnerID != caller.UserID {
		return nil, fmt.Errorf("venue %w", apperr.ErrNotFound)
	}
	return v, nil
}

func (s *service) CreateVenue(ctx context.Context, caller identity.Principal, req VenueRequest) (*Venue, error) {
	req = s.normalize(req)
	if err := s.validate(req); err != nil {
		return nil, err
	}

	v := &Venue{
		ID:      uuid.New(),
		OwnerID: caller.UserID,
		Status:  StatusPending,
	}
	apply(v, req)

	if err := s.repo.CreateVenue(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to persist venue: %w", err)
	}
	return v, nil
}

func (s *service) UpdateVenue(ctx context.Context, caller identity.Principal, id uuid.UUID, req VenueRequest) (*Venue, error) {
	v, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	req = s.normalize(req)
	if err := s.validate(req); err != nil {
		return nil, err
	}

	apply(v, req)
	if !caller.IsAdmin() && (v.Status == StatusApproved || v.Status == StatusRejected) {
		v.Status = StatusPending
		v.RejectionReason = ""
	}

	if err := s.repo.UpdateVenue(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, req StatusRequest) (*Venue, error) {
	req.Reason = strings.TrimSpace(req.Reason)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Status == StatusRejected && req.Reason == "" {
		return nil, apperr.Invalid("reason", "A reason is required when rejecting")
	}

	reason := ""
	if req.Status == StatusRejected {
		reason = req.Reason
	}
	v, err := s.repo.UpdateVenueStatus(ctx, id, req.Status, reason)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, statusNotice(v))
	return v, nil
}

func (s *service) DeleteVenue(ctx context.Context, caller identity.Principal, id uuid.UUID) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.DeleteVenue(ctx, id)
}

// owned loads a venue the caller may modify.
func (s *service) owned(ctx context.Context, caller identity.Principal, id uuid.UUID) (*Venue, error) {
	v, err := s.repo.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && v.OwnerID != caller.UserID {
		return nil, fmt.Errorf("%w: venue belongs to another partner", apperr.ErrForbidden)
	}
	return v, nil
}

func (s *service) normalize(req VenueRequest) VenueRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Type = strings.ToLower(strings.TrimSpace(req.Type))
	req.City = strings.TrimSpace(req.City)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.PriceUnit = strings.ToLower(strings.TrimSpace(req.PriceUnit))
	if req.PriceUnit == "" {
		req.PriceUnit = PriceUnitFlat
	}
	if req.Images == nil {
		req.Images = []string{}
	}
	req.Details = s.types.Normalize(req.Type, req.Details)
	return req
}

// validate runs the struct tags, then the type-specific detail checks, and
// reports every failure together.
func (s *service) validate(req VenueRequest) error {
	var errs []apperr.FieldError
	if err := validate.Struct(req); err != nil {
		fields := apperr.Fields(err)
		if fields == nil {
			return err
		}
		errs = append(errs, fields...)
	}

	if cfg, ok := s.types.Lookup(req.Type); ok {
		errs = append(errs, s.types.ValidateDetails(req.Type, req.Details)...)
		if !containsUnit(cfg.PriceUnits, req.PriceUnit) {
			errs = append(errs, apperr.FieldError{
				Field:   "price_unit",
				Message: "Must be one of: " + strings.Join(cfg.PriceUnits, " "),
			})
		}
	} else if req.Type != "" {
		errs = append(errs, apperr.FieldError{
			Field:   "type",
			Message: "Must be one of: " + strings.Join(s.types.Names(), " "),
		})
	}

	if len(errs) > 0 {
		return &apperr.ValidationError{Errors: errs}
	}
	return nil
}

func containsUnit(units []string, unit string) bool {
	if len(units) == 0 {
		return unit == PriceUnitFlat
	}
	for _, u := range units {
		if u == unit {
			return true
		}
	}
	return false
}

func apply(v *Venue, req VenueRequest) {
	v.Name = req.Name
	v.Type = req.Type
	v.Description = req.Description
	v.Address = req.Address
	v.City = req.City
	v.State = req.State
	v.Pincode = req.Pincode
	v.Phone = req.Phone
	v.Email = req.Email
	v.Capacity = req.Capacity
	v.BasePrice = req.BasePrice
	v.PriceUnit = req.PriceUnit
	v.Images = req.Images
	v.Details = req.Details
}

func statusNotice(v *Venue) notification.Notice {
	n := notification.Notice{
		UserID: v.OwnerID,
		Type:   notification.TypeVenueStatus,
		Link:   "/partner/venues/" + v.ID.String(),
	}
	switch v.Status {
	case StatusApproved:
		n.Title = "Venue approved"
		n.Message = fmt.Sprintf("Your venue %q is now live.", v.Name)
	case StatusRejected:
		n.Title = "Venue rejected"
		n.Message = fmt.Sprintf("Your venue %q was rejected: %s", v.Name, v.RejectionReason)
	default:
		n.Title = "Venue status updated"
		n.Message = fmt.Sprintf("Your venue %q is now %s.", v.Name, strings.ToLower(string(v.Status)))
	}
	return n
}
