package partner

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/modules/notification"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venuetype"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	GetProfile(ctx context.Context, ownerID uuid.UUID) (*Business, error)
	// SaveProfile creates the owner's profile or replaces it. A changed
	// APPROVED or REJECTED profile goes back to PENDING.
	SaveProfile(ctx context.Context, ownerID uuid.UUID, req ProfileRequest) (*Business, bool, error)
	ListBusinesses(ctx context.Context, f ListFilter) ([]*Business, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req StatusRequest) (*Business, error)
}

type service struct {
	repo     Repository
	types    *venuetype.Registry
	notifier notification.Notifier
}

func NewService(repo Repository, types *venuetype.Registry, notifier notification.Notifier) Service {
	return &service{repo: repo, types: types, notifier: notifier}
}

func (s *service) GetProfile(ctx context.Context, ownerID uuid.UUID) (*Business, error) {
	return s.repo.GetBusinessByOwnerID(ctx, ownerID)
}

func (s *service) SaveProfile(ctx context.Context, ownerID uuid.UUID, req ProfileRequest) (*Business, bool, error) {
	req = s.normalize(req)
	if err := s.validate(req); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetBusinessByOwnerID(ctx, ownerID)
	if errors.Is(err, apperr.ErrNotFound) {
		b := &Business{ID: uuid.New(), OwnerID: ownerID, Status: StatusPending}
		apply(b, req)
		if err := s.repo.CreateBusiness(ctx, b); err != nil {
			return nil, false, err
		}
		return b, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	before := *existing
	apply(existing, req)
	if changed(&before, existing) && (existing.Status == StatusApproved || existing.Status == StatusRejected) {
		existing.Status = StatusPending
		existing.StatusReason = ""
	}
	if err := s.repo.UpdateBusiness(ctx, existing); err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (s *service) ListBusinesses(ctx context.Context, f ListFilter) ([]*Business, int64, error) {
	return s.repo.ListBusinesses(ctx, f)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, req StatusRequest) (*Business, error) {
	req.Reason = strings.TrimSpace(req.Reason)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Status == StatusRejected && req.Reason == "" {
		return nil, apperr.Invalid("reason", "A reason is required when rejecting")
	}

	b, err := s.repo.UpdateBusinessStatus(ctx, id, req.Status, req.Reason)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Your business profile %q is now %s.", b.BusinessName, strings.ToLower(string(b.Status)))
	if b.StatusReason != "" {
		msg += " Reason: " + b.StatusReason
	}
	s.notifier.Notify(ctx, notification.Notice{
		UserID:  b.OwnerID,
		Type:    notification.TypeBusinessStatus,
		Title:   "Business profile " + strings.ToLower(string(b.Status)),
		Message: msg,
		Link:    "/partner/profile",
	})
	return b, nil
}

func (s *service) normalize(req ProfileRequest) ProfileRequest {
	req.BusinessName = strings.TrimSpace(req.BusinessName)
	req.BusinessType = strings.ToLower(strings.TrimSpace(req.BusinessType))
	req.GSTIN = strings.ToUpper(strings.TrimSpace(req.GSTIN))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.PriceUnit = strings.ToLower(strings.TrimSpace(req.PriceUnit))
	if req.MediaURLs == nil {
		req.MediaURLs = []string{}
	}
	req.Details = s.types.Normalize(req.BusinessType, req.Details)
	return req
}

func (s *service) validate(req ProfileRequest) error {
	var errs []apperr.FieldError
	if err := validate.Struct(req); err != nil {
		fields := apperr.Fields(err)
		if fields == nil {
			return err
		}
		errs = append(errs, fields...)
	}

	if req.MinPrice != nil && req.MaxPrice != nil && req.MaxPrice.LessThan(*req.MinPrice) {
		errs = append(errs, apperr.FieldError{Field: "max_price", Message: "Must be greater than or equal to min_price"})
	}

	if cfg, ok := s.types.Lookup(req.BusinessType); ok {
		errs = append(errs, s.types.ValidateDetails(req.BusinessType, req.Details)...)
		if req.PriceUnit != "" && !contains(cfg.PriceUnits, req.PriceUnit) {
			errs = append(errs, apperr.FieldError{
				Field:   "price_unit",
				Message: "Must be one of: " + strings.Join(cfg.PriceUnits, " "),
			})
		}
	} else if req.BusinessType != "" {
		errs = append(errs, apperr.FieldError{
			Field:   "business_type",
			Message: "Must be one of: " + strings.Join(s.types.Names(), " "),
		})
	}

	if len(errs) > 0 {
		return &apperr.ValidationError{Errors: errs}
	}
	return nil
}

func apply(b *Business, req ProfileRequest) {
	b.BusinessName = req.BusinessName
	b.BusinessType = req.BusinessType
	b.GSTIN = req.GSTIN
	b.Phone = req.Phone
	b.Email = req.Email
	b.Address = req.Address
	b.City = req.City
	b.State = req.State
	b.Pincode = req.Pincode
	b.Description = req.Description
	b.MinPrice = req.MinPrice
	b.MaxPrice = req.MaxPrice
	b.PriceUnit = req.PriceUnit
	b.MediaURLs = req.MediaURLs
	b.Details = req.Details
}

// changed compares the partner-editable fields of two profiles.
func changed(a, b *Business) bool {
	if a.BusinessName != b.BusinessName || a.BusinessType != b.BusinessType || a.GSTIN != b.GSTIN ||
		a.Phone != b.Phone || a.Email != b.Email || a.Address != b.Address || a.City != b.City ||
		a.State != b.State || a.Pincode != b.Pincode || a.Description != b.Description ||
		a.PriceUnit != b.PriceUnit {
		return true
	}
	if !sameDecimal(a.MinPrice, b.MinPrice) || !sameDecimal(a.MaxPrice, b.MaxPrice) {
		return true
	}
	if len(a.MediaURLs) != len(b.MediaURLs) {
		return true
	}
	for i := range a.MediaURLs {
		if a.MediaURLs[i] != b.MediaURLs[i] {
			return true
		}
	}
	return !reflect.DeepEqual(orEmpty(a.Details), orEmpty(b.Details))
}

func sameDecimal(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
