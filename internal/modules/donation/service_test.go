package donation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/venuehub-backend/internal/modules/notification"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/identity"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	donations map[uuid.UUID]*Donation
	lastF     ListFilter
}

func (m *memoryRepo) CreateDonation(_ context.Context, d *Donation) error {
	cp := *d
	m.donations[d.ID] = &cp
	return nil
}

func (m *memoryRepo) GetDonationByID(_ context.Context, id uuid.UUID) (*Donation, error) {
	d, ok := m.donations[id]
	if !ok {
		return nil, fmt.Errorf("donation %w", apperr.ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

func (m *memoryRepo) ListDonations(_ context.Context, f ListFilter) ([]*Donation, int64, error) {
	m.lastF = f
	return []*Donation{}, 0, nil
}

func (m *memoryRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to Status, note string) error {
	d := m.donations[id]
	if d.Status != from {
		return apperr.ErrConflict
	}
	d.Status = to
	if note != "" {
		d.AdminNote = note
	}
	return nil
}

type venueStub map[uuid.UUID]*venue.Venue

func (v venueStub) GetVenueByID(_ context.Context, id uuid.UUID) (*venue.Venue, error) {
	if x, ok := v[id]; ok {
		return x, nil
	}
	return nil, fmt.Errorf("venue %w", apperr.ErrNotFound)
}

type recordingNotifier struct{ notices []notification.Notice }

func (r *recordingNotifier) Notify(_ context.Context, n notification.Notice) {
	r.notices = append(r.notices, n)
}

var (
	donor = identity.Principal{UserID: uuid.New(), Role: identity.RoleUser}
	admin = identity.Principal{UserID: uuid.New(), Role: identity.RoleAdmin}
	now   = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newTestService() (*service, *memoryRepo, *recordingNotifier, uuid.UUID) {
	venueID := uuid.New()
	repo := &memoryRepo{donations: map[uuid.UUID]*Donation{}}
	n := &recordingNotifier{}
	return &service{
		repo:     repo,
		venues:   venueStub{venueID: {ID: venueID}},
		notifier: n,
		now:      func() time.Time { return now },
	}, repo, n, venueID
}

func validRequest() CreateDonationRequest {
	return CreateDonationRequest{
		FoodType:      "Veg",
		Quantity:      decimal.NewFromInt(40),
		Unit:          "plates",
		PickupAddress: "Hall 2, MG Road",
		City:          "Bengaluru",
		PickupTime:    now.Add(3 * time.Hour),
		ContactName:   "Ravi",
		ContactPhone:  "9123456789",
	}
}

func TestCreateDonation(t *testing.T) {
	ctx := context.Background()

	t.Run("stores pending donation", func(t *testing.T) {
		svc, repo, _, venueID := newTestService()
		req := validRequest()
		req.VenueID = venueID.String()
		d, err := svc.CreateDonation(ctx, donor, req)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, d.Status)
		assert.Equal(t, FoodVeg, d.FoodType)
		assert.Equal(t, &venueID, d.VenueID)
		assert.Contains(t, repo.donations, d.ID)
	})

	tests := []struct {
		name   string
		mutate func(r *CreateDonationRequest)
		field  string
	}{
		{"zero quantity", func(r *CreateDonationRequest) { r.Quantity = decimal.Zero }, "quantity"},
		{"negative quantity", func(r *CreateDonationRequest) { r.Quantity = decimal.NewFromInt(-2) }, "quantity"},
		{"pickup in the past", func(r *CreateDonationRequest) { r.PickupTime = now.Add(-time.Minute) }, "pickup_time"},
		{"missing pickup time", func(r *CreateDonationRequest) { r.PickupTime = time.Time{} }, "pickup_time"},
		{"unknown food type", func(r *CreateDonationRequest) { r.FoodType = "vegan" }, "food_type"},
		{"bad phone", func(r *CreateDonationRequest) { r.ContactPhone = "000" }, "contact_phone"},
		{"unknown venue", func(r *CreateDonationRequest) { r.VenueID = uuid.NewString() }, "venue_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestService()
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.CreateDonation(ctx, donor, req)
			require.ErrorIs(t, err, apperr.ErrValidation)
			assert.Equal(t, tt.field, apperr.Fields(err)[0].Field)
			assert.Empty(t, repo.donations)
		})
	}
}

func TestStatusMachine(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCollected, false},
		{StatusApproved, StatusCollected, true},
		{StatusApproved, StatusDistributed, false},
		{StatusCollected, StatusDistributed, true},
		{StatusDistributed, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusPending, StatusCancelled, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, CanTransition(tt.from, tt.to))
		})
	}
}

func TestWorkflow(t *testing.T) {
	ctx := context.Background()
	svc, repo, n, _ := newTestService()
	d, err := svc.CreateDonation(ctx, donor, validRequest())
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, d.ID, UpdateStatusRequest{Status: StatusApproved, Note: "Volunteer assigned"})
	require.NoError(t, err)
	assert.Equal(t, "Volunteer assigned", got.AdminNote)
	require.Len(t, n.notices, 1)
	assert.Equal(t, donor.UserID, n.notices[0].UserID)
	assert.Equal(t, notification.TypeDonation, n.notices[0].Type)

	_, err = svc.CancelDonation(ctx, donor, d.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, d.ID, UpdateStatusRequest{Status: StatusDistributed})
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, d.ID, UpdateStatusRequest{Status: StatusCollected})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, d.ID, UpdateStatusRequest{Status: StatusDistributed})
	require.NoError(t, err)
	assert.Equal(t, StatusDistributed, repo.donations[d.ID].Status)
	assert.Equal(t, "Volunteer assigned", repo.donations[d.ID].AdminNote)
}

func TestCancelDonation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()
	d, err := svc.CreateDonation(ctx, donor, validRequest())
	require.NoError(t, err)

	_, err = svc.CancelDonation(ctx, admin, d.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	got, err := svc.CancelDonation(ctx, donor, d.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
}

func TestListDonationsScopesNonAdmins(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newTestService()

	other := uuid.New()
	_, _, err := svc.ListDonations(ctx, donor, ListFilter{DonorID: &other})
	require.NoError(t, err)
	assert.Equal(t, donor.UserID, *repo.lastF.DonorID)

	_, _, err = svc.ListDonations(ctx, admin, ListFilter{Status: StatusPending})
	require.NoError(t, err)
	assert.Nil(t, repo.lastF.DonorID)
	assert.Equal(t, StatusPending, repo.lastF.Status)
}

func TestHandlerIllegalTransitionIs422(t *testing.T) {
	svc, _, _, _ := newTestService()
	d, err := svc.CreateDonation(context.Background(), donor, validRequest())
	require.NoError(t, err)

	tokens := identity.NewTokens("secret", time.Hour)
	router := chi.NewRouter()
	router.Use(tokens.Authenticate)
	NewHandler(svc).RegisterRoutes(router)

	send := func(p identity.Principal, body string) *httptest.ResponseRecorder {
		token, _, err := tokens.Issue(p)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPatch, "/api/donations/"+d.ID.String()+"/status", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := send(donor, `{"status":"approved"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = send(admin, `{"status":"distributed"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "cannot move donation from PENDING to DISTRIBUTED")

	rec = send(admin, `{"status":"approved"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
