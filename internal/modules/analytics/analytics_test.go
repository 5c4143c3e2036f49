package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/venuehub-backend/internal/platform/cache"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	calls   int
	summary AdminSummary
}

func (r *countingRepo) AdminSummary(context.Context) (*AdminSummary, error) {
	r.calls++
	s := r.summary
	return &s, nil
}

func (r *countingRepo) PartnerSummary(context.Context, uuid.UUID) (*PartnerSummary, error) {
	r.calls++
	return &PartnerSummary{VenuesByStatus: Counts{"APPROVED": 2}, Revenue: decimal.NewFromInt(900)}, nil
}

type counter struct{ hits, misses int }

func (c *counter) CacheHit()  { c.hits++ }
func (c *counter) CacheMiss() { c.misses++ }

var fixedNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newService(repo Repository, c Cache, rec Recorder) *service {
	return &service{repo: repo, cache: c, recorder: rec, ttl: time.Minute, now: func() time.Time { return fixedNow }}
}

func TestAdminSummaryReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	repo := &countingRepo{summary: AdminSummary{
		UsersByRole:  Counts{"USER": 10, "PARTNER": 3, "ADMIN": 1},
		BookingValue: decimal.NewFromInt(125000),
	}}

	expected := repo.summary
	expected.GeneratedAt = fixedNow
	payload, err := json.Marshal(&expected)
	require.NoError(t, err)

	t.Run("miss computes and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		rec := &counter{}
		svc := newService(repo, cache.NewJSON(rdb, "analytics:"), rec)

		mock.ExpectGet("analytics:admin").RedisNil()
		mock.ExpectSet("analytics:admin", payload, time.Minute).SetVal("OK")

		s, err := svc.AdminSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(14), s.UsersByRole.Total())
		assert.Equal(t, 1, repo.calls)
		assert.Equal(t, 1, rec.misses)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit skips database", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		rec := &counter{}
		repo.calls = 0
		svc := newService(repo, cache.NewJSON(rdb, "analytics:"), rec)

		mock.ExpectGet("analytics:admin").SetVal(string(payload))

		s, err := svc.AdminSummary(ctx)
		require.NoError(t, err)
		assert.Zero(t, repo.calls)
		assert.Equal(t, 1, rec.hits)
		assert.True(t, decimal.NewFromInt(125000).Equal(s.BookingValue))
	})

	t.Run("unavailable cache falls back to database", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		rec := &counter{}
		repo.calls = 0
		svc := newService(repo, cache.NewJSON(rdb, "analytics:"), rec)

		mock.ExpectGet("analytics:admin").SetErr(errors.New("connection refused"))
		mock.ExpectSet("analytics:admin", payload, time.Minute).SetErr(errors.New("connection refused"))

		s, err := svc.AdminSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.calls)
		assert.Equal(t, 1, rec.misses)
		assert.Equal(t, fixedNow, s.GeneratedAt)
	})

	t.Run("no cache configured", func(t *testing.T) {
		repo.calls = 0
		svc := newService(repo, nil, nil)
		_, err := svc.AdminSummary(ctx)
		require.NoError(t, err)
		_, err = svc.AdminSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, repo.calls)
	})
}

func TestPartnerSummaryKeyedByOwner(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	owner := uuid.New()
	svc := newService(&countingRepo{}, cache.NewJSON(rdb, "analytics:"), &counter{})

	mock.ExpectGet("analytics:partner:" + owner.String()).RedisNil()
	mock.Regexp().ExpectSet("analytics:partner:"+owner.String(), `.*`, time.Minute).SetVal("OK")

	s, err := svc.PartnerSummary(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.VenuesByStatus["APPROVED"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPartnerSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	owner := uuid.New()
	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM venues WHERE owner_id = \$1 GROUP BY status`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("APPROVED", 2).AddRow("PENDING", 1))
	mock.ExpectQuery(`SELECT b.status, COUNT\(\*\) FROM bookings b`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("CONFIRMED", 4))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(b.total_amount\), 0\) FROM bookings b`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("18000.00"))

	s, err := repo.PartnerSummary(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, Counts{"APPROVED": 2, "PENDING": 1}, s.VenuesByStatus)
	assert.Equal(t, int64(4), s.BookingsByStatus.Total())
	assert.Equal(t, "18000", s.Revenue.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
