package analytics

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository computes dashboard aggregates.
type Repository interface {
	AdminSummary(ctx context.Context) (*AdminSummary, error)
	PartnerSummary(ctx context.Context, ownerID uuid.UUID) (*PartnerSummary, error)
}

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a repository that aggregates with GROUP BY queries.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

// Revenue counts bookings that are confirmed or already held.
const revenueStatuses = `('CONFIRMED', 'COMPLETED')`

func (r *postgresRepository) AdminSummary(ctx context.Context) (*AdminSummary, error) {
	s := &AdminSummary{}
	var err error
	if s.UsersByRole, err = r.counts(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`); err != nil {
		return nil, err
	}
	if s.VenuesByStatus, err = r.counts(ctx, `SELECT status, COUNT(*) FROM venues GROUP BY status`); err != nil {
		return nil, err
	}
	if s.VenuesByType, err = r.counts(ctx, `SELECT type, COUNT(*) FROM venues GROUP BY type`); err != nil {
		return nil, err
	}
	if s.BusinessesByStatus, err = r.counts(ctx, `SELECT status, COUNT(*) FROM businesses GROUP BY status`); err != nil {
		return nil, err
	}
	if s.BookingsByStatus, err = r.counts(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`); err != nil {
		return nil, err
	}
	if s.DonationsByStatus, err = r.counts(ctx, `SELECT status, COUNT(*) FROM donations GROUP BY status`); err != nil {
		return nil, err
	}
	if s.BookingValue, err = r.sum(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE status IN `+revenueStatuses); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepository) PartnerSummary(ctx context.Context, ownerID uuid.UUID) (*PartnerSummary, error) {
	s := &PartnerSummary{}
	var err error
	if s.VenuesByStatus, err = r.counts(ctx,
		`SELECT status, COUNT(*) FROM venues WHERE owner_id = $1 GROUP BY status`, ownerID); err != nil {
		return nil, err
	}
	if s.BookingsByStatus, err = r.counts(ctx, `
		SELECT b.status, COUNT(*) FROM bookings b
		JOIN venues v ON v.id = b.venue_id
		WHERE v.owner_id = $1
		GROUP BY b.status`, ownerID); err != nil {
		return nil, err
	}
	if s.Revenue, err = r.sum(ctx, `
		SELECT COALESCE(SUM(b.total_amount), 0) FROM bookings b
		JOIN venues v ON v.id = b.venue_id
		WHERE v.owner_id = $1 AND b.status IN `+revenueStatuses, ownerID); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepository) counts(ctx context.Context, query string, args ...interface{}) (Counts, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	defer rows.Close()

	out := Counts{}
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}

func (r *postgresRepository) sum(ctx context.Context, query string, args ...interface{}) (decimal.Decimal, error) {
	var d decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&d); err != nil {
		return decimal.Zero, fmt.Errorf("aggregate: %w", err)
	}
	return d, nil
}
