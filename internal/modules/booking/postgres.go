package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/database"
	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const bookingSelect = `
	SELECT b.id, b.booking_number, b.venue_id, v.name, v.owner_id, b.user_id, b.event_date,
	       b.guest_count, b.contact_name, b.contact_phone, b.notes, b.total_amount, b.currency,
	       b.status, b.created_at, b.updated_at
	FROM bookings b
	JOIN venues v ON v.id = b.venue_id`

func (r *postgresRepo) CreateBooking(ctx context.Context, b *Booking) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO bookings
		  (id, booking_number, venue_id, user_id, event_date, guest_count,
		   contact_name, contact_phone, notes, total_amount, currency, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING created_at, updated_at`,
		b.ID, b.BookingNumber, b.VenueID, b.UserID, b.EventDate, b.GuestCount,
		b.ContactName, b.ContactPhone, b.Notes, b.TotalAmount, b.Currency, b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	return database.Classify(err, "booking")
}

func (r *postgresRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return r.scanBooking(r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1`, id))
}

func (r *postgresRepo) ListBookings(ctx context.Context, f ListFilter) ([]*Booking, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	add := func(clause string, v interface{}) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.UserID != nil {
		add("b.user_id = $%d", *f.UserID)
	}
	if f.VenueOwnerID != nil {
		add("v.owner_id = $%d", *f.VenueOwnerID)
	}
	if f.VenueID != nil {
		add("b.venue_id = $%d", *f.VenueID)
	}
	if f.Status != "" {
		add("b.status = $%d", f.Status)
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings b JOIN venues v ON v.id = b.venue_id`+cond, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	query := bookingSelect + cond +
		fmt.Sprintf(" ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings := []*Booking{}
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}
	return bookings, total, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error {
	var ignored uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		UPDATE bookings SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING id`, id, from, to).Scan(&ignored)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: booking is no longer %s", apperr.ErrConflict, from)
	}
	return err
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scanBooking(row rowScanner) (*Booking, error) {
	b := &Booking{}
	err := row.Scan(
		&b.ID, &b.BookingNumber, &b.VenueID, &b.VenueName, &b.VenueOwnerID, &b.UserID,
		&b.EventDate, &b.GuestCount, &b.ContactName, &b.ContactPhone, &b.Notes,
		&b.TotalAmount, &b.Currency, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, database.Classify(err, "booking")
	}
	return b, nil
}
