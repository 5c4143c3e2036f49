package donation

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

const donationColumns = `id, donor_id, venue_id, food_type, description, quantity, unit,
	pickup_address, city, pickup_time, contact_name, contact_phone, status, admin_note,
	created_at, updated_at`

func (r *postgresRepo) CreateDonation(ctx context.Context, d *Donation) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO donations
		  (id, donor_id, venue_id, food_type, description, quantity, unit, pickup_address,
		   city, pickup_time, contact_name, contact_phone, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING created_at, updated_at`,
		d.ID, d.DonorID, nullUUID(d.VenueID), d.FoodType, d.Description, d.Quantity, d.Unit,
		d.PickupAddress, d.City, d.PickupTime, d.ContactName, d.ContactPhone, d.Status,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	return database.Classify(err, "donation")
}

func (r *postgresRepo) GetDonationByID(ctx context.Context, id uuid.UUID) (*Donation, error) {
	return scanDonation(r.db.QueryRowContext(ctx, `SELECT `+donationColumns+` FROM donations WHERE id = $1`, id))
}

func (r *postgresRepo) ListDonations(ctx context.Context, f ListFilter) ([]*Donation, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if f.DonorID != nil {
		args = append(args, *f.DonorID)
		where = append(where, fmt.Sprintf("donor_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.City != "" {
		args = append(args, f.City)
		where = append(where, fmt.Sprintf("city ILIKE $%d", len(args)))
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donations`+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	query := `SELECT ` + donationColumns + ` FROM donations` + cond +
		fmt.Sprintf(" ORDER BY pickup_time DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []*Donation{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, note string) error {
	var ignored uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		UPDATE donations
		SET status = $3, admin_note = COALESCE(NULLIF($4, ''), admin_note), updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING id`, id, from, to, note).Scan(&ignored)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: donation is no longer %s", apperr.ErrConflict, from)
	}
	return err
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanDonation(row rowScanner) (*Donation, error) {
	d := &Donation{}
	var venueID uuid.NullUUID
	err := row.Scan(
		&d.ID, &d.DonorID, &venueID, &d.FoodType, &d.Description, &d.Quantity, &d.Unit,
		&d.PickupAddress, &d.City, &d.PickupTime, &d.ContactName, &d.ContactPhone, &d.Status,
		&d.AdminNote, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, database.Classify(err, "donation")
	}
	if venueID.Valid {
		d.VenueID = &venueID.UUID
	}
	return d, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
