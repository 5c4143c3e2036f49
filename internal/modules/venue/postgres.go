package venue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/platform/database"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL venue repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const venueColumns = `id, owner_id, name, type, description, address, city, state, pincode,
	phone, email, capacity, base_price, price_unit, images, details, status, rejection_reason,
	created_at, updated_at`

func (r *postgresRepository) CreateVenue(ctx context.Context, v *Venue) error {
	details, err := marshalDetails(v.Details)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO venues (id, owner_id, name, type, description, address, city, state, pincode,
			phone, email, capacity, base_price, price_unit, images, details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		v.ID, v.OwnerID, v.Name, v.Type, v.Description, v.Address, v.City, v.State, v.Pincode,
		v.Phone, v.Email, v.Capacity, v.BasePrice, v.PriceUnit, pq.Array(v.Images), details, v.Status,
	).Scan(&v.CreatedAt, &v.UpdatedAt)
	return database.Classify(err, "venue")
}

func (r *postgresRepository) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
	return scanVenue(row)
}

func (r *postgresRepository) ListVenues(ctx context.Context, f ListFilter) ([]*Venue, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	add := func(clause string, v interface{}) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if f.OwnerID != nil {
		add("owner_id = $%d", *f.OwnerID)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.City != "" {
		add("city ILIKE $%d", f.City)
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	query := `SELECT ` + venueColumns + ` FROM venues` + cond +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	venues := []*Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, 0, err
		}
		venues = append(venues, v)
	}
	return venues, total, rows.Err()
}

func (r *postgresRepository) UpdateVenue(ctx context.Context, v *Venue) error {
	details, err := marshalDetails(v.Details)
	if err != nil {
		return err
	}
	query := `
		UPDATE venues SET name = $2, type = $3, description = $4, address = $5, city = $6,
			state = $7, pincode = $8, phone = $9, email = $10, capacity = $11, base_price = $12,
			price_unit = $13, images = $14, details = $15, status = $16, rejection_reason = $17,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		v.ID, v.Name, v.Type, v.Description, v.Address, v.City, v.State, v.Pincode, v.Phone,
		v.Email, v.Capacity, v.BasePrice, v.PriceUnit, pq.Array(v.Images), details, v.Status,
		v.RejectionReason,
	).Scan(&v.UpdatedAt)
	return database.Classify(err, "venue")
}

func (r *postgresRepository) UpdateVenueStatus(ctx context.Context, id uuid.UUID, status Status, reason string) (*Venue, error) {
	query := `
		UPDATE venues SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + venueColumns
	return scanVenue(r.db.QueryRowContext(ctx, query, id, status, reason))
}

func (r *postgresRepository) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return database.RequireAffected(res, "venue")
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanVenue(row rowScanner) (*Venue, error) {
	v := &Venue{}
	var details []byte
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Type, &v.Description, &v.Address, &v.City, &v.State,
		&v.Pincode, &v.Phone, &v.Email, &v.Capacity, &v.BasePrice, &v.PriceUnit,
		pq.Array(&v.Images), &details, &v.Status, &v.RejectionReason, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, database.Classify(err, "venue")
	}
	if err := json.Unmarshal(details, &v.Details); err != nil {
		return nil, fmt.Errorf("decode venue details: %w", err)
	}
	return v, nil
}

func marshalDetails(d map[string]interface{}) ([]byte, error) {
	if d == nil {
		d = map[string]interface{}{}
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode venue details: %w", err)
	}
	return b, nil
}
