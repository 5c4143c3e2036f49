package partner

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/platform/database"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL business repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const businessColumns = `id, owner_id, business_name, business_type, gstin, phone, email, address,
	city, state, pincode, description, min_price, max_price, price_unit, media_urls, details,
	status, status_reason, created_at, updated_at`

func (r *postgresRepository) CreateBusiness(ctx context.Context, b *Business) error {
	details, err := json.Marshal(orEmpty(b.Details))
	if err != nil {
		return fmt.Errorf("encode business details: %w", err)
	}
	query := `
		INSERT INTO businesses (id, owner_id, business_name, business_type, gstin, phone, email,
			address, city, state, pincode, description, min_price, max_price, price_unit,
			media_urls, details, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		b.ID, b.OwnerID, b.BusinessName, b.BusinessType, b.GSTIN, b.Phone, b.Email,
		b.Address, b.City, b.State, b.Pincode, b.Description, nullDecimal(b.MinPrice),
		nullDecimal(b.MaxPrice), b.PriceUnit, pq.Array(b.MediaURLs), details, b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	return database.Classify(err, "business profile")
}

func (r *postgresRepository) GetBusinessByID(ctx context.Context, id uuid.UUID) (*Business, error) {
	return scanBusiness(r.db.QueryRowContext(ctx, `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id))
}

func (r *postgresRepository) GetBusinessByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Business, error) {
	return scanBusiness(r.db.QueryRowContext(ctx, `SELECT `+businessColumns+` FROM businesses WHERE owner_id = $1`, ownerID))
}

func (r *postgresRepository) ListBusinesses(ctx context.Context, f ListFilter) ([]*Business, int64, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("business_type = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("(business_name ILIKE $%d OR city ILIKE $%d)", len(args), len(args)))
	}
	cond := " WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM businesses`+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	query := `SELECT ` + businessColumns + ` FROM businesses` + cond +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []*Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

func (r *postgresRepository) UpdateBusiness(ctx context.Context, b *Business) error {
	details, err := json.Marshal(orEmpty(b.Details))
	if err != nil {
		return fmt.Errorf("encode business details: %w", err)
	}
	query := `
		UPDATE businesses SET business_name = $2, business_type = $3, gstin = $4, phone = $5,
			email = $6, address = $7, city = $8, state = $9, pincode = $10, description = $11,
			min_price = $12, max_price = $13, price_unit = $14, media_urls = $15, details = $16,
			status = $17, status_reason = $18, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		b.ID, b.BusinessName, b.BusinessType, b.GSTIN, b.Phone, b.Email, b.Address, b.City,
		b.State, b.Pincode, b.Description, nullDecimal(b.MinPrice), nullDecimal(b.MaxPrice),
		b.PriceUnit, pq.Array(b.MediaURLs), details, b.Status, b.StatusReason,
	).Scan(&b.UpdatedAt)
	return database.Classify(err, "business profile")
}

func (r *postgresRepository) UpdateBusinessStatus(ctx context.Context, id uuid.UUID, status Status, reason string) (*Business, error) {
	query := `
		UPDATE businesses SET status = $2, status_reason = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + businessColumns
	return scanBusiness(r.db.QueryRowContext(ctx, query, id, status, reason))
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanBusiness(row rowScanner) (*Business, error) {
	b := &Business{}
	var minPrice, maxPrice decimal.NullDecimal
	var details []byte
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.BusinessName, &b.BusinessType, &b.GSTIN, &b.Phone, &b.Email,
		&b.Address, &b.City, &b.State, &b.Pincode, &b.Description, &minPrice, &maxPrice,
		&b.PriceUnit, pq.Array(&b.MediaURLs), &details, &b.Status, &b.StatusReason,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, database.Classify(err, "business profile")
	}
	if minPrice.Valid {
		b.MinPrice = &minPrice.Decimal
	}
	if maxPrice.Valid {
		b.MaxPrice = &maxPrice.Decimal
	}
	if err := json.Unmarshal(details, &b.Details); err != nil {
		return nil, fmt.Errorf("decode business details: %w", err)
	}
	return b, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func orEmpty(d map[string]interface{}) map[string]interface{} {
	if d == nil {
		return map[string]interface{}{}
	}
	return d
}
