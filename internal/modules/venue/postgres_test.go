package venue

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "owner_id", "name", "type", "description", "address", "city", "state", "pincode",
	"phone", "email", "capacity", "base_price", "price_unit", "images", "details", "status", "rejection_reason",
	"created_at", "updated_at"}

func venueRow(rows *sqlmock.Rows, id, owner uuid.UUID, status string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, owner, "Sri Sweets", "sweet_shop", "", "MG Road", "Pune", "MH", "411001",
		"9876543210", "", 0, "120.50", "per_kg", "{https://cdn.example.com/a.jpg}",
		[]byte(`{"specialities":"Kaju katli"}`), status, "", now, now)
}

func TestPostgresRepository_GetVenueByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	id, owner := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT .* FROM venues WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(venueRow(sqlmock.NewRows(columns), id, owner, "APPROVED"))

	v, err := repo.GetVenueByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, owner, v.OwnerID)
	assert.True(t, decimal.RequireFromString("120.50").Equal(v.BasePrice))
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, v.Images)
	assert.Equal(t, "Kaju katli", v.Details["specialities"])
	assert.Equal(t, StatusApproved, v.Status)

	mock.ExpectQuery(`SELECT .* FROM venues WHERE id = \$1`).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetVenueByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostgresRepository_ListVenues(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	owner := uuid.New()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM venues WHERE 1=1 AND owner_id = \$1 AND type = \$2 AND status = \$3 AND \(name ILIKE \$4 OR description ILIKE \$4\)`).
		WithArgs(owner, "sweet_shop", "APPROVED", "%katli%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY created_at DESC LIMIT \$5 OFFSET \$6`).
		WithArgs(owner, "sweet_shop", "APPROVED", "%katli%", 10, 0).
		WillReturnRows(venueRow(sqlmock.NewRows(columns), uuid.New(), owner, "APPROVED"))

	list, total, err := repo.ListVenues(context.Background(), ListFilter{
		OwnerID: &owner, Type: "sweet_shop", Status: StatusApproved, Search: "katli", Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_DeleteVenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec(`DELETE FROM venues WHERE id = \$1`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteVenue(context.Background(), uuid.New()), apperr.ErrNotFound)
}
