package partner

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var businessCols = []string{"id", "owner_id", "business_name", "business_type", "gstin", "phone", "email",
	"address", "city", "state", "pincode", "description", "min_price", "max_price", "price_unit",
	"media_urls", "details", "status", "status_reason", "created_at", "updated_at"}

func TestPostgresRepository_GetBusinessByOwnerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	owner := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM businesses WHERE owner_id = \$1`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows(businessCols).AddRow(
			uuid.New(), owner, "Royal Hall", "function_hall", "", "9876543210", "desk@royal.in",
			"", "Chennai", "TN", "600001", "", nil, "75000.00", "per_day",
			"{}", []byte(`{"hall_type":"indoor"}`), "APPROVED", "", now, now))

	b, err := repo.GetBusinessByOwnerID(context.Background(), owner)
	require.NoError(t, err)
	assert.Nil(t, b.MinPrice)
	require.NotNil(t, b.MaxPrice)
	assert.Equal(t, "75000", b.MaxPrice.String())
	assert.Equal(t, []string{}, b.MediaURLs)
	assert.Equal(t, "indoor", b.Details["hall_type"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateBusinessWritesNullPrices(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	b := &Business{ID: uuid.New(), OwnerID: uuid.New(), BusinessName: "x", BusinessType: "hotel", MediaURLs: []string{}, Status: StatusPending}
	now := time.Now()
	mock.ExpectQuery(`INSERT INTO businesses`).
		WithArgs(b.ID, b.OwnerID, "x", "hotel", "", "", "", "", "", "", "", "", nil, nil, "",
			"{}", []byte(`{}`), "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.CreateBusiness(context.Background(), b))
	assert.Equal(t, now, b.CreatedAt)
}
