package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`UPDATE bookings SET status = \$3, updated_at = NOW\(\)\s+WHERE id = \$1 AND status = \$2`).
		WithArgs(id, "PENDING", "CONFIRMED").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	require.NoError(t, repo.UpdateStatus(context.Background(), id, StatusPending, StatusConfirmed))

	mock.ExpectQuery(`UPDATE bookings`).
		WithArgs(id, "PENDING", "CONFIRMED").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	err = repo.UpdateStatus(context.Background(), id, StatusPending, StatusConfirmed)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_ListBookingsForVenueOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	ownerID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings b JOIN venues v ON v.id = b.venue_id WHERE 1=1 AND v.owner_id = \$1 AND b.status = \$2`).
		WithArgs(ownerID, "CONFIRMED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY b.created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs(ownerID, "CONFIRMED", 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_number", "venue_id", "name", "owner_id", "user_id",
			"event_date", "guest_count", "contact_name", "contact_phone", "notes", "total_amount", "currency",
			"status", "created_at", "updated_at"}).
			AddRow(uuid.New(), "BKG-20260310-AB12", uuid.New(), "Lakeview", ownerID, uuid.New(),
				now, 100, "Priya", "9876543210", "", "45000.00", "INR", "CONFIRMED", now, now))

	list, total, err := repo.ListBookings(context.Background(), ListFilter{
		VenueOwnerID: &ownerID, Status: StatusConfirmed, Limit: 20, Offset: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, ownerID, list[0].VenueOwnerID)
	assert.Equal(t, "45000", list[0].TotalAmount.String())
}
