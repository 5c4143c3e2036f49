package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify(nil, "venue"))

	err := Classify(sql.ErrNoRows, "venue")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "venue not found")

	err = Classify(&pq.Error{Code: "23505"}, "user")
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.EqualError(t, err, "conflict: user already exists")

	other := errors.New("boom")
	assert.Same(t, other, Classify(other, "venue"))
}

func TestRequireAffected(t *testing.T) {
	assert.NoError(t, RequireAffected(sqlmock.NewResult(0, 1), "venue"))
	assert.ErrorIs(t, RequireAffected(sqlmock.NewResult(0, 0), "venue"), apperr.ErrNotFound)
}
