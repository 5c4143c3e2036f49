package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("create venue: %w", &ValidationError{Errors: []FieldError{
		{Field: "phone", Message: "Invalid phone number"},
		{Field: "email", Message: "Invalid email format"},
	}})

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Len(t, Fields(err), 2)
	assert.Contains(t, err.Error(), "phone: Invalid phone number; email: Invalid email format")
}

func TestInvalid(t *testing.T) {
	err := Invalid("reason", "Reason is required when rejecting")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []FieldError{{Field: "reason", Message: "Reason is required when rejecting"}}, Fields(err))
	assert.Nil(t, Fields(ErrNotFound))
}
