package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		isNotFound   bool
		isConstraint bool
		isStorage    bool
	}{
		{
			name:       "not found",
			err:        NewNotFoundError("game"),
			isNotFound: true,
		},
		{
			name:         "constraint",
			err:          NewConstraintError("name already exists"),
			isConstraint: true,
		},
		{
			name:         "validation is a constraint violation",
			err:          NewValidationError("min_players", "must be at least 1"),
			isConstraint: true,
		},
		{
			name:      "storage",
			err:       NewStorageError(errors.New("connection refused")),
			isStorage: true,
		},
		{
			name: "wrapped errors keep their identity",
			err:  fmt.Errorf("listing games: %w", NewNotFoundError("game")),

			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isNotFound, IsNotFound(tt.err))
			assert.Equal(t, tt.isConstraint, IsConstraint(tt.err))
			assert.Equal(t, tt.isStorage, IsStorage(tt.err))
		})
	}
}

func TestIsValidationErrorRequiresField(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("name", "name is required")))
	assert.False(t, IsValidationError(NewConstraintError("name already exists")))
	assert.False(t, IsValidationError(NewNotFoundError("category")))
}

func TestDomainErrorMessages(t *testing.T) {
	assert.Equal(t, "resource not found: category", NewNotFoundError("category").Error())
	assert.Equal(t, "constraint violation: dup", NewConstraintError("dup").Error())
	assert.Equal(t,
		"constraint violation: name is required (field: name)",
		NewValidationError("name", "name is required").Error(),
	)
}

func TestStorageErrorExposesCause(t *testing.T) {
	cause := errors.New("pool exhausted")
	err := NewStorageError(cause)

	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
}
