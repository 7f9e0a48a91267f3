package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"auth", NewAuthError("Invalid credentials", nil), http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("You can only remove dogs you registered", nil), http.StatusForbidden},
		{"not found", NewNotFoundError("Dog not found", nil), http.StatusNotFound},
		{"validation", NewValidationError("Dog name cannot exceed 50 characters", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("Dog is already adopted", nil), http.StatusBadRequest},
		{"conflict", NewConflictError("Username already exists", nil), http.StatusConflict},
		{"database", NewDatabaseError("query failed", nil), http.StatusInternalServerError},
		{"config", NewConfigError("bad config", nil), http.StatusInternalServerError},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"migration", NewMigrationError("migrate failed", nil), http.StatusInternalServerError},
		{"unknown", NewAppError(UnknownError, "???", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestErrorStringAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := NewDatabaseError("failed to get user", cause)

	assert.Equal(t, "failed to get user: connection refused", appErr.Error())
	assert.Equal(t, cause, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, cause))

	bare := NewAuthError("Invalid token", nil)
	assert.Equal(t, "Invalid token", bare.Error())
	assert.Nil(t, bare.Unwrap())
}

func TestFromError(t *testing.T) {
	appErr := NewNotFoundError("Dog not found", nil)

	got, ok := FromError(appErr)
	require.True(t, ok)
	assert.Equal(t, appErr, got)

	// Wrapped AppErrors are still recovered.
	wrapped := fmt.Errorf("handling request: %w", appErr)
	got, ok = FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, NotFoundError, got.Type)

	_, ok = FromError(errors.New("plain error"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("Dog not found", nil)))
	assert.True(t, IsAuthError(NewAuthError("Invalid credentials", nil)))
	assert.True(t, IsForbidden(NewForbiddenError("nope", nil)))
	assert.True(t, IsValidationError(NewValidationError("too long", nil)))
	assert.True(t, IsConflictError(NewConflictError("Username already exists", nil)))

	assert.False(t, IsNotFound(NewAuthError("Invalid credentials", nil)))
	assert.False(t, IsAuthError(errors.New("plain error")))
	assert.False(t, IsConflictError(nil))
}

func TestToResponse(t *testing.T) {
	appErr := NewConflictError("Username already exists", errors.New("duplicate key value"))
	resp := appErr.ToResponse()

	// The underlying cause never leaks into the client payload.
	assert.Equal(t, ErrorResponse{Message: "Username already exists"}, resp)
}
