package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/dogadopt-go/apperror"
)

func TestValidateCredentialsRegister(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantMsg string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Username: "testuser1", Password: "password123"},
		},
		{
			name:    "missing both",
			req:     RegisterRequest{},
			wantMsg: "Username and password are required",
		},
		{
			name:    "missing password",
			req:     RegisterRequest{Username: "testuser1"},
			wantMsg: "Username and password are required",
		},
		{
			name:    "missing username",
			req:     RegisterRequest{Password: "password123"},
			wantMsg: "Username and password are required",
		},
		{
			name:    "short username",
			req:     RegisterRequest{Username: "ab", Password: "password123"},
			wantMsg: "Username must be at least 3 characters long",
		},
		{
			name:    "short password",
			req:     RegisterRequest{Username: "testuser1", Password: "12345"},
			wantMsg: "Password must be at least 6 characters long",
		},
		{
			// Username is declared first, so its failure wins when both are short.
			name:    "both short",
			req:     RegisterRequest{Username: "ab", Password: "123"},
			wantMsg: "Username must be at least 3 characters long",
		},
		{
			// A missing field outranks the other field's length failure.
			name:    "short username and missing password",
			req:     RegisterRequest{Username: "ab"},
			wantMsg: "Username and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCredentials(tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperror.FromError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.ValidationError, appErr.Type)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestValidateCredentialsLogin(t *testing.T) {
	// Login has no length rules, only presence.
	assert.NoError(t, validateCredentials(LoginRequest{Username: "a", Password: "b"}))

	err := validateCredentials(LoginRequest{Username: "testuser1"})
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "Username and password are required", appErr.Message)
}
