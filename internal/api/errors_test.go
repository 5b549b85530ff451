package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"wrapped signature error", auth.ErrInvalidSignature, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"duplicate username", store.ErrUsernameExists, http.StatusBadRequest},
		{"validation failure", domain.ErrValidation, http.StatusBadRequest},
		{"empty title", domain.ErrEmptyTitle, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidTaskStatus, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped store error", fmt.Errorf("loading task: %w", store.ErrNotFound), http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"duplicate username", store.ErrUsernameExists, "Username already exists"},
		{"empty title", domain.ErrEmptyTitle, "Title is required"},
		{"invalid status", domain.ErrInvalidTaskStatus, "Invalid task status"},
		{"internal detail stays hidden", errors.New("dial tcp 10.0.0.3:6379: i/o timeout"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := GetSafeErrorMessage(tc.err)
			assert.Equal(t, tc.want, got)
			if tc.err != nil {
				assert.NotContains(t, got, "6379")
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := shared.Validate.Struct(TaskRequest{Description: "no title"})
	require.Error(t, err)

	msg := SanitizeValidationError(err)
	assert.Contains(t, msg, "Title")
	assert.NotContains(t, msg, "TaskRequest")
}
