package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     map[string]interface{}
		wantStatus  int
		wantMessage string
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"username": "alice",
				"password": "secret123",
			},
			wantStatus:  http.StatusOK,
			wantMessage: "User registered successfully",
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"password": "secret123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "alice",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "username too long",
			payload: map[string]interface{}{
				"username": strings.Repeat("a", 100),
				"password": "secret123",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			handler := NewAuthHandler(
				userStore,
				&mocks.MockJWTService{Token: "test-token"},
				&mocks.MockPasswordHasher{},
				&mocks.MockPasswordVerifier{ShouldSucceed: true},
				testLogger(),
			)

			w := postJSON(t, handler.Register, "/api/auth/register", tc.payload)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, resp["message"])
			}
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, 1, userStore.Count())
				assert.NotContains(t, w.Body.String(), "secret123")
			} else {
				assert.Equal(t, 0, userStore.Count())
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		testLogger(),
	)

	payload := map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	}

	w := postJSON(t, handler.Register, "/api/auth/register", payload)
	require.Equal(t, http.StatusOK, w.Code)

	// Same username again, even with a different password.
	payload["password"] = "other456"
	w = postJSON(t, handler.Register, "/api/auth/register", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Username already exists", resp["message"])
	assert.Equal(t, 1, userStore.Count())
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		testLogger(),
	)

	w := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	user, err := userStore.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret123", user.HashedPassword)
	assert.Empty(t, user.Password)
}

func TestRegisterStoreFailure(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	userStore.CreateErr = errors.New("connection refused")
	handler := NewAuthHandler(
		userStore,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		testLogger(),
	)

	w := postJSON(t, handler.Register, "/api/auth/register", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Infrastructure details must not leak to the client.
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	registeredUser := func(t *testing.T) *mocks.MockUserStore {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("alice", "secret123")
		require.NoError(t, err)
		user.HashedPassword = "hashed:secret123"
		user.Password = ""
		require.NoError(t, userStore.Create(context.Background(), user))
		return userStore
	}

	t.Run("successful login returns token", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(
			registeredUser(t),
			&mocks.MockJWTService{Token: "issued-token"},
			&mocks.MockPasswordHasher{},
			&mocks.MockPasswordVerifier{ShouldSucceed: true},
			testLogger(),
		)

		w := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
			"username": "alice",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "issued-token", resp.Token)
		assert.Equal(t, "alice", resp.Username)
		assert.Equal(t, "Login successful", resp.Message)
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(
			registeredUser(t),
			&mocks.MockJWTService{Token: "issued-token"},
			&mocks.MockPasswordHasher{},
			&mocks.MockPasswordVerifier{ShouldSucceed: false},
			testLogger(),
		)

		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
			"username": "alice",
			"password": "wrong",
		})
		unknownUser := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
			"username": "nobody",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
		assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
	})

	t.Run("token generation failure", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(
			registeredUser(t),
			&mocks.MockJWTService{Err: errors.New("signing failed")},
			&mocks.MockPasswordHasher{},
			&mocks.MockPasswordVerifier{ShouldSucceed: true},
			testLogger(),
		)

		w := postJSON(t, handler.Login, "/api/auth/login", map[string]interface{}{
			"username": "alice",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "signing failed")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(
			registeredUser(t),
			&mocks.MockJWTService{Token: "issued-token"},
			&mocks.MockPasswordHasher{},
			&mocks.MockPasswordVerifier{ShouldSucceed: true},
			testLogger(),
		)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		handler.Login(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
