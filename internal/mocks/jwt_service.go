package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/service/auth"
)

// MockJWTService is a configurable test double for auth.JWTService.
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil.
	Token string
	// Err is returned by GenerateToken.
	Err error
	// Claims is returned by ValidateToken when ValidateErr is nil.
	Claims *auth.Claims
	// ValidateErr is returned by ValidateToken.
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken returns the configured token or error.
func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	userID uuid.UUID,
	username string,
) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken returns the configured claims or error.
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}
