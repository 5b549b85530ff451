package mocks

import (
	"errors"

	"github.com/taskboard/taskboard-api/internal/service/auth"
)

// MockPasswordVerifier is a test double for auth.PasswordVerifier.
type MockPasswordVerifier struct {
	// ShouldSucceed controls whether Compare reports a match.
	ShouldSucceed bool
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare reports success or mismatch according to ShouldSucceed.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// MockPasswordHasher is a test double for auth.PasswordHasher.
// It prefixes the password instead of hashing so tests can assert on it.
type MockPasswordHasher struct {
	// Err is returned by Hash when set.
	Err error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash returns a recognizable fake hash of the password.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}
