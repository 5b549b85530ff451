package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password; plaintext passwords are never persisted.
	// The username claim is a conditional write: Create returns
	// ErrUsernameExists if the username is already taken, even under
	// concurrent registration of the same name.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Exists reports whether a user with the given username is registered.
	Exists(ctx context.Context, username string) (bool, error)
}
