package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore.
type MockUserStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.User
	byName  map[string]uuid.UUID
	// CreateErr forces Create to fail when set.
	CreateErr error
	// GetErr forces lookups to fail when set.
	GetErr error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		byID:   make(map[uuid.UUID]*domain.User),
		byName: make(map[string]uuid.UUID),
	}
}

// Create stores the user, enforcing username uniqueness.
func (s *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[user.Username]; exists {
		return store.ErrUsernameExists
	}

	clone := *user
	s.byID[user.ID] = &clone
	s.byName[user.Username] = user.ID
	return nil
}

// GetByID returns the stored user or store.ErrUserNotFound.
func (s *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// GetByUsername returns the stored user or store.ErrUserNotFound.
func (s *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	id, ok := s.byName[username]
	s.mu.Unlock()
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return s.GetByID(ctx, id)
}

// Exists reports whether the username is registered.
func (s *MockUserStore) Exists(ctx context.Context, username string) (bool, error) {
	if s.GetErr != nil {
		return false, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byName[username]
	return ok, nil
}

// Count returns the number of stored users.
func (s *MockUserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
