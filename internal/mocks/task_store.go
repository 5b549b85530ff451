package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

// MockTaskStore is an in-memory implementation of store.TaskStore.
type MockTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
	// CreateErr forces Create to fail when set.
	CreateErr error
	// GetErr forces reads to fail when set.
	GetErr error
	// UpdateErr forces Update to fail when set.
	UpdateErr error
	// DeleteErr forces Delete to fail when set.
	DeleteErr error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates an empty in-memory task store.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create stores the task.
func (s *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *task
	s.tasks[task.ID] = &clone
	return nil
}

// GetByID returns the stored task or store.ErrTaskNotFound.
func (s *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

// ListByUser returns all tasks owned by the given user.
func (s *MockTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.UserID == userID {
			clone := *task
			tasks = append(tasks, &clone)
		}
	}
	return tasks, nil
}

// Update overwrites the stored task or returns store.ErrTaskNotFound.
func (s *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	clone := *task
	s.tasks[task.ID] = &clone
	return nil
}

// Delete removes the stored task or returns store.ErrTaskNotFound.
func (s *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// Count returns the number of stored tasks.
func (s *MockTaskStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
