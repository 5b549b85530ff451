package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Ownership is a plain reference on the task record; the store does not
// enforce it. Handlers perform the ownership check after lookup so that a
// foreign task is indistinguishable from a missing one.
type TaskStore interface {
	// Create saves a new task to the store and indexes it under its owner.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByUser returns all tasks owned by the given user.
	// Order follows store iteration order; no ordering is guaranteed.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Update overwrites an existing task record.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task and its owner index entry.
	// Returns ErrTaskNotFound if the task is already absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
