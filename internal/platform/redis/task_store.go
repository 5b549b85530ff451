package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

const (
	keyTaskByID     = "task:id:"    // task:id:<uuid> -> task JSON
	keyTasksByOwner = "user:tasks:" // user:tasks:<user uuid> -> set of task uuids
)

// TaskStore is a Redis-backed implementation of store.TaskStore.
type TaskStore struct {
	rdb    *redis.Client
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new TaskStore backed by the given Redis client.
func NewTaskStore(rdb *redis.Client, logger *slog.Logger) *TaskStore {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskStore")
	}
	return &TaskStore{
		rdb:    rdb,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// storedTask is the persisted form of a task.
type storedTask struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      domain.TaskStatus `json:"status"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

// Create saves a new task and adds it to the owner's index set.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	payload, err := json.Marshal(toStoredTask(task))
	if err != nil {
		return store.NewStoreError("task", "create", "failed to encode task", err)
	}

	if err := s.rdb.Set(ctx, keyTaskByID+task.ID.String(), payload, 0).Err(); err != nil {
		return store.NewStoreError("task", "create", "failed to persist task", err)
	}
	if err := s.rdb.SAdd(ctx, keyTasksByOwner+task.UserID.String(), task.ID.String()).Err(); err != nil {
		return store.NewStoreError("task", "create", "failed to index task by owner", err)
	}

	s.logger.Debug("task created", "task_id", task.ID, "user_id", task.UserID)
	return nil
}

// GetByID retrieves a task by ID. Returns store.ErrTaskNotFound if absent.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	b, err := s.rdb.Get(ctx, keyTaskByID+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrTaskNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("task", "get", "failed to read task record", err)
	}
	return decodeTask(b)
}

// ListByUser returns all tasks in the owner's index set, in store iteration
// order. Index entries whose record has vanished are skipped and pruned.
func (s *TaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	ids, err := s.rdb.SMembers(ctx, keyTasksByOwner+userID.String()).Result()
	if err != nil {
		return nil, store.NewStoreError("task", "list", "failed to read owner index", err)
	}

	tasks := make([]*domain.Task, 0, len(ids))
	for _, idStr := range ids {
		id, err := uuid.Parse(idStr)
		if err != nil {
			s.logger.Warn("corrupt owner index entry, skipping", "entry", idStr, "user_id", userID)
			continue
		}

		task, err := s.GetByID(ctx, id)
		if errors.Is(err, store.ErrTaskNotFound) {
			// Stale index entry, prune it.
			if remErr := s.rdb.SRem(ctx, keyTasksByOwner+userID.String(), idStr).Err(); remErr != nil {
				s.logger.Warn("failed to prune stale index entry", "error", remErr, "task_id", idStr)
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Update overwrites an existing task record.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	payload, err := json.Marshal(toStoredTask(task))
	if err != nil {
		return store.NewStoreError("task", "update", "failed to encode task", err)
	}

	// XX: only set the key if it still exists.
	set, err := s.rdb.SetXX(ctx, keyTaskByID+task.ID.String(), payload, 0).Result()
	if err != nil {
		return store.NewStoreError("task", "update", "failed to persist task", err)
	}
	if !set {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task record and its owner index entry.
// Returns store.ErrTaskNotFound if the task is already absent.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.rdb.Del(ctx, keyTaskByID+id.String()).Err(); err != nil {
		return store.NewStoreError("task", "delete", "failed to delete task record", err)
	}
	if err := s.rdb.SRem(ctx, keyTasksByOwner+task.UserID.String(), id.String()).Err(); err != nil {
		return store.NewStoreError("task", "delete", "failed to remove owner index entry", err)
	}

	s.logger.Debug("task deleted", "task_id", id, "user_id", task.UserID)
	return nil
}

func toStoredTask(task *domain.Task) storedTask {
	return storedTask{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.Format(timeLayout),
		UpdatedAt:   task.UpdatedAt.Format(timeLayout),
	}
}

func decodeTask(b []byte) (*domain.Task, error) {
	var st storedTask
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, store.NewStoreError("task", "get", "failed to decode task record", err)
	}

	task := &domain.Task{
		ID:          st.ID,
		UserID:      st.UserID,
		Title:       st.Title,
		Description: st.Description,
		Status:      st.Status,
	}
	task.CreatedAt, _ = parseStoredTime(st.CreatedAt)
	task.UpdatedAt, _ = parseStoredTime(st.UpdatedAt)
	return task, nil
}
