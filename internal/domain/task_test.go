package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name        string
		title       string
		description string
		status      TaskStatus
		wantErr     error
		wantStatus  TaskStatus
	}{
		{
			name:       "valid task with explicit status",
			title:      "write report",
			status:     TaskStatusInProgress,
			wantStatus: TaskStatusInProgress,
		},
		{
			name:        "empty status defaults to pending",
			title:       "buy milk",
			description: "2 liters",
			wantStatus:  TaskStatusPending,
		},
		{
			name:    "empty title",
			title:   "",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			title:   "   ",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "unknown status",
			title:   "task",
			status:  TaskStatus("DONE"),
			wantErr: ErrInvalidTaskStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(userID, tt.title, tt.description, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, task.ID)
			assert.Equal(t, userID, task.UserID)
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, tt.description, task.Description)
			assert.Equal(t, tt.wantStatus, task.Status)
			assert.False(t, task.CreatedAt.IsZero())
		})
	}
}

func TestNewTask_RequiresOwner(t *testing.T) {
	t.Parallel()

	task, err := NewTask(uuid.Nil, "orphan task", "", "")
	assert.ErrorIs(t, err, ErrEmptyUserID)
	assert.Nil(t, task)
}

func TestTaskApply(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("omitted status preserves prior status", func(t *testing.T) {
		task, err := NewTask(userID, "original", "desc", TaskStatusInProgress)
		require.NoError(t, err)

		before := task.UpdatedAt
		time.Sleep(time.Millisecond)

		require.NoError(t, task.Apply("updated", "new desc", ""))
		assert.Equal(t, "updated", task.Title)
		assert.Equal(t, "new desc", task.Description)
		assert.Equal(t, TaskStatusInProgress, task.Status)
		assert.True(t, task.UpdatedAt.After(before))
	})

	t.Run("provided status overwrites", func(t *testing.T) {
		task, err := NewTask(userID, "original", "", "")
		require.NoError(t, err)

		require.NoError(t, task.Apply("original", "", TaskStatusCompleted))
		assert.Equal(t, TaskStatusCompleted, task.Status)
	})

	t.Run("description is always overwritten", func(t *testing.T) {
		task, err := NewTask(userID, "original", "will be cleared", "")
		require.NoError(t, err)

		require.NoError(t, task.Apply("original", "", ""))
		assert.Empty(t, task.Description)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		task, err := NewTask(userID, "original", "", "")
		require.NoError(t, err)

		assert.ErrorIs(t, task.Apply("", "", ""), ErrEmptyTitle)
	})
}

func TestTaskStatusIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, TaskStatusPending.IsValid())
	assert.True(t, TaskStatusInProgress.IsValid())
	assert.True(t, TaskStatusCompleted.IsValid())
	assert.False(t, TaskStatus("").IsValid())
	assert.False(t, TaskStatus("pending").IsValid())
}
