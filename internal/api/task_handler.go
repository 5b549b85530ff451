package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// TaskHandler handles task-related API requests. All of its endpoints
// require an authenticated user; the owner ID always comes from the
// request context, never from the request body.
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description, domain.TaskStatus(req.Status))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		log.Error("failed to create task", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create task")
		return
	}

	log.Info("task created", "task_id", task.ID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// List handles GET /api/tasks. The response is always a JSON array,
// empty when the user has no tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	tasks, err := h.taskStore.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list tasks", "error", err, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list tasks")
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, taskToResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	task, ok := h.fetchOwnedTask(w, r, userID, log)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Update handles PUT /api/tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, ok := h.fetchOwnedTask(w, r, userID, log)
	if !ok {
		return
	}

	if err := task.Apply(req.Title, req.Description, domain.TaskStatus(req.Status)); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		log.Error("failed to update task", "error", err, "task_id", task.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to update task")
		return
	}

	log.Info("task updated", "task_id", task.ID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	task, ok := h.fetchOwnedTask(w, r, userID, log)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), task.ID); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		log.Error("failed to delete task", "error", err, "task_id", task.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	log.Info("task deleted", "task_id", task.ID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Task deleted successfully"})
}

// fetchOwnedTask loads the task addressed by the {id} path parameter and
// checks that it belongs to userID. A malformed ID, a missing task, and a
// task owned by someone else all produce the same 404 response, so callers
// cannot probe for the existence of other users' tasks. Returns false when
// a response has already been written.
func (h *TaskHandler) fetchOwnedTask(w http.ResponseWriter, r *http.Request, userID uuid.UUID, log *slog.Logger) (*domain.Task, bool) {
	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return nil, false
	}

	task, err := h.taskStore.GetByID(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return nil, false
		}
		log.Error("failed to get task", "error", err, "task_id", taskID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to get task")
		return nil, false
	}

	if task.UserID != userID {
		log.Warn("task access denied", "task_id", taskID, "owner_id", task.UserID, "user_id", userID)
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return nil, false
	}

	return task, true
}
