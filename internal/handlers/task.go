package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-project-api/internal/apperrors"
	"github.com/yukikurage/todo-project-api/internal/dto"
	"github.com/yukikurage/todo-project-api/internal/middleware"
	"github.com/yukikurage/todo-project-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers. RequireTaskOwnership
// runs before each of these; edit and delete additionally sit behind
// RequireTaskEditable.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Get returns the task attached by the ownership guard.
func (h *TaskHandler) Get(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, task)
}

// Update edits the task attached by the ownership guard.
func (h *TaskHandler) Update(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondValidation(c, err)
		return
	}

	if err := h.taskService.Update(task.ID, req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete soft deletes the task attached by the ownership guard.
func (h *TaskHandler) Delete(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	if err := h.taskService.Delete(task.ID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Finish marks the task finished as of today.
func (h *TaskHandler) Finish(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	if err := h.taskService.Finish(task.ID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Unfinish clears the task's finish date. Reachable for finished tasks on
// purpose: it is the only way back to the editable state.
func (h *TaskHandler) Unfinish(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	if err := h.taskService.Unfinish(task.ID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
