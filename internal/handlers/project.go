package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-project-api/internal/apperrors"
	"github.com/yukikurage/todo-project-api/internal/dto"
	"github.com/yukikurage/todo-project-api/internal/middleware"
	"github.com/yukikurage/todo-project-api/internal/services"
)

// ProjectHandler coordinates project-related HTTP handlers. Ownership is
// established by RequireProjectOwnership before any per-project handler
// runs.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List returns all projects owned by the authenticated user, including
// tasks unless projectOnly is set.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrTokenInvalid)
		return
	}

	projectOnly := c.Query("projectOnly") != ""

	projects, err := h.projectService.List(userID, projectOnly)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Get returns the project attached by the ownership guard.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, project)
}

// Create creates a project owned by the authenticated user.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondValidation(c, err)
		return
	}

	project, err := h.projectService.Create(userID, req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// Update edits the project attached by the ownership guard.
func (h *ProjectHandler) Update(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondValidation(c, err)
		return
	}

	if err := h.projectService.Update(project.ID, req); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete soft-deletes the project and all of its tasks atomically.
func (h *ProjectHandler) Delete(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	if err := h.projectService.Delete(project.ID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateTask creates a task under the project attached by the ownership
// guard.
func (h *ProjectHandler) CreateTask(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondValidation(c, err)
		return
	}

	task, err := h.projectService.CreateTask(project.ID, req)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ListTasks returns all tasks of the project attached by the ownership
// guard.
func (h *ProjectHandler) ListTasks(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrNotFound)
		return
	}

	tasks, err := h.projectService.ListTasks(project.ID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
