package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-project-api/internal/apperrors"
	"github.com/yukikurage/todo-project-api/internal/constants"
	"github.com/yukikurage/todo-project-api/internal/models"
	"github.com/yukikurage/todo-project-api/internal/repository"
)

// ownershipGuard builds a middleware that loads a resource by the :id path
// parameter and checks it belongs to the authenticated user. Absent
// resources answer 404, foreign ones 403; owned resources are attached to
// the context under contextKey for downstream handlers. The guard is
// parameterized by a loader and an owner extractor so each resource type
// instantiates the same logic instead of duplicating it.
func ownershipGuard[R any](
	contextKey string,
	load func(c *gin.Context, id uint64) (*R, error),
	ownerID func(*R) uint64,
	sanitize func(*R),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Abort(c, apperrors.ErrNotFound)
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			apperrors.Abort(c, apperrors.ErrTokenInvalid)
			return
		}

		resource, err := load(c, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Abort(c, apperrors.ErrNotFound)
			} else {
				apperrors.Abort(c, err)
			}
			return
		}

		if ownerID(resource) != userID {
			apperrors.Abort(c, apperrors.ErrForbidden)
			return
		}

		if sanitize != nil {
			sanitize(resource)
		}

		c.Set(contextKey, resource)
		c.Next()
	}
}

// RequireProjectOwnership loads the project from the :id parameter and
// checks it belongs to the requesting user. Tasks are eager-loaded when
// the includeTasks query parameter is present.
func RequireProjectOwnership(projects repository.ProjectRepository) gin.HandlerFunc {
	return ownershipGuard(
		constants.ContextKeyProject,
		func(c *gin.Context, id uint64) (*models.Project, error) {
			includeTasks := c.Query("includeTasks") != ""
			return projects.FindByID(id, includeTasks)
		},
		func(p *models.Project) uint64 { return p.UserID },
		nil,
	)
}

// RequireTaskOwnership loads the task from the :id parameter and resolves
// ownership transitively through its project. The loaded project is
// stripped from the attached task so it never reaches the client.
func RequireTaskOwnership(tasks repository.TaskRepository) gin.HandlerFunc {
	return ownershipGuard(
		constants.ContextKeyTask,
		func(_ *gin.Context, id uint64) (*models.Task, error) {
			task, err := tasks.FindByIDWithProject(id)
			if err != nil {
				return nil, err
			}
			if task.Project == nil {
				return nil, gorm.ErrRecordNotFound
			}
			return task, nil
		},
		func(t *models.Task) uint64 { return t.Project.UserID },
		func(t *models.Task) { t.Project = nil },
	)
}

// GetProject retrieves the project attached by RequireProjectOwnership.
func GetProject(c *gin.Context) (*models.Project, bool) {
	value, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return nil, false
	}

	project, ok := value.(*models.Project)
	return project, ok
}

// GetTask retrieves the task attached by RequireTaskOwnership.
func GetTask(c *gin.Context) (*models.Task, bool) {
	value, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return nil, false
	}

	task, ok := value.(*models.Task)
	return task, ok
}
