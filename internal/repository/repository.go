package repository

import (
	"time"

	"github.com/yukikurage/todo-project-api/internal/models"
)

// UserRepository defines the interface for user and credential data access.
type UserRepository interface {
	// CreateWithAuth creates a user and its credential row within a single
	// transaction.
	CreateWithAuth(user *models.User, userAuth *models.UserAuth) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByLogin finds a user by login
	FindByLogin(login string) (*models.User, error)

	// FindAuthByLogin finds the credential row for a login, with the user
	// record joined in
	FindAuthByLogin(login string) (*models.UserAuth, error)
}

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID, optionally eager-loading its tasks
	FindByID(id uint64, includeTasks bool) (*models.Project, error)

	// FindAllByUserID lists a user's projects, optionally with tasks
	FindAllByUserID(userID uint64, includeTasks bool) ([]models.Project, error)

	// UpdateByID updates a project's name and description
	UpdateByID(id uint64, name, description string) error

	// DeleteCascade soft-deletes a project and all of its tasks atomically
	DeleteCascade(id uint64) error
}

// TaskRepository defines the interface for task data access.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// FindByIDWithProject finds a task by ID with its project loaded for
	// ownership resolution
	FindByIDWithProject(id uint64) (*models.Task, error)

	// FindAllByProjectID lists the tasks of a project
	FindAllByProjectID(projectID uint64) ([]models.Task, error)

	// UpdateByID updates a task's editable fields; a nil termination date
	// clears the column
	UpdateByID(id uint64, name, description string, terminationDate *time.Time) error

	// SetFinishDate sets or clears a task's finish date
	SetFinishDate(id uint64, finishDate *time.Time) error

	// DeleteByID soft deletes a task
	DeleteByID(id uint64) error

	// RestoreByID clears a task's deletion marker
	RestoreByID(id uint64) error
}
