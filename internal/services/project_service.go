package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/todo-project-api/internal/dto"
	"github.com/yukikurage/todo-project-api/internal/models"
	"github.com/yukikurage/todo-project-api/internal/repository"
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// List returns all projects owned by a user, with tasks unless projectOnly
// is set.
func (s *ProjectService) List(userID uint64, projectOnly bool) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAllByUserID(userID, !projectOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Create creates a project owned by userID.
func (s *ProjectService) Create(userID uint64, input dto.ProjectRequest) (*models.Project, error) {
	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		UserID:      userID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Update edits a project's name and description.
func (s *ProjectService) Update(projectID uint64, input dto.ProjectRequest) error {
	if err := s.projectRepo.UpdateByID(projectID, input.Name, input.Description); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete soft-deletes a project together with all of its tasks.
func (s *ProjectService) Delete(projectID uint64) error {
	if err := s.projectRepo.DeleteCascade(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// CreateTask creates a task under a project.
func (s *ProjectService) CreateTask(projectID uint64, input dto.TaskRequest) (*models.Task, error) {
	terminationDate, err := parseDate(input.TerminationDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse termination date: %w", err)
	}

	task := &models.Task{
		ProjectID:       projectID,
		Name:            input.Name,
		Description:     input.Description,
		TerminationDate: terminationDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns all tasks of a project.
func (s *ProjectService) ListTasks(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.FindAllByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// parseDate converts an optional YYYY-MM-DD string into a date value.
func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", *value, time.Local)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
