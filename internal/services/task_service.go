package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/todo-project-api/internal/dto"
	"github.com/yukikurage/todo-project-api/internal/repository"
)

// TaskService handles task business logic. Ownership and edit-eligibility
// checks run in the middleware chain before any of these are reached.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// Update edits a task's name, description and termination date.
func (s *TaskService) Update(taskID uint64, input dto.TaskRequest) error {
	terminationDate, err := parseDate(input.TerminationDate)
	if err != nil {
		return fmt.Errorf("failed to parse termination date: %w", err)
	}

	if err := s.taskRepo.UpdateByID(taskID, input.Name, input.Description, terminationDate); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete soft deletes a task.
func (s *TaskService) Delete(taskID uint64) error {
	if err := s.taskRepo.DeleteByID(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Finish marks a task finished as of today, locking it for edits.
func (s *TaskService) Finish(taskID uint64) error {
	today := startOfToday()
	if err := s.taskRepo.SetFinishDate(taskID, &today); err != nil {
		return fmt.Errorf("failed to finish task: %w", err)
	}
	return nil
}

// Unfinish clears a task's finish date, restoring editability.
func (s *TaskService) Unfinish(taskID uint64) error {
	if err := s.taskRepo.SetFinishDate(taskID, nil); err != nil {
		return fmt.Errorf("failed to unfinish task: %w", err)
	}
	return nil
}

// startOfToday returns the current date truncated to local midnight, the
// date-only value stored in finish_date.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
