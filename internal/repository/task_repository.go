package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/todo-project-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByIDWithProject finds a task with its project loaded. The project is
// needed to resolve the task's effective owner.
func (r *GormTaskRepository) FindByIDWithProject(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("Project").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindAllByProjectID lists the tasks of a project
func (r *GormTaskRepository) FindAllByProjectID(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateByID updates a task's editable fields. All three columns are
// written so a nil termination date clears the column.
func (r *GormTaskRepository) UpdateByID(id uint64, name, description string, terminationDate *time.Time) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":             name,
			"description":      description,
			"termination_date": terminationDate,
		}).Error
}

// SetFinishDate sets or clears a task's finish date
func (r *GormTaskRepository) SetFinishDate(id uint64, finishDate *time.Time) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", id).
		Update("finish_date", finishDate).Error
}

// DeleteByID soft deletes a task
func (r *GormTaskRepository) DeleteByID(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

// RestoreByID clears a task's deletion marker, returning it to the
// findable set.
func (r *GormTaskRepository) RestoreByID(id uint64) error {
	return r.db.Unscoped().Model(&models.Task{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}
