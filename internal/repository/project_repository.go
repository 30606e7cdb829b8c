package repository

import (
	"gorm.io/gorm"

	"github.com/yukikurage/todo-project-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID, optionally eager-loading its tasks.
func (r *GormProjectRepository) FindByID(id uint64, includeTasks bool) (*models.Project, error) {
	var project models.Project
	query := r.db
	if includeTasks {
		query = query.Preload("Tasks")
	}
	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAllByUserID lists a user's projects, optionally with tasks.
func (r *GormProjectRepository) FindAllByUserID(userID uint64, includeTasks bool) ([]models.Project, error) {
	var projects []models.Project
	query := r.db.Where("user_id = ?", userID)
	if includeTasks {
		query = query.Preload("Tasks")
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateByID updates a project's name and description.
func (r *GormProjectRepository) UpdateByID(id uint64, name, description string) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
		}).Error
}

// DeleteCascade soft-deletes a project and all of its tasks in one
// transaction. The mapper does not cascade soft deletes, so the task
// delete is issued explicitly; any failure rolls back both writes.
func (r *GormProjectRepository) DeleteCascade(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Project{}, id).Error; err != nil {
			return err
		}

		return tx.Where("project_id = ?", id).Delete(&models.Task{}).Error
	})
}
