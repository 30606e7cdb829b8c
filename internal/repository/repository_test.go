package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-project-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.UserAuth{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, login string) *models.User {
	t.Helper()

	user := &models.User{
		Login:     login,
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProject(t *testing.T, db *gorm.DB, userID uint64, name string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:        name,
		Description: "a project",
		UserID:      userID,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createTestTask(t *testing.T, db *gorm.DB, projectID uint64, name string) *models.Task {
	t.Helper()

	task := &models.Task{
		ProjectID:   projectID,
		Name:        name,
		Description: "a task",
	}
	require.NoError(t, db.Create(task).Error)
	return task
}
