package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-project-api/internal/auth"
	"github.com/yukikurage/todo-project-api/internal/dto"
	"github.com/yukikurage/todo-project-api/internal/middleware"
	"github.com/yukikurage/todo-project-api/internal/models"
	"github.com/yukikurage/todo-project-api/internal/repository"
	"github.com/yukikurage/todo-project-api/internal/services"
)

// testEnv wires the full router the same way main does, backed by an
// in-memory database.
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

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

	tokens := auth.NewTokenManager("test-secret", 60)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authHandler := NewAuthHandler(services.NewAuthService(userRepo, tokens))
	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo, taskRepo))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo))

	projectOwnership := middleware.RequireProjectOwnership(projectRepo)
	taskOwnership := middleware.RequireTaskOwnership(taskRepo)

	r := gin.New()

	r.GET("/ping", Ping)
	r.GET("/version", Version)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/reconnect", authHandler.Reconnect)
	}

	projects := r.Group("/projects")
	projects.Use(middleware.RequireAuth(tokens), middleware.AllowIfAuthenticated())
	{
		projects.GET("", projectHandler.List)
		projects.POST("", projectHandler.Create)
		projects.GET("/:id", projectOwnership, projectHandler.Get)
		projects.PUT("/:id", projectOwnership, projectHandler.Update)
		projects.DELETE("/:id", projectOwnership, projectHandler.Delete)
		projects.POST("/:id/task", projectOwnership, projectHandler.CreateTask)
		projects.GET("/:id/task", projectOwnership, projectHandler.ListTasks)
	}

	tasks := r.Group("/tasks")
	tasks.Use(middleware.RequireAuth(tokens), middleware.AllowIfAuthenticated())
	{
		tasks.GET("/:id", taskOwnership, taskHandler.Get)
		tasks.PUT("/:id", taskOwnership, middleware.RequireTaskEditable(), taskHandler.Update)
		tasks.DELETE("/:id", taskOwnership, middleware.RequireTaskEditable(), taskHandler.Delete)
		tasks.PUT("/:id/set/finished", taskOwnership, taskHandler.Finish)
		tasks.PUT("/:id/set/unfinished", taskOwnership, taskHandler.Unfinish)
	}

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Unknown route")
	})

	return &testEnv{db: db, router: r, tokens: tokens}
}

// do performs a request against the test router, optionally authenticated
// and with a JSON body.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// signup registers and logs in a fresh user, returning the session token.
func (e *testEnv) signup(t *testing.T, login string) (string, dto.UserDTO) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"login":      login,
		"password":   "supersecret",
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"login":    login,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}

// createProject creates a project over the API and returns its decoded body.
func (e *testEnv) createProject(t *testing.T, token, name string) models.Project {
	t.Helper()

	w := e.do(t, http.MethodPost, "/projects", token, gin.H{
		"name":        name,
		"description": "made in a test",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var project models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))
	require.NotZero(t, project.ID)
	return project
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
