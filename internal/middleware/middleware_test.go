package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yukikurage/todo-project-api/internal/auth"
	"github.com/yukikurage/todo-project-api/internal/constants"
	"github.com/yukikurage/todo-project-api/internal/models"
	"github.com/yukikurage/todo-project-api/internal/repository"
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

	gin.SetMode(gin.TestMode)
	return db
}

func createUser(t *testing.T, db *gorm.DB, login string) *models.User {
	t.Helper()
	user := &models.User{Login: login, FirstName: "Test"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProject(t *testing.T, db *gorm.DB, userID uint64) *models.Project {
	t.Helper()
	project := &models.Project{Name: "Project", UserID: userID}
	require.NoError(t, db.Create(project).Error)
	return project
}

func createTask(t *testing.T, db *gorm.DB, projectID uint64) *models.Task {
	t.Helper()
	task := &models.Task{Name: "Task", ProjectID: projectID}
	require.NoError(t, db.Create(task).Error)
	return task
}

func okHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func TestRequireAuth_HeaderAndCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager("test-secret", 60)

	token, err := tokens.Issue(&auth.Claims{UserID: 7, Login: "alice"})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), AllowIfAuthenticated(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		require.Equal(t, uint64(7), userID)
		c.Status(http.StatusOK)
	})

	// Raw Authorization header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Bearer-prefixed header
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Cookie
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: token})
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager("test-secret", 60)

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "TOKEN_INVALID")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	issuer := auth.NewTokenManager("test-secret", -1)
	verifier := auth.NewTokenManager("test-secret", 60)

	token, err := issuer.Issue(&auth.Claims{UserID: 7, Login: "alice"})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", RequireAuth(verifier), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
}

func TestAllowIfAuthenticated_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/gated", AllowIfAuthenticated(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func projectGuardRouter(db *gorm.DB, userID uint64) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
	})
	r.GET("/projects/:id", RequireProjectOwnership(repository.NewProjectRepository(db)), func(c *gin.Context) {
		project, ok := GetProject(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, project)
	})
	return r
}

func TestRequireProjectOwnership(t *testing.T) {
	db := setupTestDB(t)

	owner := createUser(t, db, "owner")
	stranger := createUser(t, db, "stranger")
	project := createProject(t, db, owner.ID)

	url := fmt.Sprintf("/projects/%d", project.ID)

	// Owner reaches the handler
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	projectGuardRouter(db, owner.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Foreign user gets 403
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, url, nil)
	projectGuardRouter(db, stranger.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "FORBIDDEN")

	// Missing id gets 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/projects/999", nil)
	projectGuardRouter(db, owner.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestRequireTaskOwnership_TransitiveAndStripped(t *testing.T) {
	db := setupTestDB(t)

	owner := createUser(t, db, "owner")
	stranger := createUser(t, db, "stranger")
	project := createProject(t, db, owner.ID)
	task := createTask(t, db, project.ID)

	router := func(userID uint64) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Set(constants.ContextKeyUserID, userID)
		})
		r.GET("/tasks/:id", RequireTaskOwnership(repository.NewTaskRepository(db)), func(c *gin.Context) {
			attached, ok := GetTask(c)
			require.True(t, ok)
			// The project used for the ownership check must not leak
			require.Nil(t, attached.Project)
			c.JSON(http.StatusOK, attached)
		})
		return r
	}

	url := fmt.Sprintf("/tasks/%d", task.ID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router(owner.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, url, nil)
	router(stranger.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/tasks/42", nil)
	router(owner.ID).ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequireTaskEditable(t *testing.T) {
	db := setupTestDB(t)

	owner := createUser(t, db, "owner")
	project := createProject(t, db, owner.ID)
	task := createTask(t, db, project.ID)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, owner.ID)
	})
	r.PUT("/tasks/:id", RequireTaskOwnership(repository.NewTaskRepository(db)), RequireTaskEditable(), okHandler)

	url := fmt.Sprintf("/tasks/%d", task.ID)

	// Open task passes
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, url, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Finished task is locked
	today := time.Now()
	require.NoError(t, db.Model(&models.Task{}).Where("id = ?", task.ID).
		Update("finish_date", &today).Error)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, url, nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "TASK_NOT_ELIGIBLE_FOR_EDITING")
}
