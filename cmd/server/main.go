package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-project-api/internal/auth"
	"github.com/yukikurage/todo-project-api/internal/config"
	"github.com/yukikurage/todo-project-api/internal/database"
	"github.com/yukikurage/todo-project-api/internal/handlers"
	"github.com/yukikurage/todo-project-api/internal/middleware"
	"github.com/yukikurage/todo-project-api/internal/repository"
	"github.com/yukikurage/todo-project-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Token service
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpMinutes)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokens)
	projectService := services.NewProjectService(projectRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Ownership guards
	projectOwnership := middleware.RequireProjectOwnership(projectRepo)
	taskOwnership := middleware.RequireTaskOwnership(taskRepo)

	// Initialize Gin router
	r := gin.Default()

	// Misc routes (public)
	r.GET("/ping", handlers.Ping)
	r.GET("/version", handlers.Version)

	// Auth routes (public)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/reconnect", authHandler.Reconnect)
	}

	// Project routes (protected)
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

	// Task routes (protected)
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

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
