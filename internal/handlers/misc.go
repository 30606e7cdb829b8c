package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-project-api/internal/constants"
)

// Ping answers health probes.
func Ping(c *gin.Context) {
	c.String(http.StatusOK, "Pong!")
}

// Version reports the application version.
func Version(c *gin.Context) {
	c.String(http.StatusOK, constants.Version)
}
