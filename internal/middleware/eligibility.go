package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yukikurage/todo-project-api/internal/apperrors"
)

// RequireTaskEditable blocks mutation of tasks already marked finished.
// It reads the task attached by RequireTaskOwnership and must run after
// it. The finish/unfinish toggle routes deliberately omit this guard:
// unfinishing is the sanctioned way out of the finished state.
func RequireTaskEditable() gin.HandlerFunc {
	return func(c *gin.Context) {
		task, ok := GetTask(c)
		if !ok {
			apperrors.Abort(c, apperrors.ErrNotFound)
			return
		}

		if task.Finished() {
			apperrors.Abort(c, apperrors.ErrTaskNotEditable)
			return
		}

		c.Next()
	}
}
