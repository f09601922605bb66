package middleware

import (
	"chatapp/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs errors that handlers recorded on the context.
// Persistence failures surface as the status the handler already wrote
// (500); they are logged here, never swallowed.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.Errorf("request error: %s", err.Error())
		}
	}
}
