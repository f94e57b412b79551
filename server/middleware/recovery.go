package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/pulse/errors"
	"github.com/skillsenselab/pulse/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// stack, and renders the panic through the standard error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered", map[string]interface{}{
					"error":     fmt.Sprintf("%v", r),
					"stack":     string(debug.Stack()),
					"path":      c.Request.URL.Path,
					"method":    c.Request.Method,
					"client_ip": c.ClientIP(),
				})
				coreErr := errors.Internal(r)
				c.AbortWithStatusJSON(coreErr.HTTPStatus(), coreErr.ToResponse())
			}
		}()
		c.Next()
	}
}
