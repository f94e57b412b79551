package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/pulse/logger"
)

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration. Probe paths are silently skipped so
// k8s polling does not flood the logs.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isProbeEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": latency.String(),
			"client":  c.ClientIP(),
		}
		if id := c.GetString("request_id"); id != "" {
			fields["request_id"] = id
		}

		logByStatus(fields, status)
	}
}

func isProbeEndpoint(path string) bool {
	switch path {
	case "/ping", "/health", "/status":
		return true
	}
	return false
}

// logByStatus logs request fields at the appropriate level based on HTTP
// status code.
func logByStatus(fields map[string]interface{}, status int) {
	switch {
	case status >= 500:
		logger.Error("Request completed", fields)
	case status >= 400:
		logger.Warn("Request completed", fields)
	default:
		logger.Debug("Request completed", fields)
	}
}
