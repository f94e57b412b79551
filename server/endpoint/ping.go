// Package endpoint provides the built-in HTTP handlers for pulse:
// liveness (/ping), readiness (/health), component status (/status), and
// build info (/version).
package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingResponse is the liveness probe payload.
type PingResponse struct {
	Status    string `json:"status"`
	Uptime    int64  `json:"uptime"`
	Timestamp int64  `json:"timestamp"`
}

// Ping returns the liveness probe handler. It reports "ok" together with
// process uptime in whole seconds and the current epoch timestamp, measured
// against the given start time.
func Ping(startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now().Unix()
		c.JSON(http.StatusOK, PingResponse{
			Status:    "ok",
			Uptime:    now - startedAt.Unix(),
			Timestamp: now,
		})
	}
}
