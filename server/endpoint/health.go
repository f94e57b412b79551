package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health returns the readiness probe handler. The payload is exactly
// {"status":"ok"} — lightweight by contract for Docker/K8s polling.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
