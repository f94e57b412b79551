package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/pulse/errors"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// RespondWithError inspects err: if it carries a *apperrors.CoreError the
// status and structured body are derived from the base contract; otherwise
// the error is normalized into a generic internal error. This is the single
// rendering boundary — it never needs variant-specific logic.
func RespondWithError(c *gin.Context, err error) {
	if coreErr, ok := apperrors.AsCoreError(err); ok {
		c.JSON(coreErr.HTTPStatus(), coreErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
