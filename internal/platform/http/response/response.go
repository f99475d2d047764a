// Package response writes the JSON envelopes shared by all API handlers.
package response

import (
	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/shared/apperrors"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Error aborts the request with the status mapped from err.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(apperrors.HTTPStatus(err), ErrorResponse{Success: false, Error: err.Error()})
}
