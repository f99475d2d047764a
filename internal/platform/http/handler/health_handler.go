// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health handles the /healthz liveness probe. It answers every method and
// is never cached.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// UpstreamReporter exposes the last market-data endpoint that answered.
type UpstreamReporter interface {
	LastSuccessful() string
}

// APIHealthHandler serves /api/health for the frontend.
type APIHealthHandler struct {
	upstream UpstreamReporter
	now      func() time.Time
}

// NewAPIHealthHandler creates an APIHealthHandler.
func NewAPIHealthHandler(upstream UpstreamReporter) *APIHealthHandler {
	return &APIHealthHandler{upstream: upstream, now: time.Now}
}

// Get reports that the API is up and which upstream endpoint served last.
// upstream_endpoint is empty until a market-data call has succeeded.
func (h *APIHealthHandler) Get(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "API server is running",
		"timestamp":         h.now().UTC().Format(time.RFC3339),
		"upstream_endpoint": h.upstream.LastSuccessful(),
	})
}
