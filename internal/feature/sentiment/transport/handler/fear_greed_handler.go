// Package handler provides the HTTP handler of the sentiment feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/feature/sentiment/domain/entity"
	"crypto_dashboard/internal/feature/sentiment/transport/http/dto"
	"crypto_dashboard/internal/platform/http/response"
)

// FearGreedUsecase is the lookup the handler depends on.
type FearGreedUsecase interface {
	Latest(ctx context.Context) ([]entity.FearGreedPoint, error)
}

// FearGreedHandler proxies the Fear & Greed index.
type FearGreedHandler struct {
	uc FearGreedUsecase
}

// NewFearGreedHandler creates a FearGreedHandler.
func NewFearGreedHandler(uc FearGreedUsecase) *FearGreedHandler {
	return &FearGreedHandler{uc: uc}
}

// Get returns the latest readings.
//
// GET /api/fear-greed
func (h *FearGreedHandler) Get(c *gin.Context) {
	points, err := h.uc.Latest(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.FearGreedPoint, 0, len(points))
	for _, p := range points {
		out = append(out, dto.FearGreedPoint(p))
	}
	c.JSON(http.StatusOK, dto.FearGreedResponse{Success: true, Data: out})
}
