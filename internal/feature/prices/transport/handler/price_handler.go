// Package handler provides the HTTP handlers of the prices feature.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/feature/prices/domain/entity"
	"crypto_dashboard/internal/feature/prices/transport/http/dto"
	"crypto_dashboard/internal/feature/prices/usecase"
	"crypto_dashboard/internal/platform/http/response"
)

// PricesUsecase is the read side the handler depends on.
type PricesUsecase interface {
	CurrentPrices(ctx context.Context, page, limit int) (usecase.Page[entity.Ticker], error)
	History(ctx context.Context, symbol string) (string, []entity.PricePoint, error)
	Stats(ctx context.Context) (entity.Stats, error)
}

// Collector runs the price snapshot job.
type Collector interface {
	Collect(ctx context.Context) (usecase.CollectResult, error)
}

// PricesHandler serves live prices, stored history and the manual snapshot
// trigger.
type PricesHandler struct {
	uc        PricesUsecase
	collector Collector
	now       func() time.Time
}

// NewPricesHandler creates a PricesHandler.
func NewPricesHandler(uc PricesUsecase, collector Collector) *PricesHandler {
	return &PricesHandler{uc: uc, collector: collector, now: time.Now}
}

// CurrentPrices returns one page of live tickers.
//
// GET /api/current-prices?page=1&limit=50
func (h *PricesHandler) CurrentPrices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultPageLimit)))

	p, err := h.uc.CurrentPrices(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.TickerResponse, 0, len(p.Items))
	for _, t := range p.Items {
		out = append(out, dto.TickerResponse{
			Symbol:             t.Symbol,
			CurrentPrice:       t.CurrentPrice,
			HighPrice:          t.HighPrice,
			LowPrice:           t.LowPrice,
			Volume:             t.Volume,
			PriceChange:        t.PriceChange,
			PriceChangePercent: t.PriceChangePercent,
			Timestamp:          t.Timestamp,
		})
	}
	c.JSON(http.StatusOK, dto.CurrentPricesResponse{
		Success:    true,
		Data:       out,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		Timestamp:  h.now().UTC(),
	})
}

// History returns the stored snapshots of one symbol, oldest first.
//
// GET /api/history/:symbol
func (h *PricesHandler) History(c *gin.Context) {
	symbol, points, err := h.uc.History(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.HistoryPoint, 0, len(points))
	for _, p := range points {
		out = append(out, dto.HistoryPoint{
			Timestamp:     p.Timestamp,
			Price:         p.Price,
			Volume:        p.Volume,
			ChangePercent: p.ChangePercent,
		})
	}
	c.JSON(http.StatusOK, dto.HistoryResponse{Success: true, Symbol: symbol, Data: out})
}

// Stats summarizes the stored snapshots.
//
// GET /api/stats
func (h *PricesHandler) Stats(c *gin.Context) {
	s, err := h.uc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	symbols := s.Symbols
	if symbols == nil {
		symbols = []string{}
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		Success: true,
		Data:    dto.StatsData{TotalSymbols: s.TotalSymbols, Symbols: symbols, TotalRecords: s.TotalRecords},
	})
}

// SaveCurrentData runs the price snapshot job immediately.
//
// POST /api/admin/save-current-data
func (h *PricesHandler) SaveCurrentData(c *gin.Context) {
	res, err := h.collector.Collect(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SaveResponse{
		Success:     true,
		Message:     fmt.Sprintf("saved %d price snapshots", res.Saved),
		SavedCount:  res.Saved,
		FailedCount: res.Failed,
	})
}
