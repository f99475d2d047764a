// Package handler provides the HTTP handlers of the candles feature.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/feature/candles/domain/entity"
	"crypto_dashboard/internal/feature/candles/transport/http/dto"
	"crypto_dashboard/internal/feature/candles/usecase"
	"crypto_dashboard/internal/platform/http/response"
)

// KlinesUsecase is the lookup the handler depends on.
type KlinesUsecase interface {
	GetKlines(ctx context.Context, symbol, interval string, limit int) (usecase.KlinesResult, error)
}

// CandlesHandler serves candlestick data for charts.
type CandlesHandler struct {
	uc KlinesUsecase
}

// NewCandlesHandler creates a CandlesHandler.
func NewCandlesHandler(uc KlinesUsecase) *CandlesHandler {
	return &CandlesHandler{uc: uc}
}

// GetKlines returns candles for a symbol.
//
// GET /api/klines/:symbol?interval=1h&limit=24
func (h *CandlesHandler) GetKlines(c *gin.Context) {
	symbol := c.Param("symbol")
	interval := c.DefaultQuery("interval", entity.DefaultInterval)
	// unparsable limits fall back to the default during normalization
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(entity.DefaultLimit)))

	res, err := h.uc.GetKlines(c.Request.Context(), symbol, interval, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.CandleResponse, 0, len(res.Candles))
	for _, x := range res.Candles {
		out = append(out, dto.CandleResponse{
			Time:   x.OpenTime.UnixMilli(),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}

	body := dto.KlinesResponse{
		Success:  true,
		Symbol:   res.Key.Symbol,
		Interval: res.Key.Interval,
		Data:     out,
		Cached:   res.Cached,
	}
	if res.Cached {
		age := int(res.CacheAge.Seconds())
		body.CacheAgeSeconds = &age
	}
	c.JSON(http.StatusOK, body)
}
