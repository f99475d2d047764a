// Package handler provides the HTTP handlers of the news feature.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/feature/news/domain/entity"
	"crypto_dashboard/internal/feature/news/transport/http/dto"
	"crypto_dashboard/internal/feature/news/usecase"
	"crypto_dashboard/internal/platform/http/response"
)

// NewsUsecase is the news logic the handler depends on.
type NewsUsecase interface {
	List(ctx context.Context, limit int, source string) ([]entity.NewsItem, error)
	ByCoin(ctx context.Context, coin string, limit int) ([]entity.NewsItem, error)
	Collect(ctx context.Context, perSource int) (usecase.CollectResult, error)
}

// NewsHandler serves stored news and the manual scrape trigger.
type NewsHandler struct {
	uc NewsUsecase
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler(uc NewsUsecase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// List returns recent news.
//
// GET /api/news?limit=20&source=CoinDesk
func (h *NewsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultListLimit)))

	items, err := h.uc.List(c.Request.Context(), limit, c.Query("source"))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := toResponse(items)
	c.JSON(http.StatusOK, dto.NewsListResponse{Success: true, Data: out, Count: len(out)})
}

// ByCoin returns recent news related to one coin.
//
// GET /api/news/:coin?limit=20
func (h *NewsHandler) ByCoin(c *gin.Context) {
	coin := strings.ToUpper(c.Param("coin"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultListLimit)))

	items, err := h.uc.ByCoin(c.Request.Context(), coin, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	out := toResponse(items)
	c.JSON(http.StatusOK, dto.NewsListResponse{Success: true, Coin: coin, Data: out, Count: len(out)})
}

// Scrape runs the news job immediately.
//
// POST /api/admin/scrape-news?limit=10
func (h *NewsHandler) Scrape(c *gin.Context) {
	perSource, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultPerSource)))
	perSource = min(perSource, usecase.MaxPerSource)

	res, err := h.uc.Collect(c.Request.Context(), perSource)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ScrapeResponse{
		Success:      true,
		Message:      fmt.Sprintf("saved %d news items", res.Saved),
		TotalScraped: res.Scraped,
		SavedCount:   res.Saved,
		SkippedCount: res.Skipped,
		FailedCount:  res.Failed,
	})
}

func toResponse(items []entity.NewsItem) []dto.NewsItemResponse {
	out := make([]dto.NewsItemResponse, 0, len(items))
	for _, n := range items {
		r := dto.NewsItemResponse{
			ID:           n.ID,
			Title:        n.Title,
			URL:          n.URL,
			Source:       n.Source,
			RelatedCoins: n.RelatedCoins,
			Timestamp:    n.CollectedAt,
		}
		if !n.PublishedAt.IsZero() {
			p := n.PublishedAt
			r.PublishedAt = &p
		}
		if r.RelatedCoins == nil {
			r.RelatedCoins = []string{}
		}
		out = append(out, r)
	}
	return out
}
