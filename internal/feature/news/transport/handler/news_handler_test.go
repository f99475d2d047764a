package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crypto_dashboard/internal/feature/news/domain/entity"
	"crypto_dashboard/internal/feature/news/transport/handler"
	"crypto_dashboard/internal/feature/news/usecase"
	"crypto_dashboard/internal/shared/apperrors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockNewsUsecase struct {
	ListFunc    func(ctx context.Context, limit int, source string) ([]entity.NewsItem, error)
	ByCoinFunc  func(ctx context.Context, coin string, limit int) ([]entity.NewsItem, error)
	CollectFunc func(ctx context.Context, perSource int) (usecase.CollectResult, error)
}

func (m *mockNewsUsecase) List(ctx context.Context, limit int, source string) ([]entity.NewsItem, error) {
	return m.ListFunc(ctx, limit, source)
}

func (m *mockNewsUsecase) ByCoin(ctx context.Context, coin string, limit int) ([]entity.NewsItem, error) {
	return m.ByCoinFunc(ctx, coin, limit)
}

func (m *mockNewsUsecase) Collect(ctx context.Context, perSource int) (usecase.CollectResult, error) {
	return m.CollectFunc(ctx, perSource)
}

var (
	published = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	collected = time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC)
)

func newRouter(uc handler.NewsUsecase) *gin.Engine {
	h := handler.NewNewsHandler(uc)
	r := gin.New()
	r.GET("/api/news", h.List)
	r.GET("/api/news/:coin", h.ByCoin)
	r.POST("/api/admin/scrape-news", h.Scrape)
	return r
}

func serve(r *gin.Engine, method, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, url, nil))
	return w
}

func TestNewsHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		wantLimit      int
		wantSource     string
		items          []entity.NewsItem
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "success",
			url:        "/api/news?limit=5&source=CoinDesk",
			wantLimit:  5,
			wantSource: "CoinDesk",
			items: []entity.NewsItem{{
				ID: 1, Title: "BTC up", URL: "https://example.com/a", Source: "CoinDesk",
				PublishedAt: published, RelatedCoins: []string{"BTC"}, CollectedAt: collected,
			}},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"count":1,"data":[{"id":1,"title":"BTC up","url":"https://example.com/a",
				"source":"CoinDesk","published_at":"2025-03-01T09:00:00Z","related_coins":["BTC"],
				"timestamp":"2025-03-01T09:05:00Z"}]}`,
		},
		{
			name:      "defaults and missing publish time",
			url:       "/api/news",
			wantLimit: usecase.DefaultListLimit,
			items: []entity.NewsItem{{
				ID: 2, Title: "t", URL: "u", Source: "s", CollectedAt: collected,
			}},
			expectedStatus: http.StatusOK,
			expectedBody: `{"success":true,"count":1,"data":[{"id":2,"title":"t","url":"u","source":"s",
				"published_at":null,"related_coins":[],"timestamp":"2025-03-01T09:05:00Z"}]}`,
		},
		{
			name:           "failure",
			url:            "/api/news",
			wantLimit:      usecase.DefaultListLimit,
			err:            errors.New("no such table: news"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"no such table: news"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockNewsUsecase{ListFunc: func(ctx context.Context, limit int, source string) ([]entity.NewsItem, error) {
				assert.Equal(t, tt.wantLimit, limit)
				assert.Equal(t, tt.wantSource, source)
				return tt.items, tt.err
			}}

			w := serve(newRouter(uc), http.MethodGet, tt.url)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestNewsHandler_ByCoin(t *testing.T) {
	uc := &mockNewsUsecase{ByCoinFunc: func(ctx context.Context, coin string, limit int) ([]entity.NewsItem, error) {
		assert.Equal(t, "ETH", coin)
		assert.Equal(t, 3, limit)
		return nil, nil
	}}

	w := serve(newRouter(uc), http.MethodGet, "/api/news/eth?limit=3")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"coin":"ETH","count":0,"data":[]}`, w.Body.String())
}

func TestNewsHandler_Scrape(t *testing.T) {
	uc := &mockNewsUsecase{CollectFunc: func(ctx context.Context, perSource int) (usecase.CollectResult, error) {
		assert.Equal(t, 4, perSource)
		return usecase.CollectResult{Scraped: 10, Saved: 3, Skipped: 6, Failed: 1}, nil
	}}

	w := serve(newRouter(uc), http.MethodPost, "/api/admin/scrape-news?limit=4")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"saved 3 news items","total_scraped":10,"saved_count":3,"skipped_count":6,"failed_count":1}`, w.Body.String())

	uc.CollectFunc = func(ctx context.Context, perSource int) (usecase.CollectResult, error) {
		assert.Equal(t, usecase.MaxPerSource, perSource)
		return usecase.CollectResult{}, nil
	}
	w = serve(newRouter(uc), http.MethodPost, "/api/admin/scrape-news?limit=9223372036854775807")
	assert.Equal(t, http.StatusOK, w.Code)

	uc.CollectFunc = func(ctx context.Context, perSource int) (usecase.CollectResult, error) {
		return usecase.CollectResult{}, apperrors.ErrPersistence
	}
	w = serve(newRouter(uc), http.MethodPost, "/api/admin/scrape-news")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
