package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crypto_dashboard/internal/feature/sentiment/domain/entity"
	"crypto_dashboard/internal/shared/apperrors"
)

type mockFearGreedUsecase struct {
	LatestFunc func(ctx context.Context) ([]entity.FearGreedPoint, error)
}

func (m *mockFearGreedUsecase) Latest(ctx context.Context) ([]entity.FearGreedPoint, error) {
	return m.LatestFunc(ctx)
}

func TestFearGreedHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		points         []entity.FearGreedPoint
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			points:         []entity.FearGreedPoint{{Value: "72", ValueClassification: "Greed", Timestamp: "1740787200", TimeUntilUpdate: "3600"}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"data":[{"value":"72","value_classification":"Greed","timestamp":"1740787200","time_until_update":"3600"}]}`,
		},
		{
			name:           "upstream down",
			err:            fmt.Errorf("%w: fear greed status 503", apperrors.ErrUpstreamUnavailable),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"success":false,"error":"upstream unavailable: fear greed status 503"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewFearGreedHandler(&mockFearGreedUsecase{LatestFunc: func(ctx context.Context) ([]entity.FearGreedPoint, error) {
				return tt.points, tt.err
			}})

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/fear-greed", nil)

			h.Get(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
