// Package router maps HTTP routes to handlers.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	candleshandler "crypto_dashboard/internal/feature/candles/transport/handler"
	newshandler "crypto_dashboard/internal/feature/news/transport/handler"
	priceshandler "crypto_dashboard/internal/feature/prices/transport/handler"
	sentimenthandler "crypto_dashboard/internal/feature/sentiment/transport/handler"
	symbollisthandler "crypto_dashboard/internal/feature/symbollist/transport/handler"
	"crypto_dashboard/internal/platform/http/handler"
	"crypto_dashboard/internal/platform/http/middleware"
	jwtmw "crypto_dashboard/internal/platform/jwt"
)

// Handlers groups every feature handler served by the API.
type Handlers struct {
	Health    *handler.APIHealthHandler
	Candles   *candleshandler.CandlesHandler
	Prices    *priceshandler.PricesHandler
	Symbols   *symbollisthandler.SymbolHandler
	News      *newshandler.NewsHandler
	FearGreed *sentimenthandler.FearGreedHandler
}

// Options configures the middleware stack.
type Options struct {
	CORSAllowedOrigins []string
	AdminJWTSecret     string
}

// NewRouter builds the gin engine.
func NewRouter(h Handlers, opts Options, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.SecurityHeaders(),
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	// liveness probe
	r.Any("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Get)
		api.GET("/klines/:symbol", h.Candles.GetKlines)
		api.GET("/current-prices", h.Prices.CurrentPrices)
		api.GET("/history/:symbol", h.Prices.History)
		api.GET("/stats", h.Prices.Stats)
		api.GET("/symbols", h.Symbols.List)
		api.GET("/news", h.News.List)
		api.GET("/news/:coin", h.News.ByCoin)
		api.GET("/fear-greed", h.FearGreed.Get)
	}

	// manual collector triggers
	admin := api.Group("/admin")
	admin.Use(jwtmw.AdminRequired(opts.AdminJWTSecret))
	{
		admin.POST("/save-current-data", h.Prices.SaveCurrentData)
		admin.POST("/scrape-news", h.News.Scrape)
	}

	return r
}
