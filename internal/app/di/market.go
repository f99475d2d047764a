// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/sirupsen/logrus"

	"crypto_dashboard/internal/platform/externalapi/alternativeme"
	"crypto_dashboard/internal/platform/externalapi/binance"
	infrahttp "crypto_dashboard/internal/platform/http"
	"crypto_dashboard/internal/shared/ratelimiter"
)

// NewMarket creates a Binance client with its own HTTP client and a
// request-rate limiter.
func NewMarket(cfg binance.Config, log logrus.FieldLogger) *binance.Client {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	return binance.NewClient(cfg, httpClient, limiter, log)
}

// NewFearGreed creates an alternative.me client.
func NewFearGreed(cfg alternativeme.Config) *alternativeme.Client {
	return alternativeme.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
