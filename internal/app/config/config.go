// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"crypto_dashboard/internal/platform/db"
	"crypto_dashboard/internal/platform/externalapi/alternativeme"
	"crypto_dashboard/internal/platform/externalapi/binance"
	"crypto_dashboard/internal/platform/logger"
	"crypto_dashboard/internal/platform/redis"
)

// Cache backends accepted by CACHE_BACKEND.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds all configuration for the server and the collector.
type Config struct {
	Port               string
	CORSAllowedOrigins []string
	AdminJWTSecret     string

	Log       logger.Config
	Database  db.Config
	Redis     redis.Config
	Binance   binance.Config
	FearGreed alternativeme.Config

	CacheBackend        string
	KlinesCacheDuration time.Duration

	PriceCollectInterval time.Duration
	NewsCollectInterval  time.Duration
	NewsPerSource        int
	NewsFeedsFile        string
	CollectOnStart       bool
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	p := &parser{}
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		AdminJWTSecret:     os.Getenv("ADMIN_JWT_SECRET"),

		Log: logger.Config{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			MaxAgeDays: p.int("LOG_MAX_AGE_DAYS", 0),
		},
		Database: db.Config{
			URL:            getEnv("DATABASE_URL", "sqlite://crypto_dashboard.db"),
			MaxOpenConns:   p.int("DB_MAX_OPEN_CONNS", 10),
			RunMigrations:  getEnv("RUN_MIGRATIONS", "true") == "true",
			ConnectTimeout: p.duration("DB_CONNECT_TIMEOUT", 60*time.Second),
		},
		Redis: redis.Config{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Binance: binance.Config{
			BaseURLs:           getList("BINANCE_BASE_URLS", binance.DefaultBaseURLs),
			Timeout:            p.duration("BINANCE_TIMEOUT", 10*time.Second),
			QuoteAsset:         strings.ToUpper(getEnv("BINANCE_QUOTE_ASSET", binance.DefaultQuoteAsset)),
			RateLimitPerMinute: p.int("BINANCE_RATE_LIMIT_PER_MINUTE", 1200),
		},
		FearGreed: alternativeme.Config{
			BaseURL: getEnv("FEAR_GREED_BASE_URL", alternativeme.DefaultBaseURL),
			Timeout: p.duration("FEAR_GREED_TIMEOUT", 10*time.Second),
		},

		CacheBackend:        strings.ToLower(getEnv("CACHE_BACKEND", CacheBackendMemory)),
		KlinesCacheDuration: p.duration("KLINES_CACHE_DURATION", time.Minute),

		PriceCollectInterval: p.duration("PRICE_COLLECT_INTERVAL", 10*time.Minute),
		NewsCollectInterval:  p.duration("NEWS_COLLECT_INTERVAL", 30*time.Minute),
		NewsPerSource:        p.int("NEWS_PER_SOURCE", 10),
		NewsFeedsFile:        os.Getenv("NEWS_FEEDS_FILE"),
		CollectOnStart:       getEnv("COLLECT_ON_START", "false") == "true",
	}

	if err := p.err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration values that cannot work together.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	if len(c.Binance.BaseURLs) == 0 {
		errs = append(errs, errors.New("BINANCE_BASE_URLS must list at least one endpoint"))
	}
	if c.Binance.QuoteAsset == "" {
		errs = append(errs, errors.New("BINANCE_QUOTE_ASSET must not be empty"))
	}
	if c.KlinesCacheDuration <= 0 {
		errs = append(errs, errors.New("KLINES_CACHE_DURATION must be positive"))
	}
	if c.PriceCollectInterval <= 0 || c.NewsCollectInterval <= 0 {
		errs = append(errs, errors.New("collect intervals must be positive"))
	}
	if c.NewsPerSource <= 0 {
		errs = append(errs, errors.New("NEWS_PER_SOURCE must be positive"))
	}
	switch c.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.Redis.Host == "" {
			errs = append(errs, errors.New("REDIS_HOST is required when CACHE_BACKEND=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getList splits a comma separated variable, dropping empty items.
func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parser collects conversion errors so Load reports all of them at once.
type parser struct {
	errs []error
}

func (p *parser) int(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (p *parser) err() error {
	return errors.Join(p.errs...)
}
