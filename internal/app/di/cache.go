package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"crypto_dashboard/internal/feature/candles/usecase"
	"crypto_dashboard/internal/platform/cache"
)

// NewKlinesStore returns the klines cache store. When rdb is available the
// store lives in Redis with keys expiring after twice the cache duration;
// otherwise it falls back to process memory.
func NewKlinesStore(rdb *redis.Client, cacheDuration time.Duration, log logrus.FieldLogger) usecase.CacheStore {
	if rdb != nil {
		return cache.NewRedisStore(rdb, 2*cacheDuration, "klines", log)
	}
	return cache.NewMemoryStore()
}
