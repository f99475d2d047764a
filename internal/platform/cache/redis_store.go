package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"crypto_dashboard/internal/feature/candles/domain/entity"
	"crypto_dashboard/internal/feature/candles/usecase"
)

const scanCount = 200

// RedisStore keeps klines entries in Redis as JSON. Redis failures are
// logged and reported as a miss, so callers never see an error.
type RedisStore struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	log       logrus.FieldLogger
}

var _ usecase.CacheStore = (*RedisStore)(nil)

// redisEntry is the stored form of entity.CacheEntry.
type redisEntry struct {
	Payload   []entity.Candle `json:"payload"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// NewRedisStore creates a RedisStore. ttl bounds how long Redis keeps a key
// when no sweep runs; if 0 it defaults to 2 minutes. If namespace is empty it
// uses "klines".
func NewRedisStore(rdb *redis.Client, ttl time.Duration, namespace string, log logrus.FieldLogger) *RedisStore {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	if namespace == "" {
		namespace = "klines"
	}
	return &RedisStore{rdb: rdb, ttl: ttl, namespace: namespace, log: log}
}

// Get returns the entry for key. Missing, unreadable or corrupted entries
// are a miss; corrupted ones are deleted.
func (s *RedisStore) Get(ctx context.Context, key entity.RequestKey) (entity.CacheEntry, bool) {
	k := s.cacheKey(key)
	b, err := s.rdb.Get(ctx, k).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).WithField("key", k).Warn("redis get failed")
		}
		return entity.CacheEntry{}, false
	}

	var e redisEntry
	if err := json.Unmarshal(b, &e); err != nil {
		_ = s.rdb.Del(ctx, k).Err()
		return entity.CacheEntry{}, false
	}
	return entity.CacheEntry{Payload: e.Payload, FetchedAt: e.FetchedAt}, true
}

// Put stores the entry for key, replacing any previous one.
func (s *RedisStore) Put(ctx context.Context, key entity.RequestKey, payload []entity.Candle, now time.Time) {
	b, err := json.Marshal(redisEntry{Payload: payload, FetchedAt: now})
	if err != nil {
		s.log.WithError(err).Warn("redis entry marshal failed")
		return
	}
	if err := s.rdb.Set(ctx, s.cacheKey(key), b, s.ttl).Err(); err != nil {
		s.log.WithError(err).WithField("key", s.cacheKey(key)).Warn("redis set failed")
	}
}

// Sweep deletes entries in the namespace older than maxAge and returns how
// many it deleted.
func (s *RedisStore) Sweep(ctx context.Context, now time.Time, maxAge time.Duration) int {
	removed := 0
	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, s.namespace+":*", scanCount).Result()
		if err != nil {
			s.log.WithError(err).Warn("redis scan failed")
			return removed
		}

		stale := make([]string, 0, len(keys))
		for _, k := range keys {
			b, err := s.rdb.Get(ctx, k).Bytes()
			if err != nil {
				continue
			}
			var e redisEntry
			if err := json.Unmarshal(b, &e); err != nil || now.Sub(e.FetchedAt) > maxAge {
				stale = append(stale, k)
			}
		}
		if len(stale) > 0 {
			n, err := s.rdb.Del(ctx, stale...).Result()
			if err != nil {
				s.log.WithError(err).Warn("redis delete failed")
			}
			removed += int(n)
		}

		cursor = next
		if cursor == 0 {
			return removed
		}
	}
}

func (s *RedisStore) cacheKey(key entity.RequestKey) string {
	return fmt.Sprintf("%s:%s:%s:%d", s.namespace, safe(key.Symbol), safe(key.Interval), key.Limit)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
