// Package usecase implements the cached klines lookup.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"crypto_dashboard/internal/feature/candles/domain/entity"
	"crypto_dashboard/internal/shared/apperrors"
)

// DefaultCacheDuration is the read-freshness window for cached klines.
const DefaultCacheDuration = time.Minute

// MarketRepository fetches candles from the market-data provider.
// Interfaces are defined by the consumer (usecase), not the provider.
type MarketRepository interface {
	GetKlines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error)
}

// CacheStore holds fetched klines by RequestKey. Implementations never fail;
// freshness is decided here, not by the store.
type CacheStore interface {
	Get(ctx context.Context, key entity.RequestKey) (entity.CacheEntry, bool)
	Put(ctx context.Context, key entity.RequestKey, payload []entity.Candle, now time.Time)
	Sweep(ctx context.Context, now time.Time, maxAge time.Duration) int
}

// KlinesResult is the answer to one klines lookup.
type KlinesResult struct {
	Key      entity.RequestKey
	Candles  []entity.Candle
	Cached   bool
	CacheAge time.Duration // set only when Cached
}

// KlinesUsecase serves klines from the cache while fresh and from the
// market otherwise.
type KlinesUsecase struct {
	market        MarketRepository
	store         CacheStore
	cacheDuration time.Duration
	quoteAsset    string
	log           logrus.FieldLogger
	now           func() time.Time
	group         singleflight.Group
}

// Option customizes a KlinesUsecase.
type Option func(*KlinesUsecase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *KlinesUsecase) { u.now = now }
}

// NewKlinesUsecase creates a KlinesUsecase. A non-positive cacheDuration
// falls back to DefaultCacheDuration.
func NewKlinesUsecase(market MarketRepository, store CacheStore, cacheDuration time.Duration, quoteAsset string, log logrus.FieldLogger, opts ...Option) *KlinesUsecase {
	if cacheDuration <= 0 {
		cacheDuration = DefaultCacheDuration
	}
	u := &KlinesUsecase{
		market:        market,
		store:         store,
		cacheDuration: cacheDuration,
		quoteAsset:    quoteAsset,
		log:           log,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetKlines returns candles for the normalized (symbol, interval, limit).
// A cache entry younger than the cache duration is served as is. Otherwise
// the market is queried, the result stored and entries older than twice the
// cache duration swept. Concurrent misses for one key share a single
// upstream call.
func (u *KlinesUsecase) GetKlines(ctx context.Context, symbol, interval string, limit int) (KlinesResult, error) {
	key := entity.NewRequestKey(symbol, interval, limit, u.quoteAsset)
	if key.Symbol == "" {
		return KlinesResult{}, fmt.Errorf("%w: symbol is required", apperrors.ErrInvalidArgument)
	}

	if res, ok := u.fromCache(ctx, key); ok {
		return res, nil
	}

	// the shared call must not die with whichever caller started it
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := u.group.Do(key.String(), func() (any, error) {
		if res, ok := u.fromCache(flightCtx, key); ok {
			return res, nil
		}

		// stamped before the call so the entry's age includes upstream latency
		now := u.now()
		candles, err := u.market.GetKlines(flightCtx, key.Symbol, key.Interval, key.Limit)
		if err != nil {
			return nil, err
		}

		u.store.Put(flightCtx, key, candles, now)
		if removed := u.store.Sweep(flightCtx, now, 2*u.cacheDuration); removed > 0 {
			u.log.WithField("removed", removed).Debug("swept expired klines entries")
		}
		return KlinesResult{Key: key, Candles: candles}, nil
	})
	if err != nil {
		return KlinesResult{}, fmt.Errorf("get klines %s: %w", key, err)
	}
	if shared {
		u.log.WithField("key", key.String()).Debug("klines miss coalesced")
	}

	return v.(KlinesResult), nil
}

func (u *KlinesUsecase) fromCache(ctx context.Context, key entity.RequestKey) (KlinesResult, bool) {
	e, ok := u.store.Get(ctx, key)
	if !ok {
		return KlinesResult{}, false
	}
	age := e.Age(u.now())
	if age >= u.cacheDuration {
		return KlinesResult{}, false
	}
	if age < 0 {
		age = 0
	}
	return KlinesResult{Key: key, Candles: e.Payload, Cached: true, CacheAge: age}, true
}
