// Package usecase serves the Fear & Greed index with a short-lived cache.
package usecase

import (
	"context"
	"sync"
	"time"

	"crypto_dashboard/internal/feature/sentiment/domain/entity"
)

const (
	// DefaultDays is the number of daily readings returned.
	DefaultDays = 30
	// DefaultCacheTTL bounds how often the provider is called. The index
	// changes once a day.
	DefaultCacheTTL = 5 * time.Minute
)

// FearGreedSource fetches index readings, newest first.
type FearGreedSource interface {
	GetFearGreed(ctx context.Context, limit int) ([]entity.FearGreedPoint, error)
}

// FearGreedUsecase returns the last DefaultDays readings.
type FearGreedUsecase struct {
	source FearGreedSource
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	points    []entity.FearGreedPoint
	fetchedAt time.Time
}

// NewFearGreedUsecase creates a FearGreedUsecase. A non-positive ttl
// disables caching.
func NewFearGreedUsecase(source FearGreedSource, ttl time.Duration) *FearGreedUsecase {
	return &FearGreedUsecase{source: source, ttl: ttl, now: time.Now}
}

// Latest returns the cached readings while younger than the ttl and
// refetches otherwise. A failed refetch is returned as is; stale data is
// not served.
func (u *FearGreedUsecase) Latest(ctx context.Context) ([]entity.FearGreedPoint, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	if u.points != nil && now.Sub(u.fetchedAt) < u.ttl {
		return u.points, nil
	}

	points, err := u.source.GetFearGreed(ctx, DefaultDays)
	if err != nil {
		return nil, err
	}
	u.points, u.fetchedAt = points, now
	return points, nil
}
