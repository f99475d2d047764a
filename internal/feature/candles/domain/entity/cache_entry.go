package entity

import "time"

// CacheEntry is a cached klines payload and the time it was fetched.
type CacheEntry struct {
	Payload   []Candle
	FetchedAt time.Time
}

// Age returns how old the entry is at now.
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}
