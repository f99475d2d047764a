package entity

import (
	"fmt"
	"strings"
)

const (
	// DefaultInterval is applied when a request omits the interval.
	DefaultInterval = "1h"
	// DefaultLimit is applied when a request omits the limit.
	DefaultLimit = 24
	// MaxLimit is the largest number of bars the provider returns per call.
	MaxLimit = 1000
)

// RequestKey identifies one cached klines query. It is comparable and used
// directly as a map key; build it with NewRequestKey so equal queries
// produce equal keys.
type RequestKey struct {
	Symbol   string
	Interval string
	Limit    int
}

// NewRequestKey normalizes a raw query: the symbol is trimmed and
// uppercased and gets quoteAsset appended when it does not already end with
// it, interval and limit fall back to their defaults when absent, and limit
// is capped at MaxLimit.
func NewRequestKey(symbol, interval string, limit int, quoteAsset string) RequestKey {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	q := strings.ToUpper(quoteAsset)
	if s != "" && q != "" && !strings.HasSuffix(s, q) {
		s += q
	}

	iv := strings.TrimSpace(interval)
	if iv == "" {
		iv = DefaultInterval
	}

	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return RequestKey{Symbol: s, Interval: iv, Limit: limit}
}

// String renders the key as SYMBOL:interval:limit.
func (k RequestKey) String() string {
	return fmt.Sprintf("%s:%s:%d", k.Symbol, k.Interval, k.Limit)
}
