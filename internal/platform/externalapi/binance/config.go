// Package binance is a client for the Binance public market-data API that
// walks an ordered list of equivalent endpoints until one answers.
package binance

import "time"

// DefaultQuoteAsset is the quote currency symbols are tracked against.
const DefaultQuoteAsset = "USDT"

// DefaultBaseURLs lists the public mirrors in the order they are tried.
var DefaultBaseURLs = []string{
	"https://api.binance.com/api/v3",
	"https://data-api.binance.vision/api/v3",
	"https://api1.binance.com/api/v3",
}

// Config holds configuration for the Binance client.
type Config struct {
	BaseURLs           []string      // tried in order on every call
	Timeout            time.Duration // per-request HTTP timeout
	QuoteAsset         string        // e.g. "USDT"
	RateLimitPerMinute int           // outgoing request budget; 0 disables pacing
}
