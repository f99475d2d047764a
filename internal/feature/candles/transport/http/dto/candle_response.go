// Package dto holds the JSON shapes returned by the klines endpoint.
package dto

// CandleResponse is one OHLCV bar. Time is the open time in unix milliseconds.
type CandleResponse struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// KlinesResponse is the body of GET /api/klines/:symbol.
type KlinesResponse struct {
	Success         bool             `json:"success"`
	Symbol          string           `json:"symbol"`
	Interval        string           `json:"interval"`
	Data            []CandleResponse `json:"data"`
	Cached          bool             `json:"cached"`
	CacheAgeSeconds *int             `json:"cache_age_seconds,omitempty"`
}
