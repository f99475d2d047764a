// Package entity defines the domain types of the candles feature.
package entity

import "time"

// Candle is one OHLCV bar as returned by the market-data provider.
type Candle struct {
	OpenTime time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   float64
}
