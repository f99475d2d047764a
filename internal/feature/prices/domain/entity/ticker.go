// Package entity defines the domain types of the prices feature.
package entity

import "time"

// Ticker is one symbol's 24-hour market snapshot.
type Ticker struct {
	Symbol             string
	CurrentPrice       float64
	HighPrice          float64
	LowPrice           float64
	Volume             float64
	PriceChange        float64
	PriceChangePercent float64
	Timestamp          time.Time
}

// PricePoint is one persisted snapshot as shown in a price history.
type PricePoint struct {
	Symbol        string
	Price         float64
	Volume        float64
	ChangePercent float64
	Timestamp     time.Time
}

// Stats summarizes the persisted price snapshots.
type Stats struct {
	TotalSymbols int
	Symbols      []string
	TotalRecords int64
}
