// Package dto holds the JSON shapes of the prices endpoints.
package dto

import "time"

// TickerResponse is one live ticker.
type TickerResponse struct {
	Symbol             string    `json:"symbol"`
	CurrentPrice       float64   `json:"current_price"`
	HighPrice          float64   `json:"high_price"`
	LowPrice           float64   `json:"low_price"`
	Volume             float64   `json:"volume"`
	PriceChange        float64   `json:"price_change"`
	PriceChangePercent float64   `json:"price_change_percent"`
	Timestamp          time.Time `json:"timestamp"`
}

// CurrentPricesResponse is the body of GET /api/current-prices.
type CurrentPricesResponse struct {
	Success    bool             `json:"success"`
	Data       []TickerResponse `json:"data"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
	Timestamp  time.Time        `json:"timestamp"`
}

// HistoryPoint is one stored snapshot.
type HistoryPoint struct {
	Timestamp     time.Time `json:"timestamp"`
	Price         float64   `json:"price"`
	Volume        float64   `json:"volume"`
	ChangePercent float64   `json:"change_percent"`
}

// HistoryResponse is the body of GET /api/history/:symbol.
type HistoryResponse struct {
	Success bool           `json:"success"`
	Symbol  string         `json:"symbol"`
	Data    []HistoryPoint `json:"data"`
}

// StatsData summarizes stored snapshots.
type StatsData struct {
	TotalSymbols int      `json:"total_symbols"`
	Symbols      []string `json:"symbols"`
	TotalRecords int64    `json:"total_records"`
}

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	Success bool      `json:"success"`
	Data    StatsData `json:"data"`
}

// SaveResponse is the body of POST /api/admin/save-current-data.
type SaveResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	SavedCount  int    `json:"saved_count"`
	FailedCount int    `json:"failed_count"`
}
