// Package dto holds the wire shapes of Binance market-data responses.
package dto

import "encoding/json"

// ExchangeInfoResponse is the body of GET /exchangeInfo, reduced to the
// fields the client reads.
type ExchangeInfoResponse struct {
	Symbols []ExchangeSymbol `json:"symbols"`
}

// ExchangeSymbol describes one listed trading pair.
type ExchangeSymbol struct {
	Symbol     string `json:"symbol"`
	Status     string `json:"status"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}

// Ticker24h is one element of GET /ticker/24hr. Numbers arrive as strings.
type Ticker24h struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	CloseTime          int64  `json:"closeTime"`
}

// KlineRow is one element of GET /klines: a positional array whose first six
// fields are open time, open, high, low, close and volume.
type KlineRow []json.RawMessage
