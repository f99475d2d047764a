// Package dto holds the JSON shapes of the symbollist endpoints.
package dto

// SymbolItem is one tracked trading pair.
type SymbolItem struct {
	Code       string `json:"code"`
	BaseAsset  string `json:"base_asset"`
	QuoteAsset string `json:"quote_asset"`
}

// SymbolListResponse is the body of GET /api/symbols.
type SymbolListResponse struct {
	Success bool         `json:"success"`
	Data    []SymbolItem `json:"data"`
	Total   int          `json:"total"`
}
