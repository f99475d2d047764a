// Package dto holds the JSON shapes of the sentiment endpoints.
package dto

// FearGreedPoint mirrors one reading of the provider's payload.
type FearGreedPoint struct {
	Value               string `json:"value"`
	ValueClassification string `json:"value_classification"`
	Timestamp           string `json:"timestamp"`
	TimeUntilUpdate     string `json:"time_until_update,omitempty"`
}

// FearGreedResponse is the body of GET /api/fear-greed.
type FearGreedResponse struct {
	Success bool             `json:"success"`
	Data    []FearGreedPoint `json:"data"`
}
