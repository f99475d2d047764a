// Package entity defines the domain types of the sentiment feature.
package entity

// FearGreedPoint is one daily reading of the Crypto Fear & Greed Index.
// Values are kept as the provider sends them.
type FearGreedPoint struct {
	Value               string
	ValueClassification string
	Timestamp           string
	TimeUntilUpdate     string
}
