// Package entity defines the domain types of the news feature.
package entity

import "time"

// NewsItem is one article collected from an RSS source. ID and CollectedAt
// are set once the item is stored.
type NewsItem struct {
	ID           uint
	Title        string
	URL          string
	Source       string
	PublishedAt  time.Time
	RelatedCoins []string
	CollectedAt  time.Time
}
