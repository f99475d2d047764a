// Package dto holds the JSON shapes of the news endpoints.
package dto

import "time"

// NewsItemResponse is one stored article.
type NewsItemResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	URL          string     `json:"url"`
	Source       string     `json:"source"`
	PublishedAt  *time.Time `json:"published_at"`
	RelatedCoins []string   `json:"related_coins"`
	Timestamp    time.Time  `json:"timestamp"`
}

// NewsListResponse is the body of GET /api/news and GET /api/news/:coin.
type NewsListResponse struct {
	Success bool               `json:"success"`
	Coin    string             `json:"coin,omitempty"`
	Data    []NewsItemResponse `json:"data"`
	Count   int                `json:"count"`
}

// ScrapeResponse is the body of POST /api/admin/scrape-news.
type ScrapeResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TotalScraped int    `json:"total_scraped"`
	SavedCount   int    `json:"saved_count"`
	SkippedCount int    `json:"skipped_count"`
	FailedCount  int    `json:"failed_count"`
}
