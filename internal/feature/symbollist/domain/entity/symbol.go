// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is a trading pair the dashboard tracks, e.g. BTCUSDT.
// SortKey keeps the exchange's listing order.
type Symbol struct {
	ID         uint      `gorm:"primaryKey"`
	Code       string    `gorm:"size:32;not null;uniqueIndex"`
	BaseAsset  string    `gorm:"size:16;not null"`
	QuoteAsset string    `gorm:"size:16;not null;index"`
	IsActive   bool      `gorm:"not null;default:true"`
	SortKey    int       `gorm:"not null;default:0"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
