// Package adapters provides the GORM repository of the prices feature.
package adapters

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"crypto_dashboard/internal/feature/prices/domain/entity"
	"crypto_dashboard/internal/feature/prices/usecase"
	"crypto_dashboard/internal/shared/apperrors"
)

type priceRepository struct {
	db *gorm.DB
}

var _ usecase.PriceRepository = (*priceRepository)(nil)

// NewPriceRepository creates a repository over db.
func NewPriceRepository(db *gorm.DB) *priceRepository {
	return &priceRepository{db: db}
}

// PriceSnapshotModel is one row of coin_prices.
type PriceSnapshotModel struct {
	ID                 uint      `gorm:"primaryKey"`
	Symbol             string    `gorm:"size:20;not null;index"`
	CurrentPrice       float64   `gorm:"not null"`
	HighPrice          float64
	LowPrice           float64
	Volume             float64
	PriceChange        float64
	PriceChangePercent float64
	Timestamp          time.Time `gorm:"not null;index"`
}

func (PriceSnapshotModel) TableName() string {
	return "coin_prices"
}

func toModel(t entity.Ticker) PriceSnapshotModel {
	ts := t.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return PriceSnapshotModel{
		Symbol:             t.Symbol,
		CurrentPrice:       t.CurrentPrice,
		HighPrice:          t.HighPrice,
		LowPrice:           t.LowPrice,
		Volume:             t.Volume,
		PriceChange:        t.PriceChange,
		PriceChangePercent: t.PriceChangePercent,
		Timestamp:          ts.UTC(),
	}
}

// AddPriceSnapshot inserts one snapshot. A failed insert only rolls back
// itself and is reported as ErrPersistence.
func (r *priceRepository) AddPriceSnapshot(ctx context.Context, t entity.Ticker) (bool, error) {
	m := toModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return false, fmt.Errorf("%w: insert price %s: %w", apperrors.ErrPersistence, t.Symbol, err)
	}
	return true, nil
}

// RecentPrices returns up to limit snapshots of symbol, newest first.
func (r *priceRepository) RecentPrices(ctx context.Context, symbol string, limit int) ([]entity.PricePoint, error) {
	var rows []PriceSnapshotModel
	q := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("timestamp DESC").
		Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.PricePoint, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.PricePoint{
			Symbol:        m.Symbol,
			Price:         m.CurrentPrice,
			Volume:        m.Volume,
			ChangePercent: m.PriceChangePercent,
			Timestamp:     m.Timestamp.UTC(),
		})
	}
	return out, nil
}

// DistinctSymbols returns every symbol with at least one snapshot.
func (r *priceRepository) DistinctSymbols(ctx context.Context) ([]string, error) {
	var symbols []string
	if err := r.db.WithContext(ctx).
		Model(&PriceSnapshotModel{}).
		Distinct().
		Order("symbol").
		Pluck("symbol", &symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// CountBySymbol returns the number of snapshots per symbol.
func (r *priceRepository) CountBySymbol(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Symbol string
		N      int64
	}
	if err := r.db.WithContext(ctx).
		Model(&PriceSnapshotModel{}).
		Select("symbol, COUNT(*) AS n").
		Group("symbol").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Symbol] = row.N
	}
	return out, nil
}
