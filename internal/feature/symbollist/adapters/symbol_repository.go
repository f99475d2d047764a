// Package adapters provides the GORM repository of the symbollist feature.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crypto_dashboard/internal/feature/symbollist/domain/entity"
	"crypto_dashboard/internal/feature/symbollist/usecase"
)

// symbolRepository implements usecase.SymbolRepository with GORM.
type symbolRepository struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolRepository)(nil)

// NewSymbolRepository creates a repository over db.
func NewSymbolRepository(db *gorm.DB) *symbolRepository {
	return &symbolRepository{db: db}
}

// ReplaceActive upserts symbols as active and deactivates every other symbol
// with the same quote asset, in one transaction.
func (r *symbolRepository) ReplaceActive(ctx context.Context, quoteAsset string, symbols []entity.Symbol) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		codes := make([]string, 0, len(symbols))
		for i := range symbols {
			symbols[i].IsActive = true
			codes = append(codes, symbols[i].Code)
		}

		if len(symbols) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{"base_asset", "quote_asset", "is_active", "sort_key", "updated_at"}),
			}).Create(&symbols).Error; err != nil {
				return err
			}
		}

		q := tx.Model(&entity.Symbol{}).Where("quote_asset = ?", quoteAsset)
		if len(codes) > 0 {
			q = q.Where("code NOT IN ?", codes)
		}
		return q.Update("is_active", false).Error
	})
}

// ListActive returns all active symbols in sort_key order.
func (r *symbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// ListActiveCodes returns only the codes of active symbols in sort_key order.
func (r *symbolRepository) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
