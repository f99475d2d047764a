// Package adapters provides the GORM repository of the news feature.
package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crypto_dashboard/internal/feature/news/domain/entity"
	"crypto_dashboard/internal/feature/news/usecase"
	"crypto_dashboard/internal/shared/apperrors"
)

type newsRepository struct {
	db *gorm.DB
}

var _ usecase.NewsRepository = (*newsRepository)(nil)

// NewNewsRepository creates a repository over db.
func NewNewsRepository(db *gorm.DB) *newsRepository {
	return &newsRepository{db: db}
}

// NewsModel is one row of news.
type NewsModel struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"size:500;not null"`
	URL          string    `gorm:"size:1000;not null;uniqueIndex"`
	Source       string    `gorm:"size:100;not null;index"`
	PublishedAt  time.Time `gorm:"index"`
	RelatedCoins *string   `gorm:"size:200"`
	Timestamp    time.Time `gorm:"not null;autoCreateTime"`
}

func (NewsModel) TableName() string {
	return "news"
}

func toModel(n entity.NewsItem) NewsModel {
	m := NewsModel{
		Title:       truncate(n.Title, 500),
		URL:         n.URL,
		Source:      n.Source,
		PublishedAt: n.PublishedAt.UTC(),
	}
	if len(n.RelatedCoins) > 0 {
		coins := strings.Join(n.RelatedCoins, ",")
		m.RelatedCoins = &coins
	}
	return m
}

func toEntity(m NewsModel) entity.NewsItem {
	n := entity.NewsItem{
		ID:          m.ID,
		Title:       m.Title,
		URL:         m.URL,
		Source:      m.Source,
		PublishedAt: m.PublishedAt.UTC(),
		CollectedAt: m.Timestamp.UTC(),
	}
	if m.RelatedCoins != nil && *m.RelatedCoins != "" {
		n.RelatedCoins = strings.Split(*m.RelatedCoins, ",")
	}
	return n
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// AddNewsItem inserts item and reports false when its URL is already stored.
func (r *newsRepository) AddNewsItem(ctx context.Context, item entity.NewsItem) (bool, error) {
	m := toModel(item)
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoNothing: true,
	}).Create(&m)
	if res.Error != nil {
		return false, fmt.Errorf("%w: insert news %s: %w", apperrors.ErrPersistence, item.URL, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// RecentNews returns up to limit items, newest published first, optionally
// restricted to one source.
func (r *newsRepository) RecentNews(ctx context.Context, limit int, source string) ([]entity.NewsItem, error) {
	q := r.db.WithContext(ctx).Order("published_at DESC").Order("id DESC")
	if source != "" {
		q = q.Where("source = ?", source)
	}
	return r.find(q, limit)
}

// NewsByCoin returns up to limit items whose related coins mention coin.
func (r *newsRepository) NewsByCoin(ctx context.Context, coin string, limit int) ([]entity.NewsItem, error) {
	q := r.db.WithContext(ctx).
		Where("related_coins LIKE ?", "%"+strings.ToUpper(coin)+"%").
		Order("published_at DESC").
		Order("id DESC")
	return r.find(q, limit)
}

func (r *newsRepository) find(q *gorm.DB, limit int) ([]entity.NewsItem, error) {
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []NewsModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.NewsItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
