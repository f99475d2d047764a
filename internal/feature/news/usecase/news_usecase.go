// Package usecase implements news collection and lookup.
package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"crypto_dashboard/internal/feature/news/domain/entity"
	"crypto_dashboard/internal/shared/apperrors"
)

const (
	// DefaultListLimit is the number of items returned by List and ByCoin.
	DefaultListLimit = 20
	// MaxListLimit caps the caller-provided limit.
	MaxListLimit = 100
	// DefaultPerSource is the number of items taken from each feed per run.
	DefaultPerSource = 10
	// MaxPerSource caps the number of items taken from each feed per run.
	MaxPerSource = 50
)

// Feed fetches the latest items of one news source.
// Interfaces are defined by the consumer (usecase), not the provider.
type Feed interface {
	Name() string
	Fetch(ctx context.Context, limit int) ([]entity.NewsItem, error)
}

// NewsRepository persists and reads news items.
type NewsRepository interface {
	AddNewsItem(ctx context.Context, item entity.NewsItem) (bool, error)
	RecentNews(ctx context.Context, limit int, source string) ([]entity.NewsItem, error)
	NewsByCoin(ctx context.Context, coin string, limit int) ([]entity.NewsItem, error)
}

// CollectResult counts the outcome of one collection run.
type CollectResult struct {
	Scraped int
	Saved   int
	Skipped int
	Failed  int
}

// NewsUsecase collects news from feeds and serves stored news.
type NewsUsecase struct {
	feeds []Feed
	repo  NewsRepository
	log   logrus.FieldLogger
}

// NewNewsUsecase creates a NewsUsecase.
func NewNewsUsecase(feeds []Feed, repo NewsRepository, log logrus.FieldLogger) *NewsUsecase {
	return &NewsUsecase{feeds: feeds, repo: repo, log: log}
}

// Scrape fetches up to perSource items from every feed, drops repeated URLs
// and returns them newest first. A failing feed contributes nothing.
func (u *NewsUsecase) Scrape(ctx context.Context, perSource int) []entity.NewsItem {
	switch {
	case perSource <= 0:
		perSource = DefaultPerSource
	case perSource > MaxPerSource:
		perSource = MaxPerSource
	}

	seen := make(map[string]struct{})
	var out []entity.NewsItem
	for _, f := range u.feeds {
		items, err := f.Fetch(ctx, perSource)
		if err != nil {
			u.log.WithError(err).WithField("source", f.Name()).Warn("failed to fetch news feed")
			continue
		}
		for _, it := range items {
			if _, dup := seen[it.URL]; dup {
				continue
			}
			seen[it.URL] = struct{}{}
			out = append(out, it)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out
}

// Collect scrapes all feeds and stores the new items. Already stored URLs
// count as skipped. A failed write is logged and counted and the run goes on.
func (u *NewsUsecase) Collect(ctx context.Context, perSource int) (CollectResult, error) {
	items := u.Scrape(ctx, perSource)
	res := CollectResult{Scraped: len(items)}
	for _, it := range items {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		ok, err := u.repo.AddNewsItem(ctx, it)
		switch {
		case err != nil:
			res.Failed++
			u.log.WithError(err).WithField("url", it.URL).Error("failed to save news item")
		case !ok:
			res.Skipped++
		default:
			res.Saved++
		}
	}

	u.log.WithFields(logrus.Fields{"scraped": res.Scraped, "saved": res.Saved, "skipped": res.Skipped, "failed": res.Failed}).Info("news collected")
	return res, nil
}

// List returns recent stored news, optionally from one source.
func (u *NewsUsecase) List(ctx context.Context, limit int, source string) ([]entity.NewsItem, error) {
	return u.repo.RecentNews(ctx, clampLimit(limit), strings.TrimSpace(source))
}

// ByCoin returns recent stored news related to coin.
func (u *NewsUsecase) ByCoin(ctx context.Context, coin string, limit int) ([]entity.NewsItem, error) {
	coin = strings.ToUpper(strings.TrimSpace(coin))
	if coin == "" {
		return nil, fmt.Errorf("%w: coin is required", apperrors.ErrInvalidArgument)
	}
	return u.repo.NewsByCoin(ctx, coin, clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
