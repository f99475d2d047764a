package rss

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mmcdole/gofeed"

	"crypto_dashboard/internal/feature/news/domain/entity"
	"crypto_dashboard/internal/feature/news/usecase"
)

const userAgent = "Mozilla/5.0 (compatible; crypto-dashboard/1.0)"

// FeedSource fetches one RSS source with gofeed.
type FeedSource struct {
	src    Source
	client *http.Client
	now    func() time.Time
}

var _ usecase.Feed = (*FeedSource)(nil)

// NewFeedSource creates a FeedSource. A nil client uses http.DefaultClient.
func NewFeedSource(src Source, client *http.Client) *FeedSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedSource{src: src, client: client, now: time.Now}
}

// NewFeeds builds one Feed per source.
func NewFeeds(sources []Source, client *http.Client) []usecase.Feed {
	out := make([]usecase.Feed, 0, len(sources))
	for _, s := range sources {
		out = append(out, NewFeedSource(s, client))
	}
	return out
}

// Name returns the source name stored with each item.
func (f *FeedSource) Name() string { return f.src.Name }

// Fetch returns up to limit items in feed order. The source's own limit, if
// set, wins over limit. Items without a title or link are dropped.
func (f *FeedSource) Fetch(ctx context.Context, limit int) ([]entity.NewsItem, error) {
	if f.src.Limit > 0 {
		limit = f.src.Limit
	}

	// gofeed.Parser keeps per-parse state, so each call gets its own.
	fp := gofeed.NewParser()
	fp.Client = f.client
	fp.UserAgent = userAgent

	feed, err := fp.ParseURLWithContext(f.src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.src.Name, err)
	}

	out := make([]entity.NewsItem, 0, min(limit, len(feed.Items)))
	for i, it := range feed.Items {
		if limit > 0 && i >= limit {
			break
		}
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}
		if utf8.RuneCountInString(title) < f.src.MinTitleLen {
			continue
		}
		out = append(out, entity.NewsItem{
			Title:       title,
			URL:         link,
			Source:      f.src.Name,
			PublishedAt: f.publishedAt(it),
		})
	}
	return out, nil
}

func (f *FeedSource) publishedAt(it *gofeed.Item) time.Time {
	switch {
	case it.PublishedParsed != nil:
		return it.PublishedParsed.UTC()
	case it.UpdatedParsed != nil:
		return it.UpdatedParsed.UTC()
	default:
		return f.now().UTC()
	}
}
