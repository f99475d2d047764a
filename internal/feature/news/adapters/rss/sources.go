// Package rss reads crypto news from RSS and Atom feeds.
package rss

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source describes one feed.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// Limit overrides the per-run item count when positive.
	Limit int `yaml:"limit"`
	// MinTitleLen drops items whose title has fewer runes.
	MinTitleLen int `yaml:"min_title_len"`
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// DefaultSources returns the built-in feed list.
func DefaultSources() []Source {
	return []Source{
		{Name: "Coinness", URL: "https://www.coinness.com/rss"},
		{Name: "TokenPost", URL: "https://www.tokenpost.kr/rss"},
		{Name: "CoinDesk", URL: "https://www.coindesk.com/arc/outboundfeeds/rss/"},
		{Name: "CryptoNews", URL: "https://cryptonews.com/news/feed/"},
		{Name: "CoinTelegraph", URL: "https://cointelegraph.com/rss", MinTitleLen: 11},
	}
}

// LoadSources reads the feed list from a YAML file of the form
//
//	sources:
//	  - name: CoinDesk
//	    url: https://www.coindesk.com/arc/outboundfeeds/rss/
//
// An empty path returns DefaultSources.
func LoadSources(path string) ([]Source, error) {
	if path == "" {
		return DefaultSources(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read news feeds file: %w", err)
	}

	var f sourcesFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse news feeds file %s: %w", path, err)
	}

	var errs []error
	for i, s := range f.Sources {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.URL) == "" {
			errs = append(errs, fmt.Errorf("source %d: name and url are required", i))
		}
	}
	if len(f.Sources) == 0 {
		errs = append(errs, errors.New("no sources defined"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("news feeds file %s: %w", path, err)
	}
	return f.Sources, nil
}
