// Package usecase implements the price snapshot reads and the periodic
// price collector.
package usecase

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"crypto_dashboard/internal/feature/prices/domain/entity"
	"crypto_dashboard/internal/shared/apperrors"
)

const (
	// DefaultPageLimit is the page size of the current prices listing.
	DefaultPageLimit = 50
	// MaxPageLimit caps the page size of the current prices listing.
	MaxPageLimit = 1000
	// HistoryLimit is the number of snapshots returned by History.
	HistoryLimit = 100
)

// TickerSource fetches live 24h tickers. A nil symbols slice means every
// symbol in the configured quote asset.
// Interfaces are defined by the consumer (usecase), not the provider.
type TickerSource interface {
	GetTickers(ctx context.Context, symbols []string) ([]entity.Ticker, error)
}

// SymbolProvider returns the tracked symbols, or nil for all of them.
type SymbolProvider interface {
	TrackedSymbols(ctx context.Context) []string
}

// PriceRepository persists and reads price snapshots.
type PriceRepository interface {
	AddPriceSnapshot(ctx context.Context, t entity.Ticker) (bool, error)
	RecentPrices(ctx context.Context, symbol string, limit int) ([]entity.PricePoint, error)
	DistinctSymbols(ctx context.Context) ([]string, error)
	CountBySymbol(ctx context.Context) (map[string]int64, error)
}

// PricesUsecase serves live and historical prices.
type PricesUsecase struct {
	source     TickerSource
	symbols    SymbolProvider
	repo       PriceRepository
	quoteAsset string
}

// NewPricesUsecase creates a PricesUsecase.
func NewPricesUsecase(source TickerSource, symbols SymbolProvider, repo PriceRepository, quoteAsset string) *PricesUsecase {
	return &PricesUsecase{source: source, symbols: symbols, repo: repo, quoteAsset: strings.ToUpper(quoteAsset)}
}

// CurrentPrices fetches the live tickers of the tracked symbols and returns
// the requested page, ordered by symbol.
func (u *PricesUsecase) CurrentPrices(ctx context.Context, page, limit int) (Page[entity.Ticker], error) {
	tickers, err := u.source.GetTickers(ctx, u.symbols.TrackedSymbols(ctx))
	if err != nil {
		return Page[entity.Ticker]{}, fmt.Errorf("current prices: %w", err)
	}
	sort.Slice(tickers, func(i, j int) bool { return tickers[i].Symbol < tickers[j].Symbol })
	return Paginate(tickers, page, limit), nil
}

// History returns the latest HistoryLimit snapshots of symbol, oldest first.
func (u *PricesUsecase) History(ctx context.Context, symbol string) (string, []entity.PricePoint, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", nil, fmt.Errorf("%w: symbol is required", apperrors.ErrInvalidArgument)
	}
	if !strings.HasSuffix(symbol, u.quoteAsset) {
		symbol += u.quoteAsset
	}

	points, err := u.repo.RecentPrices(ctx, symbol, HistoryLimit)
	if err != nil {
		return symbol, nil, err
	}
	slices.Reverse(points)
	return symbol, points, nil
}

// Stats summarizes the stored snapshots.
func (u *PricesUsecase) Stats(ctx context.Context) (entity.Stats, error) {
	symbols, err := u.repo.DistinctSymbols(ctx)
	if err != nil {
		return entity.Stats{}, err
	}
	counts, err := u.repo.CountBySymbol(ctx)
	if err != nil {
		return entity.Stats{}, err
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	sort.Strings(symbols)
	return entity.Stats{TotalSymbols: len(symbols), Symbols: symbols, TotalRecords: total}, nil
}
