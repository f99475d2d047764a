package usecase_test

import (
	"context"
	"sync"

	"crypto_dashboard/internal/feature/prices/domain/entity"
)

type mockTickerSource struct {
	GetTickersFunc func(ctx context.Context, symbols []string) ([]entity.Ticker, error)
}

func (m *mockTickerSource) GetTickers(ctx context.Context, symbols []string) ([]entity.Ticker, error) {
	return m.GetTickersFunc(ctx, symbols)
}

type stubSymbols []string

func (s stubSymbols) TrackedSymbols(ctx context.Context) []string { return s }

// mockPriceRepository records saved tickers.
type mockPriceRepository struct {
	mu    sync.Mutex
	saved []entity.Ticker

	AddPriceSnapshotFunc func(ctx context.Context, t entity.Ticker) (bool, error)
	RecentPricesFunc     func(ctx context.Context, symbol string, limit int) ([]entity.PricePoint, error)
	DistinctSymbolsFunc  func(ctx context.Context) ([]string, error)
	CountBySymbolFunc    func(ctx context.Context) (map[string]int64, error)
}

func (m *mockPriceRepository) AddPriceSnapshot(ctx context.Context, t entity.Ticker) (bool, error) {
	if m.AddPriceSnapshotFunc != nil {
		ok, err := m.AddPriceSnapshotFunc(ctx, t)
		if !ok || err != nil {
			return ok, err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, t)
	return true, nil
}

func (m *mockPriceRepository) RecentPrices(ctx context.Context, symbol string, limit int) ([]entity.PricePoint, error) {
	return m.RecentPricesFunc(ctx, symbol, limit)
}

func (m *mockPriceRepository) DistinctSymbols(ctx context.Context) ([]string, error) {
	return m.DistinctSymbolsFunc(ctx)
}

func (m *mockPriceRepository) CountBySymbol(ctx context.Context) (map[string]int64, error) {
	return m.CountBySymbolFunc(ctx)
}
