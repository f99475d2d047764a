// Package usecase implements the tracked-symbol registry.
package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"crypto_dashboard/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for tracked symbols.
// Interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ReplaceActive(ctx context.Context, quoteAsset string, symbols []entity.Symbol) error
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// SymbolSource lists the symbols currently trading on the exchange.
// An empty result means the catalog could not be fetched.
type SymbolSource interface {
	ListSymbols(ctx context.Context, quoteAsset string) []string
}

// SymbolUsecase keeps the tracked symbol set in sync with the exchange.
type SymbolUsecase struct {
	repo       SymbolRepository
	source     SymbolSource
	quoteAsset string
	log        logrus.FieldLogger
}

// NewSymbolUsecase creates a new SymbolUsecase.
func NewSymbolUsecase(r SymbolRepository, src SymbolSource, quoteAsset string, log logrus.FieldLogger) *SymbolUsecase {
	return &SymbolUsecase{repo: r, source: src, quoteAsset: strings.ToUpper(quoteAsset), log: log}
}

// Sync replaces the active symbol set with the exchange catalog.
// When the catalog is empty the stored set is left untouched and 0 is returned.
func (u *SymbolUsecase) Sync(ctx context.Context) (int, error) {
	codes := u.source.ListSymbols(ctx, u.quoteAsset)
	if len(codes) == 0 {
		u.log.Warn("exchange returned no symbols, keeping stored set")
		return 0, nil
	}

	symbols := make([]entity.Symbol, 0, len(codes))
	for i, code := range codes {
		symbols = append(symbols, entity.Symbol{
			Code:       code,
			BaseAsset:  strings.TrimSuffix(code, u.quoteAsset),
			QuoteAsset: u.quoteAsset,
			SortKey:    i,
		})
	}
	if err := u.repo.ReplaceActive(ctx, u.quoteAsset, symbols); err != nil {
		return 0, err
	}

	u.log.WithField("count", len(symbols)).Info("symbols synced")
	return len(symbols), nil
}

// TrackedSymbols returns the codes the collectors should snapshot.
// It returns nil when nothing is stored or the lookup fails, which callers
// treat as "every symbol in the quote asset".
func (u *SymbolUsecase) TrackedSymbols(ctx context.Context) []string {
	codes, err := u.repo.ListActiveCodes(ctx)
	if err != nil {
		u.log.WithError(err).Warn("failed to list tracked symbols")
		return nil
	}
	if len(codes) == 0 {
		return nil
	}
	return codes
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}
