package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
)

// CollectResult counts the outcome of one collector run.
type CollectResult struct {
	Saved  int
	Failed int
}

// PriceCollector snapshots the tracked symbols' tickers into the repository.
type PriceCollector struct {
	source  TickerSource
	symbols SymbolProvider
	repo    PriceRepository
	log     logrus.FieldLogger
}

// NewPriceCollector creates a PriceCollector.
func NewPriceCollector(source TickerSource, symbols SymbolProvider, repo PriceRepository, log logrus.FieldLogger) *PriceCollector {
	return &PriceCollector{source: source, symbols: symbols, repo: repo, log: log}
}

// Collect fetches all tickers in one call and saves each one. A failed save
// is logged and counted and the run continues with the next record. Only a
// failed ticker fetch is returned as an error.
func (pc *PriceCollector) Collect(ctx context.Context) (CollectResult, error) {
	var res CollectResult

	tickers, err := pc.source.GetTickers(ctx, pc.symbols.TrackedSymbols(ctx))
	if err != nil {
		return res, err
	}

	for _, t := range tickers {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		ok, err := pc.repo.AddPriceSnapshot(ctx, t)
		if err != nil || !ok {
			res.Failed++
			pc.log.WithError(err).WithField("symbol", t.Symbol).Error("failed to save price snapshot")
			continue
		}
		res.Saved++
	}

	pc.log.WithFields(logrus.Fields{"saved": res.Saved, "failed": res.Failed}).Info("price snapshot collected")
	return res, nil
}
