package di

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"crypto_dashboard/internal/app/config"
	candleusecase "crypto_dashboard/internal/feature/candles/usecase"
	newsadapters "crypto_dashboard/internal/feature/news/adapters"
	"crypto_dashboard/internal/feature/news/adapters/rss"
	newsusecase "crypto_dashboard/internal/feature/news/usecase"
	priceadapters "crypto_dashboard/internal/feature/prices/adapters"
	priceusecase "crypto_dashboard/internal/feature/prices/usecase"
	sentimentusecase "crypto_dashboard/internal/feature/sentiment/usecase"
	symboladapters "crypto_dashboard/internal/feature/symbollist/adapters"
	symbolentity "crypto_dashboard/internal/feature/symbollist/domain/entity"
	symbolusecase "crypto_dashboard/internal/feature/symbollist/usecase"
	"crypto_dashboard/internal/platform/db"
	"crypto_dashboard/internal/platform/externalapi/binance"
	infrahttp "crypto_dashboard/internal/platform/http"
	infraredis "crypto_dashboard/internal/platform/redis"
	"crypto_dashboard/internal/platform/scheduler"
)

// App holds the wired components shared by the server and the collector.
type App struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Market *binance.Client

	Symbols        *symbolusecase.SymbolUsecase
	Klines         *candleusecase.KlinesUsecase
	Prices         *priceusecase.PricesUsecase
	PriceCollector *priceusecase.PriceCollector
	News           *newsusecase.NewsUsecase
	FearGreed      *sentimentusecase.FearGreedUsecase

	cfg *config.Config
	log logrus.FieldLogger
}

// Models lists every table migrated at startup.
func Models() []any {
	return []any{&symbolentity.Symbol{}, &priceadapters.PriceSnapshotModel{}, &newsadapters.NewsModel{}}
}

// Build opens the database (and Redis when configured) and wires every
// usecase. Close releases what Build opened.
func Build(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*App, error) {
	sources, err := rss.LoadSources(cfg.NewsFeedsFile)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Open(ctx, cfg.Database, log.WithField("component", "db"), Models()...)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	var rdb *redis.Client
	if cfg.CacheBackend == config.CacheBackendRedis {
		rdb, err = infraredis.NewRedisClient(ctx, cfg.Redis, log.WithField("component", "redis"))
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, using in-memory klines cache")
			rdb = nil
		}
	}

	market := NewMarket(cfg.Binance, log.WithField("component", "binance"))
	quote := market.QuoteAsset()

	symbols := symbolusecase.NewSymbolUsecase(symboladapters.NewSymbolRepository(gdb), market, quote, log.WithField("component", "symbols"))
	priceRepo := priceadapters.NewPriceRepository(gdb)
	feeds := rss.NewFeeds(sources, infrahttp.NewHTTPClient(cfg.Binance.Timeout))

	return &App{
		DB:     gdb,
		Redis:  rdb,
		Market: market,

		Symbols: symbols,
		Klines: candleusecase.NewKlinesUsecase(market, NewKlinesStore(rdb, cfg.KlinesCacheDuration, log),
			cfg.KlinesCacheDuration, quote, log.WithField("component", "klines")),
		Prices:         priceusecase.NewPricesUsecase(market, symbols, priceRepo, quote),
		PriceCollector: priceusecase.NewPriceCollector(market, symbols, priceRepo, log.WithField("component", "price_collector")),
		News:           newsusecase.NewNewsUsecase(feeds, newsadapters.NewNewsRepository(gdb), log.WithField("component", "news")),
		FearGreed:      sentimentusecase.NewFearGreedUsecase(NewFearGreed(cfg.FearGreed), sentimentusecase.DefaultCacheTTL),

		cfg: cfg,
		log: log,
	}, nil
}

// Jobs returns the periodic collector jobs.
func (a *App) Jobs() []scheduler.Job {
	return []scheduler.Job{
		{
			Name:       "price_collector",
			Interval:   a.cfg.PriceCollectInterval,
			RunOnStart: a.cfg.CollectOnStart,
			Run: func(ctx context.Context) error {
				_, err := a.PriceCollector.Collect(ctx)
				return err
			},
		},
		{
			Name:       "news_collector",
			Interval:   a.cfg.NewsCollectInterval,
			RunOnStart: a.cfg.CollectOnStart,
			Run: func(ctx context.Context) error {
				_, err := a.News.Collect(ctx, a.cfg.NewsPerSource)
				return err
			},
		},
	}
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	} else {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
