// Command collector runs the price and news jobs once and exits, for
// cron-style deployments.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"crypto_dashboard/internal/app/config"
	"crypto_dashboard/internal/app/di"
	"crypto_dashboard/internal/platform/logger"
	"crypto_dashboard/internal/platform/shutdown"
)

func main() {
	var (
		prices  = flag.Bool("prices", true, "collect a price snapshot")
		news    = flag.Bool("news", true, "collect news")
		timeout = flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	runLog := lg.WithComponent("collector")

	ctx, stop := shutdown.NewContext(context.Background())
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	app, err := di.Build(ctx, cfg, lg)
	if err != nil {
		runLog.WithError(err).Fatal("failed to build application")
	}
	defer func() { _ = app.Close() }()

	if _, err := app.Symbols.Sync(ctx); err != nil {
		runLog.WithError(err).Warn("symbol sync failed")
	}

	failed := false
	if *prices {
		res, err := app.PriceCollector.Collect(ctx)
		if err != nil {
			failed = true
			runLog.WithError(err).Error("price collection failed")
		} else {
			runLog.WithFields(logrus.Fields{"saved": res.Saved, "failed": res.Failed}).Info("prices done")
		}
	}
	if *news {
		res, err := app.News.Collect(ctx, cfg.NewsPerSource)
		if err != nil {
			failed = true
			runLog.WithError(err).Error("news collection failed")
		} else {
			runLog.WithFields(logrus.Fields{"scraped": res.Scraped, "saved": res.Saved, "skipped": res.Skipped, "failed": res.Failed}).Info("news done")
		}
	}

	if failed {
		_ = app.Close()
		os.Exit(1)
	}
}
