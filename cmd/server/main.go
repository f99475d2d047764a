package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"crypto_dashboard/internal/app/config"
	"crypto_dashboard/internal/app/di"
	"crypto_dashboard/internal/app/router"
	candleshandler "crypto_dashboard/internal/feature/candles/transport/handler"
	newshandler "crypto_dashboard/internal/feature/news/transport/handler"
	priceshandler "crypto_dashboard/internal/feature/prices/transport/handler"
	sentimenthandler "crypto_dashboard/internal/feature/sentiment/transport/handler"
	symbollisthandler "crypto_dashboard/internal/feature/symbollist/transport/handler"
	"crypto_dashboard/internal/platform/http/handler"
	"crypto_dashboard/internal/platform/logger"
	"crypto_dashboard/internal/platform/scheduler"
	"crypto_dashboard/internal/platform/shutdown"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	appLog := lg.WithComponent("server")

	ctx, stop := shutdown.NewContext(context.Background())
	defer stop()

	app, err := di.Build(ctx, cfg, lg)
	if err != nil {
		appLog.WithError(err).Fatal("failed to build application")
	}
	defer func() {
		if err := app.Close(); err != nil {
			appLog.WithError(err).Error("failed to close resources")
		}
	}()

	// an empty catalog leaves the stored symbols untouched
	if _, err := app.Symbols.Sync(ctx); err != nil {
		appLog.WithError(err).Warn("symbol sync failed")
	}

	sched := scheduler.New(lg.WithComponent("scheduler"))
	for _, j := range app.Jobs() {
		if err := sched.Add(j); err != nil {
			appLog.WithError(err).Fatal("invalid job")
		}
	}
	sched.Start(ctx)

	if cfg.AdminJWTSecret == "" {
		appLog.Warn("ADMIN_JWT_SECRET is not set; admin endpoints are disabled")
	}

	r := router.NewRouter(router.Handlers{
		Health:    handler.NewAPIHealthHandler(app.Market),
		Candles:   candleshandler.NewCandlesHandler(app.Klines),
		Prices:    priceshandler.NewPricesHandler(app.Prices, app.PriceCollector),
		Symbols:   symbollisthandler.NewSymbolHandler(app.Symbols),
		News:      newshandler.NewNewsHandler(app.News),
		FearGreed: sentimenthandler.NewFearGreedHandler(app.FearGreed),
	}, router.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminJWTSecret:     cfg.AdminJWTSecret,
	}, lg.WithComponent("http"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.WithError(err).Error("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	appLog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Error("graceful shutdown failed")
	}
	sched.Wait()
	appLog.Info("server stopped")
}
