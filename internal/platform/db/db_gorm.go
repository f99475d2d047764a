// Package db opens the relational store. SQLite is the default for local
// runs; a postgres:// URL selects PostgreSQL.
package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const retryInterval = 3 * time.Second

// Config holds database settings.
type Config struct {
	URL            string        // postgres://..., sqlite://path or a bare file path
	MaxOpenConns   int           // pool size for PostgreSQL
	RunMigrations  bool          // run AutoMigrate on open
	ConnectTimeout time.Duration // how long to keep retrying the first connection
}

// Dialector returns the GORM dialector for a database URL.
func Dialector(rawURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return postgres.Open(rawURL), nil
	case strings.HasPrefix(rawURL, "sqlite:///"):
		return sqlite.Open(strings.TrimPrefix(rawURL, "sqlite:///")), nil
	case strings.HasPrefix(rawURL, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(rawURL, "sqlite://")), nil
	case rawURL == "":
		return nil, fmt.Errorf("database url is empty")
	case strings.Contains(rawURL, "://"):
		return nil, fmt.Errorf("unsupported database url scheme in %q", redact(rawURL))
	default:
		return sqlite.Open(rawURL), nil
	}
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(ctx context.Context, open func() (*gorm.DB, error), timeout time.Duration, log logrus.FieldLogger) (*gorm.DB, error) {
	return connectWithRetry(ctx, open, timeout, retryInterval, log)
}

func connectWithRetry(ctx context.Context, open func() (*gorm.DB, error), timeout, interval time.Duration, log logrus.FieldLogger) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open()
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		log.WithError(err).Warn("db connect failed, retrying")

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("db connect: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
}

// Open connects to the database described by cfg and migrates models when
// cfg.RunMigrations is set.
func Open(ctx context.Context, cfg Config, log logrus.FieldLogger, models ...any) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.URL)
	if err != nil {
		return nil, err
	}

	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
	db, err := ConnectWithRetry(ctx, func() (*gorm.DB, error) {
		return gorm.Open(dialector, gcfg)
	}, cfg.ConnectTimeout, log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	if dialector.Name() == "sqlite" {
		// SQLite allows a single writer at a time.
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	if cfg.RunMigrations && len(models) > 0 {
		if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	log.WithField("driver", dialector.Name()).Info("database connected")
	return db, nil
}

// redact hides the password of a URL-shaped DSN.
func redact(rawURL string) string {
	at := strings.LastIndex(rawURL, "@")
	scheme := strings.Index(rawURL, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return rawURL
	}
	userinfo := rawURL[scheme+3 : at]
	if colon := strings.Index(userinfo, ":"); colon >= 0 {
		return rawURL[:scheme+3] + userinfo[:colon] + ":***" + rawURL[at:]
	}
	return rawURL
}
