// Package redis connects to the optional Redis cache tier.
package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Config holds the connection settings.
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// NewRedisClient connects and pings the server. The client is closed again
// when the ping fails.
func NewRedisClient(ctx context.Context, cfg Config, log logrus.FieldLogger) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("redis: REDIS_HOST is not set")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		log.WithError(err).WithField("address", cfg.Addr()).Error("Redis connection failed")
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr(), err)
	}

	log.WithField("address", cfg.Addr()).Info("Redis connection successful")
	return rdb, nil
}
