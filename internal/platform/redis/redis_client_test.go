package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"crypto_dashboard/internal/platform/logger"
)

func TestConfig_Addr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cache:6379", Config{Host: "cache", Port: "6379"}.Addr())
	assert.Equal(t, "[::1]:6380", Config{Host: "::1", Port: "6380"}.Addr())
}

func TestNewRedisClient_MissingHost(t *testing.T) {
	t.Parallel()

	rdb, err := NewRedisClient(context.Background(), Config{Port: "6379"}, logger.NewDiscard())
	assert.Nil(t, rdb)
	assert.ErrorContains(t, err, "REDIS_HOST")
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	// port 1 on loopback refuses connections
	rdb, err := NewRedisClient(context.Background(), Config{Host: "127.0.0.1", Port: "1"}, logger.NewDiscard())
	assert.Nil(t, rdb)
	assert.Error(t, err)
}
