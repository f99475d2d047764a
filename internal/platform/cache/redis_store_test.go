package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crypto_dashboard/internal/platform/logger"
)

func entryJSON(t *testing.T, closes []float64, fetchedAt time.Time) string {
	t.Helper()
	b, err := json.Marshal(redisEntry{Payload: candles(closes...), FetchedAt: fetchedAt})
	require.NoError(t, err)
	return string(b)
}

func TestNewRedisStore_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"zero values", 0, "", 2 * time.Minute, "klines"},
		{"negative ttl", -time.Second, "", 2 * time.Minute, "klines"},
		{"custom values", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewRedisStore(nil, tt.ttl, tt.namespace, logger.NewDiscard())
			assert.Equal(t, tt.expectedTTL, s.ttl)
			assert.Equal(t, tt.expectedNamespace, s.namespace)
		})
	}
}

func TestRedisStore_CacheKey(t *testing.T) {
	t.Parallel()

	s := NewRedisStore(nil, time.Minute, "klines", logger.NewDiscard())
	assert.Equal(t, "klines:BTCUSDT:1h:24", s.cacheKey(keyBTC))
	assert.Equal(t, "klines:A_B:1_h:5", s.cacheKey(entityKey("A B", "1:h", 5)))
}

func TestRedisStore_Get(t *testing.T) {
	t.Parallel()

	hit := entryJSON(t, []float64{1, 2}, t0)

	tests := []struct {
		name   string
		setup  func(mock redismock.ClientMock)
		wantOK bool
	}{
		{
			name: "hit",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("klines:BTCUSDT:1h:24").SetVal(hit)
			},
			wantOK: true,
		},
		{
			name: "miss",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("klines:BTCUSDT:1h:24").RedisNil()
			},
		},
		{
			name: "redis error is a miss",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("klines:BTCUSDT:1h:24").SetErr(errors.New("connection refused"))
			},
		},
		{
			name: "corrupted entry is deleted",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet("klines:BTCUSDT:1h:24").SetVal("invalid json")
				mock.ExpectDel("klines:BTCUSDT:1h:24").SetVal(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rdb, mock := redismock.NewClientMock()
			defer func() { _ = rdb.Close() }()
			tt.setup(mock)

			s := NewRedisStore(rdb, time.Minute, "klines", logger.NewDiscard())
			got, ok := s.Get(context.Background(), keyBTC)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, candles(1, 2), got.Payload)
				assert.True(t, t0.Equal(got.FetchedAt))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisStore_Put(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	b, err := json.Marshal(redisEntry{Payload: candles(3), FetchedAt: t0})
	require.NoError(t, err)
	mock.ExpectSet("klines:BTCUSDT:1h:24", b, 2*time.Minute).SetVal("OK")

	s := NewRedisStore(rdb, 2*time.Minute, "klines", logger.NewDiscard())
	s.Put(context.Background(), keyBTC, candles(3), t0)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Put_ErrorIsSwallowed(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	b, err := json.Marshal(redisEntry{Payload: candles(3), FetchedAt: t0})
	require.NoError(t, err)
	mock.ExpectSet("klines:BTCUSDT:1h:24", b, 2*time.Minute).SetErr(errors.New("READONLY"))

	s := NewRedisStore(rdb, 2*time.Minute, "klines", logger.NewDiscard())
	assert.NotPanics(t, func() { s.Put(context.Background(), keyBTC, candles(3), t0) })
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Sweep(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	now := t0.Add(10 * time.Minute)
	maxAge := 2 * time.Minute

	// first page
	mock.ExpectScan(0, "klines:*", scanCount).SetVal([]string{"klines:A:1h:24", "klines:B:1h:24"}, 7)
	mock.ExpectGet("klines:A:1h:24").SetVal(entryJSON(t, []float64{1}, now.Add(-30*time.Second)))
	mock.ExpectGet("klines:B:1h:24").SetVal(entryJSON(t, []float64{2}, now.Add(-5*time.Minute)))
	mock.ExpectDel("klines:B:1h:24").SetVal(1)
	// second page
	mock.ExpectScan(7, "klines:*", scanCount).SetVal([]string{"klines:C:1h:24", "klines:D:1h:24"}, 0)
	mock.ExpectGet("klines:C:1h:24").SetVal("garbage")
	mock.ExpectGet("klines:D:1h:24").SetVal(entryJSON(t, []float64{4}, now.Add(-maxAge)))
	mock.ExpectDel("klines:C:1h:24").SetVal(1)

	s := NewRedisStore(rdb, time.Minute, "klines", logger.NewDiscard())
	removed := s.Sweep(context.Background(), now, maxAge)

	assert.Equal(t, 2, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Sweep_ScanError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "klines:*", scanCount).SetErr(errors.New("timeout"))

	s := NewRedisStore(rdb, time.Minute, "klines", logger.NewDiscard())
	assert.Zero(t, s.Sweep(context.Background(), t0, time.Minute))
	assert.NoError(t, mock.ExpectationsWereMet())
}
