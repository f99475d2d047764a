package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		symbol   string
		interval string
		limit    int
		want     RequestKey
	}{
		{"defaults applied", "btc", "", 0, RequestKey{"BTCUSDT", "1h", 24}},
		{"suffix kept", "ethusdt", "4h", 100, RequestKey{"ETHUSDT", "4h", 100}},
		{"whitespace trimmed", "  sol ", " 1d ", 10, RequestKey{"SOLUSDT", "1d", 10}},
		{"negative limit", "BTC", "1m", -5, RequestKey{"BTCUSDT", "1m", 24}},
		{"limit capped", "BTC", "1m", 5000, RequestKey{"BTCUSDT", "1m", MaxLimit}},
		{"empty symbol stays empty", "", "", 0, RequestKey{"", "1h", 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewRequestKey(tt.symbol, tt.interval, tt.limit, "usdt"))
		})
	}
}

func TestRequestKey_Equality(t *testing.T) {
	t.Parallel()

	a := NewRequestKey("btc", "", 0, "USDT")
	b := NewRequestKey("BTCUSDT", "1h", 24, "USDT")
	assert.Equal(t, a, b)

	m := map[RequestKey]int{a: 1}
	assert.Equal(t, 1, m[b])
	assert.Equal(t, "BTCUSDT:1h:24", a.String())
}
