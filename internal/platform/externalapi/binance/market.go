package binance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	candleentity "crypto_dashboard/internal/feature/candles/domain/entity"
	candleusecase "crypto_dashboard/internal/feature/candles/usecase"
	priceentity "crypto_dashboard/internal/feature/prices/domain/entity"
	priceusecase "crypto_dashboard/internal/feature/prices/usecase"
	"crypto_dashboard/internal/platform/externalapi/binance/dto"
	"crypto_dashboard/internal/shared/apperrors"
)

const statusTrading = "TRADING"

var (
	_ candleusecase.MarketRepository = (*Client)(nil)
	_ priceusecase.TickerSource      = (*Client)(nil)
)

// ListSymbols returns the trading symbols quoted in quoteAsset, in the order
// the exchange lists them. Failures are logged and yield an empty slice.
func (c *Client) ListSymbols(ctx context.Context, quoteAsset string) []string {
	body, err := c.FetchEndpoint(ctx, "/exchangeInfo", nil)
	if err != nil {
		c.log.WithError(err).Error("failed to fetch exchange info")
		return []string{}
	}

	var info dto.ExchangeInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		c.log.WithError(err).Error("failed to decode exchange info")
		return []string{}
	}

	quote := strings.ToUpper(quoteAsset)
	out := make([]string, 0, len(info.Symbols))
	for _, s := range info.Symbols {
		if s.Status == statusTrading && s.QuoteAsset == quote {
			out = append(out, s.Symbol)
		}
	}
	return out
}

// GetKlines fetches up to limit OHLCV bars for symbol at interval.
func (c *Client) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]candleentity.Candle, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", interval)
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.FetchEndpoint(ctx, "/klines", q)
	if err != nil {
		return nil, err
	}

	var rows []dto.KlineRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode klines: %v", apperrors.ErrMalformedResponse, err)
	}

	candles := make([]candleentity.Candle, 0, len(rows))
	for i, row := range rows {
		cd, err := toCandle(row)
		if err != nil {
			return nil, fmt.Errorf("%w: kline %d: %v", apperrors.ErrMalformedResponse, i, err)
		}
		candles = append(candles, cd)
	}
	return candles, nil
}

// GetTickers fetches the full 24h ticker snapshot in one call and keeps the
// requested symbols, or every symbol quoted in the configured quote asset
// when symbols is nil.
func (c *Client) GetTickers(ctx context.Context, symbols []string) ([]priceentity.Ticker, error) {
	body, err := c.FetchEndpoint(ctx, "/ticker/24hr", nil)
	if err != nil {
		return nil, err
	}

	var all []dto.Ticker24h
	if err := json.Unmarshal(body, &all); err != nil {
		return nil, fmt.Errorf("%w: decode tickers: %v", apperrors.ErrMalformedResponse, err)
	}

	keep := func(s string) bool { return strings.HasSuffix(s, c.cfg.QuoteAsset) }
	if symbols != nil {
		set := make(map[string]struct{}, len(symbols))
		for _, s := range symbols {
			set[s] = struct{}{}
		}
		keep = func(s string) bool {
			_, ok := set[s]
			return ok
		}
	}

	now := c.now().UTC()
	out := make([]priceentity.Ticker, 0, len(all))
	for _, t := range all {
		if !keep(t.Symbol) {
			continue
		}
		tk, err := toTicker(t, now)
		if err != nil {
			return nil, fmt.Errorf("%w: ticker %s: %v", apperrors.ErrMalformedResponse, t.Symbol, err)
		}
		out = append(out, tk)
	}
	return out, nil
}

func toCandle(row dto.KlineRow) (candleentity.Candle, error) {
	if len(row) < 6 {
		return candleentity.Candle{}, fmt.Errorf("expected at least 6 fields, got %d", len(row))
	}

	var openTime int64
	if err := json.Unmarshal(row[0], &openTime); err != nil {
		return candleentity.Candle{}, fmt.Errorf("parse open time %s: %w", row[0], err)
	}

	var vals [5]float64
	names := [5]string{"open", "high", "low", "close", "volume"}
	for i := range vals {
		v, err := parseRawNumber(row[i+1])
		if err != nil {
			return candleentity.Candle{}, fmt.Errorf("parse %s %s: %w", names[i], row[i+1], err)
		}
		vals[i] = v
	}

	return candleentity.Candle{
		OpenTime: time.UnixMilli(openTime).UTC(),
		Open:     vals[0],
		High:     vals[1],
		Low:      vals[2],
		Close:    vals[3],
		Volume:   vals[4],
	}, nil
}

func toTicker(t dto.Ticker24h, now time.Time) (priceentity.Ticker, error) {
	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"lastPrice", t.LastPrice, new(float64)},
		{"highPrice", t.HighPrice, new(float64)},
		{"lowPrice", t.LowPrice, new(float64)},
		{"volume", t.Volume, new(float64)},
		{"priceChange", t.PriceChange, new(float64)},
		{"priceChangePercent", t.PriceChangePercent, new(float64)},
	}
	for _, f := range fields {
		v, err := parseDecimal(f.raw)
		if err != nil {
			return priceentity.Ticker{}, fmt.Errorf("parse %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = v
	}

	return priceentity.Ticker{
		Symbol:             t.Symbol,
		CurrentPrice:       *fields[0].dst,
		HighPrice:          *fields[1].dst,
		LowPrice:           *fields[2].dst,
		Volume:             *fields[3].dst,
		PriceChange:        *fields[4].dst,
		PriceChangePercent: *fields[5].dst,
		Timestamp:          now,
	}, nil
}

// parseRawNumber accepts a JSON string or number holding a decimal value.
func parseRawNumber(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return parseDecimal(s)
	}
	return parseDecimal(string(raw))
}

func parseDecimal(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}
