package binance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/adshao/go-binance/v2/common"
	"github.com/sirupsen/logrus"

	"crypto_dashboard/internal/shared/apperrors"
	"crypto_dashboard/internal/shared/ratelimiter"
)

// maxBodySize bounds how much of a response is read. A full 24h ticker
// snapshot is a few MB.
const maxBodySize = 32 << 20

var errUnexpectedStatus = errors.New("unexpected status")

// Client fetches market data from Binance with ordered endpoint fallback.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
	log     logrus.FieldLogger
	now     func() time.Time

	lastSuccessful atomic.Value // string
}

// NewClient creates a Client. A nil limiter disables pacing.
func NewClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface, log logrus.FieldLogger) *Client {
	if cfg.QuoteAsset == "" {
		cfg.QuoteAsset = DefaultQuoteAsset
	}
	if limiter == nil {
		limiter = ratelimiter.NewRateLimiter(0, 0)
	}
	c := &Client{cfg: cfg, client: client, limiter: limiter, log: log, now: time.Now}
	c.lastSuccessful.Store("")
	return c
}

// QuoteAsset returns the configured quote asset.
func (c *Client) QuoteAsset() string { return c.cfg.QuoteAsset }

// LastSuccessful returns the base URL of the endpoint that answered the most
// recent successful call, or "" if none has. It is informational: every call
// still starts from the first endpoint.
func (c *Client) LastSuccessful() string {
	return c.lastSuccessful.Load().(string)
}

// FetchEndpoint performs GET path?params against each endpoint in order and
// returns the body of the first 2xx response. When every endpoint fails the
// error wraps apperrors.ErrUpstreamUnavailable and the last endpoint's
// *EndpointError.
func (c *Client) FetchEndpoint(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if len(c.cfg.BaseURLs) == 0 {
		return nil, fmt.Errorf("%w: no endpoints configured", apperrors.ErrUpstreamUnavailable)
	}

	var lastErr error
	for _, base := range c.cfg.BaseURLs {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %w", apperrors.ErrUpstreamUnavailable, err)
		}

		body, err := c.fetchOnce(ctx, base, path, params)
		if err == nil {
			c.lastSuccessful.Store(base)
			return body, nil
		}
		lastErr = err
		c.log.WithFields(logrus.Fields{
			"endpoint": base,
			"path":     path,
			"error":    err,
		}).Warn("binance endpoint failed, trying next")

		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstreamUnavailable, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, base, path string, params url.Values) ([]byte, error) {
	u := strings.TrimRight(base, "/") + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &EndpointError{BaseURL: base, Err: err}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, &EndpointError{BaseURL: base, Err: err}
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			c.log.WithError(err).Warn("failed to close response body")
		}
	}()

	if w := res.Header.Get("X-Mbx-Used-Weight-1m"); w != "" {
		c.log.WithFields(logrus.Fields{"endpoint": base, "used_weight_1m": w}).Debug("binance request weight")
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, &EndpointError{BaseURL: base, StatusCode: res.StatusCode, Err: err}
	}

	switch {
	case res.StatusCode == http.StatusUnavailableForLegalReasons:
		return nil, &EndpointError{BaseURL: base, StatusCode: res.StatusCode, Err: apperrors.ErrUpstreamBlocked}
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return nil, &EndpointError{BaseURL: base, StatusCode: res.StatusCode, Err: decodeAPIError(body)}
	}
	return body, nil
}

// decodeAPIError extracts Binance's {"code","msg"} error body when present.
func decodeAPIError(body []byte) error {
	apiErr := &common.APIError{}
	if err := json.Unmarshal(body, apiErr); err == nil && (apiErr.Code != 0 || apiErr.Message != "") {
		return apiErr
	}
	return errUnexpectedStatus
}
