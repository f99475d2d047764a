// Package alternativeme is a client for the alternative.me Fear & Greed API.
package alternativeme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"crypto_dashboard/internal/feature/sentiment/domain/entity"
	"crypto_dashboard/internal/feature/sentiment/usecase"
	"crypto_dashboard/internal/shared/apperrors"
)

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://api.alternative.me"

// Config holds the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type fngResponse struct {
	Name string `json:"name"`
	Data []struct {
		Value               string `json:"value"`
		ValueClassification string `json:"value_classification"`
		Timestamp           string `json:"timestamp"`
		TimeUntilUpdate     string `json:"time_until_update"`
	} `json:"data"`
	Metadata struct {
		Error *string `json:"error"`
	} `json:"metadata"`
}

// Client fetches the Fear & Greed index.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ usecase.FearGreedSource = (*Client)(nil)

// NewClient creates a Client.
func NewClient(cfg Config, client *http.Client) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimRight(base, "/"), client: client}
}

// GetFearGreed returns the latest limit readings, newest first.
func (c *Client) GetFearGreed(ctx context.Context, limit int) ([]entity.FearGreedPoint, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	endpoint := c.baseURL + "/fng/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fear greed request: %w", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: fear greed status %d: %s", apperrors.ErrUpstreamUnavailable, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var body fngResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode fear greed: %v", apperrors.ErrMalformedResponse, err)
	}
	if body.Metadata.Error != nil && *body.Metadata.Error != "" {
		return nil, fmt.Errorf("%w: fear greed: %s", apperrors.ErrUpstreamUnavailable, *body.Metadata.Error)
	}

	out := make([]entity.FearGreedPoint, 0, len(body.Data))
	for _, d := range body.Data {
		out = append(out, entity.FearGreedPoint{
			Value:               d.Value,
			ValueClassification: d.ValueClassification,
			Timestamp:           d.Timestamp,
			TimeUntilUpdate:     d.TimeUntilUpdate,
		})
	}
	return out, nil
}
