package binance

import (
	"fmt"
)

// EndpointError records why a single endpoint attempt failed.
type EndpointError struct {
	BaseURL    string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *EndpointError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("binance endpoint %s: http %d: %v", e.BaseURL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("binance endpoint %s: %v", e.BaseURL, e.Err)
}

func (e *EndpointError) Unwrap() error { return e.Err }
