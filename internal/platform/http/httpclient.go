// Package http holds the HTTP plumbing shared by upstream clients.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for upstream API calls.
//
// The transport honours HTTP_PROXY, uses a short dial and TLS handshake
// timeout and keeps up to 100 idle connections. timeout bounds each whole
// request; http.DefaultClient has none, so upstream clients always use this.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
