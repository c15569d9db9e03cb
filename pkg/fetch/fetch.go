// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/cuda-toolkit-locator/pkg/defaults"
	"github.com/NVIDIA/cuda-toolkit-locator/pkg/errors"
)

const userAgent = "ctk-locator/1.0"

// Option defines a configuration option for Client.
type Option func(*Client)

// WithUserAgent overrides the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout overrides the total request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. Intended for tests
// and callers that need custom transport behavior (proxying, TLS).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Client fetches documents over HTTP with pooled connections and
// conservative timeouts. Success is strictly status 200; anything else
// is a transport failure carrying the URL and status for diagnosis.
type Client struct {
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new Client with the specified options.
func NewClient(options ...Option) *Client {
	c := &Client{
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
			},
		},
	}

	for _, opt := range options {
		opt(c)
	}
	return c
}

// Get issues a single GET request and returns the response body.
// Any status other than 200 yields a TRANSPORT_FAILURE error with the
// URL and status attached; there are no retries at this layer.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTransportFailure,
			fmt.Sprintf("building request for %s", url), err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeTransportFailure,
			fmt.Sprintf("fetching %s", url), err,
			map[string]any{"url": url})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewWithContext(errors.ErrCodeTransportFailure,
			fmt.Sprintf("fetching %s: unexpected status %d %s",
				url, resp.StatusCode, http.StatusText(resp.StatusCode)),
			map[string]any{"url": url, "status": resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeTransportFailure,
			fmt.Sprintf("reading response from %s", url), err,
			map[string]any{"url": url})
	}

	slog.Debug("fetched document",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(start).String())

	return body, nil
}
