/*
 * Copyright 2025 NetAPI Project Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package panos implements the client side of the PAN-OS XML management API:
// command encoding, the HTTPS exchange, reply parsing, and vendor error
// classification. The client is stateless; host and token are supplied per
// instance and every call is an independent fetch-parse-return cycle.
package panos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/netapi/panosd/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Client talks to one device. It never retries and never skips certificate
// verification; retry policy, if any, belongs to the caller.
type Client struct {
	host   string
	token  string
	http   *http.Client
	logger logger.Logger
}

// Option modifies Client construction.
type Option func(*Client)

// WithTimeout sets the transport timeout for each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client, primarily for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		c.logger = log
	}
}

// NewClient builds a client for the device at host, authenticating every
// request with the given API token.
func NewClient(host, token string, opts ...Option) *Client {
	c := &Client{
		host:   host,
		token:  token,
		http:   &http.Client{Timeout: defaultTimeout},
		logger: logger.NewTestLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchConfig issues a configuration read for the given path. The path's
// argument, if any, is ignored; config reads address subtrees, not targets.
func (c *Client) FetchConfig(ctx context.Context, path CommandPath) (*Node, error) {
	query := url.Values{
		"type":   {"config"},
		"action": {"get"},
		"xpath":  {path.String()},
	}

	return c.do(ctx, query, path.String())
}

// RunCommand encodes and issues an operational command, with an optional
// target argument ("ae1", "all").
func (c *Client) RunCommand(ctx context.Context, path CommandPath, arg string) (*Node, error) {
	cmd, err := path.WithArg(arg).Encode()
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"type": {"op"},
		"cmd":  {cmd},
	}

	return c.do(ctx, query, cmd)
}

// do performs one HTTPS exchange and folds every failure mode into an
// APIError. Nothing above this point observes a raw transport fault.
func (c *Client) do(ctx context.Context, query url.Values, command string) (*Node, error) {
	u := url.URL{
		Scheme:   "https",
		Host:     c.host,
		Path:     "/api/",
		RawQuery: query.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, &APIError{Kind: KindInvalidCommand, Message: err.Error(), Command: command}
	}

	req.Header.Set("X-PAN-KEY", c.token)
	req.Header.Set("Content-Type", "application/xml")

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err, command)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err, command)
	}

	c.logger.Debug().
		Str("host", c.host).
		Str("command", command).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Device API exchange")

	return ParseResponse(body, command)
}

// classifyTransport maps a network-layer failure to its error kind.
func classifyTransport(err error, command string) *APIError {
	kind := KindTransport
	msg := fmt.Sprintf("error while connecting: %v", err)

	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
		msg = "timeout while connecting to device"
	case errors.Is(err, syscall.ECONNREFUSED), isDialFailure(err):
		kind = KindConnectionFailed
		msg = "error connecting to device"
	}

	return &APIError{Kind: kind, Message: msg, Command: command}
}

func isDialFailure(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}

	return false
}
