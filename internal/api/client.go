// Copyright (c) 2025 oEg8
// SPDX-License-Identifier: MIT

// Package api is the HTTP client for the pentest demo backend.
//
// It covers both demo applications: the scan runner (auth, engines, scans)
// and the request intake board (offerings, requests). The client performs no
// retries; a failed call is surfaced once and re-triggered only by a new user
// action. Responses above MaxResponseSize are rejected to bound memory.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/oEg8/pentest-tui/internal/session"
)

const (
	// DefaultBaseURL matches the demo backend's local development address.
	DefaultBaseURL = "http://localhost:8000/api"

	// DefaultTimeout bounds ordinary API requests.
	DefaultTimeout = 15 * time.Second

	// DefaultScanTimeout bounds scan execution, which blocks server-side
	// until the engine finishes.
	DefaultScanTimeout = 5 * time.Minute

	// MaxResponseSize caps response bodies. Scan output is text; anything
	// larger than this is a misbehaving server.
	MaxResponseSize = 10 * 1024 * 1024
)

// Version is the client version reported in the User-Agent header. Overridden
// at build time.
var Version = "0.1.0"

func userAgent() string {
	return "pentest-tui/" + Version
}

// Sentinel errors for conditions callers branch on.
var (
	// ErrUnauthorized indicates the token was rejected. During hydration any
	// error discards the token, but the CLI distinguishes this one.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnreachable indicates the backend could not be contacted at all.
	ErrUnreachable = errors.New("backend unreachable")
)

// Error is a failure response from the backend. Message carries the
// human-readable text the UI surfaces verbatim; it may be empty, in which
// case the UI falls back to a fixed string per operation.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (HTTP %d)", e.Status)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401/403 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// Message extracts the user-facing text from err, or returns fallback. This
// is the single alert-text policy: collaborator-provided message when
// present, the operation's fixed fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Client talks to the demo backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	scanClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewClient creates a client for the given base URL ("" uses the default).
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		// Scan execution blocks until the engine finishes; it gets its own
		// client so a long scan does not force a long timeout everywhere.
		scanClient: &http.Client{Timeout: DefaultScanTimeout},
	}
}

// WithBaseURL repoints the client at a different backend, as happens when the
// configuration file changes under a running program. "" restores the default.
func (c *Client) WithBaseURL(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// WithTimeout sets the timeout for ordinary requests.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.httpClient.Timeout = d
	return c
}

// WithScanTimeout sets the timeout for scan execution.
func (c *Client) WithScanTimeout(d time.Duration) *Client {
	c.scanClient.Timeout = d
	return c
}

// WithRateLimit caps outgoing requests at rps per second. Zero or negative
// disables the limiter. This is politeness toward the shared demo backend,
// not retry infrastructure.
func (c *Client) WithRateLimit(rps float64) *Client {
	if rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	} else {
		c.limiter = nil
	}
	return c
}

// WithLogger routes request/response lines to logger. Tokens never appear in
// the log; only fingerprints do.
func (c *Client) WithLogger(logger *log.Logger) *Client {
	c.logger = logger
	return c
}

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// do performs one JSON request. token may be empty for anonymous endpoints;
// out may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path, token string, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.logf("api: %s %s failed after %v: %v", method, path, time.Since(start), err)
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	c.logf("api: %s %s -> %d (%v) token=%s", method, path, resp.StatusCode, time.Since(start), session.Fingerprint(token))

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(data) > MaxResponseSize {
		return fmt.Errorf("response exceeds %d bytes", MaxResponseSize)
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorBody is the backend's failure shape: {"error": "human readable text"}.
type errorBody struct {
	Error string `json:"error"`
}

func decodeError(status int, data []byte) error {
	var body errorBody
	// A non-JSON error body still produces a usable Error with the status.
	_ = json.Unmarshal(data, &body)
	return &Error{Status: status, Message: strings.TrimSpace(body.Error)}
}
