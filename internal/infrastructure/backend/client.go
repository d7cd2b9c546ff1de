// Package backend provides HTTP clients for the product, recommendation and
// review services as seen from the composite.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// maxResponseSize limits the response body read from a backend
const maxResponseSize = 4 * 1024 * 1024

// RequestIDHeader carries the request ID to the backends
const RequestIDHeader = "X-Request-ID"

// ErrEmptyResponse is returned when a 2xx response that should carry an
// entity has no body or a JSON null
var ErrEmptyResponse = errors.New("empty response body")

// Policy decides what a failed call returns
type Policy int

const (
	// PolicyStrict returns the translated error to the caller
	PolicyStrict Policy = iota
	// PolicyDegrade logs the failure and returns an empty result
	PolicyDegrade
)

func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyDegrade:
		return "degrade"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithMetrics records call durations and degraded reads
func WithMetrics(m *telemetry.BackendMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// Client talks to one backend service
type Client struct {
	name    string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *telemetry.BackendMetrics
}

// NewClient creates a client for the backend named name at endpoint.
// The default transport propagates trace context through otelhttp.
func NewClient(name string, endpoint config.ServiceEndpoint, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		name:    name,
		baseURL: endpoint.BaseURL(),
		http: &http.Client{
			Timeout:   endpoint.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: log.With(zap.String("backend", name)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the backend name
func (c *Client) Name() string {
	return c.name
}

// request describes one backend call
type request struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
}

func (c *Client) url(r request) string {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	return u
}

// call performs r and decodes a 2xx body into T. Under PolicyDegrade every
// failure is logged and counted and the zero T is returned without error.
func call[T any](ctx context.Context, c *Client, policy Policy, r request) (T, error) {
	var out T
	start := time.Now()

	err := c.do(ctx, r, &out)
	if err == nil {
		c.metrics.RecordCall(ctx, c.name, r.operation, telemetry.OutcomeSuccess, time.Since(start))
		return out, nil
	}

	log := logger.L(ctx, c.logger).With(
		zap.String("operation", r.operation),
		zap.String("url", c.url(r)),
		zap.Error(err),
	)
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		log = log.With(zap.Int("status", httpErr.StatusCode), zap.String("body", httpErr.Body))
	}

	if policy == PolicyDegrade {
		log.Warn("backend call failed, returning empty result")
		c.metrics.RecordCall(ctx, c.name, r.operation, telemetry.OutcomeDegraded, time.Since(start))
		c.metrics.RecordDegradedRead(ctx, c.name)
		var zero T
		return zero, nil
	}

	if !isDomainError(err) {
		log.Warn("backend call failed")
	}
	c.metrics.RecordCall(ctx, c.name, r.operation, telemetry.OutcomeError, time.Since(start))
	var zero T
	return zero, err
}

// do sends r. Transport failures are returned as reported by net/http.
func (c *Client) do(ctx context.Context, r request, out any) error {
	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", c.name, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.url(r), body)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", c.name, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", c.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return translateStatus(resp.StatusCode, payload)
	}

	if _, ignored := out.(*noContent); ignored {
		return nil
	}
	if trimmed := bytes.TrimSpace(payload); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("%s: failed to decode response: %w", c.name, ErrEmptyResponse)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", c.name, err)
	}
	return nil
}

func isDomainError(err error) bool {
	var de *shared.DomainError
	return errors.As(err, &de)
}
