// Package explorer implements the shared fetch path to public chain explorer APIs.
package explorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/walletsweep/internal/model"
	"go.uber.org/zap"
)

const (
	// DefaultAttempts bounds read attempts per call.
	DefaultAttempts = 3
	// DefaultRetryInterval is the fixed pause between read attempts.
	DefaultRetryInterval = 2 * time.Second

	maxBodySize      = 4 << 20
	maxErrorBodySize = 256
)

// ErrAPI marks an error reported by the explorer inside a successful HTTP response.
var ErrAPI = errors.New("explorer api error")

// HTTPError is returned for responses outside the 2xx range.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Retryable reports whether the status may succeed on a later attempt.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// APIError wraps an explorer-reported failure; it is never retried.
func APIError(format string, args ...any) error {
	return backoff.Permanent(fmt.Errorf("%w: %s", ErrAPI, fmt.Sprintf(format, args...)))
}

// DefaultBackOff allows DefaultAttempts attempts spaced by DefaultRetryInterval.
func DefaultBackOff() backoff.BackOff {
	return backoff.WithMaxRetries(backoff.NewConstantBackOff(DefaultRetryInterval), DefaultAttempts-1)
}

// Client issues explorer requests over the shared rate-limited http.Client.
type Client struct {
	http       *http.Client
	metrics    Metrics
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

// Option customizes a Client.
type Option func(*Client)

// WithBackOff overrides the retry policy of read calls.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *Client) {
		c.newBackOff = newBackOff
	}
}

// NewClient constructs a Client.
func NewClient(httpClient *http.Client, metrics Metrics, logger *zap.Logger, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		http:       httpClient,
		metrics:    metrics,
		logger:     logger.Named("explorer"),
		newBackOff: DefaultBackOff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HTTPClient returns the underlying shared client.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Retry runs fn until it succeeds, returns a permanent error or the attempts run out.
// Attempts are bounded by the http.Client transport, whose deadline starts once the
// shared limiter has admitted the request.
func (c *Client) Retry(ctx context.Context, operation string, chain model.Chain, fn func(context.Context) error) error {
	attempt := 0
	op := func() error {
		attempt++
		started := time.Now()
		err := fn(ctx)
		c.observe(operation, chain, err, started)
		return err
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("remote call failed, retrying",
			zap.String("operation", operation),
			zap.String("chain", chain.String()),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
	}
	return backoff.RetryNotify(op, backoff.WithContext(c.newBackOff(), ctx), notify)
}

// GetJSON fetches url and decodes the JSON body into out, retrying transient failures.
func (c *Client) GetJSON(ctx context.Context, operation string, chain model.Chain, url string, header http.Header, out any) error {
	return c.Retry(ctx, operation, chain, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build %s request: %w", operation, err))
		}
		for k, values := range header {
			for _, v := range values {
				req.Header.Add(k, v)
			}
		}
		req.Header.Set("Accept", "application/json")

		body, err := c.do(req)
		if err != nil {
			var herr *HTTPError
			if errors.As(err, &herr) && !herr.Retryable() {
				return backoff.Permanent(err)
			}
			return err
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode %s response: %w", operation, err)
		}
		return nil
	})
}

// Post sends body once and returns the response body. Posts are never retried.
func (c *Client) Post(ctx context.Context, operation string, chain model.Chain, url, contentType string, body []byte) (respBody []byte, err error) {
	started := time.Now()
	defer func() {
		c.observe(operation, chain, err, started)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text := string(body)
		if len(text) > maxErrorBodySize {
			text = text[:maxErrorBodySize]
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: text}
	}
	return body, nil
}

func (c *Client) observe(operation string, chain model.Chain, err error, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Observe(operation, chain, err, started)
}
