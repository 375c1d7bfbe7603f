// Package transport builds the process-wide outbound HTTP client shared by all chains.
package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/ratelimit"
	"golang.org/x/net/proxy"
)

const (
	// DefaultCalls is the number of outbound calls admitted per DefaultWindow.
	DefaultCalls = 10
	// DefaultWindow is the admission window of the shared limiter.
	DefaultWindow = 60 * time.Second
	// DefaultTimeout bounds every outbound call.
	DefaultTimeout = 15 * time.Second
)

// Config describes the shared client.
type Config struct {
	// Timeout bounds a single request once the limiter admits it; zero means DefaultTimeout.
	Timeout time.Duration
	// ProxyURL is an optional http(s):// or socks5:// proxy.
	ProxyURL string
	// Limiter admits outbound requests; nil means NewLimiter(DefaultCalls, DefaultWindow).
	Limiter ratelimit.Limiter
}

// NewLimiter returns a limiter that spaces admissions evenly so that no more than
// calls requests are admitted within any window.
func NewLimiter(calls int, window time.Duration, opts ...ratelimit.Option) ratelimit.Limiter {
	if calls <= 0 {
		return ratelimit.NewUnlimited()
	}
	opts = append([]ratelimit.Option{ratelimit.Per(window), ratelimit.WithoutSlack}, opts...)
	return ratelimit.New(calls, opts...)
}

// NewClient builds an http.Client whose every request waits for a limiter slot.
// The timeout is enforced by the transport and starts after admission, so time spent
// waiting for a slot is not charged to the request.
func NewClient(cfg Config) (*http.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = NewLimiter(DefaultCalls, DefaultWindow)
	}

	base, err := newBaseTransport(cfg.ProxyURL)
	if err != nil {
		return nil, err
	}

	return &http.Client{
		Transport: NewRateLimited(base, limiter, timeout),
	}, nil
}

func newBaseTransport(rawProxy string) (*http.Transport, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if rawProxy == "" {
		return tr, nil
	}

	proxyURL, err := url.Parse(rawProxy)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	switch proxyURL.Scheme {
	case "http", "https":
		tr.Proxy = http.ProxyURL(proxyURL)
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(proxyURL, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("init socks5 proxy: %w", err)
		}
		tr.Proxy = nil
		if ctxDialer, ok := dialer.(proxy.ContextDialer); ok {
			tr.DialContext = ctxDialer.DialContext
		} else {
			tr.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	default:
		return nil, fmt.Errorf("proxy scheme %q not supported", proxyURL.Scheme)
	}
	return tr, nil
}

// RateLimited is an http.RoundTripper admitting requests through a shared limiter.
type RateLimited struct {
	next    http.RoundTripper
	limiter ratelimit.Limiter
	timeout time.Duration
}

// NewRateLimited wraps next with limiter. A positive timeout bounds each admitted request
// including reading its body.
func NewRateLimited(next http.RoundTripper, limiter ratelimit.Limiter, timeout time.Duration) *RateLimited {
	if next == nil {
		next = http.DefaultTransport
	}
	return &RateLimited{next: next, limiter: limiter, timeout: timeout}
}

// RoundTrip blocks until the limiter admits the request, then forwards it under its own deadline.
func (t *RateLimited) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	t.limiter.Take()
	if t.timeout <= 0 {
		return t.next.RoundTrip(req)
	}

	ctx, cancel := context.WithTimeout(req.Context(), t.timeout)
	resp, err := t.next.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelOnClose releases the request deadline once the body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
