// Package http provides an HTTP-based implementation of dashdoc.Fetcher
// for retrieving raw reference documents.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/dashdoc"
)

// RateLimitHeader is the response header GitHub uses to report remaining calls.
const RateLimitHeader = "X-RateLimit-Remaining"

// Ensure Fetcher implements dashdoc.Fetcher at compile time.
var _ dashdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents from URLs using HTTP GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Zero, the default, leaves the timeout to the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithLogger sets the logger used to report the remaining rate limit.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at the given URL.
// An empty body is reported as EINVALID.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	LogRateLimit(f.logger, resp)

	if resp.StatusCode == http.StatusNotFound {
		return "", dashdoc.Errorf(dashdoc.ENOTFOUND, "HTTP 404 for %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if len(body) == 0 {
		return "", dashdoc.Errorf(dashdoc.EINVALID, "empty document at %s", url)
	}

	return string(body), nil
}

// LogRateLimit logs the remaining GitHub call budget if resp reports one.
func LogRateLimit(logger *slog.Logger, resp *http.Response) {
	if remaining := resp.Header.Get(RateLimitHeader); remaining != "" {
		logger.Info("remaining github calls", "remaining", remaining, "url", resp.Request.URL.String())
	}
}
