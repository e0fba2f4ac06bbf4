package http

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/dashdoc"
	"golang.org/x/time/rate"
)

// Ensure RetryFetcher implements dashdoc.Fetcher at compile time.
var _ dashdoc.Fetcher = (*RetryFetcher)(nil)

// DefaultRetries is the number of retries after the first attempt. Retrying
// is opt in.
const DefaultRetries = 0

// BackoffDelays returns n exponentially growing delays starting at one second.
func BackoffDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	for i := range n {
		delays[i] = time.Second << i
	}
	return delays
}

// RetryFetcher wraps a Fetcher, retrying transient failures with backoff.
// Requests are paced by a token bucket limiter.
type RetryFetcher struct {
	next    dashdoc.Fetcher
	delays  []time.Duration
	limiter *rate.Limiter
	logger  *slog.Logger
}

// RetryOption configures a RetryFetcher.
type RetryOption func(*RetryFetcher)

// WithRetryDelays sets the wait before each retry. The number of delays is
// the number of retries.
func WithRetryDelays(delays ...time.Duration) RetryOption {
	return func(f *RetryFetcher) {
		f.delays = delays
	}
}

// WithRateLimit limits requests to rps per second. Zero or less disables
// pacing.
func WithRateLimit(rps float64) RetryOption {
	return func(f *RetryFetcher) {
		if rps <= 0 {
			f.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryLogger sets the logger used to report retries.
func WithRetryLogger(logger *slog.Logger) RetryOption {
	return func(f *RetryFetcher) {
		f.logger = logger
	}
}

// NewRetryFetcher wraps next with no retries and no pacing until configured.
func NewRetryFetcher(next dashdoc.Fetcher, opts ...RetryOption) *RetryFetcher {
	f := &RetryFetcher{
		next:    next,
		delays:  BackoffDelays(DefaultRetries),
		limiter: rate.NewLimiter(rate.Inf, 1),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves url, retrying internal errors. Application errors such as
// a missing document are returned immediately.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}

		body, err := f.next.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(err) || attempt == len(f.delays) {
			break
		}

		f.logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "err", err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return dashdoc.ErrorCode(err) == dashdoc.EINTERNAL
}
