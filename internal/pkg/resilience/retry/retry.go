// Package retry runs operations that may fail temporarily with exponential
// backoff. It wraps github.com/avast/retry-go behind a small interface so
// callers can swap the policy in tests.
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithRetryIf(isTransient),
//	)
//	err := r.Execute(ctx, func() error { return store.Ping(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations under a retry policy.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted,
	// the error is not retryable or ctx is done. operation must be safe to
	// call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts, the first one included
	delay       time.Duration // base delay of the exponential backoff
	maxDelay    time.Duration // cap of the delay between attempts
	lastErrOnly bool          // return only the error of the last attempt
	retryIf     func(error) bool
	onRetry     func(attempt uint, err error)
}

// Option configures the retry policy.
type Option func(*config)

// retrier implements Retry with retry-go.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New returns a Retry with the given options applied over the defaults:
// 3 attempts, 1s base delay, 5s max delay and only the last error returned.
// Every error is retried unless WithRetryIf says otherwise.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(r.cfg.onRetry))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay of the exponential backoff.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether only the error of the last attempt is
// returned. When false the errors of every attempt are returned together.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which f returns true. Any other
// error is returned right away.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}

// WithOnRetry registers f to be called after every failed attempt whose error
// is retryable, the last attempt included. attempt starts at 0.
func WithOnRetry(f func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
