package retry

import (
	"context"
	"time"

	"github.com/spetersoncode/scribe"
)

// Do executes fn with retry on transient errors. A server-provided
// Retry-After delay overrides the computed backoff. Context
// cancellation is respected during waits. Returns the result on
// success, or the last error once attempts are exhausted.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !scribe.IsTransient(err) {
			return zero, err
		}

		if attempt < cfg.MaxAttempts-1 {
			delay := cfg.Delay(attempt)
			if serverDelay := scribe.RetryAfterOf(err); serverDelay > 0 {
				delay = serverDelay
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// Provider wraps a chat provider with retry on transient errors.
type Provider struct {
	inner scribe.ChatProvider
	cfg   Config
}

// Wrap decorates a provider with the given retry configuration.
func Wrap(inner scribe.ChatProvider, cfg Config) *Provider {
	return &Provider{inner: inner, cfg: cfg}
}

// Chat sends the request through the wrapped provider, retrying
// transient failures.
func (p *Provider) Chat(ctx context.Context, messages []scribe.Message, opts ...scribe.Option) (*scribe.Response, error) {
	return Do(ctx, p.cfg, func() (*scribe.Response, error) {
		return p.inner.Chat(ctx, messages, opts...)
	})
}

var _ scribe.ChatProvider = (*Provider)(nil)
