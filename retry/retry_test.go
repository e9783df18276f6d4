package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spetersoncode/scribe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		result, err := Do(ctx, fastConfig(3), func() (string, error) {
			calls++
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient errors", func(t *testing.T) {
		calls := 0
		result, err := Do(ctx, fastConfig(3), func() (string, error) {
			calls++
			if calls < 3 {
				return "", scribe.NewTransientError("rate limited", 429, nil)
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		transient := scribe.NewTransientError("overloaded", 503, nil)
		_, err := Do(ctx, fastConfig(3), func() (string, error) {
			calls++
			return "", transient
		})
		assert.ErrorIs(t, err, transient)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent error fails immediately", func(t *testing.T) {
		calls := 0
		_, err := Do(ctx, fastConfig(3), func() (string, error) {
			calls++
			return "", scribe.NewPermanentError("bad key", 401, nil)
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("uncategorized error fails immediately", func(t *testing.T) {
		calls := 0
		_, err := Do(ctx, fastConfig(3), func() (string, error) {
			calls++
			return "", errors.New("plain")
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("context cancellation during backoff", func(t *testing.T) {
		cfg := Config{MaxAttempts: 3, InitialDelay: time.Hour, Multiplier: 2.0}
		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		_, err := Do(ctx, cfg, func() (string, error) {
			return "", scribe.NewTransientError("busy", 503, nil)
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("server retry-after overrides backoff", func(t *testing.T) {
		cfg := Config{MaxAttempts: 2, InitialDelay: time.Hour, Multiplier: 2.0}
		calls := 0

		start := time.Now()
		result, err := Do(ctx, cfg, func() (string, error) {
			calls++
			if calls == 1 {
				return "", scribe.NewTransientErrorWithRetry("slow down", 429, time.Millisecond, nil)
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestConfigDelay(t *testing.T) {
	cfg := Config{
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}

	assert.Equal(t, time.Second, cfg.Delay(0))
	assert.Equal(t, 2*time.Second, cfg.Delay(1))
	assert.Equal(t, 4*time.Second, cfg.Delay(2))
	// Capped at MaxDelay.
	assert.Equal(t, 10*time.Second, cfg.Delay(10))
	// Negative attempts clamp to zero.
	assert.Equal(t, time.Second, cfg.Delay(-5))
}

type flakyProvider struct {
	failures int
	calls    int
}

func (f *flakyProvider) Chat(ctx context.Context, messages []scribe.Message, opts ...scribe.Option) (*scribe.Response, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, scribe.NewTransientError("overloaded", 503, nil)
	}
	return &scribe.Response{Content: "recovered"}, nil
}

func TestProviderWrap(t *testing.T) {
	inner := &flakyProvider{failures: 2}
	p := Wrap(inner, fastConfig(5))

	resp, err := p.Chat(context.Background(), []scribe.Message{scribe.NewUserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Content)
	assert.Equal(t, 3, inner.calls)
}
