// Package client selects and constructs a chat provider from
// configuration, wrapping it with retry on transient errors.
package client

import (
	"context"
	"fmt"

	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/provider/anthropic"
	"github.com/spetersoncode/scribe/provider/google"
	"github.com/spetersoncode/scribe/provider/openai"
	"github.com/spetersoncode/scribe/retry"
)

// Config holds provider selection and credentials.
type Config struct {
	// Provider selects the backend: google, openai, or anthropic.
	Provider scribe.Provider

	// APIKey authenticates with the selected provider.
	APIKey string

	// Model overrides the provider's default model when set.
	Model string

	// Retry configures retry behavior for transient errors.
	// If nil, the default configuration is used.
	Retry *retry.Config
}

// ErrMissingAPIKey is returned when no API key is configured for the
// selected provider.
type ErrMissingAPIKey struct {
	Provider string
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrUnknownProvider is returned for a provider name the factory does
// not recognize.
type ErrUnknownProvider struct {
	Provider string
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown provider %q (expected google, openai, or anthropic)", e.Provider)
}

// New constructs the configured chat provider. The returned provider
// retries transient failures per the retry configuration.
func New(ctx context.Context, cfg Config) (scribe.ChatProvider, error) {
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{Provider: cfg.Provider.String()}
	}

	var inner scribe.ChatProvider
	switch cfg.Provider {
	case scribe.ProviderGoogle:
		var opts []google.ClientOption
		if cfg.Model != "" {
			opts = append(opts, google.WithModel(cfg.Model))
		}
		p, err := google.New(ctx, cfg.APIKey, opts...)
		if err != nil {
			return nil, fmt.Errorf("create google provider: %w", err)
		}
		inner = p
	case scribe.ProviderOpenAI:
		var opts []openai.ClientOption
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		inner = openai.New(cfg.APIKey, opts...)
	case scribe.ProviderAnthropic:
		var opts []anthropic.ClientOption
		if cfg.Model != "" {
			opts = append(opts, anthropic.WithModel(cfg.Model))
		}
		inner = anthropic.New(cfg.APIKey, opts...)
	default:
		return nil, &ErrUnknownProvider{Provider: cfg.Provider.String()}
	}

	retryCfg := retry.DefaultConfig()
	if cfg.Retry != nil {
		retryCfg = *cfg.Retry
	}
	return retry.Wrap(inner, retryCfg), nil
}
