package agent

import "github.com/spetersoncode/scribe"

// DefaultMaxSteps bounds the loop when WithMaxSteps is not given.
const DefaultMaxSteps = 10

// Options contains configuration for a single agent run.
type Options struct {
	// MaxSteps is the maximum number of model round trips before the
	// run fails with ExhaustedError.
	MaxSteps int

	// ChatOptions are passed through to the provider on every request.
	ChatOptions []scribe.Option
}

// Option is a functional option for configuring an agent run.
type Option func(*Options)

// WithMaxSteps sets the maximum number of model round trips.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithChatOptions passes chat options through to the provider on every
// request in the run.
func WithChatOptions(opts ...scribe.Option) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, opts...)
	}
}

// WithModel sets the model used for the run.
func WithModel(model string) Option {
	return WithChatOptions(scribe.WithModel(model))
}

// WithTemperature sets the sampling temperature for the run.
func WithTemperature(t float64) Option {
	return WithChatOptions(scribe.WithTemperature(t))
}

// WithMaxTokens sets the per-request token limit for the run.
func WithMaxTokens(n int) Option {
	return WithChatOptions(scribe.WithMaxTokens(n))
}

// ApplyOptions applies functional options with defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		MaxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	return o
}
