package scribe

import "context"

// Provider identifies a model provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderGoogle    Provider = "google"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// ChatProvider is the model transport consumed by the agent loop.
//
// Chat sends a complete conversation and blocks until the model produces a
// response. The response either carries tool calls (the model wants an
// observation before it can continue) or is a final answer.
type ChatProvider interface {
	Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}
