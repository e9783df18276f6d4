package tool

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/tools/duckduckgo"
)

const (
	searchMaxHits = 5

	// Identifies this client to the search backends. DuckDuckGo rejects
	// requests without a user agent.
	researchUserAgent = "scribe-research-agent/1.0"
)

type searchArgs struct {
	Query string `json:"query" desc:"The search query" required:"true"`
}

// NewWebSearch creates a tool that searches the web via DuckDuckGo.
func NewWebSearch() (Handler, error) {
	client, err := duckduckgo.New(searchMaxHits, researchUserAgent)
	if err != nil {
		return nil, fmt.Errorf("create search client: %w", err)
	}

	return NewFunc("search", "Search the web for information on a topic.",
		func(ctx context.Context, args searchArgs) (string, error) {
			if args.Query == "" {
				return "", fmt.Errorf("query is required")
			}
			return client.Call(ctx, args.Query)
		}), nil
}
