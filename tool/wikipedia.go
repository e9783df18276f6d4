package tool

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/tools/wikipedia"
)

type wikipediaArgs struct {
	Query string `json:"query" desc:"The topic to look up on Wikipedia" required:"true"`
}

// NewWikipedia creates a tool that looks up topics on Wikipedia.
func NewWikipedia() Handler {
	client := wikipedia.New(researchUserAgent)

	return NewFunc("wikipedia", "Look up a topic on Wikipedia.",
		func(ctx context.Context, args wikipediaArgs) (string, error) {
			if args.Query == "" {
				return "", fmt.Errorf("query is required")
			}
			return client.Call(ctx, args.Query)
		})
}
