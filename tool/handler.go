package tool

import (
	"context"

	"github.com/spetersoncode/scribe"
)

// Handler pairs a tool definition with its implementation.
type Handler interface {
	// Tool returns the definition advertised to the model.
	Tool() scribe.Tool

	// Call executes the tool with the raw JSON arguments from a tool call
	// and returns the observation text for the model.
	Call(ctx context.Context, arguments string) (string, error)
}
