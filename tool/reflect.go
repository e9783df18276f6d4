package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spetersoncode/scribe"
)

// Func adapts an ordinary Go function into a Handler. The parameter
// schema is derived from T's struct tags (json, desc, required) and the
// model's JSON arguments are unmarshaled into T before each call.
type Func[T any] struct {
	def scribe.Tool
	fn  func(ctx context.Context, args T) (string, error)
}

// NewFunc creates a typed handler from a function. It panics if T is
// not a struct type, so misuse fails at startup rather than on the
// first tool call.
func NewFunc[T any](name, description string, fn func(ctx context.Context, args T) (string, error)) *Func[T] {
	return &Func[T]{
		def: scribe.Tool{
			Name:        name,
			Description: description,
			Parameters:  scribe.MustSchemaFor[T](),
		},
		fn: fn,
	}
}

// Tool returns the tool definition.
func (f *Func[T]) Tool() scribe.Tool {
	return f.def
}

// Call unmarshals the arguments into T and invokes the wrapped function.
func (f *Func[T]) Call(ctx context.Context, arguments string) (string, error) {
	var args T
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("invalid arguments for %s: %w", f.def.Name, err)
		}
	}
	return f.fn(ctx, args)
}
