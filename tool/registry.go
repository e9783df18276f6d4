package tool

import (
	"context"
	"fmt"
	"sync"

	"github.com/spetersoncode/scribe"
)

// Registry holds tool handlers and dispatches tool calls to them.
// Registration order is preserved so the model always sees tool
// definitions in a stable order.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	order    []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler to the registry. It returns
// ErrToolAlreadyRegistered if the tool name is taken.
func (r *Registry) Register(h Handler) error {
	name := h.Tool().Name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return &ErrToolAlreadyRegistered{Name: name}
	}

	r.handlers[name] = h
	r.order = append(r.order, name)
	return nil
}

// MustRegister adds a handler and panics on a duplicate name.
// Intended for registration at startup.
func (r *Registry) MustRegister(h Handler) {
	if err := r.Register(h); err != nil {
		panic(err)
	}
}

// Add registers the given handlers and returns the registry for chaining.
// It panics on a duplicate name.
func (r *Registry) Add(handlers ...Handler) *Registry {
	for _, h := range handlers {
		r.MustRegister(h)
	}
	return r
}

// Get returns the handler for the given tool name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]
	return h, ok
}

// Tools returns the tool definitions in registration order.
func (r *Registry) Tools() []scribe.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]scribe.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.handlers[name].Tool())
	}
	return tools
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// Execute runs the handler for a tool call and returns the result.
// A handler error does not propagate: it is converted into a ToolResult
// with IsError set so the model can observe the failure and continue.
// The caller is expected to have resolved the handler via Get; Execute
// returns an error result if the tool is missing.
func (r *Registry) Execute(ctx context.Context, call scribe.ToolCall) scribe.ToolResult {
	h, ok := r.Get(call.Name)
	if !ok {
		return scribe.ToolResult{
			ToolCallID: call.ID,
			Content:    (&ErrToolNotFound{Name: call.Name}).Error(),
			IsError:    true,
		}
	}

	content, err := h.Call(ctx, call.Arguments)
	if err != nil {
		execErr := &ErrToolExecution{Name: call.Name, Err: err}
		return scribe.ToolResult{
			ToolCallID: call.ID,
			Content:    fmt.Sprintf("Error: %v", execErr),
			IsError:    true,
		}
	}

	return scribe.ToolResult{
		ToolCallID: call.ID,
		Content:    content,
	}
}
