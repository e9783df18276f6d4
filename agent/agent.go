package agent

import (
	"context"
	"fmt"

	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/tool"
)

// Agent drives a tool-calling conversation with a chat provider.
// It is stateless between runs; conversation state lives in the
// messages passed to Run and the Result it returns.
type Agent struct {
	provider scribe.ChatProvider
	registry *tool.Registry
}

// New creates an agent backed by the given provider and tool registry.
// The registry may be nil for plain conversations without tools.
func New(provider scribe.ChatProvider, registry *tool.Registry) *Agent {
	if registry == nil {
		registry = tool.NewRegistry()
	}
	return &Agent{
		provider: provider,
		registry: registry,
	}
}

// Result holds the outcome of a completed run.
type Result struct {
	// Output is the model's final answer, verbatim.
	Output string

	// Messages is the full conversation including every tool exchange,
	// ending with the final assistant message.
	Messages []scribe.Message

	// Trace lists the tool calls that were executed, in order.
	Trace []scribe.ToolCall

	// Steps is the number of model round trips consumed.
	Steps int

	// Usage is the accumulated token usage across all round trips.
	Usage scribe.Usage
}

// Run executes the tool-calling loop until the model produces a final
// answer, the step limit is reached, or an error occurs.
//
// Each step sends the conversation to the provider with the registry's
// tool definitions attached. Tool calls in the response are executed
// sequentially in the order the model emitted them; handler failures
// are returned to the model as error observations rather than aborting
// the run. A request for a tool outside the registry is fatal.
func (a *Agent) Run(ctx context.Context, messages []scribe.Message, opts ...Option) (*Result, error) {
	options := ApplyOptions(opts...)

	history := make([]scribe.Message, len(messages))
	copy(history, messages)

	chatOpts := options.ChatOptions
	if a.registry.Len() > 0 {
		chatOpts = append(chatOpts, scribe.WithTools(a.registry.Tools()))
	}

	result := &Result{}

	for step := 1; step <= options.MaxSteps; step++ {
		resp, err := a.provider.Chat(ctx, history, chatOpts...)
		if err != nil {
			return nil, fmt.Errorf("agent: step %d: %w", step, err)
		}

		result.Steps = step
		result.Usage.Add(resp.Usage)

		if len(resp.ToolCalls) == 0 {
			history = append(history, scribe.Message{
				ID:      scribe.GenerateMessageID(),
				Role:    scribe.RoleAssistant,
				Content: resp.Content,
			})
			result.Output = resp.Content
			result.Messages = history
			return result, nil
		}

		// Reject the whole batch before executing anything, so a
		// hallucinated tool name never causes partial side effects.
		for _, call := range resp.ToolCalls {
			if _, ok := a.registry.Get(call.Name); !ok {
				return nil, &UnknownToolError{Name: call.Name}
			}
		}

		history = append(history, scribe.Message{
			ID:        scribe.GenerateMessageID(),
			Role:      scribe.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		results := make([]scribe.ToolResult, 0, len(resp.ToolCalls))
		for _, call := range resp.ToolCalls {
			results = append(results, a.registry.Execute(ctx, call))
			result.Trace = append(result.Trace, call)
		}

		history = append(history, scribe.NewToolResultMessage(results...))
	}

	return nil, &ExhaustedError{Steps: options.MaxSteps}
}
