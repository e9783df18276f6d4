package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockResponse struct {
	response *scribe.Response
	err      error
}

// mockProvider replays scripted responses and records each request.
type mockProvider struct {
	responses []mockResponse
	calls     int
	requests  [][]scribe.Message
	lastOpts  *scribe.Options
}

func (m *mockProvider) Chat(ctx context.Context, messages []scribe.Message, opts ...scribe.Option) (*scribe.Response, error) {
	m.requests = append(m.requests, messages)
	m.lastOpts = scribe.ApplyOptions(opts...)

	if m.calls >= len(m.responses) {
		return nil, errors.New("mock: no more scripted responses")
	}
	r := m.responses[m.calls]
	m.calls++
	return r.response, r.err
}

func newTestRegistry(t *testing.T, invoked *[]string) *tool.Registry {
	t.Helper()

	record := func(name string, out string, fail bool) tool.Handler {
		return tool.NewFunc(name, "test tool",
			func(ctx context.Context, args struct {
				Query string `json:"query"`
			}) (string, error) {
				*invoked = append(*invoked, name)
				if fail {
					return "", errors.New("lookup failed")
				}
				return out, nil
			})
	}

	return tool.NewRegistry().Add(
		record("search", "search results", false),
		record("flaky", "", true),
	)
}

func TestRunSimpleConversation(t *testing.T) {
	provider := &mockProvider{responses: []mockResponse{
		{response: &scribe.Response{
			Content: "The transistor was invented in 1947.",
			Usage:   scribe.Usage{InputTokens: 12, OutputTokens: 8},
		}},
	}}

	a := New(provider, nil)
	result, err := a.Run(context.Background(), []scribe.Message{
		scribe.NewUserMessage("When was the transistor invented?"),
	})

	require.NoError(t, err)
	assert.Equal(t, "The transistor was invented in 1947.", result.Output)
	assert.Equal(t, 1, result.Steps)
	assert.Empty(t, result.Trace)
	assert.Equal(t, scribe.Usage{InputTokens: 12, OutputTokens: 8}, result.Usage)

	// Final assistant message is appended to the conversation.
	require.Len(t, result.Messages, 2)
	assert.Equal(t, scribe.RoleAssistant, result.Messages[1].Role)
}

func TestRunToolFlow(t *testing.T) {
	var invoked []string

	provider := &mockProvider{responses: []mockResponse{
		{response: &scribe.Response{
			ToolCalls: []scribe.ToolCall{
				{ID: "call-1", Name: "search", Arguments: `{"query":"solar capacity 2024"}`},
			},
			Usage: scribe.Usage{InputTokens: 20, OutputTokens: 5},
		}},
		{response: &scribe.Response{
			Content: "final answer",
			Usage:   scribe.Usage{InputTokens: 40, OutputTokens: 15},
		}},
	}}

	a := New(provider, newTestRegistry(t, &invoked))
	result, err := a.Run(context.Background(), []scribe.Message{
		scribe.NewUserMessage("research solar power"),
	})

	require.NoError(t, err)
	assert.Equal(t, "final answer", result.Output)
	assert.Equal(t, 2, result.Steps)
	assert.Equal(t, []string{"search"}, invoked)

	require.Len(t, result.Trace, 1)
	assert.Equal(t, "search", result.Trace[0].Name)

	// Usage accumulates across both round trips.
	assert.Equal(t, scribe.Usage{InputTokens: 60, OutputTokens: 20}, result.Usage)

	// The second request carries the tool exchange: user, assistant
	// with tool calls, tool results.
	require.Len(t, provider.requests, 2)
	second := provider.requests[1]
	require.Len(t, second, 3)
	assert.Equal(t, scribe.RoleAssistant, second[1].Role)
	require.Len(t, second[1].ToolCalls, 1)
	assert.Equal(t, scribe.RoleTool, second[2].Role)
	require.Len(t, second[2].ToolResults, 1)
	assert.Equal(t, "call-1", second[2].ToolResults[0].ToolCallID)
	assert.Equal(t, "search results", second[2].ToolResults[0].Content)

	// Tool definitions are attached to the request.
	require.NotNil(t, provider.lastOpts)
	assert.Len(t, provider.lastOpts.Tools, 2)
}

func TestRunUnknownToolIsFatal(t *testing.T) {
	var invoked []string

	provider := &mockProvider{responses: []mockResponse{
		{response: &scribe.Response{
			ToolCalls: []scribe.ToolCall{
				{ID: "call-1", Name: "search", Arguments: `{"query":"x"}`},
				{ID: "call-2", Name: "teleport", Arguments: `{}`},
			},
		}},
	}}

	a := New(provider, newTestRegistry(t, &invoked))
	result, err := a.Run(context.Background(), []scribe.Message{
		scribe.NewUserMessage("go"),
	})

	assert.Nil(t, result)

	var unknown *UnknownToolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "teleport", unknown.Name)

	// Nothing in the batch ran, including the valid call before it.
	assert.Empty(t, invoked)
}

func TestRunFailingToolIsRecovered(t *testing.T) {
	var invoked []string

	provider := &mockProvider{responses: []mockResponse{
		{response: &scribe.Response{
			ToolCalls: []scribe.ToolCall{
				{ID: "call-1", Name: "flaky", Arguments: `{"query":"x"}`},
			},
		}},
		{response: &scribe.Response{Content: "answered without the tool"}},
	}}

	a := New(provider, newTestRegistry(t, &invoked))
	result, err := a.Run(context.Background(), []scribe.Message{
		scribe.NewUserMessage("go"),
	})

	require.NoError(t, err)
	assert.Equal(t, "answered without the tool", result.Output)
	assert.Equal(t, []string{"flaky"}, invoked)

	// The failure reached the model as an error observation.
	second := provider.requests[1]
	toolMsg := second[len(second)-1]
	require.Len(t, toolMsg.ToolResults, 1)
	assert.True(t, toolMsg.ToolResults[0].IsError)
	assert.Contains(t, toolMsg.ToolResults[0].Content, "lookup failed")
}

func TestRunExhaustsSteps(t *testing.T) {
	var invoked []string

	loop := mockResponse{response: &scribe.Response{
		ToolCalls: []scribe.ToolCall{
			{ID: "call-1", Name: "search", Arguments: `{"query":"again"}`},
		},
	}}

	provider := &mockProvider{responses: []mockResponse{loop, loop, loop}}

	a := New(provider, newTestRegistry(t, &invoked))
	result, err := a.Run(context.Background(), []scribe.Message{
		scribe.NewUserMessage("go"),
	}, WithMaxSteps(3))

	assert.Nil(t, result)

	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 3, exhausted.Steps)
	assert.Len(t, invoked, 3)
}

func TestRunProviderError(t *testing.T) {
	wrapped := scribe.NewTransientError("rate limited", 429, nil)
	provider := &mockProvider{responses: []mockResponse{{err: wrapped}}}

	a := New(provider, nil)
	_, err := a.Run(context.Background(), []scribe.Message{
		scribe.NewUserMessage("hi"),
	})

	require.Error(t, err)
	assert.True(t, scribe.IsTransient(err))
}

func TestRunDoesNotMutateInput(t *testing.T) {
	provider := &mockProvider{responses: []mockResponse{
		{response: &scribe.Response{Content: "ok"}},
	}}

	messages := []scribe.Message{scribe.NewUserMessage("hi")}
	a := New(provider, nil)

	result, err := a.Run(context.Background(), messages)
	require.NoError(t, err)

	assert.Len(t, messages, 1)
	assert.Len(t, result.Messages, 2)
}

func TestApplyOptionsDefaults(t *testing.T) {
	o := ApplyOptions()
	assert.Equal(t, DefaultMaxSteps, o.MaxSteps)

	o = ApplyOptions(WithMaxSteps(-1))
	assert.Equal(t, DefaultMaxSteps, o.MaxSteps)

	o = ApplyOptions(WithMaxSteps(3), WithModel("test-model"), WithTemperature(0.2))
	assert.Equal(t, 3, o.MaxSteps)

	chat := scribe.ApplyOptions(o.ChatOptions...)
	assert.Equal(t, "test-model", chat.Model)
	require.NotNil(t, chat.Temperature)
	assert.InDelta(t, 0.2, *chat.Temperature, 1e-9)
}
