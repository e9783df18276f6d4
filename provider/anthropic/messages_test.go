package anthropic

import (
	"testing"

	"github.com/spetersoncode/scribe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMessages(t *testing.T) {
	messages := []scribe.Message{
		scribe.NewSystemMessage("instructions"),
		scribe.NewUserMessage("query"),
		{
			Role: scribe.RoleAssistant,
			ToolCalls: []scribe.ToolCall{
				{ID: "toolu_1", Name: "search", Arguments: `{"query":"x"}`},
			},
		},
		scribe.NewToolResultMessage(scribe.ToolResult{
			ToolCallID: "toolu_1",
			Content:    "result",
			IsError:    true,
		}),
	}

	converted, system := convertMessages(messages)

	// System prompts are passed separately, not in the message list.
	require.Len(t, system, 1)
	assert.Equal(t, "instructions", system[0].Text)

	require.Len(t, converted, 3)
	assert.Equal(t, "user", string(converted[0].Role))
	assert.Equal(t, "assistant", string(converted[1].Role))

	// Tool results ride in a user message.
	assert.Equal(t, "user", string(converted[2].Role))
	require.Len(t, converted[2].Content, 1)
}

func TestConvertMessagesSkipsEmpty(t *testing.T) {
	converted, system := convertMessages([]scribe.Message{
		scribe.NewSystemMessage(""),
		scribe.NewUserMessage(""),
	})

	assert.Empty(t, converted)
	assert.Empty(t, system)
}

func TestConvertTools(t *testing.T) {
	tools := convertTools([]scribe.Tool{
		{
			Name:        "search",
			Description: "Search the web.",
			Parameters:  []byte(`{"type":"object","properties":{"query":{"type":"string"}},"required":["query"]}`),
		},
	})

	require.Len(t, tools, 1)
	require.NotNil(t, tools[0].OfTool)
	assert.Equal(t, "search", tools[0].OfTool.Name)
	assert.Equal(t, []string{"query"}, tools[0].OfTool.InputSchema.Required)
}

func TestCategorizeStatusCode(t *testing.T) {
	assert.Equal(t, scribe.ErrorTransient, categorizeStatusCode(429))
	assert.Equal(t, scribe.ErrorTransient, categorizeStatusCode(529))
	assert.Equal(t, scribe.ErrorUserInput, categorizeStatusCode(400))
	assert.Equal(t, scribe.ErrorPermanent, categorizeStatusCode(401))
}
