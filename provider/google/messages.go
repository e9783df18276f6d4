package google

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spetersoncode/scribe"
	"google.golang.org/genai"
)

func convertMessages(messages []scribe.Message) []*genai.Content {
	var contents []*genai.Content

	for _, msg := range messages {
		role := "user"
		switch msg.Role {
		case scribe.RoleAssistant:
			role = "model"
		case scribe.RoleUser, scribe.RoleSystem, scribe.RoleTool:
			// Gemini has no dedicated system or tool role: system
			// prompts go in as user text, tool results as user
			// messages carrying FunctionResponse parts.
			role = "user"
		}

		var parts []*genai.Part

		if msg.Content != "" {
			parts = append(parts, &genai.Part{Text: msg.Content})
		}

		for _, tc := range msg.ToolCalls {
			var args map[string]any
			json.Unmarshal([]byte(tc.Arguments), &args)
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					Name: tc.Name,
					Args: args,
				},
			})
		}

		for _, tr := range msg.ToolResults {
			// Gemini matches responses by function name, so recover it
			// from the call ID minted in extractToolCalls.
			var result map[string]any
			if err := json.Unmarshal([]byte(tr.Content), &result); err != nil {
				result = map[string]any{"result": tr.Content}
			}
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     functionNameFromID(tr.ToolCallID),
					Response: result,
				},
			})
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	return contents
}

// extractToolCalls mints call IDs of the form call_<index>_<name>;
// Gemini itself does not assign IDs to function calls.
func extractToolCalls(parts []*genai.Part) []scribe.ToolCall {
	var calls []scribe.ToolCall
	for i, part := range parts {
		if part.FunctionCall != nil {
			args, _ := json.Marshal(part.FunctionCall.Args)
			calls = append(calls, scribe.ToolCall{
				ID:        fmt.Sprintf("call_%d_%s", i, part.FunctionCall.Name),
				Name:      part.FunctionCall.Name,
				Arguments: string(args),
			})
		}
	}
	return calls
}

func functionNameFromID(id string) string {
	fields := strings.SplitN(id, "_", 3)
	if len(fields) == 3 && fields[0] == "call" {
		return fields[2]
	}
	return id
}
