package research

import (
	"encoding/json"

	"github.com/spetersoncode/scribe/agent"
)

// Reconcile validates a finished agent run against the research schema.
//
// Providers differ in how they deliver structured output: most return
// the JSON document directly, but some wrap it in a container object
// whose "text" key holds the document. Reconcile unwraps the container
// form before parsing, so callers see a single behavior.
func Reconcile(schema *Schema, result *agent.Result) (*Response, error) {
	payload := result.Output

	var container map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripFence(payload)), &container); err == nil {
		if text, ok := container["text"]; ok {
			var inner string
			if err := json.Unmarshal(text, &inner); err == nil {
				payload = inner
			}
		}
	}

	return schema.Parse(payload)
}
