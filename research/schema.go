package research

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spetersoncode/scribe"
)

// Response is the structured output of a research query.
type Response struct {
	Topic     string   `json:"topic" desc:"The research topic" required:"true"`
	Summary   string   `json:"summary" desc:"A summary of the research findings" required:"true"`
	Sources   []string `json:"sources" desc:"Sources the summary is based on" required:"true"`
	ToolsUsed []string `json:"tools_used" desc:"Names of the tools used during research"`
}

// Schema describes the JSON shape the model must produce and validates
// raw model output against it.
type Schema struct {
	raw json.RawMessage
}

// NewSchema creates the schema for research responses.
func NewSchema() *Schema {
	return &Schema{raw: scribe.MustSchemaFor[Response]()}
}

// JSON returns the schema as a JSON Schema document.
func (s *Schema) JSON() json.RawMessage {
	return s.raw
}

// Describe returns format instructions for the model. The output is
// deterministic for a given schema so prompts stay cache-friendly.
func (s *Schema) Describe() string {
	var b strings.Builder
	b.WriteString("The output should be a single JSON object conforming to the JSON Schema below. ")
	b.WriteString("Do not include any text outside the JSON object.\n\n")
	b.WriteString("```json\n")
	b.Write(indentJSON(s.raw))
	b.WriteString("\n```")
	return b.String()
}

// Parse validates raw model output against the schema. It tolerates a
// markdown code fence around the JSON, since models add one even when
// told not to. Any failure is reported as a *SchemaMismatchError that
// carries the raw payload for display.
func (s *Schema) Parse(raw string) (*Response, error) {
	payload := stripFence(raw)

	var resp Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, &SchemaMismatchError{Raw: raw, Err: err}
	}

	if err := resp.validate(); err != nil {
		return nil, &SchemaMismatchError{Raw: raw, Err: err}
	}

	return &resp, nil
}

func (r *Response) validate() error {
	if r.Topic == "" {
		return fmt.Errorf("missing required field: topic")
	}
	if r.Summary == "" {
		return fmt.Errorf("missing required field: summary")
	}
	if len(r.Sources) == 0 {
		return fmt.Errorf("missing required field: sources")
	}
	return nil
}

// SchemaMismatchError reports model output that does not match the
// research schema. Raw holds the unmodified output so callers can show
// it to the user.
type SchemaMismatchError struct {
	Raw string
	Err error
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("response does not match research schema: %v", e.Err)
}

func (e *SchemaMismatchError) Unwrap() error {
	return e.Err
}

// stripFence removes a surrounding markdown code fence, if present.
func stripFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language hint on the opening fence line.
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func indentJSON(raw json.RawMessage) []byte {
	var buf strings.Builder
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return raw
	}
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return raw
	}
	return []byte(strings.TrimSpace(buf.String()))
}
