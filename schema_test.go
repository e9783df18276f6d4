package scribe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchArgs struct {
	Query      string   `json:"query" desc:"The search query" required:"true"`
	MaxResults int      `json:"maxResults" desc:"Maximum number of results"`
	Domains    []string `json:"domains"`
	internal   string
}

type reportArgs struct {
	Title   string     `json:"title" required:"true"`
	Nested  searchArgs `json:"nested"`
	Skipped string     `json:"-"`
}

func TestSchemaFor(t *testing.T) {
	t.Run("struct with tags", func(t *testing.T) {
		raw, err := SchemaFor[searchArgs]()
		require.NoError(t, err)

		var schema map[string]any
		require.NoError(t, json.Unmarshal(raw, &schema))

		assert.Equal(t, "object", schema["type"])

		props, ok := schema["properties"].(map[string]any)
		require.True(t, ok)

		query, ok := props["query"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "string", query["type"])
		assert.Equal(t, "The search query", query["description"])

		maxResults, ok := props["maxResults"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "integer", maxResults["type"])

		domains, ok := props["domains"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "array", domains["type"])
		items, ok := domains["items"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "string", items["type"])

		assert.NotContains(t, props, "internal")

		required, ok := schema["required"].([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"query"}, required)
	})

	t.Run("nested struct and skipped fields", func(t *testing.T) {
		raw, err := SchemaFor[reportArgs]()
		require.NoError(t, err)

		var schema map[string]any
		require.NoError(t, json.Unmarshal(raw, &schema))

		props := schema["properties"].(map[string]any)
		assert.NotContains(t, props, "Skipped")

		nested, ok := props["nested"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "object", nested["type"])

		nestedProps, ok := nested["properties"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, nestedProps, "query")

		nestedRequired, ok := nested["required"].([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"query"}, nestedRequired)
	})

	t.Run("non-struct type", func(t *testing.T) {
		_, err := SchemaFor[string]()
		assert.Error(t, err)
	})

	t.Run("pointer to struct", func(t *testing.T) {
		raw, err := SchemaFor[*searchArgs]()
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"query"`)
	})
}

func TestSchemaBuilder(t *testing.T) {
	t.Run("fluent modifiers", func(t *testing.T) {
		raw := SchemaFrom[searchArgs]().
			Desc("maxResults", "Cap on returned results").
			Required("maxResults").
			Enum("query", "news", "web").
			Build()

		var schema map[string]any
		require.NoError(t, json.Unmarshal(raw, &schema))

		props := schema["properties"].(map[string]any)
		maxResults := props["maxResults"].(map[string]any)
		assert.Equal(t, "Cap on returned results", maxResults["description"])

		query := props["query"].(map[string]any)
		assert.Equal(t, []any{"news", "web"}, query["enum"])

		required := schema["required"].([]any)
		assert.Contains(t, required, "query")
		assert.Contains(t, required, "maxResults")
	})

	t.Run("required is idempotent", func(t *testing.T) {
		sb := SchemaFrom[searchArgs]().Required("query").Required("query")
		assert.Len(t, sb.required, 1)
	})

	t.Run("unknown field is ignored", func(t *testing.T) {
		raw := SchemaFrom[searchArgs]().Desc("nope", "missing").Build()
		assert.NotContains(t, string(raw), "missing")
	})
}

func TestMustSchemaFor(t *testing.T) {
	assert.NotPanics(t, func() {
		MustSchemaFor[searchArgs]()
	})
	assert.Panics(t, func() {
		MustSchemaFor[int]()
	})
}
