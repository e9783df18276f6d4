package research

import (
	"testing"

	"github.com/spetersoncode/scribe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	t.Run("without history", func(t *testing.T) {
		messages := Assemble("History of the transistor", "FORMAT", nil)

		require.Len(t, messages, 2)
		assert.Equal(t, scribe.RoleSystem, messages[0].Role)
		assert.Contains(t, messages[0].Content, "research assistant")
		assert.Contains(t, messages[0].Content, "FORMAT")
		assert.Equal(t, scribe.RoleUser, messages[1].Role)
		assert.Equal(t, "History of the transistor", messages[1].Content)
	})

	t.Run("with history", func(t *testing.T) {
		history := []scribe.Message{
			scribe.NewUserMessage("earlier question"),
			{Role: scribe.RoleAssistant, Content: "earlier answer"},
		}

		messages := Assemble("follow-up", "FORMAT", history)

		require.Len(t, messages, 4)
		assert.Equal(t, scribe.RoleSystem, messages[0].Role)
		assert.Equal(t, "earlier question", messages[1].Content)
		assert.Equal(t, "earlier answer", messages[2].Content)
		assert.Equal(t, "follow-up", messages[3].Content)
	})

	t.Run("does not mutate history", func(t *testing.T) {
		history := []scribe.Message{scribe.NewUserMessage("q")}
		Assemble("new", "FORMAT", history)
		assert.Len(t, history, 1)
	})
}
