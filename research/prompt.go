package research

import (
	"strings"

	"github.com/spetersoncode/scribe"
)

// systemPrompt instructs the model to act as a research assistant and
// emit only the structured output. The format instructions are appended
// by Assemble.
const systemPrompt = `You are a research assistant that will help generate a research paper.
Answer the user query and use the necessary tools.
Wrap the output in this format and provide no other text:`

// Assemble builds the conversation for a research query: the system
// prompt with format instructions, the prior session history, then the
// query itself. History messages are included as-is so follow-up
// queries can reference earlier exchanges.
func Assemble(query, formatInstructions string, history []scribe.Message) []scribe.Message {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	b.WriteString(formatInstructions)

	messages := make([]scribe.Message, 0, len(history)+2)
	messages = append(messages, scribe.NewSystemMessage(b.String()))
	messages = append(messages, history...)
	messages = append(messages, scribe.NewUserMessage(query))
	return messages
}
