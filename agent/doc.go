// Package agent implements the synchronous tool-calling loop.
//
// An [Agent] repeatedly sends the conversation to a chat provider. When the
// model responds with tool calls the agent executes them sequentially through
// its registry, appends the observations to the conversation, and asks the
// model again. A response without tool calls ends the loop and becomes the
// result.
//
// The loop is bounded by a step limit (see [WithMaxSteps]); exceeding it
// returns an [ExhaustedError]. A request for an unregistered tool aborts the
// run with an [UnknownToolError] before any handler in that batch executes.
// Handler failures, by contrast, are recoverable: they are fed back to the
// model as error observations and the loop continues.
package agent
