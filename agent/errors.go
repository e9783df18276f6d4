package agent

import "fmt"

// UnknownToolError is returned when the model requests a tool that is
// not in the registry. The run aborts without invoking any handler from
// the offending batch, since a hallucinated tool name means the model
// and registry have diverged.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("agent: model requested unknown tool %q", e.Name)
}

// ExhaustedError is returned when the loop reaches its step limit
// without the model producing a final answer.
type ExhaustedError struct {
	Steps int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("agent: no final answer after %d steps", e.Steps)
}
