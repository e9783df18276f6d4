package tool

import "fmt"

// ErrToolNotFound is returned when a requested tool is not registered.
type ErrToolNotFound struct {
	Name string
}

func (e *ErrToolNotFound) Error() string {
	return fmt.Sprintf("tool not found: %s", e.Name)
}

// ErrToolAlreadyRegistered is returned when registering a duplicate tool name.
type ErrToolAlreadyRegistered struct {
	Name string
}

func (e *ErrToolAlreadyRegistered) Error() string {
	return fmt.Sprintf("tool already registered: %s", e.Name)
}

// ErrToolExecution wraps an error from a tool handler.
type ErrToolExecution struct {
	Name string
	Err  error
}

func (e *ErrToolExecution) Error() string {
	return fmt.Sprintf("tool %s failed: %v", e.Name, e.Err)
}

func (e *ErrToolExecution) Unwrap() error {
	return e.Err
}
