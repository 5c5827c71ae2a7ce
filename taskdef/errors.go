package taskdef

import "fmt"

// UnknownContainerError is returned when a mutation targets a container
// name that is not present in the task definition. Setters validate all
// targeted names before touching anything, so the definition is unchanged
// whenever this error is returned.
type UnknownContainerError struct {
	Container string
}

func (e *UnknownContainerError) Error() string {
	return fmt.Sprintf("unknown container: %s", e.Container)
}

// CommandParseError is returned when a command string that looks like a
// JSON list fails to parse as one.
type CommandParseError struct {
	Command string
	Err     error
}

func (e *CommandParseError) Error() string {
	return fmt.Sprintf("command should be a valid JSON list. got: %s: %s", e.Command, e.Err)
}

func (e *CommandParseError) Unwrap() error {
	return e.Err
}
