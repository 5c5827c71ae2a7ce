package stevedore

import "fmt"

// ConnectionError wraps failures to reach the remote service or to find
// the configured service at all: missing credentials, transport errors
// and empty describe results all surface here.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %s", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// UnknownTaskDefinitionError is returned when a lookup by ARN or by
// family and module version finds nothing.
type UnknownTaskDefinitionError struct {
	Arn     string
	Family  string
	Version string
	Err     error
}

func (e *UnknownTaskDefinitionError) Error() string {
	if e.Arn != "" {
		return fmt.Sprintf("unknown task definition arn: %s", e.Arn)
	}
	return fmt.Sprintf("task definition not found [Family=%s, ModuleVersion=%s]", e.Family, e.Version)
}

func (e *UnknownTaskDefinitionError) Unwrap() error {
	return e.Err
}

// TaskPlacementError is returned when a serverless launch lacks the
// network parameters it needs. It is raised before any remote call.
type TaskPlacementError struct {
	Message string
}

func (e *TaskPlacementError) Error() string {
	return e.Message
}

// DeploymentError wraps any remote-call failure during deploy, scale or
// run. The core neither retries nor recovers; the cause is preserved for
// the caller.
type DeploymentError struct {
	Op  string
	Err error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Err)
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}
