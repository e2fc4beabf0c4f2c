package capture

import (
	"fmt"
	"strings"
)

// Stage names the point at which a capture failed.
type Stage string

const (
	// StageInvalid means the command vector was unusable (empty program).
	StageInvalid Stage = "invalid"
	// StageStart means the process could not be started (e.g. not found).
	StageStart Stage = "start"
	// StageExit means the process ran and exited non-zero or was killed.
	StageExit Stage = "exit"
	// StageTimeout means the process outlived its time limit.
	StageTimeout Stage = "timeout"
	// StageCanceled means the caller's context was canceled while the
	// process ran.
	StageCanceled Stage = "canceled"
	// StageDecode means the output was not valid in the resolved encoding.
	StageDecode Stage = "decode"
)

// ExecutionFailure reports a command that could not be run or whose output
// could not be decoded. It wraps the original cause.
type ExecutionFailure struct {
	// Command is the command vector that was attempted.
	Command []string

	// Stage is where the failure happened.
	Stage Stage

	// ExitCode is the child's exit status for StageExit, 128+N when killed
	// by signal N, and -1 otherwise.
	ExitCode int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ExecutionFailure) Error() string {
	cmd := strings.Join(e.Command, " ")
	switch e.Stage {
	case StageExit:
		return fmt.Sprintf("error processing command: %s: exit status %d", cmd, e.ExitCode)
	default:
		return fmt.Sprintf("error processing command: %s: %s: %v", cmd, e.Stage, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *ExecutionFailure) Unwrap() error {
	return e.Err
}
