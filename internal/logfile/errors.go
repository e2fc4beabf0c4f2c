package logfile

import (
	"errors"
	"fmt"
	"io/fs"
)

// Op names the file operation that failed.
type Op string

const (
	OpOpen  Op = "open"
	OpWrite Op = "write"
	OpClose Op = "close"
)

// WriteFailure reports an output file that could not be opened or written.
type WriteFailure struct {
	Path string
	Op   Op
	Err  error
}

// Error implements the error interface.
func (e *WriteFailure) Error() string {
	return fmt.Sprintf("error writing to file: %s: %s: %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteFailure) Unwrap() error {
	return e.Err
}

// Hint returns a short remediation hint for common causes, or "".
func (e *WriteFailure) Hint() string {
	switch {
	case errors.Is(e.Err, fs.ErrNotExist):
		return "the parent directory does not exist; create it first"
	case errors.Is(e.Err, fs.ErrPermission):
		return "permission denied; check ownership and mode of the file and its directory"
	default:
		return ""
	}
}
