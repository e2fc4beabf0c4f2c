// Package logfile appends captured command output to the anansi output file.
package logfile

import (
	"fmt"
	"io"
	"os"
)

// FileMode is the permission used when the output file is created.
const FileMode os.FileMode = 0644

// OpenFlags opens for append, creating the file but never its parent directory.
const OpenFlags = os.O_APPEND | os.O_CREATE | os.O_WRONLY

// Appender writes text to the end of a file.
type Appender struct {
	// Inspect, when set, is called with the open handle before the write.
	// It must not write to or close the file.
	Inspect func(f *os.File)
}

// Append opens path in append mode, writes text exactly once and closes the
// handle on every exit path. Failures are returned as *WriteFailure.
func (a *Appender) Append(path, text string) (err error) {
	file, err := os.OpenFile(path, OpenFlags, FileMode) //nolint:gosec // output path is resolved by config
	if err != nil {
		return &WriteFailure{Path: path, Op: OpOpen, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &WriteFailure{Path: path, Op: OpClose, Err: cerr}
		}
	}()

	if a != nil && a.Inspect != nil {
		a.Inspect(file)
	}

	n, werr := io.WriteString(file, text)
	if werr != nil {
		return &WriteFailure{Path: path, Op: OpWrite, Err: werr}
	}
	if n != len(text) {
		return &WriteFailure{Path: path, Op: OpWrite, Err: fmt.Errorf("short write: %d of %d bytes: %w", n, len(text), io.ErrShortWrite)}
	}
	return nil
}

// Append is a convenience wrapper around a zero Appender.
func Append(path, text string) error {
	return (&Appender{}).Append(path, text)
}
