// Package capture runs a command vector as a child process and returns its
// standard output decoded as text. Each Run is single-shot: failures are
// classified as ExecutionFailure and never retried.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/anansi-cli/anansi/internal/platform"
)

// waitDelay bounds how long Wait blocks on output pipes held open by
// grandchildren after the child itself is gone.
const waitDelay = time.Second

// Result is a successful capture.
type Result struct {
	Command  []string
	Output   string
	Encoding string
	Bytes    int
	Duration time.Duration
}

// Runner executes commands and captures their output.
type Runner struct {
	// Shell builds the child process.
	Shell platform.ShellExecutor

	// Encoding names the encoding used to decode stdout.
	Encoding string

	// Timeout bounds the child's runtime. Zero means no limit.
	Timeout time.Duration

	// Stderr receives the child's standard error. Nil discards it.
	Stderr io.Writer

	// Debug, when non-nil, receives the full captured text after a
	// successful run. Write errors on it are ignored.
	Debug io.Writer

	// Env overrides the child environment. Nil inherits the parent's.
	Env []string
}

// NewRunner returns a Runner that passes child stderr through to os.Stderr.
func NewRunner(shell platform.ShellExecutor, encoding string) *Runner {
	return &Runner{
		Shell:    shell,
		Encoding: encoding,
		Stderr:   os.Stderr,
	}
}

// Run executes cmd, waits for it and returns its decoded stdout.
// Any failure is returned as *ExecutionFailure.
func (r *Runner) Run(ctx context.Context, cmd []string) (*Result, error) {
	argv := append([]string(nil), cmd...)
	if len(argv) == 0 || argv[0] == "" {
		return nil, &ExecutionFailure{
			Command:  argv,
			Stage:    StageInvalid,
			ExitCode: -1,
			Err:      errors.New("no command specified"),
		}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	child := r.Shell.WrapCommand(argv, r.Env)
	var stdout bytes.Buffer
	child.Stdout = &stdout
	child.Stderr = r.Stderr
	if child.Stderr == nil {
		child.Stderr = io.Discard
	}
	child.WaitDelay = waitDelay

	start := time.Now()
	if err := child.Start(); err != nil {
		return nil, &ExecutionFailure{Command: argv, Stage: StageStart, ExitCode: -1, Err: err}
	}

	done := make(chan error, 1)
	go func() { done <- child.Wait() }()

	var waitErr error
	select {
	case waitErr = <-done:
	case <-ctx.Done():
		_ = child.Process.Kill()
		<-done
		elapsed := time.Since(start).Round(time.Millisecond)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &ExecutionFailure{
				Command:  argv,
				Stage:    StageTimeout,
				ExitCode: -1,
				Err:      fmt.Errorf("killed after %s: %w", elapsed, ctx.Err()),
			}
		}
		return nil, &ExecutionFailure{
			Command:  argv,
			Stage:    StageCanceled,
			ExitCode: -1,
			Err:      fmt.Errorf("canceled after %s: %w", elapsed, ctx.Err()),
		}
	}
	elapsed := time.Since(start)

	if waitErr != nil {
		stage := StageExit
		code := ExitCodeFromError(waitErr)
		if code < 0 {
			stage = StageStart
		}
		return nil, &ExecutionFailure{Command: argv, Stage: stage, ExitCode: code, Err: waitErr}
	}

	text, err := Decode(stdout.Bytes(), r.Encoding)
	if err != nil {
		return nil, &ExecutionFailure{Command: argv, Stage: StageDecode, ExitCode: 0, Err: err}
	}

	if r.Debug != nil {
		_, _ = fmt.Fprintf(r.Debug, "captured output of %s:\n\n%s\n", strings.Join(argv, " "), text)
	}

	return &Result{
		Command:  argv,
		Output:   text,
		Encoding: r.Encoding,
		Bytes:    stdout.Len(),
		Duration: elapsed,
	}, nil
}
