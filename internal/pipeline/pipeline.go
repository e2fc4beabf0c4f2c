// Package pipeline drives one anansi run: capture the configured command,
// append its output to the resolved path and surface diagnostics along the
// way. A run is single-shot and synchronous.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/anansi-cli/anansi/internal/capture"
	"github.com/anansi-cli/anansi/internal/config"
	"github.com/anansi-cli/anansi/internal/diag"
	"github.com/anansi-cli/anansi/internal/logfile"
)

// Runner captures a command's output.
type Runner interface {
	Run(ctx context.Context, cmd []string) (*capture.Result, error)
}

// Appender appends text to a file.
type Appender interface {
	Append(path, text string) error
}

// Outcome is the result of a run.
type Outcome struct {
	State   State
	Command []string
	Path    string
	Capture *capture.Result
	Err     error
}

// ExitCode maps the outcome to a process exit status: 0 on success, 1 otherwise.
func (o *Outcome) ExitCode() int {
	if o.State == StateLoggedSuccess && o.Err == nil {
		return 0
	}
	return 1
}

// Succeeded reports whether the output was appended.
func (o *Outcome) Succeeded() bool {
	return o.ExitCode() == 0
}

// Pipeline wires the components of a run.
type Pipeline struct {
	Config   *config.Configuration
	Runner   Runner
	Appender Appender
	Reporter *diag.Reporter

	// Progress, when non-nil, receives one line per state transition.
	Progress io.Writer
}

// New builds a Pipeline that appends with a logfile.Appender and reports
// the open output handle through reporter.
func New(cfg *config.Configuration, runner *capture.Runner, reporter *diag.Reporter) *Pipeline {
	p := &Pipeline{
		Config:   cfg,
		Runner:   runner,
		Reporter: reporter,
	}
	p.Appender = &logfile.Appender{Inspect: p.inspectHandle}
	return p
}

// inspectHandle reports the open output handle in debug mode.
func (p *Pipeline) inspectHandle(f *os.File) {
	writable := logfile.OpenFlags&(os.O_WRONLY|os.O_RDWR) != 0
	p.Reporter.ReportHandle(p.Config, f, writable)
}

// Run executes the pipeline once. It never retries.
func (p *Pipeline) Run(ctx context.Context) *Outcome {
	out := &Outcome{
		State:   StateResolved,
		Command: p.Config.Command(),
		Path:    p.Config.OutputPath(),
	}

	p.progressf("running %v", out.Command)
	res, err := p.Runner.Run(ctx, out.Command)
	if err != nil {
		out.State = StateLoggedFailure
		out.Err = classifyCapture(out.Command, err)
		p.progressf("capture failed, nothing appended")
		return out
	}
	out.Capture = res
	out.State = StateCaptured
	p.progressf("captured %d bytes in %s", res.Bytes, res.Duration)

	if err := p.Appender.Append(out.Path, res.Output); err != nil {
		out.State = StateLoggedFailure
		out.Err = classifyWrite(out.Path, err)
		p.progressf("append to %s failed", out.Path)
		return out
	}
	out.State = StateLoggedSuccess
	p.progressf("appended to %s", out.Path)
	return out
}

func (p *Pipeline) progressf(format string, args ...interface{}) {
	if p.Progress == nil {
		return
	}
	_, _ = fmt.Fprintf(p.Progress, "anansi: "+format+"\n", args...)
}

// classifyCapture guarantees capture errors surface as *capture.ExecutionFailure.
func classifyCapture(cmd []string, err error) error {
	var failure *capture.ExecutionFailure
	if errors.As(err, &failure) {
		return err
	}
	return &capture.ExecutionFailure{Command: cmd, Stage: capture.StageStart, ExitCode: -1, Err: err}
}

// classifyWrite guarantees append errors surface as *logfile.WriteFailure.
func classifyWrite(path string, err error) error {
	var failure *logfile.WriteFailure
	if errors.As(err, &failure) {
		return err
	}
	return &logfile.WriteFailure{Path: path, Op: logfile.OpWrite, Err: err}
}
