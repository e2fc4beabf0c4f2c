package cmd

import (
	"errors"
	"strings"

	"github.com/anansi-cli/anansi/internal/capture"
	"github.com/anansi-cli/anansi/internal/diag"
	"github.com/anansi-cli/anansi/internal/logfile"
	"github.com/anansi-cli/anansi/internal/pipeline"
	"github.com/anansi-cli/anansi/internal/platform"
	"github.com/spf13/cobra"
)

// runCapture resolves the configuration, runs the pipeline once and
// reports the outcome.
func runCapture(cmd *cobra.Command, args []string) error {
	format, err := diag.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	p := platform.New()
	cfg, err := resolveConfiguration(p, args)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	ui := newUI(stderr, cfg.Quiet())

	reporter := &diag.Reporter{
		Enabled: cfg.Debug(),
		Format:  format,
		Out:     stdout,
		Warn:    stderr,
	}
	reporter.ReportConfig(cfg)

	runner := capture.NewRunner(p, cfg.Encoding())
	runner.Timeout = cfg.Timeout()
	runner.Stderr = stderr
	if cfg.Debug() {
		runner.Debug = stdout
	}

	pl := pipeline.New(cfg, runner, reporter)
	if cfg.Verbose() {
		pl.Progress = stderr
	}

	outcome := pl.Run(cmd.Context())
	if !outcome.Succeeded() {
		ui.Errorf("Errors occurred with the command logging.")
		var wf *logfile.WriteFailure
		if errors.As(outcome.Err, &wf) {
			if hint := wf.Hint(); hint != "" {
				ui.Warningf("%s", hint)
			}
		}
		return outcome.Err
	}

	ui.Successf("Appended %d bytes from %q to %s",
		outcome.Capture.Bytes, strings.Join(outcome.Command, " "), outcome.Path)
	return nil
}
