// Package diag produces the anansi diagnostic report: an enumerated dump of
// the resolved configuration and, when available, the output file handle.
// Reporting is observability only. It never mutates state and never fails
// the run; problems degrade to a warning line.
package diag

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/anansi-cli/anansi/internal/config"
)

// Report is the enumerated diagnostic snapshot.
type Report struct {
	Platform       string        `json:"platform" yaml:"platform"`
	WindowsLike    bool          `json:"windows_like" yaml:"windows_like"`
	GOOS           string        `json:"goos" yaml:"goos"`
	GOARCH         string        `json:"goarch" yaml:"goarch"`
	GoVersion      string        `json:"go_version" yaml:"go_version"`
	DisplayWidth   int           `json:"display_width" yaml:"display_width"`
	OutputFilename string        `json:"output_filename" yaml:"output_filename"`
	OutputPath     string        `json:"output_path" yaml:"output_path"`
	Encoding       string        `json:"encoding" yaml:"encoding"`
	EncodingSource string        `json:"encoding_source" yaml:"encoding_source"`
	Debug          bool          `json:"debug" yaml:"debug"`
	Command        []string      `json:"command" yaml:"command"`
	Timeout        string        `json:"timeout" yaml:"timeout"`
	Options        ReportOptions `json:"options" yaml:"options"`
	Handle         *HandleInfo   `json:"handle,omitempty" yaml:"handle,omitempty"`
}

// ReportOptions are the command-line options carried but not interpreted.
type ReportOptions struct {
	Quiet     bool   `json:"quiet" yaml:"quiet"`
	Verbose   bool   `json:"verbose" yaml:"verbose"`
	Recursive bool   `json:"recursive" yaml:"recursive"`
	Zero      bool   `json:"zero" yaml:"zero"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// BuildReport snapshots cfg and, when non-nil, handle.
func BuildReport(cfg *config.Configuration, handle *HandleInfo) *Report {
	timeout := "none"
	if cfg.Timeout() > 0 {
		timeout = cfg.Timeout().String()
	}
	return &Report{
		Platform:       cfg.Platform(),
		WindowsLike:    cfg.WindowsLike(),
		GOOS:           runtime.GOOS,
		GOARCH:         runtime.GOARCH,
		GoVersion:      runtime.Version(),
		DisplayWidth:   cfg.DisplayWidth(),
		OutputFilename: cfg.OutputFilename(),
		OutputPath:     cfg.OutputPath(),
		Encoding:       cfg.Encoding(),
		EncodingSource: cfg.EncodingSource(),
		Debug:          cfg.Debug(),
		Command:        cfg.Command(),
		Timeout:        timeout,
		Options: ReportOptions{
			Quiet:     cfg.Quiet(),
			Verbose:   cfg.Verbose(),
			Recursive: cfg.Recursive(),
			Zero:      cfg.Zero(),
			Pattern:   cfg.Pattern(),
		},
		Handle: handle,
	}
}

// Reporter writes diagnostic reports when enabled.
type Reporter struct {
	Enabled bool
	Format  Format

	// Out receives reports. Defaults to os.Stdout.
	Out io.Writer

	// Warn receives warnings about failed reports. Defaults to os.Stderr.
	Warn io.Writer
}

// NewReporter returns a text Reporter writing to stdout.
func NewReporter(enabled bool) *Reporter {
	return &Reporter{
		Enabled: enabled,
		Format:  FormatText,
		Out:     os.Stdout,
		Warn:    os.Stderr,
	}
}

// ReportConfig writes the configuration section.
func (r *Reporter) ReportConfig(cfg *config.Configuration) {
	if r == nil || !r.Enabled {
		return
	}
	r.emit(func(w io.Writer) error {
		return Render(w, r.Format, BuildReport(cfg, nil), cfg.DisplayWidth())
	})
}

// ReportHandle writes the properties of an open output handle. The
// configuration is not repeated; ReportConfig has already written it.
func (r *Reporter) ReportHandle(cfg *config.Configuration, f *os.File, writable bool) {
	if r == nil || !r.Enabled {
		return
	}
	r.emit(func(w io.Writer) error {
		info := Describe(f, writable)
		return RenderHandle(w, r.Format, &info, cfg.DisplayWidth())
	})
}

func (r *Reporter) emit(render func(io.Writer) error) {
	defer func() {
		if p := recover(); p != nil {
			r.warn(fmt.Errorf("panic: %v", p))
		}
	}()

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	if err := render(out); err != nil {
		r.warn(err)
	}
}

func (r *Reporter) warn(err error) {
	w := r.Warn
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "anansi: warning: diagnostic report failed: %v\n", err)
}
