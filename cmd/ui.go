package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/anansi-cli/anansi/internal/config"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// ui prints human status lines.
type ui struct {
	out     io.Writer
	quiet   bool
	success *color.Color
	warning *color.Color
	failure *color.Color
}

// newUI returns a ui writing to w. quiet suppresses success lines only;
// warnings and errors are always shown.
func newUI(w io.Writer, quiet bool) *ui {
	u := &ui{
		out:     w,
		quiet:   quiet,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
	}
	enabled := colorEnabled(w)
	for _, c := range []*color.Color{u.success, u.warning, u.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return u
}

// colorEnabled decides whether to emit ANSI color codes.
// Priority: ANANSI_COLOR env > NO_COLOR env > auto-detect TTY on w.
func colorEnabled(w io.Writer) bool {
	if v := os.Getenv(config.ColorEnvVar); v != "" {
		if config.IsTruthy(v) {
			return true
		}
		if config.IsFalsy(v) {
			return false
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func (u *ui) Successf(format string, args ...interface{}) {
	if u.quiet {
		return
	}
	_, _ = u.success.Fprintf(u.out, "✓ %s\n", fmt.Sprintf(format, args...))
}

func (u *ui) Warningf(format string, args ...interface{}) {
	_, _ = u.warning.Fprintf(u.out, "anansi: warning: %s\n", fmt.Sprintf(format, args...))
}

func (u *ui) Errorf(format string, args ...interface{}) {
	_, _ = u.failure.Fprintf(u.out, "anansi: %s\n", fmt.Sprintf(format, args...))
}
