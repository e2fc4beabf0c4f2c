//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/windows"
)

// cmdBuiltins are cmd.exe internal commands that have no executable on PATH.
var cmdBuiltins = map[string]bool{
	"dir":   true,
	"echo":  true,
	"type":  true,
	"set":   true,
	"ver":   true,
	"vol":   true,
	"cd":    true,
	"chdir": true,
}

// windowsPlatform implements Platform for Windows systems.
type windowsPlatform struct{}

// newPlatform returns the Windows platform implementation.
// This is the build-tagged factory called by New() on Windows.
func newPlatform() Platform {
	return &windowsPlatform{}
}

// New returns the Platform for the current OS.
func New() Platform {
	return newPlatform()
}

// Name returns "windows".
func (w *windowsPlatform) Name() string {
	return "windows"
}

// WrapCommand routes cmd.exe builtins (dir, type, ...) through cmd.exe /C
// and runs every other program directly.
func (w *windowsPlatform) WrapCommand(args []string, env []string) *exec.Cmd {
	var cmd *exec.Cmd
	if cmdBuiltins[strings.ToLower(args[0])] {
		full := append([]string{"/D", "/C"}, args...)
		cmd = exec.Command("cmd.exe", full...) //nolint:gosec // user command is intentionally executed
	} else {
		cmd = exec.Command(args[0], args[1:]...) //nolint:gosec // user command is intentionally executed
	}
	if len(env) > 0 {
		cmd.Env = env
	}
	return cmd
}

// LocaleEncoding honors an explicit POSIX-style locale (MSYS, Cygwin shells)
// and otherwise reports the active ANSI code page.
func (w *windowsPlatform) LocaleEncoding(getenv func(string) string) (string, error) {
	if codeset, err := CodesetFromEnv(getenv); err == nil {
		return codeset, nil
	}
	acp := windows.GetACP()
	if acp == 0 {
		return "", fmt.Errorf("GetACP returned 0: %w", ErrNoLocale)
	}
	if acp == 65001 {
		return "utf-8", nil
	}
	return fmt.Sprintf("cp%d", acp), nil
}
