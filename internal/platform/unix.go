//go:build !windows

package platform

import (
	"os/exec"
)

// unixPlatform implements Platform for Unix-like systems (Linux, macOS, FreeBSD, etc.).
type unixPlatform struct{}

// newPlatform returns the Unix platform implementation.
// This is the build-tagged factory called by New() on non-Windows systems.
func newPlatform() Platform {
	return &unixPlatform{}
}

// New returns the Platform for the current OS.
func New() Platform {
	return newPlatform()
}

// Name returns "unix".
func (u *unixPlatform) Name() string {
	return "unix"
}

// WrapCommand runs args directly; ls and friends are real binaries on Unix.
func (u *unixPlatform) WrapCommand(args []string, env []string) *exec.Cmd {
	cmd := exec.Command(args[0], args[1:]...) //nolint:gosec // user command is intentionally executed
	if len(env) > 0 {
		cmd.Env = env
	}
	return cmd
}

// LocaleEncoding reads the codeset from LC_ALL, LC_CTYPE or LANG.
func (u *unixPlatform) LocaleEncoding(getenv func(string) string) (string, error) {
	return CodesetFromEnv(getenv)
}
