// Package platform defines the OS abstraction layer for anansi.
// Platform-dependent decisions (default listing command, output base
// directory, shell wrapping of builtins, locale encoding lookup) live here.
// The capability table is data; OS hooks are selected at compile time via
// Go build tags.
package platform

import (
	"os/exec"
)

// ShellExecutor builds the child process for a command vector.
type ShellExecutor interface {
	// WrapCommand returns an exec.Cmd for args. Shell builtins are routed
	// through the native shell (cmd.exe /C on Windows); everything else
	// runs directly.
	WrapCommand(args []string, env []string) *exec.Cmd
}

// LocaleProvider reports the host's preferred text encoding.
type LocaleProvider interface {
	// LocaleEncoding returns the raw encoding name preferred by the host
	// locale (e.g. "UTF-8", "ISO-8859-1", "cp1252").
	LocaleEncoding(getenv func(string) string) (string, error)
}

// Platform is the composite interface grouping all OS-specific strategies.
// Obtained via New() which is defined in build-tagged files.
type Platform interface {
	ShellExecutor
	LocaleProvider

	// Name returns a human-readable platform identifier ("unix" or "windows").
	Name() string
}
