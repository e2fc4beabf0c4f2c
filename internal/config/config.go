// Package config resolves the process-wide anansi configuration: host
// platform classification, the default command vector, the output path and
// the text encoding used to decode captured output. A Configuration is built
// once by Resolve and never mutated afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/anansi-cli/anansi/internal/platform"
)

const (
	// DefaultOutputFilename is the file captured output is appended to.
	DefaultOutputFilename = "badfile.txt"

	// DefaultDisplayWidth is the rule width used by the text diagnostic report.
	DefaultDisplayWidth = 57

	// TempSegment is the directory segment inserted between the base
	// directory and the output filename.
	TempSegment = "temp"
)

// Encoding sources reported by Configuration.EncodingSource.
const (
	EncodingFromOption   = "option"
	EncodingFromLocale   = "locale"
	EncodingFromFallback = "fallback"
)

// Options carries caller-supplied settings. Zero values mean "use the default".
type Options struct {
	OutputFilename string
	DisplayWidth   int
	Encoding       string
	Debug          bool
	Command        []string
	Timeout        time.Duration

	// Accepted from the command line and reported, never interpreted.
	Quiet     bool
	Verbose   bool
	Recursive bool
	Zero      bool
	Pattern   string
}

// Environment is the set of host inputs Resolve depends on.
type Environment struct {
	GOOS    string
	HomeDir func() (string, error)
	Getenv  func(string) string
	Locale  platform.LocaleProvider
}

// System returns the Environment of the running process.
func System(p platform.Platform) Environment {
	return Environment{
		GOOS:    runtime.GOOS,
		HomeDir: os.UserHomeDir,
		Getenv:  os.Getenv,
		Locale:  p,
	}
}

// Configuration is the immutable, resolved configuration of one run.
type Configuration struct {
	platformID     string
	windowsLike    bool
	displayWidth   int
	outputFilename string
	outputPath     string
	encoding       string
	encodingSource string
	debug          bool
	command        []string
	timeout        time.Duration

	quiet     bool
	verbose   bool
	recursive bool
	zero      bool
	pattern   string
}

// Resolve builds the Configuration for env and opts.
// Locale encoding problems never fail resolution; an explicit unknown
// encoding, an unusable home directory on a POSIX-like host or an invalid
// output filename does.
func Resolve(env Environment, opts Options) (*Configuration, error) {
	if env.Getenv == nil {
		env.Getenv = func(string) string { return "" }
	}

	capability := platform.Lookup(env.GOOS)

	filename := opts.OutputFilename
	if filename == "" {
		filename = DefaultOutputFilename
	}
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	outputPath, err := outputPath(env, capability, filename)
	if err != nil {
		return nil, err
	}

	width := opts.DisplayWidth
	if width <= 0 {
		width = DefaultDisplayWidth
	}

	command := capability.DefaultCommand()
	if len(opts.Command) > 0 {
		command = make([]string, len(opts.Command))
		copy(command, opts.Command)
	}

	encoding, source, err := resolveEncoding(env, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("invalid encoding: %w", err)
	}

	return &Configuration{
		platformID:     env.GOOS,
		windowsLike:    capability.WindowsLike,
		displayWidth:   width,
		outputFilename: filename,
		outputPath:     outputPath,
		encoding:       encoding,
		encodingSource: source,
		debug:          opts.Debug || IsTruthy(env.Getenv(DebugEnvVar)),
		command:        command,
		timeout:        opts.Timeout,
		quiet:          opts.Quiet,
		verbose:        opts.Verbose,
		recursive:      opts.Recursive,
		zero:           opts.Zero,
		pattern:        opts.Pattern,
	}, nil
}

// validateFilename keeps the output file directly inside the temp segment.
func validateFilename(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("output filename must be a plain file name, got %q", name)
	}
	return nil
}

// outputPath joins the platform base directory, the temp segment and the
// filename. Windows-like bases are already absolute (drive-qualified).
func outputPath(env Environment, c platform.Capability, filename string) (string, error) {
	if c.OutputBase != "" {
		return filepath.FromSlash(path.Join(c.OutputBase, TempSegment, filename)), nil
	}

	if env.HomeDir == nil {
		return "", errors.New("cannot resolve home directory: no lookup configured")
	}
	home, err := env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	if home == "" {
		return "", errors.New("cannot resolve home directory: empty path")
	}

	p := filepath.Join(home, TempSegment, filename)
	if !filepath.IsAbs(p) {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("failed to resolve output path: %w", err)
		}
		p = abs
	}
	return p, nil
}

// Platform returns the platform identifier the configuration was resolved for.
func (c *Configuration) Platform() string { return c.platformID }

// WindowsLike reports whether Windows path and shell conventions apply.
func (c *Configuration) WindowsLike() bool { return c.windowsLike }

// DisplayWidth returns the report rule width.
func (c *Configuration) DisplayWidth() int { return c.displayWidth }

// OutputFilename returns the bare output filename.
func (c *Configuration) OutputFilename() string { return c.outputFilename }

// OutputPath returns the absolute output file path.
func (c *Configuration) OutputPath() string { return c.outputPath }

// Encoding returns the canonical encoding name used to decode output.
func (c *Configuration) Encoding() string { return c.encoding }

// EncodingSource reports where the encoding came from: option, locale or fallback.
func (c *Configuration) EncodingSource() string { return c.encodingSource }

// Debug reports whether diagnostic mode is on.
func (c *Configuration) Debug() bool { return c.debug }

// Command returns a copy of the command vector to run.
func (c *Configuration) Command() []string {
	out := make([]string, len(c.command))
	copy(out, c.command)
	return out
}

// Timeout returns the child process time limit; zero means none.
func (c *Configuration) Timeout() time.Duration { return c.timeout }

// Quiet reports the --quiet option.
func (c *Configuration) Quiet() bool { return c.quiet }

// Verbose reports the --verbose option.
func (c *Configuration) Verbose() bool { return c.verbose }

// Recursive reports the --recursive option.
func (c *Configuration) Recursive() bool { return c.recursive }

// Zero reports the --zero option.
func (c *Configuration) Zero() bool { return c.zero }

// Pattern returns the --pattern option.
func (c *Configuration) Pattern() string { return c.pattern }
