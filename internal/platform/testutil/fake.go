// Package testutil provides test helpers for the platform package.
package testutil

import (
	"os/exec"
	"strings"

	"github.com/anansi-cli/anansi/internal/platform"
)

// FakePlatform is a configurable test double implementing platform.Platform.
// Test authors set the function fields to control behavior per test case.
type FakePlatform struct {
	// NameValue is returned by Name(). Default: "fake".
	NameValue string

	// WrapCommandFunc overrides WrapCommand. If nil, returns exec.Command(args[0], args[1:]...).
	WrapCommandFunc func(args []string, env []string) *exec.Cmd

	// LocaleEncodingFunc overrides LocaleEncoding. If nil, returns EncodingValue.
	LocaleEncodingFunc func(getenv func(string) string) (string, error)

	// EncodingValue is returned by LocaleEncoding when no func is set. Default: "UTF-8".
	EncodingValue string

	// Calls tracks method invocations for assertion.
	Calls []Call
}

// Call records a single method invocation on FakePlatform.
type Call struct {
	Method string
	Args   []string
}

// NewFakePlatform returns a FakePlatform with sensible defaults.
func NewFakePlatform() *FakePlatform {
	return &FakePlatform{
		NameValue:     "fake",
		EncodingValue: "UTF-8",
	}
}

// Name returns the configured platform name.
func (f *FakePlatform) Name() string {
	return f.NameValue
}

// WrapCommand returns an exec.Cmd or delegates to WrapCommandFunc.
func (f *FakePlatform) WrapCommand(args []string, env []string) *exec.Cmd {
	f.Calls = append(f.Calls, Call{Method: "WrapCommand", Args: args})
	if f.WrapCommandFunc != nil {
		return f.WrapCommandFunc(args, env)
	}
	// Default: run args[0] directly (cross-platform safe for tests)
	cmd := exec.Command(args[0], args[1:]...) //nolint:gosec // test helper
	if len(env) > 0 {
		cmd.Env = env
	}
	return cmd
}

// LocaleEncoding returns the configured encoding or delegates to LocaleEncodingFunc.
func (f *FakePlatform) LocaleEncoding(getenv func(string) string) (string, error) {
	f.Calls = append(f.Calls, Call{Method: "LocaleEncoding"})
	if f.LocaleEncodingFunc != nil {
		return f.LocaleEncodingFunc(getenv)
	}
	return f.EncodingValue, nil
}

// CallCount returns the number of times a method was called.
func (f *FakePlatform) CallCount(method string) int {
	count := 0
	for _, c := range f.Calls {
		if c.Method == method {
			count++
		}
	}
	return count
}

// CalledWith returns true if the method was called with the given args (prefix match).
func (f *FakePlatform) CalledWith(method string, args ...string) bool {
	for _, c := range f.Calls {
		if c.Method != method {
			continue
		}
		if len(args) > len(c.Args) {
			continue
		}
		match := true
		for i, a := range args {
			if !strings.Contains(c.Args[i], a) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Verify compile-time interface compliance.
var _ platform.Platform = (*FakePlatform)(nil)
