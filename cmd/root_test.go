package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeRootCmd builds a fresh command tree and executes it with args.
// This avoids global state contamination between tests.
func executeRootCmd(args []string) (*bytes.Buffer, *bytes.Buffer, error) {
	resetFlags()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	root := &cobra.Command{
		Use:           "anansi",
		Args:          cobra.ArbitraryArgs,
		RunE:          runCapture,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addFlags(root)
	root.AddCommand(&cobra.Command{
		Use:  "config",
		Args: cobra.ArbitraryArgs,
		RunE: runConfig,
	})

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout, stderr, err
}

// setupHome points the home directory at a temp dir and optionally creates
// its temp/ subdirectory. Returns the expected output path.
func setupHome(t *testing.T, createTemp bool) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("Unix-specific test")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ANANSI_DEBUG", "")
	t.Setenv("ANANSI_CONFIG", "")
	t.Setenv("ANANSI_COLOR", "0")
	if createTemp {
		require.NoError(t, os.MkdirAll(filepath.Join(home, "temp"), 0750))
	}
	return filepath.Join(home, "temp", "badfile.txt")
}

func TestRoot_DefaultListing(t *testing.T) {
	outPath := setupHome(t, true)

	stdout, stderr, err := executeRootCmd(nil)
	require.NoError(t, err)

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.True(t, strings.HasPrefix(string(data), "total "), "ls -l output expected, got %q", string(data))
	assert.Empty(t, stdout.String(), "nothing on stdout without --debug")
	assert.Contains(t, stderr.String(), "✓ Appended")
	assert.Contains(t, stderr.String(), outPath)
}

func TestRoot_CommandOverrideAppends(t *testing.T) {
	outPath := setupHome(t, true)

	_, _, err := executeRootCmd([]string{"--", "echo", "first"})
	require.NoError(t, err)
	_, _, err = executeRootCmd([]string{"--", "echo", "second"})
	require.NoError(t, err)

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestRoot_FileFlag(t *testing.T) {
	outPath := setupHome(t, true)
	custom := filepath.Join(filepath.Dir(outPath), "custom.txt")

	_, _, err := executeRootCmd([]string{"--file", "custom.txt", "--", "echo", "x"})
	require.NoError(t, err)

	assert.FileExists(t, custom)
	assert.NoFileExists(t, outPath)
}

func TestRoot_MissingExecutable(t *testing.T) {
	outPath := setupHome(t, true)

	_, stderr, err := executeRootCmd([]string{"--", "anansi-definitely-not-a-command-xyz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error processing command: anansi-definitely-not-a-command-xyz")
	assert.Contains(t, stderr.String(), "Errors occurred with the command logging.")
	assert.NoFileExists(t, outPath, "append is never attempted")
}

func TestRoot_MissingTempDirectory(t *testing.T) {
	outPath := setupHome(t, false)

	_, stderr, err := executeRootCmd([]string{"--", "echo", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error writing to file: "+outPath)
	assert.Contains(t, stderr.String(), "parent directory does not exist")
	assert.NoDirExists(t, filepath.Dir(outPath))
}

func TestRoot_Quiet(t *testing.T) {
	setupHome(t, true)

	_, stderr, err := executeRootCmd([]string{"-q", "--", "echo", "x"})
	require.NoError(t, err)
	assert.Empty(t, stderr.String())
}

func TestRoot_Verbose(t *testing.T) {
	setupHome(t, true)

	_, stderr, err := executeRootCmd([]string{"-v", "--", "echo", "x"})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "anansi: running [echo x]")
	assert.Contains(t, stderr.String(), "anansi: appended to")
}

func TestRoot_Debug(t *testing.T) {
	outPath := setupHome(t, true)

	stdout, _, err := executeRootCmd([]string{"--debug", "--", "echo", "debugged"})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Debug Info:")
	assert.Contains(t, stdout.String(), "captured output of echo debugged")
	assert.Contains(t, stdout.String(), "Output file handle:")
	assert.Equal(t, 1, strings.Count(stdout.String(), "Debug Info:"), "configuration is reported once")
	assert.Equal(t, 1, strings.Count(stdout.String(), "output_path"))

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Equal(t, "debugged\n", string(data))
}

func TestRoot_DebugFromEnv(t *testing.T) {
	setupHome(t, true)
	t.Setenv("ANANSI_DEBUG", "1")

	stdout, _, err := executeRootCmd([]string{"--", "echo", "x"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Debug Info:")
}

func TestRoot_DebugJSON(t *testing.T) {
	setupHome(t, true)

	stdout, _, err := executeRootCmd([]string{"--debug", "--format", "json", "--", "true"})
	require.NoError(t, err)

	// First line is the configuration report, last the output handle.
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	var report map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &report))
	assert.Equal(t, false, report["windows_like"])

	var handle map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &handle))
	assert.Equal(t, true, handle["writable"])
	assert.NotContains(t, handle, "windows_like")
}

func TestRoot_InvalidFormat(t *testing.T) {
	setupHome(t, true)

	_, _, err := executeRootCmd([]string{"--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRoot_UnknownEncoding(t *testing.T) {
	outPath := setupHome(t, true)

	_, _, err := executeRootCmd([]string{"--encoding", "nope", "--", "echo", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid encoding")

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "nothing is appended")
}

func TestRoot_NegativeTimeout(t *testing.T) {
	setupHome(t, true)

	_, _, err := executeRootCmd([]string{"--timeout", "-1s", "--", "true"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--timeout must be >= 0")
}

func TestRoot_Timeout(t *testing.T) {
	outPath := setupHome(t, true)

	_, _, err := executeRootCmd([]string{"--timeout", "100ms", "--", "sleep", "5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
	assert.NoFileExists(t, outPath)
}

func TestRoot_ConfigFile(t *testing.T) {
	outPath := setupHome(t, true)
	cfgPath := filepath.Join(t.TempDir(), "anansi.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output_filename: fromfile.txt\ncommand: [echo, from-file]\n"), 0600))

	_, _, err := executeRootCmd([]string{"--config", cfgPath})
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(filepath.Dir(outPath), "fromfile.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "from-file\n", string(data))
}

func TestRoot_ConfigFileFromEnv(t *testing.T) {
	outPath := setupHome(t, true)
	cfgPath := filepath.Join(t.TempDir(), "anansi.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("command: [echo, via-env]\n"), 0600))
	t.Setenv("ANANSI_CONFIG", cfgPath)

	_, _, err := executeRootCmd([]string{"--", "echo", "via-args"})
	require.NoError(t, err)

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)
	assert.Equal(t, "via-args\n", string(data), "command-line args override the file")
}

func TestRoot_BadConfigFile(t *testing.T) {
	setupHome(t, true)
	cfgPath := filepath.Join(t.TempDir(), "anansi.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("bogus: 1\n"), 0600))

	_, _, err := executeRootCmd([]string{"--config", cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestRoot_CompatibilityFlagsAccepted(t *testing.T) {
	setupHome(t, true)

	_, _, err := executeRootCmd([]string{"-r", "-z", "-P", "*.txt", "--", "echo", "x"})
	assert.NoError(t, err)
}
