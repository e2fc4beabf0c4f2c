// Package cmd implements the anansi Cobra command tree.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/anansi-cli/anansi/internal/config"
	"github.com/anansi-cli/anansi/internal/platform"
	"github.com/spf13/cobra"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	debugFlag     bool
	configFlag    string
	fileFlag      string
	encodingFlag  string
	timeoutFlag   time.Duration
	formatFlag    string
	quietFlag     bool
	verboseFlag   bool
	recursiveFlag bool
	zeroFlag      bool
	patternFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "anansi [flags] [-- command [args...]]",
	Short: "Catch a command's output and append it to a log file",
	Long: `anansi - catch command line responses

Runs a command, captures its standard output and appends it verbatim to
<base>/temp/badfile.txt, where <base> is the home directory on Unix-like
hosts and C:/temp on Windows. Without a command, the platform's directory
listing is used (ls -l . or dir *.*).

Exit status:
  0  the output was captured and appended
  1  the command failed or the output file could not be written

Environment:
  ANANSI_DEBUG   enable debug output (1, true, yes, on)
  ANANSI_CONFIG  path to a YAML configuration file
  ANANSI_COLOR   force colored status lines on or off
  NO_COLOR       disable colored status lines

Examples:
  # Append the directory listing to ~/temp/badfile.txt
  anansi

  # Capture another command into ~/temp/git.txt
  anansi --file git.txt -- git status --short

  # Show what anansi resolved
  anansi config --format yaml`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCapture,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	rootCmd.SetVersionTemplate(fmt.Sprintf("anansi version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
	addFlags(rootCmd)
	rootCmd.AddCommand(configCmd)
}

// addFlags binds the shared flags as persistent flags of c.
func addFlags(c *cobra.Command) {
	f := c.PersistentFlags()
	f.BoolVar(&debugFlag, "debug", false, "show debug info (configuration, captured output, output file handle)")
	f.StringVar(&configFlag, "config", "", "YAML configuration file (default: $"+config.ConfigEnvVar+")")
	f.StringVar(&fileFlag, "file", "", "output filename inside the temp directory (default: "+config.DefaultOutputFilename+")")
	f.StringVar(&encodingFlag, "encoding", "", "encoding of the command output (default: locale, then utf-8)")
	f.DurationVar(&timeoutFlag, "timeout", 0, "kill the command after this long (default: no limit)")
	f.StringVar(&formatFlag, "format", "text", "diagnostic format: text, json or yaml")
	f.BoolVarP(&quietFlag, "quiet", "q", false, "suppress status messages")
	f.BoolVarP(&verboseFlag, "verbose", "v", false, "display detailed progress")
	f.BoolVarP(&recursiveFlag, "recursive", "r", false, "accepted for compatibility; not interpreted")
	f.BoolVarP(&zeroFlag, "zero", "z", false, "accepted for compatibility; not interpreted")
	f.StringVarP(&patternFlag, "pattern", "P", "", "accepted for compatibility; not interpreted")
}

// resetFlags restores flag variables to their defaults.
func resetFlags() {
	debugFlag = false
	configFlag = ""
	fileFlag = ""
	encodingFlag = ""
	timeoutFlag = 0
	formatFlag = "text"
	quietFlag = false
	verboseFlag = false
	recursiveFlag = false
	zeroFlag = false
	patternFlag = ""
}

// resolveConfiguration merges flags, the optional config file and the host
// environment into a Configuration. args, when present, replace the
// platform listing command.
func resolveConfiguration(p platform.Platform, args []string) (*config.Configuration, error) {
	if timeoutFlag < 0 {
		return nil, fmt.Errorf("--timeout must be >= 0, got %s", timeoutFlag)
	}

	opts := config.Options{
		OutputFilename: fileFlag,
		Encoding:       encodingFlag,
		Debug:          debugFlag,
		Command:        args,
		Timeout:        timeoutFlag,
		Quiet:          quietFlag,
		Verbose:        verboseFlag,
		Recursive:      recursiveFlag,
		Zero:           zeroFlag,
		Pattern:        patternFlag,
	}

	path := configFlag
	if path == "" {
		path = os.Getenv(config.ConfigEnvVar)
	}
	if path != "" {
		file, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = file.Merge(opts)
	}

	cfg, err := config.Resolve(config.System(p), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve configuration: %w", err)
	}
	return cfg, nil
}
