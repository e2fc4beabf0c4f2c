package cmd

import (
	"github.com/anansi-cli/anansi/internal/diag"
	"github.com/anansi-cli/anansi/internal/platform"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [flags] [-- command [args...]]",
	Short: "Print the resolved configuration",
	Long: `Print the configuration anansi would run with: platform, command,
output path and encoding. Nothing is executed and no file is touched.

Examples:
  anansi config
  anansi config --format json
  anansi config --file git.txt -- git status`,
	Args: cobra.ArbitraryArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	format, err := diag.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, err := resolveConfiguration(platform.New(), args)
	if err != nil {
		return err
	}

	return diag.Render(cmd.OutOrStdout(), format, diag.BuildReport(cfg, nil), cfg.DisplayWidth())
}
