package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minerctl/internal/catalog"
	"minerctl/internal/config"
	"minerctl/internal/launcher"
	"minerctl/pkg/logging"
)

// newArgsCmd builds the dry-run command: it prints the command line that
// 'minerctl run' would execute, without starting anything.
func newArgsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "args",
		Short: "Print the miner command line assembled from the saved parameters",
		Long: `Restores the saved parameter document and prints the exact miner command
line that would be executed, one line, without launching anything. Useful for
scripting and for checking a parameter file before a run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			logging.InitForCLI(logging.ParseLevel(cfg.LogLevel), os.Stderr)

			doc, err := restoreOrEmpty(cfg.SettingsFile)
			if err != nil {
				return err
			}

			line := launcher.CommandLine(launcher.BuildArgs(cfg.Binary, catalog.Groups(), doc))
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
