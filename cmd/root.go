package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"minerctl/internal/config"
	"minerctl/internal/tui"
	"minerctl/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands.
// Running it launches the interactive TUI.
var rootCmd = &cobra.Command{
	Use:   "minerctl",
	Short: "Configure and launch the xmrig miner from your terminal",
	Long: `minerctl presents xmrig's command-line options as a tabbed form,
saves your choices to a JSON parameter file, and starts or stops the miner
as a child process, either wrapped in a terminal emulator or attached to the
TUI with live output.

Without a subcommand, minerctl opens the interactive TUI. Use 'minerctl run'
for headless launches and 'minerctl args' to print the assembled command line.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failed launches, bad configuration)
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		logCh := logging.InitForTUI(logging.ParseLevel(cfg.LogLevel))
		defer logging.CloseTUIChannel()

		p := tui.NewProgram(cfg, logCh)
		_, err = p.Run()
		return err
	},
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "minerctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newArgsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
