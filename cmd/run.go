package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"minerctl/internal/config"
	"minerctl/internal/launcher"
	"minerctl/internal/settings"
	"minerctl/pkg/logging"
)

// newRunCmd builds the headless launch command. It restores the saved
// parameter document and starts the miner without the TUI.
func newRunCmd() *cobra.Command {
	var attached bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Launch the miner headlessly with the saved parameters",
		Long: `Restores the saved parameter document and launches the miner without
the TUI.

In the default terminal mode the miner is started inside the configured
terminal emulator and minerctl returns immediately. With --attached (or
launchMode: attached in the configuration) the miner runs on a pseudo-terminal
and its output is streamed to stdout until it exits or minerctl receives an
interrupt, which stops the miner first.`,
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

			l := launcher.New(cfg.Binary, cfg.Terminal)
			if attached || cfg.LaunchMode == config.LaunchModeAttached {
				return runAttached(cmd, l, doc)
			}

			done, err := l.Run(doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Miner started in %s (session %s).\n", cfg.Terminal, l.SessionID())
			// Hold the process long enough for an instantly failing terminal
			// invocation to surface; a healthy child keeps running on its own.
			select {
			case <-done:
			default:
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&attached, "attached", false, "run attached to this terminal and stream miner output")
	return cmd
}

func runAttached(cmd *cobra.Command, l *launcher.Launcher, doc settings.Document) error {
	lines, err := l.RunAttached(doc)
	if err != nil {
		return err
	}

	// Ctrl+C stops the miner gracefully; the output channel closing ends the
	// loop either way.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		case <-sigCh:
			if err := l.Stop(); err != nil && !errors.Is(err, launcher.ErrNotRunning) {
				return err
			}
		}
	}
}

// restoreOrEmpty loads the parameter document, treating a missing file as an
// empty document so the miner can still be launched with its own defaults.
func restoreOrEmpty(path string) (settings.Document, error) {
	doc, err := settings.Restore(path)
	if err != nil {
		if errors.Is(err, settings.ErrNoSettingsFile) {
			logging.Warn("CLI", "No parameter file found at %s, launching with no arguments", path)
			return settings.Document{}, nil
		}
		return nil, err
	}
	return doc, nil
}
