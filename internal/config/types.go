package config

import "fmt"

// LaunchMode selects how the miner child process is started.
type LaunchMode string

const (
	// LaunchModeTerminal spawns the miner inside an external terminal
	// emulator, leaving a shell alive afterwards for inspection.
	LaunchModeTerminal LaunchMode = "terminal"
	// LaunchModeAttached runs the miner on a pseudo-terminal and streams its
	// output into the TUI.
	LaunchModeAttached LaunchMode = "attached"
)

// Config is the top-level configuration structure for minerctl.
type Config struct {
	// Binary is the path to the miner executable.
	Binary string `yaml:"binary,omitempty"`
	// Terminal is the terminal emulator used in terminal launch mode.
	Terminal string `yaml:"terminal,omitempty"`
	// SettingsFile is the JSON parameter document path.
	SettingsFile string `yaml:"settingsFile,omitempty"`
	// LaunchMode is "terminal" or "attached".
	LaunchMode LaunchMode `yaml:"launchMode,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel,omitempty"`
}

// Validate rejects values that cannot be acted on at launch time.
func (c Config) Validate() error {
	switch c.LaunchMode {
	case LaunchModeTerminal, LaunchModeAttached:
	default:
		return fmt.Errorf("invalid launchMode %q (want %q or %q)", c.LaunchMode, LaunchModeTerminal, LaunchModeAttached)
	}
	if c.Binary == "" {
		return fmt.Errorf("binary must not be empty")
	}
	if c.LaunchMode == LaunchModeTerminal && c.Terminal == "" {
		return fmt.Errorf("terminal must not be empty in terminal launch mode")
	}
	if c.SettingsFile == "" {
		return fmt.Errorf("settingsFile must not be empty")
	}
	return nil
}
