package config

import "minerctl/internal/settings"

// GetDefaultConfig returns the built-in defaults: the miner binary next to
// the working directory, mate-terminal as the wrapper, and the parameter
// file name xmrig users already have from earlier tooling.
func GetDefaultConfig() Config {
	return Config{
		Binary:       "./xmrig",
		Terminal:     "mate-terminal",
		SettingsFile: settings.DefaultFile,
		LaunchMode:   LaunchModeTerminal,
		LogLevel:     "info",
	}
}
