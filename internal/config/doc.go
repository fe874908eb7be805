// Package config provides configuration management for minerctl.
//
// Configuration is layered: built-in defaults, then the user file at
// ~/.config/minerctl/config.yaml, then the project file at
// ./.minerctl/config.yaml, with later layers overriding earlier ones.
//
// The file is a small YAML document:
//
//	binary: ./xmrig
//	terminal: mate-terminal
//	settingsFile: xmrig_parameters.json
//	launchMode: terminal   # or "attached"
//	logLevel: info
//
// binary is the miner executable, resolved relative to the working directory
// when not absolute. terminal is the emulator used in terminal launch mode;
// it must accept a `-- bash -c "<command>"` invocation. settingsFile is the
// JSON document the Save/Load actions read and write. launchMode selects
// whether the miner runs inside the terminal emulator or attached to the TUI
// with its output streamed into the output view.
package config
