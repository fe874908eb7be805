package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
// It helps in managing and displaying help information.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Edit        key.Binding // Context-dependent: edit text / toggle / cycle
	Toggle      key.Binding
	NextChoice  key.Binding
	PrevChoice  key.Binding
	Save        key.Binding
	Load        key.Binding
	RunMiner    key.Binding
	StopMiner   key.Binding
	CopyCommand key.Binding
	ShowOutput  key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous option"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next option"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next group"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous group"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit/toggle option"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle checkbox"),
		),
		NextChoice: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next choice"),
		),
		PrevChoice: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous choice"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save parameters"),
		),
		Load: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load parameters"),
		),
		RunMiner: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run miner"),
		),
		StopMiner: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop miner"),
		),
		CopyCommand: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy command line"),
		),
		ShowOutput: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle miner output"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}
