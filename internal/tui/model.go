// Package tui implements the interactive terminal interface: a tabbed form of
// miner options generated from the catalog, save/load of the parameter
// document, and run/stop control of the miner child process.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"minerctl/internal/catalog"
	"minerctl/internal/config"
	"minerctl/internal/launcher"
	"minerctl/pkg/logging"
)

// appMode tracks which screen the TUI is showing.
type appMode int

const (
	modeForm appMode = iota
	modeHelpOverlay
	modeOutputOverlay
	modeQuitting
)

// statusKind selects the status bar color.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

type model struct {
	cfg      config.Config
	form     *form
	launcher *launcher.Launcher

	mode    appMode
	tab     int // active group index
	cursor  int // field index within the active group
	editing bool

	status            string
	statusType        statusKind
	statusClearCancel chan struct{}

	minerRunning bool

	outputView  viewport.Model
	outputLines []string
	outputCh    <-chan string

	activityLog []string
	logCh       <-chan logging.LogEntry

	spin spinner.Model
	keys KeyMap

	width  int
	height int
	ready  bool
}

// NewProgram builds the Bubble Tea program for the given configuration.
// logCh is the channel returned by logging.InitForTUI.
func NewProgram(cfg config.Config, logCh <-chan logging.LogEntry) *tea.Program {
	return tea.NewProgram(initialModel(cfg, logCh), tea.WithAltScreen())
}

func initialModel(cfg config.Config, logCh <-chan logging.LogEntry) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005500", Dark: "#8AE234"})

	return model{
		cfg:      cfg,
		form:     newForm(catalog.Groups()),
		launcher: launcher.New(cfg.Binary, cfg.Terminal),
		mode:     modeForm,
		spin:     sp,
		keys:     DefaultKeyMap(),
		logCh:    logCh,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, textinput.Blink, listenForLogsCmd(m.logCh))
}

// activeFields returns the fields of the currently selected group.
func (m *model) activeFields() []*field {
	if m.tab < 0 || m.tab >= len(m.form.groups) {
		return nil
	}
	return m.form.groups[m.tab].fields
}

// focusedField returns the field under the cursor, or nil for an empty group.
func (m *model) focusedField() *field {
	fields := m.activeFields()
	if len(fields) == 0 || m.cursor < 0 || m.cursor >= len(fields) {
		return nil
	}
	return fields[m.cursor]
}
