package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"minerctl/internal/catalog"
	"minerctl/internal/launcher"
	"minerctl/internal/settings"
)

// setStatus updates the status bar message and schedules clearing it after
// the display duration, cancelling any previously scheduled clear.
func (m *model) setStatus(message string, kind statusKind) tea.Cmd {
	m.status = message
	m.statusType = kind

	if m.statusClearCancel != nil {
		close(m.statusClearCancel)
	}
	m.statusClearCancel = make(chan struct{})
	captured := m.statusClearCancel

	return tea.Tick(statusMessageDuration, func(time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return clearStatusMsg{}
		}
	})
}

// Update is the heart of the Bubble Tea program, handling all incoming messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.outputView = viewport.New(max(20, msg.Width-8), max(5, msg.Height-8))
			m.ready = true
		} else {
			m.outputView.Width = max(20, msg.Width-8)
			m.outputView.Height = max(5, msg.Height-8)
		}
		m.refreshOutputView()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.mode = modeQuitting
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		switch m.mode {
		case modeHelpOverlay, modeOutputOverlay:
			return m.updateOverlayKeys(msg)
		default:
			return m.updateFormKeys(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case saveResultMsg:
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("Save failed: %v", msg.err), statusError)
		}
		return m, m.setStatus(fmt.Sprintf("Saved %d parameter(s) to %s", msg.count, msg.path), statusSuccess)

	case loadResultMsg:
		if msg.err != nil {
			if errors.Is(msg.err, settings.ErrNoSettingsFile) {
				// Non-fatal: leave the current inputs untouched.
				return m, m.setStatus("No parameter file found.", statusWarning)
			}
			return m, m.setStatus(fmt.Sprintf("Load failed: %v", msg.err), statusError)
		}
		m.form.apply(msg.doc)
		return m, m.setStatus(fmt.Sprintf("Loaded %d parameter(s) from %s", len(msg.doc), m.cfg.SettingsFile), statusSuccess)

	case runStartedMsg:
		return m.handleRunStarted(msg)

	case outputLineMsg:
		if !msg.ok {
			m.minerRunning = false
			m.outputCh = nil
			return m, m.setStatus("Miner exited.", statusInfo)
		}
		m.outputLines = append(m.outputLines, msg.line)
		if len(m.outputLines) > maxOutputLines {
			m.outputLines = m.outputLines[len(m.outputLines)-maxOutputLines:]
		}
		m.refreshOutputView()
		return m, readOutputCmd(m.outputCh)

	case minerExitedMsg:
		m.minerRunning = false
		return m, m.setStatus("Miner exited.", statusInfo)

	case stopResultMsg:
		if msg.err != nil {
			if errors.Is(msg.err, launcher.ErrNotRunning) {
				return m, m.setStatus("Miner is not running.", statusWarning)
			}
			return m, m.setStatus(fmt.Sprintf("Stop failed: %v", msg.err), statusError)
		}
		m.minerRunning = false
		return m, m.setStatus("Miner stopped.", statusSuccess)

	case copyResultMsg:
		if msg.err != nil {
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), statusError)
		}
		return m, m.setStatus("Command line copied to clipboard.", statusSuccess)

	case newLogEntryMsg:
		m.appendLogEntry(msg)
		return m, listenForLogsCmd(m.logCh)

	case logChannelClosedMsg:
		return m, nil

	case clearStatusMsg:
		m.status = ""
		if m.statusClearCancel != nil {
			close(m.statusClearCancel)
			m.statusClearCancel = nil
		}
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func (m model) handleRunStarted(msg runStartedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, launcher.ErrAlreadyRunning):
			return m, m.setStatus("Miner is already running.", statusWarning)
		case errors.Is(msg.err, launcher.ErrTerminalNotFound):
			return m, m.setStatus(fmt.Sprintf("%s is not installed or not found.", m.cfg.Terminal), statusError)
		default:
			return m, m.setStatus(fmt.Sprintf("Run failed: %v", msg.err), statusError)
		}
	}

	m.minerRunning = true
	cmds := []tea.Cmd{
		m.setStatus(fmt.Sprintf("Miner started (session %s).", m.launcher.SessionID()), statusSuccess),
	}
	if msg.done != nil {
		cmds = append(cmds, waitExitCmd(msg.done))
	}
	if msg.lines != nil {
		m.outputLines = nil
		m.outputCh = msg.lines
		m.refreshOutputView()
		cmds = append(cmds, readOutputCmd(m.outputCh))
	}
	return m, tea.Batch(cmds...)
}

// updateEditing routes keys to the focused text input while in insert mode.
func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fld := m.focusedField()
	if fld == nil || fld.opt.Kind != catalog.KindText {
		m.editing = false
		return m, nil
	}

	switch msg.String() {
	case "enter", "esc":
		m.editing = false
		fld.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	return m, cmd
}

func (m model) updateOverlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.mode = modeQuitting
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back),
		m.mode == modeHelpOverlay && key.Matches(msg, m.keys.Help),
		m.mode == modeOutputOverlay && key.Matches(msg, m.keys.ShowOutput):
		m.mode = modeForm
		return m, nil
	}

	if m.mode == modeOutputOverlay {
		var cmd tea.Cmd
		m.outputView, cmd = m.outputView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	fields := m.activeFields()

	switch {
	case key.Matches(msg, keys.Quit):
		m.mode = modeQuitting
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.mode = modeHelpOverlay
		return m, nil

	case key.Matches(msg, keys.ShowOutput):
		m.mode = modeOutputOverlay
		m.refreshOutputView()
		m.outputView.GotoBottom()
		return m, nil

	case key.Matches(msg, keys.NextTab):
		m.tab = (m.tab + 1) % len(m.form.groups)
		m.cursor = 0
		return m, nil

	case key.Matches(msg, keys.PrevTab):
		m.tab = (m.tab - 1 + len(m.form.groups)) % len(m.form.groups)
		m.cursor = 0
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Edit):
		fld := m.focusedField()
		if fld == nil {
			return m, nil
		}
		switch fld.opt.Kind {
		case catalog.KindText:
			m.editing = true
			fld.input.Focus()
			return m, textinput.Blink
		case catalog.KindCheckbox:
			fld.checked = !fld.checked
		case catalog.KindDropdown:
			fld.cycleChoice(1)
		}
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if fld := m.focusedField(); fld != nil && fld.opt.Kind == catalog.KindCheckbox {
			fld.checked = !fld.checked
		}
		return m, nil

	case key.Matches(msg, keys.NextChoice):
		if fld := m.focusedField(); fld != nil {
			fld.cycleChoice(1)
		}
		return m, nil

	case key.Matches(msg, keys.PrevChoice):
		if fld := m.focusedField(); fld != nil {
			fld.cycleChoice(-1)
		}
		return m, nil

	case key.Matches(msg, keys.Save):
		return m, saveCmd(m.form.capture(), m.cfg.SettingsFile)

	case key.Matches(msg, keys.Load):
		return m, loadCmd(m.cfg.SettingsFile)

	case key.Matches(msg, keys.RunMiner):
		return m, runCmd(m.launcher, m.form.capture(), m.cfg.LaunchMode)

	case key.Matches(msg, keys.StopMiner):
		return m, stopCmd(m.launcher)

	case key.Matches(msg, keys.CopyCommand):
		return m, copyCmd(m.launcher.CommandLine(m.form.capture()))
	}

	return m, nil
}

func (m *model) appendLogEntry(msg newLogEntryMsg) {
	entry := msg.entry
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		line = fmt.Sprintf("%s -- Error: %v", line, entry.Err)
	}
	m.activityLog = append(m.activityLog, line)
	if len(m.activityLog) > maxActivityLogLines {
		m.activityLog = m.activityLog[len(m.activityLog)-maxActivityLogLines:]
	}
}

func (m *model) refreshOutputView() {
	if !m.ready {
		return
	}
	atBottom := m.outputView.AtBottom()
	m.outputView.SetContent(strings.Join(m.outputLines, "\n"))
	if atBottom {
		m.outputView.GotoBottom()
	}
}
