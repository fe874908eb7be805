package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"minerctl/internal/config"
	"minerctl/internal/launcher"
	"minerctl/internal/settings"
	"minerctl/pkg/logging"
)

func saveCmd(doc settings.Document, path string) tea.Cmd {
	return func() tea.Msg {
		err := settings.Persist(doc, path)
		return saveResultMsg{path: path, count: len(doc), err: err}
	}
}

func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := settings.Restore(path)
		return loadResultMsg{doc: doc, err: err}
	}
}

func runCmd(l *launcher.Launcher, doc settings.Document, mode config.LaunchMode) tea.Cmd {
	return func() tea.Msg {
		if mode == config.LaunchModeAttached {
			lines, err := l.RunAttached(doc)
			return runStartedMsg{mode: mode, lines: lines, err: err}
		}
		done, err := l.Run(doc)
		return runStartedMsg{mode: mode, done: done, err: err}
	}
}

func stopCmd(l *launcher.Launcher) tea.Cmd {
	return func() tea.Msg {
		return stopResultMsg{err: l.Stop()}
	}
}

func copyCmd(cmdline string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{cmdline: cmdline, err: clipboard.WriteAll(cmdline)}
	}
}

// waitExitCmd resolves once the terminal-mode child exits.
func waitExitCmd(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return minerExitedMsg{}
	}
}

// readOutputCmd delivers the next attached-mode output line. The update loop
// re-issues it after each line until the channel closes.
func readOutputCmd(lines <-chan string) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-lines
		return outputLineMsg{line: line, ok: ok}
	}
}

// listenForLogsCmd delivers the next logging entry. The update loop re-issues
// it after each entry.
func listenForLogsCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return newLogEntryMsg{entry: entry}
	}
}
