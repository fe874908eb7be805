package tui

import (
	"minerctl/internal/config"
	"minerctl/internal/settings"
	"minerctl/pkg/logging"
)

// saveResultMsg reports the outcome of persisting the settings document.
type saveResultMsg struct {
	path  string
	count int
	err   error
}

// loadResultMsg carries a restored settings document, or the restore error.
type loadResultMsg struct {
	doc settings.Document
	err error
}

// runStartedMsg reports a launch attempt. On success exactly one of done
// (terminal mode) and lines (attached mode) is non-nil.
type runStartedMsg struct {
	mode  config.LaunchMode
	done  <-chan struct{}
	lines <-chan string
	err   error
}

// minerExitedMsg is emitted when the tracked child process exits.
type minerExitedMsg struct{}

// outputLineMsg carries one line of attached-mode miner output; ok is false
// once the output channel is closed.
type outputLineMsg struct {
	line string
	ok   bool
}

// stopResultMsg reports the outcome of a stop request.
type stopResultMsg struct {
	err error
}

// copyResultMsg reports the outcome of copying the command line.
type copyResultMsg struct {
	cmdline string
	err     error
}

// newLogEntryMsg delivers one entry from the logging channel.
type newLogEntryMsg struct {
	entry logging.LogEntry
}

// logChannelClosedMsg signals that the logging channel was closed.
type logChannelClosedMsg struct{}

// clearStatusMsg clears the status bar once its display time has elapsed.
type clearStatusMsg struct{}
