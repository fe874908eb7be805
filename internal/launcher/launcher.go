// Package launcher starts and stops the miner child process, either wrapped
// in an external terminal emulator or attached to a pseudo-terminal whose
// output is streamed back to the caller.
package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"github.com/google/uuid"

	"minerctl/internal/catalog"
	"minerctl/internal/settings"
	"minerctl/pkg/logging"
)

var (
	// ErrAlreadyRunning is returned by Run while a previous miner process is
	// still alive.
	ErrAlreadyRunning = errors.New("miner is already running")
	// ErrNotRunning is returned by Stop when no miner process is tracked.
	ErrNotRunning = errors.New("miner is not running")
	// ErrTerminalNotFound is returned by Run when the configured terminal
	// emulator is not installed.
	ErrTerminalNotFound = errors.New("terminal program not found")
)

const logSubsystem = "Launcher"

// Launcher tracks at most one running miner process.
type Launcher struct {
	binary   string
	terminal string
	groups   []catalog.Group

	mu        sync.Mutex
	cmd       *exec.Cmd
	done      chan struct{}
	sessionID string
}

// New returns a Launcher for the given miner binary and terminal emulator.
func New(binary, terminal string) *Launcher {
	return &Launcher{
		binary:   binary,
		terminal: terminal,
		groups:   catalog.Groups(),
	}
}

// Running reports whether the tracked miner process is still alive.
func (l *Launcher) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.alive()
}

// SessionID returns the short id of the current (or most recent) run, for
// correlating log lines.
func (l *Launcher) SessionID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessionID
}

// CommandLine assembles the full miner command for the given document, in
// display form.
func (l *Launcher) CommandLine(doc settings.Document) string {
	return CommandLine(BuildArgs(l.binary, l.groups, doc))
}

// Run spawns the miner inside the configured terminal emulator, keeping a
// shell alive afterwards so the miner's output stays inspectable. The
// returned channel is closed when the terminal process exits.
func (l *Launcher) Run(doc settings.Document) (<-chan struct{}, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.alive() {
		return nil, ErrAlreadyRunning
	}
	if _, err := exec.LookPath(l.terminal); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTerminalNotFound, l.terminal)
	}

	args := BuildArgs(l.binary, l.groups, doc)
	shellCmd := shellJoin(args) + "; exec bash"
	cmd := exec.Command(l.terminal, "--", "bash", "-c", shellCmd)

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTerminalNotFound, l.terminal)
		}
		return nil, fmt.Errorf("starting %s: %w", l.terminal, err)
	}

	return l.track(cmd, args, "terminal"), nil
}

// RunAttached spawns the miner directly on a pseudo-terminal and streams its
// output line by line. The returned channel is closed when the miner exits.
func (l *Launcher) RunAttached(doc settings.Document) (<-chan string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.alive() {
		return nil, ErrAlreadyRunning
	}

	args := BuildArgs(l.binary, l.groups, doc)
	cmd := exec.Command(args[0], args[1:]...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("starting %s on a pty: %w", l.binary, err)
	}

	done := l.track(cmd, args, "attached")

	lines := make(chan string, 256)
	go func() {
		defer close(lines)
		defer ptmx.Close()
		scanner := bufio.NewScanner(ptmx)
		scanner.Buffer(make([]byte, 0, 64*1024), 256*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		<-done
	}()
	return lines, nil
}

// Stop requests graceful termination of the tracked process and clears the
// handle. Callers surface ErrNotRunning as an informational notice.
func (l *Launcher) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.alive() {
		l.cmd = nil
		return ErrNotRunning
	}

	err := l.cmd.Process.Signal(syscall.SIGTERM)
	logging.Info(logSubsystem, "Sent SIGTERM to miner session %s (pid %d)", l.sessionID, l.cmd.Process.Pid)
	l.cmd = nil
	if err != nil {
		return fmt.Errorf("terminating miner: %w", err)
	}
	return nil
}

// track records the started command, tags the run with a session id, and
// starts the reaper goroutine. Caller must hold l.mu.
func (l *Launcher) track(cmd *exec.Cmd, args []string, mode string) chan struct{} {
	done := make(chan struct{})
	l.cmd = cmd
	l.done = done
	l.sessionID = uuid.NewString()[:8]

	logging.Info(logSubsystem, "Started miner session %s (%s mode, pid %d): %s",
		l.sessionID, mode, cmd.Process.Pid, CommandLine(args))

	go func() {
		err := cmd.Wait()
		close(done)
		if err != nil {
			logging.Warn(logSubsystem, "Miner session %s exited: %v", sessionIDOf(l), err)
		} else {
			logging.Info(logSubsystem, "Miner session %s exited", sessionIDOf(l))
		}
	}()
	return done
}

// alive reports liveness of the tracked process. Caller must hold l.mu.
func (l *Launcher) alive() bool {
	if l.cmd == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
		return true
	}
}

func sessionIDOf(l *Launcher) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sessionID
}
