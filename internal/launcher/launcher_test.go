package launcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerctl/internal/settings"
)

// writeStub creates an executable shell script standing in for the terminal
// emulator or the miner binary.
func writeStub(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func waitClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("process did not exit in time")
	}
}

func TestRunRefusesWhileRunning(t *testing.T) {
	dir := t.TempDir()
	term := writeStub(t, dir, "fake-terminal", "sleep 30")

	l := New("./xmrig", term)
	done, err := l.Run(settings.Document{})
	require.NoError(t, err)
	require.True(t, l.Running())

	_, err = l.Run(settings.Document{})
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, l.Stop())
	waitClosed(t, done)
	assert.False(t, l.Running())
}

func TestRunMissingTerminal(t *testing.T) {
	l := New("./xmrig", "definitely-not-a-terminal-emulator")
	_, err := l.Run(settings.Document{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTerminalNotFound)
	assert.False(t, l.Running())
}

func TestStopWhenIdle(t *testing.T) {
	l := New("./xmrig", "true")
	err := l.Stop()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestStopAfterExternalExit(t *testing.T) {
	dir := t.TempDir()
	term := writeStub(t, dir, "fake-terminal", "exit 0")

	l := New("./xmrig", term)
	done, err := l.Run(settings.Document{})
	require.NoError(t, err)
	waitClosed(t, done)

	// The handle is stale: Stop must report NotRunning, not signal anything.
	assert.ErrorIs(t, l.Stop(), ErrNotRunning)
	assert.False(t, l.Running())
}

func TestRunAfterExternalExit(t *testing.T) {
	dir := t.TempDir()
	term := writeStub(t, dir, "fake-terminal", "exit 0")

	l := New("./xmrig", term)
	done, err := l.Run(settings.Document{})
	require.NoError(t, err)
	waitClosed(t, done)

	// Liveness is re-checked: a fresh Run succeeds.
	done2, err := l.Run(settings.Document{})
	require.NoError(t, err)
	waitClosed(t, done2)
}

func TestRunPassesQuotedArguments(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "argv.txt")
	// The stub terminal records its argv, one token per line.
	term := writeStub(t, dir, "fake-terminal", `for a in "$@"; do printf '%s\n' "$a"; done > `+out)

	l := New("./xmrig", term)
	done, err := l.Run(settings.Document{"pass": "two words"})
	require.NoError(t, err)
	waitClosed(t, done)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	got := string(data)
	assert.Contains(t, got, "--\n")
	assert.Contains(t, got, "bash\n")
	assert.Contains(t, got, "-c\n")
	assert.Contains(t, got, "'--pass=two words'; exec bash")
}

func TestRunAttachedStreamsOutput(t *testing.T) {
	dir := t.TempDir()
	miner := writeStub(t, dir, "fake-xmrig", `printf 'line one\nline two\n'`)

	l := New(miner, "true")
	lines, err := l.RunAttached(settings.Document{})
	require.NoError(t, err)

	var got []string
	timeout := time.After(5 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				assert.Contains(t, got, "line one")
				assert.Contains(t, got, "line two")
				return
			}
			got = append(got, line)
		case <-timeout:
			t.Fatalf("timed out, collected %q", got)
		}
	}
}

func TestRunAttachedRefusesWhileRunning(t *testing.T) {
	dir := t.TempDir()
	miner := writeStub(t, dir, "fake-xmrig", "sleep 30")

	l := New(miner, "true")
	lines, err := l.RunAttached(settings.Document{})
	require.NoError(t, err)
	require.True(t, l.Running())

	_, err = l.RunAttached(settings.Document{})
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, l.Stop())
	// Channel closes once the process is reaped.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-lines:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("output channel never closed after Stop")
		}
	}
}

func TestSessionIDAssignedPerRun(t *testing.T) {
	dir := t.TempDir()
	term := writeStub(t, dir, "fake-terminal", "exit 0")

	l := New("./xmrig", term)
	assert.Empty(t, l.SessionID())

	done, err := l.Run(settings.Document{})
	require.NoError(t, err)
	first := l.SessionID()
	assert.Len(t, first, 8)
	waitClosed(t, done)

	done, err = l.Run(settings.Document{})
	require.NoError(t, err)
	assert.NotEqual(t, first, l.SessionID())
	waitClosed(t, done)
}
