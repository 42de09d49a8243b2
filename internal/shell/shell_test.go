package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jakoblorz/fsx/internal/config"
	"github.com/jakoblorz/fsx/internal/filesystem"
	"github.com/jakoblorz/fsx/internal/history"
	"github.com/stretchr/testify/require"
)

const testLogPath = "/workspace/activity_log.txt"

func newTestShell(t *testing.T) (*Shell, *filesystem.MockFileSystem, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir("/workspace")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	log := history.New(mfs, testLogPath)

	return New(mfs, log, config.Default(), out, errOut), mfs, out, errOut
}

func logLines(mfs *filesystem.MockFileSystem) []string {
	file, ok := mfs.GetFiles()[testLogPath]
	if !ok || len(file.Content) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(file.Content), "\n"), "\n")
}

func TestDispatchEmptyLineIsIgnored(t *testing.T) {
	sh, mfs, out, errOut := newTestShell(t)

	require.False(t, sh.Dispatch(""))
	require.False(t, sh.Dispatch("   \t  "))

	require.Empty(t, out.String())
	require.Empty(t, errOut.String())
	require.Empty(t, logLines(mfs))
}

func TestDispatchUnknownCommand(t *testing.T) {
	sh, mfs, _, errOut := newTestShell(t)
	filesBefore := len(mfs.GetFiles())

	require.False(t, sh.Dispatch("foo bar baz"))

	require.Contains(t, errOut.String(), "Unknown command")
	require.Empty(t, logLines(mfs), "unknown commands must not be logged")
	require.Equal(t, filesBefore, len(mfs.GetFiles()), "unknown commands must not touch the filesystem")
}

func TestDispatchUsageError(t *testing.T) {
	sh, mfs, _, errOut := newTestShell(t)

	require.False(t, sh.Dispatch("cd"))
	require.Contains(t, errOut.String(), "usage: cd <dir>")

	errOut.Reset()
	require.False(t, sh.Dispatch("cp onlyonearg"))
	require.Contains(t, errOut.String(), "usage: cp <src> <dest>")

	require.Empty(t, logLines(mfs), "usage errors must not be logged")
}

func TestDispatchExitAndQuit(t *testing.T) {
	sh, _, _, _ := newTestShell(t)

	require.True(t, sh.Dispatch("exit"))
	require.True(t, sh.Dispatch("quit"))
}

func TestRunTerminatesOnEndOfInput(t *testing.T) {
	sh, _, out, _ := newTestShell(t)

	err := sh.Run(strings.NewReader(""))
	require.NoError(t, err)

	require.Contains(t, out.String(), "/workspace $ ")
	require.Contains(t, out.String(), "Goodbye!")
}

func TestRunScript(t *testing.T) {
	sh, mfs, out, errOut := newTestShell(t)

	script := strings.Join([]string{
		"mkdir docs",
		"cd docs",
		"touch readme.txt",
		"pwd",
		"exit",
	}, "\n")

	err := sh.Run(strings.NewReader(script))
	require.NoError(t, err)

	require.Empty(t, errOut.String())
	require.Equal(t, "/workspace/docs", sh.WorkingDir())
	require.True(t, mfs.Exists("/workspace/docs/readme.txt"))
	require.Contains(t, out.String(), "/workspace/docs $ ")
	require.Len(t, logLines(mfs), 4)
}

func TestPromptShowsWorkingDirectory(t *testing.T) {
	sh, mfs, out, _ := newTestShell(t)
	mfs.AddDir("/workspace/sub")

	err := sh.Run(strings.NewReader("cd sub\n"))
	require.NoError(t, err)

	// The prompt after cd must show the new directory.
	require.Contains(t, out.String(), "/workspace/sub $ ")
}

func TestHelpListsEveryCommand(t *testing.T) {
	sh, _, out, errOut := newTestShell(t)

	require.False(t, sh.Dispatch("help"))
	require.Empty(t, errOut.String())

	for _, cmd := range commands {
		require.Containsf(t, out.String(), cmd.usage, "help output missing %q", cmd.name)
	}
	require.Contains(t, out.String(), "help")
	require.Contains(t, out.String(), "exit / quit")
}

func TestLogLineDeltaPerCommand(t *testing.T) {
	tests := []struct {
		line  string
		delta int
	}{
		{"pwd", 1},
		{"ls", 1},
		{"ls missing", 1},
		{"mkdir d", 1},
		{"cd d", 1},
		{"cd /workspace", 1},
		{"touch f.txt", 1},
		{"cp f.txt g.txt", 1},
		{"cp nope dest", 1},
		{"mv g.txt h.txt", 1},
		{"mv nope dest", 1},
		{"rm h.txt", 1},
		{"search f", 1},
		{"help", 0},
		{"history", 0},
		{"foo", 0},
		{"cd", 0},
		{"", 0},
	}

	sh, mfs, _, _ := newTestShell(t)
	for _, tt := range tests {
		before := len(logLines(mfs))
		sh.Dispatch(tt.line)
		require.Equalf(t, tt.delta, len(logLines(mfs))-before, "log delta for %q", tt.line)
	}
}
