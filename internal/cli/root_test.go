package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jakoblorz/fsx/internal/config"
	"github.com/jakoblorz/fsx/internal/filesystem"
	"github.com/stretchr/testify/require"
)

func TestRootOneShotCommand(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir("/workspace")

	out := &bytes.Buffer{}
	cmd := NewRootCommand(mfs, config.Default())
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"-c", "pwd"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "/workspace")
	require.NotContains(t, out.String(), "Goodbye!", "one-shot mode must not start the loop")
}

func TestRootInteractiveReadsStdin(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()
	mfs.AddDir("/workspace")

	out := &bytes.Buffer{}
	cmd := NewRootCommand(mfs, config.Default())
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("mkdir d\nexit\n"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.True(t, mfs.Exists("/workspace/d"))
	require.Contains(t, out.String(), "Goodbye!")
}

func TestVersionCommand(t *testing.T) {
	mfs := filesystem.NewMockFileSystem()

	out := &bytes.Buffer{}
	cmd := NewRootCommand(mfs, config.Default())
	cmd.SetOut(out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "fsx")
}
