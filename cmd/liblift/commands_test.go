// cmd/liblift/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: real filesystem (t.TempDir)
// PURPOSE: Test CLI command wiring and argument validation

package liblift

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestRootWithoutSubcommand(t *testing.T) {
	out, err := execute(t)
	assert.Error(t, err)
	assert.Contains(t, out, "liblift")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "liblift version")
	assert.Contains(t, out, "commit:")
}

func TestConfigCommand(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "source_prefix = '/usr/local'")
	assert.Contains(t, out, "platform_tag = 'darwin'")
}

func TestConfigCommandWithFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "liblift.toml")
	require.NoError(t, os.WriteFile(path, []byte("platform_tag = \"darwin-14\"\n"), 0644))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "platform_tag = 'darwin-14'")
}

func TestEmbedRequiresExecutableArg(t *testing.T) {
	_, err := execute(t, "embed")
	assert.Error(t, err)
}

func TestEmbedMissingExecutable(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "embed", "/no/such/App.app/Contents/MacOS/app")
	assert.Error(t, err)
}

func TestPackageMissingBundle(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "package", "/no/such/App.app")
	assert.Error(t, err)
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "liblift")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err, "unknown shell must be rejected")
}
