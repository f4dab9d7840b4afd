package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"folio/cmd/folio/cli"
	"folio/internal/config"
	"folio/internal/errors"
	"folio/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageYAML = `
sections:
  - id: hero
    title: hi
    active: a.txt
    files:
      - name: a.txt
        content: hello
      - name: main.go
        path: main.go
    placeholder:
      text: DEFAULT
  - id: empty
    title: nothing here
`

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgFile, logFile, debug = "", "", false
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(func() {
		cli.Output = os.Stdout
		cli.ErrOutput = os.Stderr
		cli.CurrentTheme = cli.DefaultTheme
	})

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writePage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"main.go": "package main\n",
	})
	return testutils.WriteConfig(t, dir, pageYAML)
}

func TestCatCommand(t *testing.T) {
	path := writePage(t)

	out, err := run(t, "--config", path, "cat", "hero", "a.txt", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)

	out, err = run(t, "--config", path, "cat", "hero", "main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main\n", testutils.StripANSI(out))

	_, err = run(t, "--config", path, "cat", "hero", "nope.txt")
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))

	_, err = run(t, "--config", path, "cat", "hero")
	assert.Error(t, err, "needs a section and a file")
}

func TestLsCommand(t *testing.T) {
	path := writePage(t)

	out, err := run(t, "--config", path, "ls")
	require.NoError(t, err)

	assert.Contains(t, out, "hi (hero)")
	assert.Contains(t, out, "* a.txt")
	assert.Contains(t, out, "5 B")
	assert.Contains(t, out, "inline")
	assert.Contains(t, out, filepath.Join(filepath.Dir(path), "main.go"))
	assert.Contains(t, out, "nothing here (empty)")
	assert.Contains(t, out, "! no files")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio", "config.yaml")

	out, err := run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ wrote "+path)

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Sections, 4)

	out, err = run(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	out, err = run(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ wrote")

	out, err = run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "id: hero")
	assert.Contains(t, out, "threshold: 2")
}

func TestInvalidConfig(t *testing.T) {
	path := testutils.WriteConfig(t, t.TempDir(), "theme:\n  mode: sepia\n")

	_, err := run(t, "--config", path, "ls")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
}

func TestLogFile(t *testing.T) {
	path := writePage(t)
	logPath := filepath.Join(t.TempDir(), "folio.log")

	_, err := run(t, "--config", path, "--log-file", logPath, "ls")
	require.NoError(t, err)
	_, err = os.Stat(logPath)
	assert.NoError(t, err, "log file is created")
}

func TestLogFileUnwritable(t *testing.T) {
	path := writePage(t)
	logPath := filepath.Join(t.TempDir(), "missing", "folio.log")

	out, err := run(t, "--config", path, "--log-file", logPath, "ls")
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
	assert.Contains(t, err.Error(), logPath)
	assert.NotContains(t, out, "hi (hero)", "the command does not run")
}

func TestNamedConfigMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := run(t, "--config", missing, "ls")
	require.Error(t, err)
	assert.True(t, errors.IsConfigNotFound(err))
}

func TestHelpShowsLogo(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, `\/   \___/|_|_|\___/`)
	assert.Contains(t, out, "cat")
	assert.NotContains(t, out, "\033[", "NO_COLOR applies to the logo")
}
