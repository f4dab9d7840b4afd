package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// next waits for a change matching path, skipping anything else.
func next(t *testing.T, ch <-chan Change, path string, op fsnotify.Op) Change {
	t.Helper()
	timeout := time.After(3 * time.Second)
	for {
		select {
		case c, ok := <-ch:
			require.True(t, ok, "change channel closed unexpectedly")
			t.Logf("Received change: %+v", c)
			if c.Path == path && c.Op.Has(op) {
				return c
			}
		case <-timeout:
			t.Fatalf("timeout waiting for %s on %s", op, path)
		}
	}
}

func TestWatcherDirectory(t *testing.T) {
	tempDir := t.TempDir()

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Add(tempDir))
	require.NoError(t, w.Start())
	defer w.Stop()

	// Allow a brief moment for fsnotify to initialize watches
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(tempDir, "now.md")
	require.NoError(t, os.WriteFile(path, []byte("# now"), 0644))
	c := next(t, w.Changes(), path, fsnotify.Create)
	assert.False(t, c.Timestamp.IsZero())

	require.NoError(t, os.WriteFile(path, []byte("# now\nupdated"), 0644))
	next(t, w.Changes(), path, fsnotify.Write)

	require.NoError(t, os.Remove(path))
	next(t, w.Changes(), path, fsnotify.Remove)
}

func TestWatcherFileIgnoresSiblings(t *testing.T) {
	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme:\n  mode: dark\n"), 0644))

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Add(cfgPath))
	require.NoError(t, w.Start())
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme:\n  mode: light\n"), 0644))

	c := next(t, w.Changes(), cfgPath, fsnotify.Write)
	assert.Equal(t, cfgPath, c.Path)

	// Drain briefly; nothing for the sibling may arrive
	drain := time.After(200 * time.Millisecond)
	for {
		select {
		case c := <-w.Changes():
			assert.Equal(t, cfgPath, c.Path, "sibling change leaked through")
		case <-drain:
			return
		}
	}
}

func TestWatcherMissingFileWatchesParent(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "later.txt")

	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Add(path))
	assert.Equal(t, []string{tempDir}, w.Directories())

	require.NoError(t, w.Start())
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("hi"), 0644))
	next(t, w.Changes(), path, fsnotify.Create)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Add(filepath.Join(t.TempDir(), "nope", "deeper", "file.txt"))
	assert.Error(t, err)
	assert.Empty(t, w.Directories())
}

func TestWatcherStartStop(t *testing.T) {
	w, err := New()
	require.NoError(t, err)

	assert.False(t, w.IsRunning())
	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start(), "second start is rejected")

	w.Stop()
	assert.False(t, w.IsRunning())

	_, ok := <-w.Changes()
	assert.False(t, ok, "channel is closed after stop")

	w.Stop()
}
