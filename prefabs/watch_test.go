package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsClipEdits(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "magus", "simple")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	w, err := NewWatcher(root)
	require.NoError(t, err)
	defer w.Close()

	// ignored: not a clip or script
	require.NoError(t, os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(sub, "wave.yaml")
	require.NoError(t, os.WriteFile(target, []byte("end_tick: 3"), 0o644))

	select {
	case got := <-w.Events:
		assert.Equal(t, target, got)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for edited clip")
	}
}

func nextEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case got := <-w.Events:
		return got
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no watcher event")
	}
	return ""
}

func TestWatcherReportsAfterSaveBurst(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "magus", "simple")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	target := filepath.Join(sub, "air_gather_hands.yaml")
	require.NoError(t, os.WriteFile(target, []byte("end_tick: 5"), 0o644))

	w, err := NewWatcher(root)
	require.NoError(t, err)
	defer w.Close()

	// truncate, then write the real contents inside the quiet period
	require.NoError(t, os.WriteFile(target, nil, 0o644))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, os.WriteFile(target, []byte("end_tick: 20"), 0o644))

	assert.Equal(t, target, nextEvent(t, w))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	clip, err := ParseClip("magus/simple/air_gather_hands.yaml", data)
	require.NoError(t, err)
	assert.Equal(t, 20, clip.EndTick)

	select {
	case got := <-w.Events:
		t.Fatalf("burst reported twice: %s", got)
	case <-time.After(3 * debounce):
	}
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "magus", "simple"), 0o755))

	w, err := NewWatcher(root)
	require.NoError(t, err)
	defer w.Close()

	sub := filepath.Join(root, "magus", "complex")
	require.NoError(t, os.Mkdir(sub, 0o755))
	target := filepath.Join(sub, "air_push.yaml")
	require.NoError(t, os.WriteFile(target, []byte("end_tick: 14"), 0o644))

	assert.Equal(t, target, nextEvent(t, w))

	// the new directory stays watched for later edits
	time.Sleep(2 * debounce)
	require.NoError(t, os.WriteFile(target, []byte("end_tick: 15"), 0o644))
	assert.Equal(t, target, nextEvent(t, w))
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestFileKinds(t *testing.T) {
	assert.True(t, isSpecFile("a/b.YAML"))
	assert.True(t, isSpecFile("b.yml"))
	assert.False(t, isSpecFile("b.json"))
	assert.True(t, isScriptFile("x.tengo"))
	assert.False(t, isScriptFile("x.lua"))
}
