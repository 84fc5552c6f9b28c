package style

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStyle(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestNewWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	writeStyle(t, path, `marker = "~"`)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())
	assert.Equal(t, "~", w.Style().Marker)
}

func TestNewWatcher_InvalidFile(t *testing.T) {
	dir := t.TempDir()

	_, err := NewWatcher(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "style.toml")
	writeStyle(t, path, `fill = "too long"`)
	_, err = NewWatcher(path)
	assert.ErrorIs(t, err, ErrInvalidFill)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	writeStyle(t, path, `marker = "~"`)

	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	// The watch is registered asynchronously, so keep writing until it is seen.
	require.Eventually(t, func() bool {
		if w.Style().Marker == "!" {
			return true
		}
		_ = os.WriteFile(path, []byte("marker = \"!\"\nmax_length = 3\n"), 0o600)
		return false
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, "abc!", w.Style().Apply("abcdef"))

	select {
	case s := <-w.Updates():
		assert.NotEqual(t, "~", s.Marker)
	case <-time.After(time.Second):
		t.Fatal("expected an update to be published")
	}
}

func TestWatcher_KeepsStyleOnInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	writeStyle(t, path, `marker: "~"`)

	w, err := NewWatcher(path)
	require.NoError(t, err)

	writeStyle(t, path, `direction: sideways`)
	w.reload()

	assert.Equal(t, "~", w.Style().Marker)
	select {
	case s := <-w.Updates():
		t.Fatalf("unexpected update %+v", s)
	default:
	}
}

func TestWatcher_PublishKeepsNewest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.json")
	writeStyle(t, path, `{}`)

	w, err := NewWatcher(path)
	require.NoError(t, err)

	w.publish(DefaultStyle().WithMarker("1"))
	w.publish(DefaultStyle().WithMarker("2"))

	s := <-w.Updates()
	assert.Equal(t, "2", s.Marker)
}

func TestWatcher_Poll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	writeStyle(t, path, `marker = "~"`)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.pollInterval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.poll(ctx)
	}()

	writeStyle(t, path, `marker = "+"`)
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	require.Eventually(t, func() bool {
		return w.Style().Marker == "+"
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poll did not stop after cancel")
	}
}

func TestWatcher_ClosesUpdatesOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	writeStyle(t, path, `marker = "~"`)

	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-w.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("updates channel was not closed")
		}
	}
}
