package imgview

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchSignalsOnCreate(t *testing.T) {
	dir := t.TempDir()

	ch := make(chan struct{}, 1)
	stop, err := Watch(dir, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "img1.jpg"), []byte("x"), 0o644))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatchIgnoresMetaFile(t *testing.T) {
	dir := t.TempDir()

	ch := make(chan struct{}, 1)
	stop, err := Watch(dir, func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(MetaPath(dir), []byte("pinned: []\n"), 0o644))

	select {
	case <-ch:
		t.Fatal("metadata save must not look like a directory change")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope"), func() {})
	require.Error(t, err)
}
