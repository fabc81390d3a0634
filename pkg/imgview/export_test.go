package imgview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExisting(t *testing.T) {
	dest := t.TempDir()
	touch(t, dest, "b.jpg")

	s := &Store{}
	s.TogglePinned("a.jpg")
	s.TogglePinned("b.jpg")
	s.TogglePinned("c.jpg")

	assert.Equal(t, []string{"b.jpg"}, CheckExisting(s, dest))
}

func TestCheckExistingNonePinned(t *testing.T) {
	assert.Empty(t, CheckExisting(&Store{}, t.TempDir()))
}

func TestCopyPinned(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	touch(t, src, "a.jpg", "b.jpg")

	s := &Store{}
	s.TogglePinned("a.jpg")
	s.TogglePinned("b.jpg")
	s.TogglePinned("vanished.jpg")

	r := CopyPinned(s, src, dest)

	assert.Equal(t, 2, r.Copied)
	assert.Equal(t, 3, r.Total)
	assert.Empty(t, r.Errors)

	for _, n := range []string{"a.jpg", "b.jpg"} {
		bs, err := os.ReadFile(filepath.Join(dest, n))
		require.NoError(t, err)
		assert.Equal(t, []byte("x"), bs)
	}
	assert.NoFileExists(t, filepath.Join(dest, "vanished.jpg"))
}

func TestCopyPinnedOverwrites(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.jpg"), []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "a.jpg"), []byte("stale"), 0o644))

	s := &Store{}
	s.TogglePinned("a.jpg")

	r := CopyPinned(s, src, dest)
	assert.Equal(t, 1, r.Copied)

	bs, err := os.ReadFile(filepath.Join(dest, "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), bs)
}

func TestCopyPinnedNothingPinned(t *testing.T) {
	r := CopyPinned(&Store{}, t.TempDir(), t.TempDir())

	assert.Equal(t, 0, r.Copied)
	assert.Equal(t, 0, r.Total)
	assert.Empty(t, r.Errors)
}

func TestCopyPinnedCollectsErrors(t *testing.T) {
	src := t.TempDir()
	touch(t, src, "a.jpg", "b.jpg")

	// the destination "directory" is a plain file, so each copy fails
	// without aborting the batch
	dest := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(dest, []byte("x"), 0o644))

	s := &Store{}
	s.TogglePinned("a.jpg")
	s.TogglePinned("b.jpg")

	r := CopyPinned(s, src, dest)

	assert.Equal(t, 0, r.Copied)
	assert.Equal(t, 2, r.Total)
	require.Len(t, r.Errors, 2)
	assert.Equal(t, "a.jpg", r.Errors[0].Filename)
	assert.Equal(t, "b.jpg", r.Errors[1].Filename)
	assert.NotEmpty(t, r.Errors[0].Message)
}
