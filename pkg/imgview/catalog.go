package imgview

import (
	"path/filepath"
	"slices"
)

// Catalog is the ordered, navigable image sequence for one directory. It
// consults its Store on every navigation step to honor skip and pin marks,
// but never mutates it. Navigation wraps around: the catalog is circular.
type Catalog struct {
	store   *Store
	entries []entry
	cursor  int
}

// Build lists dir, orders its images by capture time and natural filename,
// and returns a catalog with the cursor on initial when given (matched by
// exact path, then by basename) or on the first image otherwise. An absent
// or unreadable dir yields an empty catalog. A nil DateSource means no
// capture times are consulted.
func Build(dir string, store *Store, dates DateSource, initial string) *Catalog {
	c := &Catalog{store: store, entries: findImages(dir, dates)}
	if initial != "" {
		c.JumpTo(initial)
	}
	return c
}

// Current returns the path under the cursor, or "" for an empty catalog.
func (c *Catalog) Current() string {
	if len(c.entries) == 0 {
		return ""
	}
	return c.entries[c.cursor].path
}

// Size returns the number of images in the catalog.
func (c *Catalog) Size() int { return len(c.entries) }

// Empty reports whether the catalog holds no images.
func (c *Catalog) Empty() bool { return len(c.entries) == 0 }

// Paths returns the catalog's paths in display order.
func (c *Catalog) Paths() []string {
	ps := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		ps = append(ps, e.path)
	}
	return ps
}

// Next advances the cursor to the nearest unskipped image, wrapping past the
// end, and returns the new current path. When everything but the current
// image is skipped the cursor stays put; the call still succeeds.
func (c *Catalog) Next() string {
	if i := c.seekForward(c.unskipped); i >= 0 {
		c.cursor = i
	}
	return c.Current()
}

// Prev moves the cursor to the nearest earlier unskipped image, wrapping
// past the start, and returns the new current path.
func (c *Catalog) Prev() string {
	if i := c.seekBackward(c.unskipped); i >= 0 {
		c.cursor = i
	}
	return c.Current()
}

// Forward applies Next n times. A step that finds nowhere to go is a no-op
// and the remaining steps continue from the unchanged cursor.
func (c *Catalog) Forward(n int) string {
	for i := 0; i < n; i++ {
		c.Next()
	}
	return c.Current()
}

// Backward applies Prev n times.
func (c *Catalog) Backward(n int) string {
	for i := 0; i < n; i++ {
		c.Prev()
	}
	return c.Current()
}

// NextPinned advances to the nearest pinned image, wrapping. The cursor
// does not move when nothing is pinned.
func (c *Catalog) NextPinned() string {
	if i := c.seekForward(c.store.IsPinned); i >= 0 {
		c.cursor = i
	}
	return c.Current()
}

// PrevPinned moves back to the nearest pinned image, wrapping.
func (c *Catalog) PrevPinned() string {
	if i := c.seekBackward(c.store.IsPinned); i >= 0 {
		c.cursor = i
	}
	return c.Current()
}

// JumpTo moves the cursor to path, matching the exact path first and the
// basename second. It reports whether a match was found; on a miss the
// cursor is left alone.
func (c *Catalog) JumpTo(path string) bool {
	for i, e := range c.entries {
		if e.path == path {
			c.cursor = i
			return true
		}
	}

	base := filepath.Base(path)
	for i, e := range c.entries {
		if filepath.Base(e.path) == base {
			c.cursor = i
			return true
		}
	}

	return false
}

// RemoveCurrent drops the entry under the cursor, for use after an external
// delete. Removing the last entry clamps the cursor to the new end.
func (c *Catalog) RemoveCurrent() {
	if len(c.entries) == 0 {
		return
	}

	c.entries = slices.Delete(c.entries, c.cursor, c.cursor+1)
	if c.cursor >= len(c.entries) {
		c.cursor = max(len(c.entries)-1, 0)
	}
}

// seekForward returns the nearest index after the cursor whose basename
// satisfies match. If the scan reaches the end it wraps exactly once,
// rescanning the whole catalog from the front; that pass may legally land
// back on the cursor itself. Returns -1 when nothing matches.
func (c *Catalog) seekForward(match func(string) bool) int {
	for i := c.cursor + 1; i < len(c.entries); i++ {
		if match(filepath.Base(c.entries[i].path)) {
			return i
		}
	}
	for i := 0; i < len(c.entries); i++ {
		if match(filepath.Base(c.entries[i].path)) {
			return i
		}
	}
	return -1
}

// seekBackward mirrors seekForward, scanning toward the start and wrapping
// once from the end.
func (c *Catalog) seekBackward(match func(string) bool) int {
	for i := c.cursor - 1; i >= 0; i-- {
		if match(filepath.Base(c.entries[i].path)) {
			return i
		}
	}
	for i := len(c.entries) - 1; i >= 0; i-- {
		if match(filepath.Base(c.entries[i].path)) {
			return i
		}
	}
	return -1
}

func (c *Catalog) unskipped(name string) bool {
	return !c.store.IsSkipped(name)
}
