package imgview

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// MetaFile is the fixed name of the per-directory metadata file.
var MetaFile = "imgview_meta.yml"

// ErrConcurrentMod is returned by Save when the metadata file on disk no
// longer matches the content this store last read or wrote.
var ErrConcurrentMod = errors.New("metadata file modified by another process")

// Store holds the pinned and skipped filename sets for one directory. The
// two sets are disjoint at all times: pinning unskips and skipping unpins.
// Store owns its slices exclusively; accessors hand out copies.
type Store struct {
	pinned  []string
	skipped []string
	digest  string
}

// metaRecord is the on-disk YAML shape. Filenames are basenames only.
// Unrecognized keys are ignored.
type metaRecord struct {
	Pinned  []string `yaml:"pinned"`
	Skipped []string `yaml:"skipped"`
}

// MetaPath returns the metadata file path for an image directory.
func MetaPath(dir string) string {
	return filepath.Join(dir, MetaFile)
}

// Load reads the metadata file at path. A missing file yields a fresh empty
// store. An unreadable or malformed file is logged and also yields a fresh
// empty store, so a bad metadata file never blocks a session from starting.
func Load(path string) *Store {
	s := &Store{}

	bs, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			klog.Warningf("unable to read %s: %v", path, err)
		}
		return s
	}

	r := metaRecord{}
	if err := yaml.Unmarshal(bs, &r); err != nil {
		klog.Warningf("unable to parse %s, starting empty: %v", path, err)
		return s
	}

	s.pinned = r.Pinned
	s.skipped = r.Skipped
	s.digest = contentDigest(bs)
	return s
}

// Save writes the store to path, overwriting what is there. Unless force is
// set, it refuses with ErrConcurrentMod when the file on disk has changed
// since this store last read or wrote it. The check is advisory: it detects
// a concurrent editor, it does not lock one out.
func (s *Store) Save(path string, force bool) error {
	if !force && s.digest != "" {
		if bs, err := os.ReadFile(path); err == nil && contentDigest(bs) != s.digest {
			return fmt.Errorf("%w: %s", ErrConcurrentMod, path)
		}
	}

	bs, err := yaml.Marshal(metaRecord{Pinned: s.pinned, Skipped: s.skipped})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := os.WriteFile(path, bs, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.digest = contentDigest(bs)
	return nil
}

// TogglePinned flips the pin state of name and returns the new state.
// Pinning removes name from the skipped set.
func (s *Store) TogglePinned(name string) bool {
	if i := slices.Index(s.pinned, name); i >= 0 {
		s.pinned = slices.Delete(s.pinned, i, i+1)
		return false
	}

	s.pinned = append(s.pinned, name)
	s.skipped = withoutName(s.skipped, name)
	return true
}

// MarkSkipped records name as rejected, unpinning it if needed.
func (s *Store) MarkSkipped(name string) {
	if !slices.Contains(s.skipped, name) {
		s.skipped = append(s.skipped, name)
	}
	s.pinned = withoutName(s.pinned, name)
}

// UnmarkSkipped removes name from the skipped set.
func (s *Store) UnmarkSkipped(name string) {
	s.skipped = withoutName(s.skipped, name)
}

// RemoveFile purges name from both sets, for use after an external delete.
func (s *Store) RemoveFile(name string) {
	s.pinned = withoutName(s.pinned, name)
	s.skipped = withoutName(s.skipped, name)
}

// ClearPinned unpins everything.
func (s *Store) ClearPinned() {
	s.pinned = nil
}

func (s *Store) IsPinned(name string) bool  { return slices.Contains(s.pinned, name) }
func (s *Store) IsSkipped(name string) bool { return slices.Contains(s.skipped, name) }
func (s *Store) PinnedCount() int           { return len(s.pinned) }
func (s *Store) SkippedCount() int          { return len(s.skipped) }

// PinnedList returns a copy of the pinned names in pin order.
func (s *Store) PinnedList() []string { return slices.Clone(s.pinned) }

// SkippedList returns a copy of the skipped names in skip order.
func (s *Store) SkippedList() []string { return slices.Clone(s.skipped) }

func withoutName(ss []string, name string) []string {
	if i := slices.Index(ss, name); i >= 0 {
		return slices.Delete(ss, i, i+1)
	}
	return ss
}

func contentDigest(bs []byte) string {
	sum := sha256.Sum256(bs)
	return hex.EncodeToString(sum[:])
}
