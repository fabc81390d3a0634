package imgview

import (
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

// CopyError describes one failed copy within a batch.
type CopyError struct {
	Filename string
	Message  string
}

// CopyResult summarizes a CopyPinned batch. Total counts every pinned name,
// whether or not its source file still existed.
type CopyResult struct {
	Copied int
	Total  int
	Errors []CopyError
}

// CheckExisting returns the pinned names, in pin order, that already exist
// under destDir. Callers use it to warn before an overwriting export.
func CheckExisting(s *Store, destDir string) []string {
	existing := []string{}
	for _, n := range s.PinnedList() {
		if _, err := os.Stat(filepath.Join(destDir, n)); err == nil {
			existing = append(existing, n)
		}
	}
	return existing
}

// CopyPinned copies every pinned file from srcDir to destDir, overwriting
// files already there. The batch is best effort: a vanished source is
// skipped silently and a failed copy is recorded without stopping the rest.
func CopyPinned(s *Store, srcDir string, destDir string) CopyResult {
	pinned := s.PinnedList()
	r := CopyResult{Total: len(pinned)}

	for _, n := range pinned {
		src := filepath.Join(srcDir, n)
		if _, err := os.Stat(src); err != nil {
			klog.V(1).Infof("skipping %s: %v", src, err)
			continue
		}

		if err := copy.Copy(src, filepath.Join(destDir, n)); err != nil {
			klog.Warningf("copy %s: %v", src, err)
			r.Errors = append(r.Errors, CopyError{Filename: n, Message: err.Error()})
			continue
		}

		r.Copied++
	}

	klog.Infof("copied %d/%d pinned images to %s", r.Copied, r.Total, destDir)
	return r
}
