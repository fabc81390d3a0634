package imgview

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// imageExts is the fixed allow-list of viewable extensions, matched
// case-insensitively.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
	".bmp":  true,
}

// exifExts are the extensions worth asking a DateSource about.
var exifExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".tif":  true,
}

// farFuture is the sort key for images without a capture time, placing them
// after every dated image.
var farFuture = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

type entry struct {
	path  string
	taken time.Time
}

// findImages lists dir and returns its images ordered by capture time, then
// natural filename order. Undated images sort after all dated ones. An
// absent or unreadable dir yields an empty result.
func findImages(dir string, dates DateSource) []entry {
	names, err := godirwalk.ReadDirnames(dir, nil)
	if err != nil {
		klog.Warningf("unable to list %s: %v", dir, err)
		return nil
	}

	es := []entry{}
	for _, n := range names {
		ext := strings.ToLower(filepath.Ext(n))
		if !imageExts[ext] {
			continue
		}

		e := entry{path: filepath.Join(dir, n), taken: farFuture}
		if dates != nil && exifExts[ext] {
			if t, ok := dates.Taken(e.path); ok {
				e.taken = t
			}
		}

		es = append(es, e)
	}

	sort.Slice(es, func(i, j int) bool {
		if !es[i].taken.Equal(es[j].taken) {
			return es[i].taken.Before(es[j].taken)
		}
		return naturalLess(filepath.Base(es[i].path), filepath.Base(es[j].path))
	})

	klog.V(1).Infof("found %d images in %s", len(es), dir)
	return es
}
