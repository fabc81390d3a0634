package imgview

import (
	"fmt"
	"time"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"
)

var exifDate = "2006:01:02 15:04:05"

// DateSource yields the capture time of an image, if one is known.
type DateSource interface {
	Taken(path string) (time.Time, bool)
}

// ExifDates reads capture times with exiftool. Create with NewExifDates and
// Close when done; the zero value is not usable.
type ExifDates struct {
	et *exiftool.Exiftool
}

// NewExifDates starts an exiftool session for capture-time extraction.
func NewExifDates() (*ExifDates, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	return &ExifDates{et: et}, nil
}

// Close shuts the underlying exiftool session down.
func (e *ExifDates) Close() {
	if err := e.et.Close(); err != nil {
		klog.Warningf("exiftool close: %v", err)
	}
}

// Taken returns the DateTimeOriginal timestamp of path. Every failure mode,
// from an unreadable file to a missing or malformed tag, means "no
// timestamp" rather than an error.
func (e *ExifDates) Taken(path string) (time.Time, bool) {
	fis := e.et.ExtractMetadata(path)
	if len(fis) == 0 || fis[0].Err != nil {
		klog.V(1).Infof("no exif metadata for %s", path)
		return time.Time{}, false
	}

	ds, err := fis[0].GetString("DateTimeOriginal")
	if err != nil {
		klog.V(1).Infof("unable to get date time for %s: %v", path, err)
		return time.Time{}, false
	}

	t, err := time.Parse(exifDate, ds)
	if err != nil {
		klog.Warningf("parse time %q for %s: %v", ds, path, err)
		return time.Time{}, false
	}

	return t, true
}
