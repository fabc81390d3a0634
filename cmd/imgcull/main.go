// imgcull inspects a photo culling session and exports its pinned images.
package main

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/tstromberg/imgview/pkg/imgview"
)

var (
	dir       = flag.String("dir", "", "image directory to operate on")
	dest      = flag.String("dest", "", "export pinned images to this directory")
	clearPins = flag.Bool("clear", false, "unpin everything and save")
	force     = flag.Bool("force", false, "overwrite metadata modified by another process")
	noExif    = flag.Bool("no-exif", false, "order by filename only, without EXIF capture dates")
	watchFlag = flag.Bool("watch", false, "keep running and report when the directory changes")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *dir == "" {
		klog.Exitf("--dir is a required flag")
	}

	store := imgview.Load(imgview.MetaPath(*dir))

	var dates imgview.DateSource
	if !*noExif {
		ed, err := imgview.NewExifDates()
		if err != nil {
			klog.Warningf("exif dates unavailable, ordering by filename: %v", err)
		} else {
			defer ed.Close()
			dates = ed
		}
	}

	c := imgview.Build(*dir, store, dates, "")
	report(c, store)

	if *clearPins {
		store.ClearPinned()
		if err := save(store); err != nil {
			klog.Exitf("save failed: %v", err)
		}
		fmt.Println("cleared all pins")
		return
	}

	if *dest != "" {
		export(store)
	}

	if *watchFlag {
		stop, err := imgview.Watch(*dir, func() {
			c = imgview.Build(*dir, store, dates, c.Current())
			report(c, store)
		})
		if err != nil {
			klog.Exitf("watch failed: %v", err)
		}
		defer stop()

		klog.Infof("watching %s ...", *dir)
		<-make(chan struct{})
	}
}

// report prints the session state: every image in catalog order with its
// pin/skip mark.
func report(c *imgview.Catalog, store *imgview.Store) {
	fmt.Printf("%s: %d images, %d pinned, %d skipped\n", *dir, c.Size(), store.PinnedCount(), store.SkippedCount())

	for _, p := range c.Paths() {
		mark := " "
		switch n := filepath.Base(p); {
		case store.IsPinned(n):
			mark = "*"
		case store.IsSkipped(n):
			mark = "x"
		}
		fmt.Printf(" %s %s\n", mark, filepath.Base(p))
	}
}

// export copies the pinned images to --dest, warning about overwrites first.
func export(store *imgview.Store) {
	if existing := imgview.CheckExisting(store, *dest); len(existing) > 0 {
		klog.Warningf("overwriting %d files already in %s: %v", len(existing), *dest, existing)
	}

	r := imgview.CopyPinned(store, *dir, *dest)
	fmt.Printf("copied %d/%d images to %s\n", r.Copied, r.Total, *dest)

	for _, e := range r.Errors {
		klog.Errorf("copy %s: %s", e.Filename, e.Message)
	}
	if len(r.Errors) > 0 {
		klog.Exitf("%d copies failed", len(r.Errors))
	}
}

func save(store *imgview.Store) error {
	err := store.Save(imgview.MetaPath(*dir), *force)
	if errors.Is(err, imgview.ErrConcurrentMod) {
		return fmt.Errorf("%w (use --force to overwrite)", err)
	}
	return err
}
