package imgview

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

// Watch invokes onChange whenever the contents of dir change, so an embedder
// can rebuild its catalog. Events for the metadata file are ignored, keeping
// our own saves from looking like directory changes. The returned stop
// function ends the watch.
func Watch(dir string, onChange func()) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}

	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) == MetaFile {
					continue
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					klog.V(1).Infof("change in %s: %s", dir, event)
					onChange()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				klog.Warningf("watch error: %v", err)
			}
		}
	}()

	return func() { w.Close() }, nil
}
