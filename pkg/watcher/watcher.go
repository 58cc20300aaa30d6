package watcher

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher calls onChange after the watched file settles.
//
// The parent directory is watched rather than the file so that editors that
// replace the file by rename are still seen, and so a file that does not
// exist yet can be picked up when it is created.
type FileWatcher struct {
	path      string
	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	done      chan struct{}
}

// NewFileWatcher starts watching path. Call Close to release the watcher.
func NewFileWatcher(path string, onChange func()) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &FileWatcher{
		path:      abs,
		fsw:       fsw,
		debouncer: NewDebouncer(0, onChange),
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *FileWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				w.debouncer.Trigger()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: file watcher error: %v", err)
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *FileWatcher) Close() error {
	w.debouncer.Stop()
	err := w.fsw.Close()
	<-w.done
	return err
}
