// Package watch triggers a callback when any of a fixed set of files changes.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"food-menu/internal/logger"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher observes the parent directories of its files so that editors which
// save by rename are still seen. Bursts of events collapse into one callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]struct{}
	dirs     []string
	debounce time.Duration
	onChange func()
	logger   logger.Logger

	timerMu sync.Mutex
	timer   *time.Timer

	// held while onChange runs so a later burst never finishes before an earlier one
	callbackMu sync.Mutex

	mu       sync.Mutex
	started  bool
	stopped  bool
	stopChan chan struct{}
	done     chan struct{}
}

func New(paths []string, debounce time.Duration, onChange func(), log logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.NoOp{}
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	files := make(map[string]struct{}, len(paths))
	seenDirs := make(map[string]struct{})
	var dirs []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		files[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, ok := seenDirs[dir]; !ok {
			seenDirs[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsw,
		files:    files,
		dirs:     dirs,
		debounce: debounce,
		onChange: onChange,
		logger:   log,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start registers the watches and begins the event loop. Directories that
// cannot be watched are logged and skipped.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return fmt.Errorf("watcher already stopped")
	}
	if w.started {
		return nil
	}

	watched := 0
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.logger.Warning("Watcher", "failed to watch directory", map[string]interface{}{
				"dir":   dir,
				"error": err.Error(),
			})
			continue
		}
		watched++
	}
	if watched == 0 && len(w.dirs) > 0 {
		return fmt.Errorf("no source directory could be watched")
	}

	w.started = true
	go w.eventLoop()

	w.logger.Info("Watcher", "watching catalog sources", map[string]interface{}{
		"files": len(w.files),
		"dirs":  watched,
	})
	return nil
}

// Stop is idempotent.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	started := w.started
	close(w.stopChan)
	w.mu.Unlock()

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.timerMu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	w.logger.Info("Watcher", "stopped", nil)
	return err
}

// Shutdown lets the shutdown manager stop the watcher.
func (w *Watcher) Shutdown() {
	if err := w.Stop(); err != nil {
		w.logger.Error("Watcher", err, nil)
	}
}

func (w *Watcher) eventLoop() {
	defer close(w.done)

	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher", err, nil)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op == fsnotify.Chmod {
		return
	}
	if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
		return
	}

	w.logger.Debug("Watcher", "source changed", map[string]interface{}{
		"op":   event.Op.String(),
		"file": event.Name,
	})
	w.schedule()
}

func (w *Watcher) schedule() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()

	select {
	case <-w.stopChan:
		return
	default:
	}
	w.onChange()
}
