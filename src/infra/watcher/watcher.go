package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DEBOUNCE_SECS = 2

// Watcher monitors the config file for changes and emits events
type Watcher struct {
	watcher       *fsnotify.Watcher
	watchPath     string
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	pendingEvent  FileEventType
	running       bool
	stopChan      chan struct{}
	eventChan     chan<- FileEvent
}

// NewWatcher creates a new file system watcher
func NewWatcher(eventChan chan<- FileEvent) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:   watcher,
		eventChan: eventChan,
		stopChan:  make(chan struct{}),
	}, nil
}

// Start begins watching the given file for changes. The parent directory
// is registered with fsnotify so atomic saves (write to temp file, rename
// over the original) are still seen.
func (w *Watcher) Start(ctx context.Context, watchPath string) error {
	w.watchPath = watchPath
	slog.Info("Starting config watcher", "path", watchPath)

	if err := w.watcher.Add(filepath.Dir(watchPath)); err != nil {
		return err
	}

	w.running = true

	// Start the event loop
	go w.watchLoop(ctx)

	return nil
}

// Stop stops the file watcher
func (w *Watcher) Stop() {
	if !w.running {
		return
	}

	slog.Info("Stopping config watcher")
	w.running = false
	close(w.stopChan)

	// Cancel any pending debounce timer
	w.debounceMutex.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMutex.Unlock()

	w.watcher.Close()
}

// watchLoop processes file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", "error", err)

		case <-w.stopChan:
			return

		case <-ctx.Done():
			return
		}
	}
}

// handleEvent processes a single file system event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	eventType, ok := eventTypeForOp(event.Op)
	if !ok {
		return
	}

	// The whole directory is watched, only react to the config file itself
	if filepath.Base(event.Name) != filepath.Base(w.watchPath) {
		return
	}

	slog.Debug("Detected config file change", "file", event.Name, "op", event.Op.String())

	// Editors fire several events per save, collapse them into one reload
	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	w.pendingEvent = eventType

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(time.Duration(DEBOUNCE_SECS)*time.Second, func() {
		w.emitDebounceEvent()
	})
}

// eventTypeForOp maps an fsnotify op to the event type reported downstream.
// Renames read as modifications since atomic saves replace the file.
func eventTypeForOp(op fsnotify.Op) (FileEventType, bool) {
	switch {
	case op&fsnotify.Create != 0:
		return FileCreated, true
	case op&(fsnotify.Write|fsnotify.Rename) != 0:
		return FileModified, true
	default:
		return "", false
	}
}

// emitDebounceEvent emits the pending file event after the debounce period
func (w *Watcher) emitDebounceEvent() {
	w.debounceMutex.Lock()
	eventType := w.pendingEvent
	w.debounceMutex.Unlock()

	event := FileEvent{
		Path:      w.watchPath,
		EventType: eventType,
		Timestamp: time.Now(),
	}

	select {
	case w.eventChan <- event:
		slog.Info("Emitted config change event after debounce", "path", event.Path)
	default:
		slog.Warn("Event channel full, dropping config change event", "path", event.Path)
	}
}
