package watcher

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestEventTypeForOp(t *testing.T) {
	cases := []struct {
		op   fsnotify.Op
		want FileEventType
		ok   bool
	}{
		{fsnotify.Create, FileCreated, true},
		{fsnotify.Write, FileModified, true},
		{fsnotify.Rename, FileModified, true},
		{fsnotify.Create | fsnotify.Write, FileCreated, true},
		{fsnotify.Chmod, "", false},
		{fsnotify.Remove, "", false},
	}
	for _, tc := range cases {
		got, ok := eventTypeForOp(tc.op)
		if got != tc.want || ok != tc.ok {
			t.Errorf("eventTypeForOp(%v) = %q, %v, want %q, %v", tc.op, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHandleEvent_EmitsEventType(t *testing.T) {
	cases := []struct {
		op   fsnotify.Op
		want FileEventType
	}{
		{fsnotify.Create, FileCreated},
		{fsnotify.Write, FileModified},
	}
	for _, tc := range cases {
		events := make(chan FileEvent, 1)
		w := &Watcher{watchPath: "config.yaml", eventChan: events}

		w.handleEvent(fsnotify.Event{Name: "config.yaml", Op: tc.op})

		// Flush directly instead of waiting out the debounce timer
		w.debounceMutex.Lock()
		if w.debounceTimer == nil {
			w.debounceMutex.Unlock()
			t.Fatalf("op %v: expected a debounce timer to be armed", tc.op)
		}
		w.debounceTimer.Stop()
		w.debounceMutex.Unlock()
		w.emitDebounceEvent()

		select {
		case got := <-events:
			if got.EventType != tc.want {
				t.Errorf("op %v: expected event type %q, got %q", tc.op, tc.want, got.EventType)
			}
			if got.Path != "config.yaml" {
				t.Errorf("expected the watch path on the event, got %q", got.Path)
			}
		default:
			t.Fatalf("op %v: expected an event to be emitted", tc.op)
		}
	}
}

func TestHandleEvent_IgnoresOtherFiles(t *testing.T) {
	events := make(chan FileEvent, 1)
	w := &Watcher{watchPath: "config.yaml", eventChan: events}

	w.handleEvent(fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write})

	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()
	if w.debounceTimer != nil {
		t.Error("expected no debounce timer for an unrelated file")
	}
}
