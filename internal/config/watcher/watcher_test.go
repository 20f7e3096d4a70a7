package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcher_WatchTwice(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".buffalorc")

	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatalf("second Watch failed: %v", err)
	}
	if got := w.dirs[tmpDir]; got != 1 {
		t.Errorf("directory registered %d times, want 1", got)
	}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".buffalorc")
	if err := os.WriteFile(path, []byte(`build = "make"`), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	events := make(chan Event, 10)
	w.OnChange(func(e Event) { events <- e })
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(path, []byte(`build = "ninja"`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-events:
		if filepath.Base(e.Path) != ".buffalorc" {
			t.Errorf("event path = %q", e.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".buffalorc")

	w, err := New(WithDebounce(0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	var mu sync.Mutex
	var got []Event
	w.OnChange(func(e Event) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
	})
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 0 {
		t.Errorf("got %d events for an unwatched sibling", len(got))
	}
}

func TestWatcher_QueueCoalesces(t *testing.T) {
	w := &Watcher{pendingFiles: make(map[string]pendingEvent)}
	now := time.Now()

	w.queueEvent(Event{Path: "/a", Op: OpCreate, Time: now})
	w.queueEvent(Event{Path: "/a", Op: OpWrite, Time: now})
	if op := w.pendingFiles["/a"].Op; op != OpCreate {
		t.Errorf("create+write = %v, want create", op)
	}

	w.queueEvent(Event{Path: "/a", Op: OpRemove, Time: now})
	w.queueEvent(Event{Path: "/a", Op: OpWrite, Time: now})
	if op := w.pendingFiles["/a"].Op; op != OpRemove {
		t.Errorf("remove+write = %v, want remove", op)
	}
}

func TestWatcher_HandlerPanicRecovered(t *testing.T) {
	w := &Watcher{}
	called := false
	w.OnChange(func(Event) { panic("boom") })
	w.OnChange(func(Event) { called = true })

	w.emitEvent(Event{Path: "/a", Op: OpWrite})
	if !called {
		t.Error("second handler not called after first panicked")
	}
}

func TestWatcher_Close(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "x")); err != ErrClosed {
		t.Errorf("Watch after Close = %v, want ErrClosed", err)
	}
}
