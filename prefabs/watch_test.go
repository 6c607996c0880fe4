package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func newTestWatcher(clock []time.Time) *Watcher {
	w := &Watcher{
		Events:   make(chan Change, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}
	w.now = func() time.Time {
		t := clock[0]
		clock = clock[1:]
		return t
	}
	return w
}

func TestWatcherDebouncesRepeatedWrites(t *testing.T) {
	start := time.Unix(1000, 0)
	w := newTestWatcher([]time.Time{
		start,
		start.Add(20 * time.Millisecond),
		start.Add(30 * time.Millisecond),
		start.Add(250 * time.Millisecond),
	})

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	done := make(chan struct{})
	go func() {
		w.loop(events, errs)
		close(done)
	}()

	events <- fsnotify.Event{Name: "prefabs/enemy.yaml", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "prefabs/enemy.yaml", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "prefabs/weapon.yaml", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "prefabs/enemy.yaml", Op: fsnotify.Write}
	errs <- errors.New("overflow")

	want := []Change{
		{Name: "enemy.yaml", Kind: ChangeSpec},
		{Name: "weapon.yaml", Kind: ChangeSpec},
		{Name: "enemy.yaml", Kind: ChangeSpec},
	}
	for i, c := range want {
		select {
		case got := <-w.Events:
			if got != c {
				t.Fatalf("change %d = %+v, want %+v", i, got, c)
			}
		case <-time.After(time.Second):
			t.Fatalf("change %d never arrived", i)
		}
	}
	select {
	case got := <-w.Events:
		t.Fatalf("unexpected extra change %+v", got)
	default:
	}

	select {
	case err := <-w.Errors:
		if err == nil || err.Error() != "overflow" {
			t.Fatalf("unexpected error %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("error was not forwarded")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop kept running after Close")
	}
}

func TestWatchDirsSkipsMissingScripts(t *testing.T) {
	root := t.TempDir()
	if got := WatchDirs(root); len(got) != 1 || got[0] != root {
		t.Fatalf("WatchDirs without scripts = %v", got)
	}

	scripts := filepath.Join(root, "scripts")
	if err := os.Mkdir(scripts, 0o755); err != nil {
		t.Fatal(err)
	}
	got := WatchDirs(root)
	if len(got) != 2 || got[1] != scripts {
		t.Fatalf("WatchDirs with scripts = %v", got)
	}

	w, err := NewWatcher(WatchDirs(t.TempDir())...)
	if err != nil {
		t.Fatalf("watching a tree without scripts: %v", err)
	}
	_ = w.Close()
}
