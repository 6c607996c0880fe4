package prefabs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind tells a reload handler what sort of file moved.
type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeScript
)

// Change names a prefab file that was written, created, renamed or removed.
// Name is relative to the prefab root ("enemy.yaml", "scripts/taunt.tengo").
type Change struct {
	Name string
	Kind ChangeKind
}

// Watcher forwards prefab edits. Events are debounced per file because
// editors tend to write in several steps.
type Watcher struct {
	watcher  *fsnotify.Watcher
	Events   chan Change
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
	debounce time.Duration
	now      func() time.Time
}

// WatchDirs lists the prefab root and, when present, its scripts folder, so
// a tree without scripts can still be watched.
func WatchDirs(root string) []string {
	dirs := []string{root}
	scripts := filepath.Join(root, "scripts")
	if info, err := os.Stat(scripts); err == nil && info.IsDir() {
		dirs = append(dirs, scripts)
	}
	return dirs
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher:  w,
		Events:   make(chan Change, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		debounce: 100 * time.Millisecond,
		now:      time.Now,
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		if w.watcher != nil {
			err = w.watcher.Close()
		}
	})
	return err
}

func (w *Watcher) run() {
	w.loop(w.watcher.Events, w.watcher.Errors)
}

// loop forwards classified events until Close or until the source closes.
// A file that changes again within the debounce window is reported once.
func (w *Watcher) loop(events <-chan fsnotify.Event, errs <-chan error) {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			change, ok := classify(event)
			if !ok {
				continue
			}
			now := w.now()
			if t, seen := last[change.Name]; seen && now.Sub(t) < w.debounce {
				continue
			}
			last[change.Name] = now
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(event fsnotify.Event) (Change, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return Change{}, false
	}
	switch {
	case isSpecFile(event.Name):
		return Change{Name: filepath.Base(event.Name), Kind: ChangeSpec}, true
	case isScriptFile(event.Name):
		return Change{Name: "scripts/" + filepath.Base(event.Name), Kind: ChangeScript}, true
	}
	return Change{}, false
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tengo"
}
