package state

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/Paintersrp/notes/internal/config"
)

const settleDelay = 100 * time.Millisecond

// ConfigChangedMsg carries the effective settings after the config file was
// rewritten.
type ConfigChangedMsg struct {
	Settings Resolved
}

// ConfigWatcherErrMsg reports a watch failure or a config that no longer
// validates. The previous settings stay in effect.
type ConfigWatcherErrMsg struct {
	Err error
}

// ConfigWatcher reloads the config file when it changes on disk.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	onClose func()
}

// NewConfigWatcher watches the directory holding path, so editors that
// replace the file on save are still seen.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	if path == "" {
		return nil, errors.New("config path cannot be empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &ConfigWatcher{
		watcher: w,
		path:    abs,
		done:    make(chan struct{}),
	}, nil
}

// Start waits for the next change and returns it as a message. Call it again
// after each message to keep watching.
func (w *ConfigWatcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}

				w.settle()
				return w.reload()
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return ConfigWatcherErrMsg{Err: err}
				}
			}
		}
	}
}

// settle drains the burst of events a single save produces.
func (w *ConfigWatcher) settle() {
	timer := time.NewTimer(settleDelay)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			return
		case <-w.done:
			return
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
		}
	}
}

func (w *ConfigWatcher) reload() tea.Msg {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := config.LoadFile(w.path); err != nil {
		return ConfigWatcherErrMsg{Err: err}
	}
	return ConfigChangedMsg{Settings: Settings()}
}

func (w *ConfigWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}

// Path returns the watched config file.
func (w *ConfigWatcher) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// OnClose registers a callback that is invoked exactly once when the watcher
// shuts down.
func (w *ConfigWatcher) OnClose(fn func()) {
	if w == nil {
		return
	}
	w.onClose = fn
}

func (w *ConfigWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
		if w.onClose != nil {
			w.onClose()
		}
	})

	return closeErr
}
