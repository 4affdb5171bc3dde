package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func waitForMsg(t *testing.T, w *ConfigWatcher) any {
	t.Helper()

	ch := make(chan any, 1)
	go func() { ch <- w.Start()() }()

	select {
	case msg := <-ch:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for the watcher")
		return nil
	}
}

func TestConfigWatcherReloadsSettings(t *testing.T) {
	path := setup(t, "preview_style: dracula\n")

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher returned error: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("preview_style: light\nconfirm_delete: false\n"), 0o644)
	}()

	msg, ok := waitForMsg(t, w).(ConfigChangedMsg)
	if !ok {
		t.Fatalf("expected ConfigChangedMsg")
	}
	if msg.Settings.PreviewStyle != "light" || msg.Settings.ConfirmDelete {
		t.Fatalf("unexpected settings %+v", msg.Settings)
	}
}

func TestConfigWatcherReportsInvalidConfig(t *testing.T) {
	path := setup(t, "")

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher returned error: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("timeout: soon\n"), 0o644)
	}()

	if _, ok := waitForMsg(t, w).(ConfigWatcherErrMsg); !ok {
		t.Fatalf("expected ConfigWatcherErrMsg")
	}
}

func TestConfigWatcherKeepsOverrides(t *testing.T) {
	path := setup(t, "locale: id\n")
	viper.Set("locale", "en")

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher returned error: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("locale: id\nlog_level: debug\n"), 0o644)
	}()

	msg, ok := waitForMsg(t, w).(ConfigChangedMsg)
	if !ok {
		t.Fatalf("expected ConfigChangedMsg")
	}
	if msg.Settings.Locale != "en" {
		t.Fatalf("expected override to survive a reload, got %q", msg.Settings.Locale)
	}
}

func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	path := setup(t, "")

	w, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher returned error: %v", err)
	}

	closed := make(chan struct{})
	w.OnClose(func() { close(closed) })

	done := make(chan any, 1)
	go func() { done <- w.Start()() }()

	_ = os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x: 1\n"), 0o644)

	select {
	case msg := <-done:
		t.Fatalf("unexpected message for an unrelated file: %#v", msg)
	case <-time.After(300 * time.Millisecond):
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	<-closed

	select {
	case msg := <-done:
		if msg != nil {
			t.Fatalf("expected nil after close, got %#v", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not stop")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
}
