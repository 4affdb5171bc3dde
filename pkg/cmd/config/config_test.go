package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/notes/internal/config"
	"github.com/Paintersrp/notes/internal/state"
	"github.com/Paintersrp/notes/pkg/cmd/cmdtest"
)

func newState(t *testing.T) *state.State {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := config.EnsureConfigFile(path); err != nil {
		t.Fatalf("failed to create config: %v", err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	s := state.New()
	s.Config = cfg
	return s
}

func TestConfigListsEveryKey(t *testing.T) {
	s := newState(t)

	out, err := cmdtest.Execute(t, NewCmdConfig(s))
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}

	for _, key := range config.Keys() {
		if !strings.Contains(out, key+":") {
			t.Fatalf("expected %s in output %q", key, out)
		}
	}
}

func TestConfigGetSetPath(t *testing.T) {
	s := newState(t)

	out, err := cmdtest.Execute(t, NewCmdConfig(s), "set", "locale", "en")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !strings.Contains(out, "locale set to en") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = cmdtest.Execute(t, NewCmdConfig(s), "get", "locale")
	if err != nil || strings.TrimSpace(out) != "en" {
		t.Fatalf("expected en, got %q (%v)", out, err)
	}

	out, err = cmdtest.Execute(t, NewCmdConfig(s), "path")
	if err != nil || strings.TrimSpace(out) != s.Config.Path() {
		t.Fatalf("expected config path, got %q (%v)", out, err)
	}

	data, err := os.ReadFile(s.Config.Path())
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if !strings.Contains(string(data), "locale: en") {
		t.Fatalf("expected locale to be saved, got %q", data)
	}
}

func TestConfigSetRejectsInvalidValue(t *testing.T) {
	s := newState(t)

	if _, err := cmdtest.Execute(t, NewCmdConfig(s), "set", "timeout", "soon"); err == nil {
		t.Fatalf("expected invalid timeout to be rejected")
	}
	if _, err := cmdtest.Execute(t, NewCmdConfig(s), "get", "nope"); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}
