package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typereader/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored: %v", err)
	}
	if cfg.Practice.ChunkSize != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[practice]
chunk-size = 12
case-sensitive = false
mistakes-ok = true

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	opts := cfg.Practice.Apply(model.DefaultOptions())
	if opts.ChunkSize != 12 || opts.CaseSensitive || !opts.MistakesAllowed {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if !opts.PunctuationRequired || opts.ShowStats {
		t.Fatalf("unset keys must keep defaults: %+v", opts)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("expected log level debug")
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice]\nwords = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "practice.words") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultTemplateDecodes(t *testing.T) {
	var cfg FileConfig
	if _, err := toml.Decode(DefaultTemplate(), &cfg); err != nil {
		t.Fatalf("template must be valid TOML: %v", err)
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "typereader", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/state", "typereader", "typereader.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
}
