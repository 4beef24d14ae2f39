// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typereader/internal/model"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Log      LogConfig      `toml:"log"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	ChunkSize           *int  `toml:"chunk-size"`
	CaseSensitive       *bool `toml:"case-sensitive"`
	PunctuationRequired *bool `toml:"punct"`
	MistakesAllowed     *bool `toml:"mistakes-ok"`
	ShowStats           *bool `toml:"stats"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Apply overlays the values set in the file onto opts.
func (p PracticeConfig) Apply(opts model.Options) model.Options {
	if p.ChunkSize != nil {
		opts.ChunkSize = *p.ChunkSize
	}
	if p.CaseSensitive != nil {
		opts.CaseSensitive = *p.CaseSensitive
	}
	if p.PunctuationRequired != nil {
		opts.PunctuationRequired = *p.PunctuationRequired
	}
	if p.MistakesAllowed != nil {
		opts.MistakesAllowed = *p.MistakesAllowed
	}
	if p.ShowStats != nil {
		opts.ShowStats = *p.ShowStats
	}
	return opts
}

// DefaultTemplate returns the commented config written by `typereader config`.
func DefaultTemplate() string {
	d := model.DefaultOptions()
	return fmt.Sprintf(`# typereader configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# chunk-size = %d          # Words per chunk
# case-sensitive = %t    # Require matching capitalization
# punct = %t             # Require typing punctuation
# mistakes-ok = %t      # Move on after a wrong key
# stats = %t            # Show live WPM and accuracy

[log]
# level = "info"          # debug, info, warn or error
# file = ""               # Log file; empty disables logging
`,
		d.ChunkSize,
		d.CaseSensitive,
		d.PunctuationRequired,
		d.MistakesAllowed,
		d.ShowStats,
	)
}
