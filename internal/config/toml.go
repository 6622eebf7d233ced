// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Study   StudyConfig   `toml:"study"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

// StudyConfig maps study-related settings.
type StudyConfig struct {
	Script  *string `toml:"script"`
	Shuffle *bool   `toml:"shuffle"`
	Count   *int    `toml:"count"`
	Options *string `toml:"options"`
}

// StorageConfig maps storage settings.
type StorageConfig struct {
	DB *string `toml:"db"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
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
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Template returns the commented config written by `kanaflash config`.
func Template(d Settings) string {
	return fmt.Sprintf(`# kanaflash configuration
# Uncomment a value to enable it. CLI flags override config values,
# KANAFLASH_DB and KANAFLASH_LOG_LEVEL override the file.

[study]
# script = %q       # hiragana or katakana
# shuffle = %t           # Shuffle cards before studying
# count = %d                # Cards per session (0 = all)
# options = '{"isShuffled":true,"characterCount":10}'  # Raw study options, overrides shuffle/count

[storage]
# db = %q

[log]
# level = %q             # debug, info, warn or error
`,
		d.Script,
		d.Shuffle,
		d.Count,
		d.DBPath,
		d.LogLevel,
	)
}
