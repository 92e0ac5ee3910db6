package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// settings is the optional per-user CLI configuration file.
type settings struct {
	LogLevel string `toml:"log_level"`
	NoColor  bool   `toml:"no_color"`
}

func defaultSettings() settings {
	return settings{LogLevel: "warn"}
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "grit", "config.toml")
}

// loadSettings decodes the settings file at path. When path is empty the
// default location is tried and a missing file there is not an error.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	explicit := path != ""
	if !explicit {
		path = defaultSettingsPath()
		if path == "" {
			return s, nil
		}
	}

	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return s, fmt.Errorf("settings %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return s, nil
}

func (s settings) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("settings: log_level: %w", err)
	}
	return l, nil
}
