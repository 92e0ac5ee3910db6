package repo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/google/renameio"
)

const coreSection = "core"

// Config is a parsed INI-style repository config.
type Config struct {
	raw *format.Config
}

// DefaultConfig returns the config written by Create.
func DefaultConfig() *Config {
	c := &Config{raw: format.New()}
	for _, kv := range coreKeys {
		c.Set(coreSection, kv.key, kv.want)
	}
	return c
}

// LoadConfig reads and parses the config file at path. A missing file
// yields an ErrNotFound *PathError; a parse failure a *ConfigError.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &PathError{Op: "read config", Path: path, Kind: ErrNotFound}
		}
		return nil, &PathError{Op: "read config", Path: path, Kind: ErrIO, Err: err}
	}
	return ParseConfig(path, data)
}

// ParseConfig parses config file contents. name is only used in errors.
func ParseConfig(name string, data []byte) (*Config, error) {
	raw := format.New()
	if err := format.NewDecoder(bytes.NewReader(data)).Decode(raw); err != nil {
		return nil, &ConfigError{Path: name, Err: err}
	}
	return &Config{raw: raw}, nil
}

// WriteFile encodes c and atomically replaces the file at path.
func (c *Config) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := format.NewEncoder(&buf).Encode(c.raw); err != nil {
		return fmt.Errorf("write config: encode: %w", err)
	}
	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &PathError{Op: "write config", Path: path, Kind: ErrIO, Err: err}
	}
	return nil
}

// Get returns the value of key in section. Names are case-insensitive.
func (c *Config) Get(section, key string) (string, bool) {
	if !c.raw.HasSection(section) {
		return "", false
	}
	s := c.raw.Section(section)
	if !s.HasOption(key) {
		return "", false
	}
	return s.Option(key), true
}

// HasSection reports whether section is present.
func (c *Config) HasSection(section string) bool {
	return c.raw.HasSection(section)
}

// Set sets key in section, creating the section if needed.
func (c *Config) Set(section, key, value string) {
	c.raw.Section(section).SetOption(key, value)
}

// Sections returns the config as nested maps. Subsections are keyed as
// "section.subsection". Repeated keys keep their last value.
func (c *Config) Sections() map[string]map[string]string {
	out := make(map[string]map[string]string, len(c.raw.Sections))
	for _, s := range c.raw.Sections {
		out[strings.ToLower(s.Name)] = optionMap(s.Options)
		for _, sub := range s.Subsections {
			out[strings.ToLower(s.Name)+"."+sub.Name] = optionMap(sub.Options)
		}
	}
	return out
}

func optionMap(opts format.Options) map[string]string {
	m := make(map[string]string, len(opts))
	for _, o := range opts {
		m[strings.ToLower(o.Key)] = o.Value
	}
	return m
}

// checkCore verifies the [core] invariants in a fixed order and reports
// the first violation.
func (c *Config) checkCore(path string) error {
	if !c.HasSection(coreSection) {
		return &ConfigError{Path: path, Section: coreSection, Missing: true}
	}
	for _, kv := range coreKeys {
		got, ok := c.Get(coreSection, kv.key)
		if !ok {
			return &ConfigError{Path: path, Section: coreSection, Key: kv.key, Missing: true}
		}
		if got != kv.want {
			return &ConfigError{Path: path, Section: coreSection, Key: kv.key, Want: kv.want, Got: got}
		}
	}
	return nil
}
