package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kamusis/docnav/internal/normalize"
)

const (
	// DefaultSearchLimit caps the number of results the CLI and API show.
	DefaultSearchLimit = 20
	DefaultListen      = ":8090"
	DefaultSection     = "crm-systems"
)

// Config is the in-memory representation of ~/.docnav/docnav.yaml.
type Config struct {
	// DataPaths lists document files or directories to load.
	DataPaths      []string `yaml:"data_paths"`
	DefaultSection string   `yaml:"default_section,omitempty"`

	// Normalizer settings for legacy documents.
	ItemsPerSubtopic  int   `yaml:"items_per_subtopic,omitempty"`
	GenerateIcons     *bool `yaml:"generate_icons,omitempty"`
	PreserveStructure bool  `yaml:"preserve_structure,omitempty"`

	SearchLimit int    `yaml:"search_limit,omitempty"`
	Listen      string `yaml:"listen,omitempty"`
	StatePath   string `yaml:"state_path,omitempty"`
}

// DocnavDir returns the absolute path to the docnav home directory:
// $DOCNAV_HOME when set, ~/.docnav otherwise.
func DocnavDir() (string, error) {
	if d := os.Getenv("DOCNAV_HOME"); d != "" {
		return ExpandPath(d)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".docnav"), nil
}

// ConfigPath returns the absolute path to docnav.yaml.
func ConfigPath() (string, error) {
	dir, err := DocnavDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "docnav.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written on first docnav init.
func DefaultConfig() (*Config, error) {
	dir, err := DocnavDir()
	if err != nil {
		return nil, err
	}
	icons := true
	return &Config{
		DataPaths:        []string{filepath.Join(dir, "docs")},
		DefaultSection:   DefaultSection,
		ItemsPerSubtopic: normalize.DefaultItemsPerSubtopic,
		GenerateIcons:    &icons,
		SearchLimit:      DefaultSearchLimit,
		Listen:           DefaultListen,
		StatePath:        filepath.Join(dir, "state.json"),
	}, nil
}

// Load reads and parses docnav.yaml, then applies environment overrides
// and defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault is Load, falling back to DefaultConfig when docnav.yaml
// does not exist.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	cfg, err = DefaultConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish applies environment overrides, defaults and ~ expansion.
func (c *Config) finish() error {
	if v, err := GetConfigValue("DOCNAV_DATA"); err != nil {
		return err
	} else if v != "" {
		c.DataPaths = filepath.SplitList(v)
	}
	if v, err := GetConfigValue("DOCNAV_LISTEN"); err != nil {
		return err
	} else if v != "" {
		c.Listen = v
	}

	if c.DefaultSection == "" {
		c.DefaultSection = DefaultSection
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = DefaultSearchLimit
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.StatePath == "" {
		dir, err := DocnavDir()
		if err != nil {
			return err
		}
		c.StatePath = filepath.Join(dir, "state.json")
	}

	var err error
	for i, p := range c.DataPaths {
		if c.DataPaths[i], err = ExpandPath(p); err != nil {
			return err
		}
	}
	c.StatePath, err = ExpandPath(c.StatePath)
	return err
}

// NormalizeOptions returns the normalizer options described by c.
func (c *Config) NormalizeOptions() normalize.Options {
	opts := normalize.DefaultOptions()
	if c.ItemsPerSubtopic > 0 {
		opts.ItemsPerSubtopic = c.ItemsPerSubtopic
	}
	if c.GenerateIcons != nil {
		opts.GenerateIcons = *c.GenerateIcons
	}
	opts.PreserveStructure = c.PreserveStructure
	return opts
}

// Save marshals cfg and writes it to docnav.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
