// Package config provides configuration file support for golint-quality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/analysis"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default configuration file name.
const ConfigFileName = ".golint-quality.yaml"

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrUnknownSourceSet = errors.New("unknown source set")
)

// Config represents the golint-quality configuration.
type Config struct {
	// SourceSets declares the project's source sets by name.
	SourceSets map[string]SourceSet `yaml:"sourceSets"`

	// Quality selects what participates in check.
	Quality Quality `yaml:"quality"`

	// Analyzers configures which analyzers are enabled/disabled.
	// Use "default: false" to disable all by default, then enable specific ones.
	// Use "default: true" (or omit) to enable all by default, then disable specific ones.
	Analyzers map[string]bool `yaml:"analyzers"`
}

// SourceSet declares one source set.
type SourceSet struct {
	Patterns []string `yaml:"patterns"`
	Tests    bool     `yaml:"tests"`
}

// Quality holds the plugin-level settings.
type Quality struct {
	// SourceSets lists the source sets whose tasks check depends on.
	SourceSets []string `yaml:"sourceSets"`
	// Strict makes violations fail the verification task.
	Strict *bool `yaml:"strict"`
	// ConsoleReporting prints violations to the console.
	ConsoleReporting *bool `yaml:"consoleReporting"`
	// Exclude holds file globs whose violations are dropped.
	Exclude []string `yaml:"exclude"`
	// Tools enables or disables individual tools. Missing tools are enabled.
	Tools map[string]bool `yaml:"tools"`
}

// Default returns the configuration used when no file is found: main and
// test source sets over ./..., with only main bound to check.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if len(c.SourceSets) == 0 {
		c.SourceSets = map[string]SourceSet{
			"main": {Patterns: []string{"./..."}},
			"test": {Patterns: []string{"./..."}, Tests: true},
		}
	}
	if c.Quality.SourceSets == nil {
		c.Quality.SourceSets = []string{"main"}
	}
	if c.Analyzers == nil {
		c.Analyzers = map[string]bool{"default": true}
	}
}

// Load attempts to load configuration from .golint-quality.yaml in dir or
// any parent directory up to the filesystem root. An empty dir means the
// current directory.
func Load(dir string) (*Config, error) {
	path, err := findConfigFile(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFrom(path)
}

// LoadFrom loads configuration from the specified path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// findConfigFile searches for the configuration file starting from dir and
// walking up to parent directories.
func findConfigFile(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Validate checks tool names against known and that every participating
// source set is declared.
func (c *Config) Validate(known []string) error {
	valid := make(map[string]bool, len(known))
	for _, name := range known {
		valid[name] = true
	}

	var errs []error
	for _, name := range sortedKeys(c.Quality.Tools) {
		if !valid[name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownTool, name))
		}
	}
	for _, name := range c.Quality.SourceSets {
		if _, ok := c.SourceSets[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownSourceSet, name))
		}
	}
	return errors.Join(errs...)
}

// ToolEnabled reports whether the named tool participates.
func (c *Config) ToolEnabled(name string) bool {
	if c == nil {
		return true
	}
	if val, ok := c.Quality.Tools[name]; ok {
		return val
	}
	return true
}

// StrictMode reports whether violations fail the build. Defaults to true.
func (c *Config) StrictMode() bool {
	if c == nil || c.Quality.Strict == nil {
		return true
	}
	return *c.Quality.Strict
}

// ConsoleReportingEnabled reports whether violations are printed. Defaults to true.
func (c *Config) ConsoleReportingEnabled() bool {
	if c == nil || c.Quality.ConsoleReporting == nil {
		return true
	}
	return *c.Quality.ConsoleReporting
}

// SourceSetNames returns the declared source set names, sorted.
func (c *Config) SourceSetNames() []string {
	return sortedKeys(c.SourceSets)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FilterAnalyzers returns only the analyzers that are enabled according to the config.
func (c *Config) FilterAnalyzers(all []*analysis.Analyzer) []*analysis.Analyzer {
	if c == nil || c.Analyzers == nil {
		return all
	}

	var enabled []*analysis.Analyzer
	for _, a := range all {
		if c.IsEnabled(a.Name) {
			enabled = append(enabled, a)
		}
	}
	return enabled
}

// IsEnabled checks if a specific analyzer is enabled.
func (c *Config) IsEnabled(name string) bool {
	if c == nil || c.Analyzers == nil {
		return true
	}

	// Check specific setting
	if val, ok := c.Analyzers[name]; ok {
		return val
	}

	// Check default
	if val, ok := c.Analyzers["default"]; ok {
		return val
	}

	return true
}
