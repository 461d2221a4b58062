package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/tools/go/analysis"
)

func TestFilterAnalyzers(t *testing.T) {
	mockAnalyzers := []*analysis.Analyzer{
		{Name: "errcheck"},
		{Name: "exporteddoc"},
		{Name: "noprint"},
	}

	tests := []struct {
		name   string
		config *Config
		want   []string
	}{
		{
			name:   "nil config enables all",
			config: nil,
			want:   []string{"errcheck", "exporteddoc", "noprint"},
		},
		{
			name:   "default config enables all",
			config: Default(),
			want:   []string{"errcheck", "exporteddoc", "noprint"},
		},
		{
			name: "default false disables all",
			config: &Config{
				Analyzers: map[string]bool{"default": false},
			},
			want: []string{},
		},
		{
			name: "disable specific analyzer",
			config: &Config{
				Analyzers: map[string]bool{"default": true, "exporteddoc": false},
			},
			want: []string{"errcheck", "noprint"},
		},
		{
			name: "enable specific analyzers when default is false",
			config: &Config{
				Analyzers: map[string]bool{"default": false, "errcheck": true, "noprint": true},
			},
			want: []string{"errcheck", "noprint"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.FilterAnalyzers(mockAnalyzers)
			if len(got) != len(tt.want) {
				t.Errorf("FilterAnalyzers() returned %d analyzers, want %d", len(got), len(tt.want))
				return
			}
			for i, a := range got {
				if a.Name != tt.want[i] {
					t.Errorf("FilterAnalyzers()[%d].Name = %q, want %q", i, a.Name, tt.want[i])
				}
			}
		})
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		analyzer    string
		wantEnabled bool
	}{
		{
			name:        "nil config enables all",
			config:      nil,
			analyzer:    "anything",
			wantEnabled: true,
		},
		{
			name:        "explicitly disabled",
			config:      &Config{Analyzers: map[string]bool{"SA1019": false}},
			analyzer:    "SA1019",
			wantEnabled: false,
		},
		{
			name:        "uses default when not specified",
			config:      &Config{Analyzers: map[string]bool{"default": false}},
			analyzer:    "other",
			wantEnabled: false,
		},
		{
			name:        "no default means enabled",
			config:      &Config{Analyzers: map[string]bool{"x": false}},
			analyzer:    "other",
			wantEnabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.IsEnabled(tt.analyzer)
			if got != tt.wantEnabled {
				t.Errorf("IsEnabled(%q) = %v, want %v", tt.analyzer, got, tt.wantEnabled)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if got := cfg.SourceSetNames(); !reflect.DeepEqual(got, []string{"main", "test"}) {
		t.Errorf("SourceSetNames() = %v", got)
	}
	if !cfg.SourceSets["test"].Tests {
		t.Error("test source set should cover tests")
	}
	if got := cfg.Quality.SourceSets; !reflect.DeepEqual(got, []string{"main"}) {
		t.Errorf("Quality.SourceSets = %v, want [main]", got)
	}
	if !cfg.StrictMode() || !cfg.ConsoleReportingEnabled() {
		t.Error("strict and console reporting should default to true")
	}
	if !cfg.ToolEnabled("bugscan") {
		t.Error("tools should default to enabled")
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`sourceSets:
  main:
    patterns: ["./pkg/..."]
  integration:
    patterns: ["./it/..."]
    tests: true
quality:
  sourceSets: [main, integration]
  strict: false
  consoleReporting: false
  exclude: ["*_gen.go"]
  tools:
    lint: false
analyzers:
  errcheck: false
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := cfg.SourceSets["main"].Patterns; !reflect.DeepEqual(got, []string{"./pkg/..."}) {
		t.Errorf("main patterns = %v", got)
	}
	if !cfg.SourceSets["integration"].Tests {
		t.Error("integration should cover tests")
	}
	if got := cfg.Quality.SourceSets; !reflect.DeepEqual(got, []string{"main", "integration"}) {
		t.Errorf("Quality.SourceSets = %v", got)
	}
	if cfg.StrictMode() || cfg.ConsoleReportingEnabled() {
		t.Error("strict and consoleReporting should be false")
	}
	if cfg.ToolEnabled("lint") || !cfg.ToolEnabled("style") {
		t.Error("lint should be disabled, style enabled")
	}
	if cfg.IsEnabled("errcheck") {
		t.Error("errcheck should be disabled")
	}
	if err := cfg.Validate([]string{"bugscan", "style", "lint"}); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParseEmptySourceSetList(t *testing.T) {
	cfg, err := Parse([]byte("quality:\n  sourceSets: []\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(cfg.Quality.SourceSets) != 0 {
		t.Errorf("Quality.SourceSets = %v, want empty", cfg.Quality.SourceSets)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Quality.Tools = map[string]bool{"spotbugs": true}
	cfg.Quality.SourceSets = []string{"main", "integration"}

	err := cfg.Validate([]string{"bugscan", "style", "lint"})
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Validate() error = %v, want %v", err, ErrUnknownTool)
	}
	if !errors.Is(err, ErrUnknownSourceSet) {
		t.Errorf("Validate() error = %v, want %v", err, ErrUnknownSourceSet)
	}
}

func TestLoadFrom(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFileName)

	configContent := `analyzers:
  default: true
  exporteddoc: false
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Analyzers["default"] != true {
		t.Errorf("default = %v, want true", cfg.Analyzers["default"])
	}
	if cfg.Analyzers["exporteddoc"] != false {
		t.Errorf("exporteddoc = %v, want false", cfg.Analyzers["exporteddoc"])
	}
	if len(cfg.SourceSets) != 2 {
		t.Errorf("expected default source sets, got %v", cfg.SourceSetNames())
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "quality:\n  sourceSets: [test]\n"
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.Quality.SourceSets; !reflect.DeepEqual(got, []string{"test"}) {
		t.Errorf("Quality.SourceSets = %v, want [test]", got)
	}
}
