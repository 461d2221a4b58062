// Package golintquality provides golangci-lint v2 module plugin integration.
//
// The plugin exposes the analyzers of the golint-quality tools to
// golangci-lint. To use it, build a custom binary:
//
//  1. Create a .custom-gcl.yml file referencing this module
//  2. Run: golangci-lint custom
//  3. Use the generated ./custom-gcl binary
//
// Settings select tools and drop individual analyzers:
//
//	linters:
//	  settings:
//	    custom:
//	      golint-quality:
//	        type: module
//	        settings:
//	          tools: [bugscan, style]
//	          disabled-analyzers: [exporteddoc]
//
// See https://golangci-lint.run/plugins/module-plugins/ for more details.
package golintquality

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/golint-quality/analyzers"
)

//nolint:gochecknoinits // Required for golangci-lint module plugin registration
func init() {
	register.Plugin("golint-quality", New)
}

// Settings configures the plugin.
type Settings struct {
	// Tools lists the tools whose analyzers run. Empty means all.
	Tools []string `json:"tools"`
	// DisabledAnalyzers is a list of analyzer names to disable.
	DisabledAnalyzers []string `json:"disabled-analyzers"`
}

type qualityPlugin struct {
	settings Settings
}

// New creates a new golint-quality plugin instance.
func New(conf any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](conf)
	if err != nil {
		return &qualityPlugin{}, nil // Undecodable settings, use defaults
	}
	return &qualityPlugin{settings: s}, nil
}

// BuildAnalyzers returns the analyzers of the selected tools.
func (p *qualityPlugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	all, err := p.selected()
	if err != nil {
		return nil, err
	}
	if len(p.settings.DisabledAnalyzers) == 0 {
		return all, nil
	}

	disabled := make(map[string]bool)
	for _, name := range p.settings.DisabledAnalyzers {
		disabled[name] = true
	}

	var result []*analysis.Analyzer
	for _, a := range all {
		if !disabled[a.Name] {
			result = append(result, a)
		}
	}
	return result, nil
}

func (p *qualityPlugin) selected() ([]*analysis.Analyzer, error) {
	if len(p.settings.Tools) == 0 {
		return analyzers.All(), nil
	}

	seen := make(map[*analysis.Analyzer]bool)
	var out []*analysis.Analyzer
	for _, tool := range p.settings.Tools {
		group, err := analyzers.ForTool(tool)
		if err != nil {
			return nil, err
		}
		for _, a := range group {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out, nil
}

// GetLoadMode returns the load mode required by the analyzers.
// staticcheck and errcheck need type information.
func (p *qualityPlugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
