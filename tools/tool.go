// Package tools defines the verification tools golint-quality binds and the
// task factories that create their per-source-set tasks.
package tools

import (
	"golang.org/x/tools/go/analysis"

	"github.com/spechtlabs/golint-quality/analyzers"
	"github.com/spechtlabs/golint-quality/binding"
)

// Tool is one static-analysis tool.
type Tool struct {
	// Name is the tool name and the verb of its task names.
	Name        string
	Description string
	// Base is the capability marking the tool as installed on a project.
	Base      binding.Capability
	Analyzers func() []*analysis.Analyzer
}

var (
	BugScan = Tool{
		Name:        analyzers.BugScan,
		Description: "bug pattern scan",
		Base:        "bugscan-base",
		Analyzers:   analyzers.BugScanAnalyzers,
	}

	Style = Tool{
		Name:        analyzers.Style,
		Description: "style check",
		Base:        "style-base",
		Analyzers:   analyzers.StyleAnalyzers,
	}

	Lint = Tool{
		Name:        analyzers.Lint,
		Description: "lint",
		Base:        "lint-base",
		Analyzers:   analyzers.LintAnalyzers,
	}
)

// All returns every tool in binding order.
func All() []Tool {
	return []Tool{BugScan, Style, Lint}
}

// Names returns the tool names in binding order.
func Names() []string {
	var names []string
	for _, t := range All() {
		names = append(names, t.Name)
	}
	return names
}

// Lookup returns the tool called name.
func Lookup(name string) (Tool, bool) {
	for _, t := range All() {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Binding returns the description binding.Bind needs, with a task factory
// configured by opts.
func (t Tool) Binding(opts Options) binding.Tool {
	return binding.Tool{
		Name:  t.Name,
		Base:  t.Base,
		Tasks: NewTaskFactory(t, opts),
	}
}
