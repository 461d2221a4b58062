// Package analyzers provides the registry of analyzers run by each
// golint-quality tool.
//
// The bugscan tool looks for likely bugs, style for naming and documentation
// conventions, lint for simplifications and wasteful code.
package analyzers

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/ineffassign/pkg/ineffassign"
	"github.com/kisielk/errcheck/errcheck"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/spechtlabs/golint-quality/exporteddoc"
	"github.com/spechtlabs/golint-quality/noprint"
)

// Tool names.
const (
	BugScan = "bugscan"
	Style   = "style"
	Lint    = "lint"
)

// ErrUnknownTool is returned for a tool name outside Tools().
var ErrUnknownTool = errors.New("unknown tool")

// Tools returns the tool names in the order their tasks are bound.
func Tools() []string {
	return []string{BugScan, Style, Lint}
}

// ForTool returns the analyzers of the named tool.
func ForTool(name string) ([]*analysis.Analyzer, error) {
	switch name {
	case BugScan:
		return BugScanAnalyzers(), nil
	case Style:
		return StyleAnalyzers(), nil
	case Lint:
		return LintAnalyzers(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}

// BugScanAnalyzers returns the vet passes, staticcheck SA checks and errcheck.
func BugScanAnalyzers() []*analysis.Analyzer {
	all := []*analysis.Analyzer{
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
		shift.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
		errcheck.Analyzer,
	}
	return append(all, unwrap(staticcheck.Analyzers)...)
}

// StyleAnalyzers returns the stylecheck ST checks and exporteddoc.
func StyleAnalyzers() []*analysis.Analyzer {
	return append(unwrap(stylecheck.Analyzers), exporteddoc.Analyzer)
}

// LintAnalyzers returns the simple S checks, ineffassign and noprint.
func LintAnalyzers() []*analysis.Analyzer {
	return append(unwrap(simple.Analyzers), ineffassign.Analyzer, noprint.Analyzer)
}

// All returns the analyzers of every tool without duplicates.
func All() []*analysis.Analyzer {
	seen := make(map[*analysis.Analyzer]bool)
	var out []*analysis.Analyzer
	for _, name := range Tools() {
		group, _ := ForTool(name)
		for _, a := range group {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	return out
}

func unwrap(in []*lint.Analyzer) []*analysis.Analyzer {
	out := make([]*analysis.Analyzer, 0, len(in))
	for _, a := range in {
		out = append(out, a.Analyzer)
	}
	return out
}
