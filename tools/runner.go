package tools

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"github.com/spechtlabs/golint-quality/internal/nolint"
)

// ErrLoad is returned when the packages of a source set fail to load.
var ErrLoad = errors.New("load packages")

// Request describes one analysis run.
type Request struct {
	// Tool is used to honour tool-wide nolint directives.
	Tool      string
	Dir       string
	Patterns  []string
	Tests     bool
	Analyzers []*analysis.Analyzer
}

// Diagnostic is one reported violation.
type Diagnostic struct {
	Analyzer string
	Position token.Position
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: [%s] %s", d.Position, d.Analyzer, d.Message)
}

// Runner runs analyzers over packages.
type Runner interface {
	Run(ctx context.Context, req Request) ([]Diagnostic, error)
}

// PackagesRunner loads packages with go/packages and analyzes them with the
// x/tools checker. For test source sets only the test variants are analyzed
// and only diagnostics in _test.go files are kept.
type PackagesRunner struct{}

// Run implements Runner.
func (PackagesRunner) Run(ctx context.Context, req Request) ([]Diagnostic, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     req.Dir,
		Mode:    packages.LoadAllSyntax,
		Tests:   req.Tests,
	}
	pkgs, err := packages.Load(cfg, req.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	if err := loadErrors(pkgs); err != nil {
		return nil, err
	}

	pkgs = selectPackages(pkgs, req.Tests)
	if len(pkgs) == 0 || len(req.Analyzers) == 0 {
		return nil, nil
	}

	graph, err := checker.Analyze(req.Analyzers, pkgs, &checker.Options{})
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	indexes := make(map[*packages.Package]nolint.Index)
	var (
		diags []Diagnostic
		errs  []error
	)
	for _, act := range graph.Roots {
		if act.Err != nil {
			errs = append(errs, fmt.Errorf("%s on %s: %w", act.Analyzer.Name, act.Package.PkgPath, act.Err))
			continue
		}

		idx, ok := indexes[act.Package]
		if !ok {
			idx = nolint.NewIndex(act.Package.Fset, act.Package.Syntax)
			indexes[act.Package] = idx
		}

		for _, d := range act.Diagnostics {
			pos := act.Package.Fset.Position(d.Pos)
			if req.Tests && !strings.HasSuffix(pos.Filename, "_test.go") {
				continue
			}
			if idx.Suppressed(pos, act.Analyzer.Name, req.Tool) {
				continue
			}
			diags = append(diags, Diagnostic{
				Analyzer: act.Analyzer.Name,
				Position: pos,
				Message:  d.Message,
			})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	SortDiagnostics(diags)
	return dedupe(diags), nil
}

func loadErrors(pkgs []*packages.Package) error {
	var errs []error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e)
		}
	})
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrLoad, errors.Join(errs...))
}

// selectPackages keeps the test variants ("pkg [pkg.test]") of a test run
// and drops the generated test mains.
func selectPackages(pkgs []*packages.Package, tests bool) []*packages.Package {
	if !tests {
		return pkgs
	}
	var out []*packages.Package
	for _, p := range pkgs {
		if strings.Contains(p.ID, " [") {
			out = append(out, p)
		}
	}
	return out
}

// SortDiagnostics orders diagnostics by file, line, column and analyzer.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i].Position, diags[j].Position
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return diags[i].Analyzer < diags[j].Analyzer
	})
}

// dedupe drops identical neighbours of a sorted slice. A package and its
// test variant report the same finding twice.
func dedupe(diags []Diagnostic) []Diagnostic {
	out := diags[:0]
	for i, d := range diags {
		if i > 0 && d == diags[i-1] {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Exclude drops diagnostics whose file matches one of globs, tried against
// the path relative to dir and against the base name.
func Exclude(diags []Diagnostic, dir string, globs []string) []Diagnostic {
	if len(globs) == 0 {
		return diags
	}

	var out []Diagnostic
	for _, d := range diags {
		if !excluded(d.Position.Filename, dir, globs) {
			out = append(out, d)
		}
	}
	return out
}

func excluded(file, dir string, globs []string) bool {
	rel := file
	if dir != "" {
		if r, err := filepath.Rel(dir, file); err == nil {
			rel = r
		}
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(file)

	for _, g := range globs {
		if ok, _ := filepath.Match(g, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(g, base); ok {
			return true
		}
	}
	return false
}
