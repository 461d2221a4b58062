// Package nolint implements suppression of diagnostics through comments.
//
// Supported comment formats:
//
//	//nolint:golint-quality        - suppress everything on this line
//	//nolint:all                   - same
//	//nolint:style                 - suppress every analyzer of a tool
//	//nolint:errcheck,SA4006       - suppress specific analyzers
//	// nolint:noprint              - space after // is allowed
//
// A directive applies to its own line and to the line right after it.
package nolint

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// Names that suppress every analyzer.
const (
	NameAll    = "all"
	NameModule = "golint-quality"
)

// nolintRegex matches nolint directives in comments.
var nolintRegex = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9_,-]+)`)

// Directive is a parsed nolint comment.
type Directive struct {
	Line  int
	Names []string
}

// matches reports whether the directive suppresses any of names.
func (d *Directive) matches(names []string) bool {
	for _, n := range d.Names {
		if n == NameAll || n == NameModule {
			return true
		}
		for _, want := range names {
			if n == want {
				return true
			}
		}
	}
	return false
}

// FileDirectives holds the directives of one file keyed by line.
type FileDirectives struct {
	byLine map[int]*Directive
}

// ParseFile extracts all nolint directives from a file's comments.
func ParseFile(file *ast.File, fset *token.FileSet) *FileDirectives {
	fd := &FileDirectives{byLine: make(map[int]*Directive)}

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if d := parseComment(c.Text); d != nil {
				d.Line = fset.Position(c.Pos()).Line
				fd.byLine[d.Line] = d
			}
		}
	}
	return fd
}

func parseComment(text string) *Directive {
	matches := nolintRegex.FindStringSubmatch(text)
	if matches == nil {
		return nil
	}

	var names []string
	for _, name := range strings.Split(matches[1], ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return &Directive{Names: names}
}

// IsSuppressed reports whether line is covered by a directive naming any of
// names.
func (fd *FileDirectives) IsSuppressed(line int, names ...string) bool {
	if fd == nil {
		return false
	}
	for _, l := range []int{line, line - 1} {
		if d := fd.byLine[l]; d != nil && d.matches(names) {
			return true
		}
	}
	return false
}

// Index holds directives for a set of files keyed by file name.
type Index map[string]*FileDirectives

// NewIndex parses the directives of files.
func NewIndex(fset *token.FileSet, files []*ast.File) Index {
	idx := make(Index, len(files))
	for _, f := range files {
		idx[fset.Position(f.Pos()).Filename] = ParseFile(f, fset)
	}
	return idx
}

// Suppressed reports whether a diagnostic at pos is silenced for any of names.
func (idx Index) Suppressed(pos token.Position, names ...string) bool {
	return idx[pos.Filename].IsSuppressed(pos.Line, names...)
}

// Reporter wraps analysis.Pass to provide nolint-aware reporting.
type Reporter struct {
	Pass  *analysis.Pass
	Index Index
	// Names are matched against directives: the analyzer plus its tool.
	Names []string
}

// NewReporter creates a reporter for pass. groups are extra names that
// silence the analyzer, usually the tool it belongs to.
func NewReporter(pass *analysis.Pass, groups ...string) *Reporter {
	return &Reporter{
		Pass:  pass,
		Index: NewIndex(pass.Fset, pass.Files),
		Names: append([]string{pass.Analyzer.Name}, groups...),
	}
}

// Reportf reports a diagnostic unless a nolint directive covers it.
func (r *Reporter) Reportf(pos token.Pos, format string, args ...any) {
	if r.Index.Suppressed(r.Pass.Fset.Position(pos), r.Names...) {
		return
	}
	r.Pass.Reportf(pos, format, args...)
}

// Report reports d unless a nolint directive covers it.
func (r *Reporter) Report(d analysis.Diagnostic) {
	if r.Index.Suppressed(r.Pass.Fset.Position(d.Pos), r.Names...) {
		return
	}
	r.Pass.Report(d)
}
