// Package exporteddoc ensures exported symbols carry a proper doc comment.
//
// A proper doc comment starts with the symbol name and its first sentence
// ends with a period, which is what godoc renders as the summary line.
package exporteddoc

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/spechtlabs/golint-quality/internal/nolint"
)

const Doc = `ensure exported symbols have well-formed documentation comments

Exported functions, types, methods on exported types and package-level
variables and constants need a doc comment. The comment starts with the
symbol name and its first sentence ends with a period.

Good:
    // Partner is an account holder.
    type Partner struct { ... }

Bad:
    type Partner struct { ... }        // no documentation
    // holds partner data              // does not start with the name
    // Partner holds partner data      // first sentence has no period

Grouped declarations inherit the group's comment. Test files are skipped.`

var Analyzer = &analysis.Analyzer{
	Name:     "exporteddoc",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	reporter := nolint.NewReporter(pass, "style")
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.GenDecl)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		if strings.HasSuffix(pass.Fset.Position(n.Pos()).Filename, "_test.go") {
			return
		}

		switch node := n.(type) {
		case *ast.FuncDecl:
			checkFunc(reporter, node)
		case *ast.GenDecl:
			checkGenDecl(reporter, node)
		}
	})

	return nil, nil
}

func checkFunc(reporter *nolint.Reporter, fn *ast.FuncDecl) {
	if !ast.IsExported(fn.Name.Name) {
		return
	}

	kind := "function"
	if fn.Recv != nil {
		recv := receiverName(fn.Recv)
		if recv == "" || !ast.IsExported(recv) {
			return
		}
		kind = "method"
	}

	checkDoc(reporter, fn, fn.Doc, kind, fn.Name.Name)
}

func checkGenDecl(reporter *nolint.Reporter, decl *ast.GenDecl) {
	kind := "variable"
	switch decl.Tok {
	case token.CONST:
		kind = "constant"
	case token.TYPE:
		kind = "type"
	}

	for _, spec := range decl.Specs {
		var (
			name *ast.Ident
			doc  *ast.CommentGroup
		)
		switch s := spec.(type) {
		case *ast.TypeSpec:
			if ast.IsExported(s.Name.Name) {
				name = s.Name
			}
			doc = s.Doc
		case *ast.ValueSpec:
			name = firstExported(s.Names)
			doc = s.Doc
		}
		if name == nil {
			continue
		}

		if doc == nil {
			// A comment on a parenthesized group documents every member.
			if decl.Lparen.IsValid() && decl.Doc != nil {
				continue
			}
			doc = decl.Doc
		}
		checkDoc(reporter, name, doc, kind, name.Name)
	}
}

func firstExported(names []*ast.Ident) *ast.Ident {
	for _, n := range names {
		if ast.IsExported(n.Name) {
			return n
		}
	}
	return nil
}

func checkDoc(reporter *nolint.Reporter, node ast.Node, doc *ast.CommentGroup, kind, name string) {
	if doc == nil || len(doc.List) == 0 {
		reporter.Reportf(node.Pos(),
			"exported %s %s should have a documentation comment", kind, name)
		return
	}

	text := doc.Text()
	if !startsWithName(text, name) {
		reporter.Reportf(doc.Pos(),
			"documentation for %s should start with %q", name, name)
		return
	}

	if !strings.HasSuffix(firstSentence(text), ".") {
		reporter.Reportf(doc.Pos(),
			"first sentence of the documentation for %s should end with a period", name)
	}
}

func startsWithName(text, name string) bool {
	// Leading articles are accepted: "A Partner is ...".
	for _, article := range []string{"", "A ", "An ", "The "} {
		rest, ok := strings.CutPrefix(text, article+name)
		if ok && (rest == "" || !isIdentChar(rest[0])) {
			return true
		}
	}
	return false
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// firstSentence returns the first paragraph up to and including the first
// period followed by a space, or the whole paragraph.
func firstSentence(text string) string {
	para, _, _ := strings.Cut(text, "\n\n")
	para = strings.Join(strings.Fields(para), " ")
	if i := strings.Index(para, ". "); i >= 0 {
		return para[:i+1]
	}
	return para
}

func receiverName(recv *ast.FieldList) string {
	if len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	for {
		switch t := expr.(type) {
		case *ast.StarExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}
