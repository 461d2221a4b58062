// Package noprint flags console printing from library code.
//
// Libraries that print straight to stdout cannot be silenced or redirected
// by their callers. Output belongs to main packages or to an injected
// io.Writer or logger.
package noprint

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/spechtlabs/golint-quality/internal/nolint"
)

const Doc = `flag printing to stdout from library code

This analyzer reports, outside package main and test files:
1. fmt.Print, fmt.Printf and fmt.Println
2. the print and println builtins

Write to an io.Writer supplied by the caller, or log through the
logger the caller configured.

Good:
    fmt.Fprintf(w, "processed %d items\n", n)

Bad:
    fmt.Printf("processed %d items\n", n)
    println("debug")`

var Analyzer = &analysis.Analyzer{
	Name:     "noprint",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var fmtPrinters = map[string]bool{
	"Print":   true,
	"Printf":  true,
	"Println": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil
	}

	reporter := nolint.NewReporter(pass, "lint")
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if strings.HasSuffix(pass.Fset.Position(call.Pos()).Filename, "_test.go") {
			return
		}

		switch obj := typeutil.Callee(pass.TypesInfo, call).(type) {
		case *types.Func:
			if obj.Pkg() != nil && obj.Pkg().Path() == "fmt" && fmtPrinters[obj.Name()] {
				reporter.Reportf(call.Pos(),
					"fmt.%s writes to stdout; accept an io.Writer or use a logger", obj.Name())
			}
		case *types.Builtin:
			if obj.Name() == "print" || obj.Name() == "println" {
				reporter.Reportf(call.Pos(),
					"builtin %s writes to stderr and is meant for debugging only", obj.Name())
			}
		}
	})

	return nil, nil
}
