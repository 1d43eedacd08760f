package internalcheck

import (
	"go/ast"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/hsiuhsiu/oqs-safe-go"

// checkedPatterns covers every package that handles key material.
var checkedPatterns = []string{
	modulePath + "/pkg/oqs/...",
	modulePath + "/internal/backend/...",
	modulePath + "/internal/zeroize",
}

const typedSyntax = packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName

func loadPackages(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()
	pkgs, err := packages.Load(&packages.Config{Mode: mode}, checkedPatterns...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	if len(pkgs) == 0 {
		t.Fatalf("no packages matched %v", checkedPatterns)
	}
	return pkgs
}

// inspect runs check on every node of the checked packages and fails the
// test with everything it reports.
func inspect(t *testing.T, policy string, check func(pkg *packages.Package, n ast.Node) []string) {
	t.Helper()
	var findings []string
	for _, pkg := range loadPackages(t, typedSyntax) {
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				findings = append(findings, check(pkg, n)...)
				return true
			})
		}
	}
	if len(findings) > 0 {
		t.Fatalf("%s policy violation:\n%s", policy, strings.Join(findings, "\n"))
	}
}

// callee resolves the package-level function or method a call invokes.
func callee(pkg *packages.Package, call *ast.CallExpr) types.Object {
	var id *ast.Ident
	switch fn := call.Fun.(type) {
	case *ast.SelectorExpr:
		id = fn.Sel
	case *ast.Ident:
		id = fn
	default:
		return nil
	}
	obj := pkg.TypesInfo.Uses[id]
	if obj == nil || obj.Pkg() == nil {
		return nil
	}
	return obj
}

// isBytes reports whether typ holds raw bytes: a byte slice or array, a
// pointer to one, or a named type over one.
func isBytes(typ types.Type) bool {
	switch tt := typ.(type) {
	case nil:
		return false
	case *types.Slice:
		return isByte(tt.Elem())
	case *types.Array:
		return isByte(tt.Elem())
	case *types.Pointer:
		return isBytes(tt.Elem())
	case *types.Named:
		return isBytes(tt.Underlying())
	default:
		return false
	}
}

func isByte(t types.Type) bool {
	basic, ok := t.(*types.Basic)
	return ok && basic.Kind() == types.Byte
}
