package semantic

import (
	"testing"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/token"
	"github.com/coolc/coolc/internal/types"
)

// mustParseExpr parses src as a standalone expression by embedding it in a
// throwaway method body, then returns the parsed expression. Useful for
// type-checker unit tests that don't need a full class hierarchy.
func mustParseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	l := lexer.New("class Z { f() : Object { " + src + " }; };")
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors: %v", p.Errors())
	}
	return program.Classes[0].Methods[0].Body
}

// newTestClassTable returns a class registry seeded with only the
// built-ins plus a bare class "A" inheriting Object, for checker unit
// tests that need a minimal but real registry to resolve types against.
func newTestClassTable(t *testing.T) *types.ClassTable {
	t.Helper()
	ctx := NewContext(nil)
	if err := NewBuiltinInstaller().Run(&ast.Program{}, ctx); err != nil {
		t.Fatalf("builtin installer failed: %v", err)
	}
	object, _ := ctx.Classes.Lookup(types.ObjectClass)
	a := types.NewClassInfo("A", token.Position{})
	a.Parent = object
	ctx.Classes.Register(a)
	return ctx.Classes
}
