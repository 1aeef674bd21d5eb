package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/types"
)

// Checker type-checks expressions against a fixed class context and a
// mutable object-environment stack. One Checker is created per
// method body or attribute initializer; its enclosing class is what
// SELF_TYPE resolves against for the duration of that traversal.
type Checker struct {
	ctx       *Context
	enclosing types.Type
	env       *ObjectEnv
}

// NewChecker creates a checker for expressions appearing in enclosing,
// seeded with the given object environment (typically a clone of that
// class's frozen base environment, or a copy of a method's environment
// with formals already pushed).
func NewChecker(ctx *Context, enclosing types.Type, env *ObjectEnv) *Checker {
	return &Checker{ctx: ctx, enclosing: enclosing, env: env}
}

// Check type-checks e and returns its inferred type, recording any
// diagnostics in ctx.Diags. A return of types.Unknown marks a
// sub-expression whose own check already failed in a way that should
// suppress cascading diagnostics in the caller.
func (c *Checker) Check(e ast.Expression) types.Type {
	switch n := e.(type) {
	case *ast.IntegerLiteral:
		return types.IntClass
	case *ast.StringLiteral:
		return types.StringClass
	case *ast.BooleanLiteral:
		return types.BoolClass
	case *ast.GroupExpr:
		return c.Check(n.Expr)
	case *ast.Identifier:
		return c.checkIdentifier(n)
	case *ast.Assign:
		return c.checkAssign(n)
	case *ast.New:
		return c.checkNew(n)
	case *ast.IsVoid:
		c.Check(n.Expr)
		return types.BoolClass
	case *ast.UnaryExpr:
		return c.checkUnary(n)
	case *ast.BinaryExpr:
		return c.checkBinary(n)
	case *ast.If:
		return c.checkIf(n)
	case *ast.While:
		return c.checkWhile(n)
	case *ast.Block:
		return c.checkBlock(n)
	case *ast.Let:
		return c.checkLet(n)
	case *ast.Case:
		return c.checkCase(n)
	case *ast.Dispatch:
		return c.checkDispatch(n)
	case *ast.StaticDispatch:
		return c.checkStaticDispatch(n)
	default:
		return types.Unknown
	}
}

func (c *Checker) isSubtype(lhs, rhs types.Type) bool {
	return c.ctx.Classes.IsSubtype(lhs, rhs, c.enclosing)
}

func (c *Checker) lub(a, b types.Type) types.Type {
	return c.ctx.Classes.LeastUpperBound(a, b, c.enclosing)
}

func (c *Checker) resolveSelf(t types.Type) types.Type {
	return types.ResolveSelf(t, c.enclosing)
}
