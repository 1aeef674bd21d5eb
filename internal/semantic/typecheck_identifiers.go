package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

func (c *Checker) checkIdentifier(n *ast.Identifier) types.Type {
	typ, ok := c.env.Lookup(n.Value)
	if !ok {
		c.ctx.Diags.Add(errors.NewUndefinedIdentifier(n.Pos(), n.Value))
		return types.Unknown
	}
	return typ
}

func (c *Checker) checkAssign(n *ast.Assign) types.Type {
	if n.Name.Value == "self" {
		c.ctx.Diags.Add(errors.NewCannotAssignToSelf(n.Name.Pos()))
		return types.Unknown
	}

	// An assign target that resolves to nothing is left silent and the RHS
	// is never checked: every in-scope name was registered by the
	// environment builder or a let/case/formal push, so an unresolvable
	// target never gets its own diagnostic here.
	declared, ok := c.env.Lookup(n.Name.Value)
	if !ok {
		return types.Unknown
	}

	exprType := c.Check(n.Value)
	if exprType.IsUnknown() {
		return declared
	}
	if !c.isSubtype(exprType, declared) {
		c.ctx.Diags.Add(errors.NewAssignIncompatible(n.Value.Pos(), string(exprType), string(declared), n.Name.Value))
	}
	return exprType
}

func (c *Checker) checkNew(n *ast.New) types.Type {
	t := types.Type(n.Type.Value)
	if t.IsSelf() {
		return t
	}
	if _, ok := c.ctx.Classes.Lookup(t); !ok {
		c.ctx.Diags.Add(errors.NewNewUndefinedType(n.Type.Pos(), string(t)))
		return types.Unknown
	}
	return t
}
