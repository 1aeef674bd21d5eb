package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

func (c *Checker) checkLet(n *ast.Let) types.Type {
	// An init that fails a declaration check is skipped whole: no binding
	// is pushed and its initializer is never visited. The body then sees
	// the name as undefined, which is the intended cascade.
	pushed := 0
	for _, init := range n.Inits {
		name := init.Name.Value
		if name == "self" {
			c.ctx.Diags.Add(errors.NewLetIllegalName(init.Name.Pos(), name))
			continue
		}

		declared := types.Type(init.Type.Value)
		typeOK := declared.IsSelf()
		if !typeOK {
			_, typeOK = c.ctx.Classes.Lookup(declared)
		}
		if !typeOK {
			c.ctx.Diags.Add(errors.NewLetUndefinedType(init.Type.Pos(), name, string(declared)))
			continue
		}

		if init.Init != nil {
			exprType := c.Check(init.Init)
			if !exprType.IsUnknown() && !c.isSubtype(exprType, declared) {
				c.ctx.Diags.Add(errors.NewLetInitIncompatible(init.Init.Pos(), string(exprType), name, string(declared)))
			}
		}

		c.env.Push(name, declared)
		pushed++
	}

	bodyType := c.Check(n.Body)
	c.env.PopN(pushed)
	return bodyType
}

func (c *Checker) checkCase(n *ast.Case) types.Type {
	c.Check(n.Expr)

	var result types.Type
	first := true
	// A branch that fails a declaration check is skipped whole; its body
	// contributes nothing to the running lub.
	for _, branch := range n.Branches {
		name := branch.Name.Value
		if name == "self" {
			c.ctx.Diags.Add(errors.NewCaseIllegalName(branch.Name.Pos(), name))
			continue
		}

		branchType := types.Type(branch.Type.Value)
		if branchType.IsSelf() {
			c.ctx.Diags.Add(errors.NewCaseIllegalType(branch.Type.Pos(), name, string(branchType)))
			continue
		}
		if _, ok := c.ctx.Classes.Lookup(branchType); !ok {
			c.ctx.Diags.Add(errors.NewCaseUndefinedType(branch.Type.Pos(), name, string(branchType)))
			continue
		}

		c.env.Push(name, branchType)
		bodyType := c.Check(branch.Body)
		c.env.PopN(1)

		if first {
			result = bodyType
			first = false
		} else {
			result = c.lub(result, bodyType)
		}
	}
	if first {
		return types.Unknown
	}
	return result
}
