package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

func (c *Checker) checkIf(n *ast.If) types.Type {
	pred := c.Check(n.Pred)
	if !pred.IsUnknown() && pred != types.BoolClass {
		c.ctx.Diags.Add(errors.NewIfConditionNotBool(n.Pred.Pos(), string(pred)))
	}
	thenType := c.Check(n.Then)
	elseType := c.Check(n.Else)
	return c.lub(thenType, elseType)
}

func (c *Checker) checkWhile(n *ast.While) types.Type {
	pred := c.Check(n.Pred)
	if !pred.IsUnknown() && pred != types.BoolClass {
		c.ctx.Diags.Add(errors.NewWhileConditionNotBool(n.Pred.Pos(), string(pred)))
	}
	c.Check(n.Body)
	return types.ObjectClass
}

func (c *Checker) checkBlock(n *ast.Block) types.Type {
	var last types.Type = types.ObjectClass
	for _, e := range n.Exprs {
		last = c.Check(e)
	}
	return last
}
