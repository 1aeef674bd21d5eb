package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

func (c *Checker) checkUnary(n *ast.UnaryExpr) types.Type {
	t := c.Check(n.Expr)
	switch n.Op {
	case ast.OpNot:
		if !t.IsUnknown() && t != types.BoolClass {
			c.ctx.Diags.Add(errors.NewOperandNotBool(n.Expr.Pos(), "not", string(t)))
		}
		return types.BoolClass
	case ast.OpNeg:
		if !t.IsUnknown() && t != types.IntClass {
			c.ctx.Diags.Add(errors.NewOperandNotInt(n.Expr.Pos(), "~", string(t)))
		}
		return types.IntClass
	default:
		return types.Unknown
	}
}

func (c *Checker) checkBinary(n *ast.BinaryExpr) types.Type {
	left := c.Check(n.Left)
	right := c.Check(n.Right)

	switch n.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		c.checkIntOperands(n, left, right)
		return types.IntClass

	case ast.OpLt, ast.OpLe:
		// <= shares <'s typing rule: both operands Int, result Bool.
		c.checkIntOperands(n, left, right)
		return types.BoolClass

	case ast.OpEq:
		// Equality admits any pairing except a primitive against anything
		// other than the same primitive.
		if !left.IsUnknown() && !right.IsUnknown() &&
			left != right && (isPrimitive(left) || isPrimitive(right)) {
			c.ctx.Diags.Add(errors.NewCannotCompare(n.Token.Pos, string(left), string(right)))
		}
		return types.BoolClass

	default:
		return types.Unknown
	}
}

// checkIntOperands reports the first non-Int operand of n, anchored at that
// operand. A side whose own check already failed suppresses the operand
// checks entirely; the operator's result type is unaffected either way.
func (c *Checker) checkIntOperands(n *ast.BinaryExpr, left, right types.Type) {
	if left.IsUnknown() || right.IsUnknown() {
		return
	}
	if left != types.IntClass {
		c.ctx.Diags.Add(errors.NewOperandNotInt(n.Left.Pos(), n.Op.String(), string(left)))
		return
	}
	if right != types.IntClass {
		c.ctx.Diags.Add(errors.NewOperandNotInt(n.Right.Pos(), n.Op.String(), string(right)))
	}
}

// isPrimitive reports whether t is one of the types that force both sides
// of an equality to match exactly: Int, String, or Bool.
func isPrimitive(t types.Type) bool {
	return t == types.IntClass || t == types.StringClass || t == types.BoolClass
}
