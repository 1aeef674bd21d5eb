package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/token"
	"github.com/coolc/coolc/internal/types"
)

func (c *Checker) checkDispatch(n *ast.Dispatch) types.Type {
	sig, found := c.ctx.Methods.Lookup(c.enclosing, n.Method.Value)
	if !found {
		c.ctx.Diags.Add(errors.NewUndefinedMethod(n.Method.Pos(), n.Method.Value, string(c.enclosing)))
		return types.Unknown
	}
	c.checkCall(n.Method.Pos(), n.Method.Value, string(c.enclosing), sig, n.Args)
	// SELF_TYPE is kept in the result so dispatch on self yields the
	// enclosing class once the caller resolves it.
	return sig.ReturnType
}

func (c *Checker) checkStaticDispatch(n *ast.StaticDispatch) types.Type {
	receiverType := c.Check(n.Receiver)
	if receiverType.IsUnknown() {
		return types.Unknown
	}

	staticType := receiverType
	if n.StaticType != nil {
		staticType = types.Type(n.StaticType.Value)
		if staticType.IsSelf() {
			c.ctx.Diags.Add(errors.NewStaticDispatchSelfType(n.StaticType.Pos()))
			return types.Unknown
		}
		if _, ok := c.ctx.Classes.Lookup(staticType); !ok {
			c.ctx.Diags.Add(errors.NewStaticDispatchUndefinedType(n.StaticType.Pos(), string(staticType)))
			return types.Unknown
		}
		if !c.isSubtype(receiverType, staticType) {
			c.ctx.Diags.Add(errors.NewStaticDispatchNotSuperclass(n.StaticType.Pos(), string(staticType), string(receiverType)))
			return types.Unknown
		}
	}

	sig, found := c.ctx.Methods.Lookup(c.resolveSelf(staticType), n.Method.Value)
	if !found {
		c.ctx.Diags.Add(errors.NewUndefinedMethod(n.Method.Pos(), n.Method.Value, string(staticType)))
		return types.Unknown
	}
	c.checkCall(n.Method.Pos(), n.Method.Value, string(staticType), sig, n.Args)
	return sig.ReturnType
}

// checkCall arity- and type-checks a dispatch's arguments against sig's
// formals. pos anchors the "wrong number of arguments" diagnostic, since
// that error describes the call as a whole rather than any one argument.
func (c *Checker) checkCall(pos token.Position, method, class string, sig *types.MethodSignature, args []ast.Expression) {
	if len(args) != len(sig.Formals) {
		c.ctx.Diags.Add(errors.NewWrongNumberOfArguments(pos, method, class))
		for _, a := range args {
			c.Check(a)
		}
		return
	}
	for i, arg := range args {
		argType := c.Check(arg)
		formal := sig.Formals[i]
		if argType.IsUnknown() {
			continue
		}
		if !c.isSubtype(argType, formal.Type) {
			c.ctx.Diags.Add(errors.NewArgumentIncompatible(arg.Pos(), method, class, string(argType), formal.Name, string(formal.Type)))
		}
	}
}
