package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

// bodyChecker type-checks every attribute initializer and method body
// against its declared type. It runs last,
// after the registry and environments are frozen.
type bodyChecker struct{}

// NewBodyChecker creates the attribute/method body checking pass.
func NewBodyChecker() Pass { return &bodyChecker{} }

func (p *bodyChecker) Name() string { return "body-checker" }

func (p *bodyChecker) Run(program *ast.Program, ctx *Context) error {
	for _, class := range program.Classes {
		ci, ok := ctx.ClassNodes[class]
		if !ok {
			continue
		}
		for _, attr := range class.Attributes {
			if attr.Value != nil {
				p.checkAttribute(ctx, ci, attr)
			}
		}
		for _, method := range class.Methods {
			p.checkMethod(ctx, ci, method)
		}
	}
	return nil
}

// checkAttribute checks an initializer against its declared attribute
// type using the plain (non-SELF_TYPE-resolving) ancestor check. Method
// bodies use the SELF_TYPE-aware check instead; the asymmetry is
// deliberate.
func (p *bodyChecker) checkAttribute(ctx *Context, ci *types.ClassInfo, attr *ast.Attribute) {
	decl, ok := ci.OwnAttribute(attr.Name.Value)
	if !ok {
		return
	}

	env := NewObjectEnv(ctx.ObjectEnvs[ci.Name])
	checker := NewChecker(ctx, ci.Name, env)
	exprType := checker.Check(attr.Value)

	if exprType.IsUnknown() || decl.Type.IsUnknown() {
		return
	}
	if !ctx.Classes.IsSubtypePlain(exprType, decl.Type) {
		ctx.Diags.Add(errors.NewAttributeInitTypeIncompatible(attr.Value.Pos(), string(exprType), attr.Name.Value, string(decl.Type)))
	}
}

// checkMethod pushes the method's formals onto the class's object
// environment, checks the body, and pops them back off. The return type
// comparison is SELF_TYPE-aware.
func (p *bodyChecker) checkMethod(ctx *Context, ci *types.ClassInfo, method *ast.Method) {
	sig, ok := ci.OwnMethod(method.Name.Value)
	if !ok {
		return
	}

	env := NewObjectEnv(ctx.ObjectEnvs[ci.Name])
	for _, f := range sig.Formals {
		env.Push(f.Name, f.Type)
	}
	checker := NewChecker(ctx, ci.Name, env)
	bodyType := checker.Check(method.Body)
	env.PopN(len(sig.Formals))

	if bodyType.IsUnknown() || sig.ReturnType.IsUnknown() {
		return
	}
	if !ctx.Classes.IsSubtype(bodyType, sig.ReturnType, ci.Name) {
		ctx.Diags.Add(errors.NewMethodBodyIncompatible(method.Body.Pos(), string(bodyType), method.Name.Value, string(sig.ReturnType)))
	}
}
