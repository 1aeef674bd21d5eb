package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

// methodRegistrar installs each class's own method signatures.
// Formal checks are independent of one another: a
// formal that fails a check is simply omitted from the installed
// signature, and the remaining formals are still checked in full.
type methodRegistrar struct{}

// NewMethodRegistrar creates the method registration pass.
func NewMethodRegistrar() Pass { return &methodRegistrar{} }

func (p *methodRegistrar) Name() string { return "method-registrar" }

func (p *methodRegistrar) Run(program *ast.Program, ctx *Context) error {
	for _, class := range program.Classes {
		ci, ok := ctx.ClassNodes[class]
		if !ok {
			continue
		}
		for _, method := range class.Methods {
			p.register(ctx, ci, method)
		}
	}
	return nil
}

func (p *methodRegistrar) register(ctx *Context, ci *types.ClassInfo, method *ast.Method) {
	name := method.Name.Value
	if _, exists := ci.OwnMethod(name); exists {
		ctx.Diags.Add(errors.NewMethodRedefined(method.Name.Pos(), string(ci.Name), name))
		return
	}

	seen := make(map[string]bool)
	var formals []types.Formal
	for _, f := range method.Formals {
		fname := f.Name.Value

		if fname == "self" {
			ctx.Diags.Add(errors.NewFormalIllegalName(f.Name.Pos(), name, string(ci.Name), fname))
			continue
		}
		ftype := types.Type(f.Type.Value)
		if ftype.IsSelf() {
			ctx.Diags.Add(errors.NewFormalIllegalType(f.Type.Pos(), name, string(ci.Name), fname, string(ftype)))
			continue
		}
		if seen[fname] {
			ctx.Diags.Add(errors.NewFormalRedefined(f.Name.Pos(), name, string(ci.Name), fname))
			continue
		}
		if _, ok := ctx.Classes.Lookup(ftype); !ok {
			ctx.Diags.Add(errors.NewFormalUndefinedType(f.Type.Pos(), name, string(ci.Name), fname, string(ftype)))
			continue
		}

		seen[fname] = true
		formals = append(formals, types.Formal{Name: fname, Type: ftype})
	}

	// A method with an undefined return type is not installed: dispatches
	// to it surface as undefined-method errors rather than checking
	// against a signature that never existed.
	returnType := types.Type(method.Type.Value)
	if !returnType.IsSelf() {
		if _, ok := ctx.Classes.Lookup(returnType); !ok {
			ctx.Diags.Add(errors.NewMethodUndefinedReturnType(method.Type.Pos(), name, string(ci.Name), string(returnType)))
			return
		}
	}

	ci.AddMethod(&types.MethodSignature{
		Name:          name,
		ReturnType:    returnType,
		Formals:       formals,
		DefiningClass: ci.Name,
		Pos:           method.Name.Pos(),
	})
}

// methodOverrideChecker enforces override consistency: an overriding
// method must match its
// nearest ancestor's arity, formal types (by name, not subtype), and
// return type exactly. Only the nearest ancestor's signature governs;
// more distant ancestors were already checked when the intermediate class
// was itself compiled.
type methodOverrideChecker struct{}

// NewMethodOverrideChecker creates the override-consistency pass.
func NewMethodOverrideChecker() Pass { return &methodOverrideChecker{} }

func (p *methodOverrideChecker) Name() string { return "method-override-checker" }

func (p *methodOverrideChecker) Run(program *ast.Program, ctx *Context) error {
	for _, class := range program.Classes {
		ci, ok := ctx.ClassNodes[class]
		if !ok || ci.Parent == nil {
			continue
		}
		for _, name := range ci.MethodOrder {
			own := ci.Methods[name]
			parentSig, found := ci.Parent.FindMethod(name)
			if !found {
				continue
			}
			p.checkOverride(ctx, ci, own, parentSig)
		}
	}
	return nil
}

func (p *methodOverrideChecker) checkOverride(ctx *Context, ci *types.ClassInfo, own, parent *types.MethodSignature) {
	if len(own.Formals) != len(parent.Formals) {
		ctx.Diags.Add(errors.NewOverrideFormalCountMismatch(own.Pos, string(ci.Name), own.Name))
		return
	}
	for i, pf := range parent.Formals {
		of := own.Formals[i]
		if of.Type != pf.Type {
			ctx.Diags.Add(errors.NewOverrideFormalTypeChanged(own.Pos, string(ci.Name), own.Name, of.Name, string(pf.Type), string(of.Type)))
		}
	}
	if own.ReturnType != parent.ReturnType {
		ctx.Diags.Add(errors.NewOverrideReturnTypeChanged(own.Pos, string(ci.Name), own.Name, string(parent.ReturnType), string(own.ReturnType)))
	}
}
