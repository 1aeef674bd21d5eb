package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

// attributeChecker runs the two attribute sub-passes.
// Pass A registers each class's own attributes (rejecting the name self,
// in-class duplicates, and undefined declared types); Pass B — run only
// after every class has completed Pass A — rejects an attribute that
// shadows one already declared on an ancestor. Running Pass B globally
// after Pass A for all classes means cross-class processing order never
// affects which redefinitions are caught.
type attributeChecker struct{}

// NewAttributeChecker creates the attribute checker pass.
func NewAttributeChecker() Pass { return &attributeChecker{} }

func (p *attributeChecker) Name() string { return "attribute-checker" }

func (p *attributeChecker) Run(program *ast.Program, ctx *Context) error {
	for _, class := range program.Classes {
		ci, ok := ctx.ClassNodes[class]
		if !ok {
			continue
		}
		for _, attr := range class.Attributes {
			p.checkOwn(ctx, ci, attr)
		}
	}

	for _, class := range program.Classes {
		ci, ok := ctx.ClassNodes[class]
		if !ok || ci.Parent == nil {
			continue
		}
		for _, attr := range ci.Attributes {
			if _, found := ci.Parent.FindAttribute(attr.Name); found {
				ctx.Diags.Add(errors.NewAttributeRedefinesInherited(attr.NamePos, string(ci.Name), attr.Name))
			}
		}
	}
	return nil
}

func (p *attributeChecker) checkOwn(ctx *Context, ci *types.ClassInfo, attr *ast.Attribute) {
	name := attr.Name.Value

	if name == "self" {
		ctx.Diags.Add(errors.NewAttributeIllegalName(attr.Name.Pos(), string(ci.Name), name))
		return
	}
	if _, exists := ci.OwnAttribute(name); exists {
		ctx.Diags.Add(errors.NewAttributeRedefined(attr.Name.Pos(), string(ci.Name), name))
		return
	}

	// An attribute with an undefined declared type is not registered at
	// all: it never enters the object environment, so later references to
	// it surface as undefined identifiers.
	declared := types.Type(attr.Type.Value)
	if !declared.IsSelf() {
		if _, ok := ctx.Classes.Lookup(declared); !ok {
			ctx.Diags.Add(errors.NewAttributeUndefinedType(attr.Type.Pos(), string(ci.Name), name, string(declared)))
			return
		}
	}

	ci.AddAttribute(&types.Attribute{
		Name:    name,
		Type:    declared,
		NamePos: attr.Name.Pos(),
		TypePos: attr.Type.Pos(),
	})
}
