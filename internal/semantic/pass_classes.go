package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

// classRegistrar installs an empty class context for every user class in
// textual order, rejecting an illegal name or a redefinition
// of an already-registered name (including a built-in's).
type classRegistrar struct{}

// NewClassRegistrar creates the class registrar pass.
func NewClassRegistrar() Pass { return &classRegistrar{} }

func (p *classRegistrar) Name() string { return "class-registrar" }

func (p *classRegistrar) Run(program *ast.Program, ctx *Context) error {
	for _, class := range program.Classes {
		name := types.Type(class.Name.Value)

		if name.IsSelf() {
			ctx.Diags.Add(errors.NewClassIllegalSelfType(class.Name.Pos()))
			continue
		}
		if _, exists := ctx.Classes.Lookup(name); exists {
			ctx.Diags.Add(errors.NewClassRedefined(class.Name.Pos(), string(name)))
			continue
		}

		ci := types.NewClassInfo(name, class.Name.Pos())
		ctx.Classes.Register(ci)
		ctx.ClassNodes[class] = ci
	}
	return nil
}
