package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

// parentLinker resolves each user class's declared superclass to a
// ClassInfo parent pointer. A class with no explicit
// superclass inherits from Object; Int, String, Bool, and SELF_TYPE can
// never be a parent; an undefined superclass name is also rejected. A
// class whose parent is rejected is left with Parent unset.
type parentLinker struct{}

// NewParentLinker creates the parent linker pass.
func NewParentLinker() Pass { return &parentLinker{} }

func (p *parentLinker) Name() string { return "parent-linker" }

func (p *parentLinker) Run(program *ast.Program, ctx *Context) error {
	object, _ := ctx.Classes.Lookup(types.ObjectClass)

	for _, class := range program.Classes {
		ci, ok := ctx.ClassNodes[class]
		if !ok {
			continue
		}

		if class.Superclass == nil {
			ci.Parent = object
			continue
		}

		parentName := types.Type(class.Superclass.Value)
		if parentName == types.IntClass || parentName == types.StringClass ||
			parentName == types.BoolClass || parentName.IsSelf() {
			ctx.Diags.Add(errors.NewClassIllegalParent(class.Superclass.Pos(), string(ci.Name), string(parentName)))
			continue
		}

		parent, ok := ctx.Classes.Lookup(parentName)
		if !ok {
			ctx.Diags.Add(errors.NewClassUndefinedParent(class.Superclass.Pos(), string(ci.Name), string(parentName)))
			continue
		}

		ci.Parent = parent
	}
	return nil
}
