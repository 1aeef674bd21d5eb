package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/token"
	"github.com/coolc/coolc/internal/types"
)

// builtinInstaller seeds the class registry with Object, IO, Int, String,
// and Bool before any user class is processed. Built-ins are
// indistinguishable from user classes thereafter, except that Int, String,
// Bool, and SELF_TYPE can never appear as a parent.
type builtinInstaller struct{}

// NewBuiltinInstaller creates the first pass in the pipeline.
func NewBuiltinInstaller() Pass { return &builtinInstaller{} }

func (p *builtinInstaller) Name() string { return "builtin-installer" }

func (p *builtinInstaller) Run(_ *ast.Program, ctx *Context) error {
	var zero token.Position

	object := types.NewClassInfo(types.ObjectClass, zero)
	object.AddMethod(&types.MethodSignature{Name: "abort", ReturnType: types.ObjectClass, DefiningClass: types.ObjectClass, Pos: zero})
	object.AddMethod(&types.MethodSignature{Name: "type_name", ReturnType: types.StringClass, DefiningClass: types.ObjectClass, Pos: zero})
	object.AddMethod(&types.MethodSignature{Name: "copy", ReturnType: types.SelfType, DefiningClass: types.ObjectClass, Pos: zero})
	ctx.Classes.Register(object)

	io := types.NewClassInfo(types.IOClass, zero)
	io.Parent = object
	io.AddMethod(&types.MethodSignature{
		Name: "out_string", ReturnType: types.SelfType, DefiningClass: types.IOClass, Pos: zero,
		Formals: []types.Formal{{Name: "x", Type: types.StringClass}},
	})
	io.AddMethod(&types.MethodSignature{
		Name: "out_int", ReturnType: types.SelfType, DefiningClass: types.IOClass, Pos: zero,
		Formals: []types.Formal{{Name: "x", Type: types.IntClass}},
	})
	io.AddMethod(&types.MethodSignature{Name: "in_string", ReturnType: types.StringClass, DefiningClass: types.IOClass, Pos: zero})
	io.AddMethod(&types.MethodSignature{Name: "in_int", ReturnType: types.IntClass, DefiningClass: types.IOClass, Pos: zero})
	ctx.Classes.Register(io)

	intClass := types.NewClassInfo(types.IntClass, zero)
	intClass.Parent = object
	ctx.Classes.Register(intClass)

	str := types.NewClassInfo(types.StringClass, zero)
	str.Parent = object
	str.AddMethod(&types.MethodSignature{Name: "length", ReturnType: types.IntClass, DefiningClass: types.StringClass, Pos: zero})
	str.AddMethod(&types.MethodSignature{
		Name: "concat", ReturnType: types.StringClass, DefiningClass: types.StringClass, Pos: zero,
		Formals: []types.Formal{{Name: "s", Type: types.StringClass}},
	})
	str.AddMethod(&types.MethodSignature{
		Name: "substr", ReturnType: types.StringClass, DefiningClass: types.StringClass, Pos: zero,
		Formals: []types.Formal{{Name: "i", Type: types.IntClass}, {Name: "l", Type: types.IntClass}},
	})
	ctx.Classes.Register(str)

	boolClass := types.NewClassInfo(types.BoolClass, zero)
	boolClass.Parent = object
	ctx.Classes.Register(boolClass)

	return nil
}
