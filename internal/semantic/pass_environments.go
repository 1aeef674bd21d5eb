package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/types"
)

// environmentBuilder derives the object environment and method environment
// from the now-frozen class registry. It runs last among the
// registry-building passes; expression checking only ever reads what it
// produces.
type environmentBuilder struct{}

// NewEnvironmentBuilder creates the environment builder pass.
func NewEnvironmentBuilder() Pass { return &environmentBuilder{} }

func (p *environmentBuilder) Name() string { return "environment-builder" }

func (p *environmentBuilder) Run(_ *ast.Program, ctx *Context) error {
	for _, ci := range ctx.Classes.Classes() {
		ctx.ObjectEnvs[ci.Name] = buildObjectEnv(ci)
	}
	ctx.Methods = BuildMethodEnv(ctx.Classes)
	return nil
}

// buildObjectEnv walks from ci up to the root, concatenating each
// ancestor's own attributes outermost-first, then appends the implicit
// self binding.
func buildObjectEnv(ci *types.ClassInfo) []Binding {
	var chain []*types.ClassInfo
	for cur := ci; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	var bindings []Binding
	for _, c := range chain {
		for _, a := range c.Attributes {
			bindings = append(bindings, Binding{Name: a.Name, Type: a.Type})
		}
	}
	bindings = append(bindings, Binding{Name: "self", Type: ci.Name})
	return bindings
}
