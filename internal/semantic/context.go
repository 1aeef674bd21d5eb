package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

// Context is the communication medium between passes: the class registry
// under construction, the diagnostics collector, and the derived
// environments later passes compute from the frozen registry.
type Context struct {
	// Classes is the class registry, built up across the declaration
	// passes and frozen before expression checking begins.
	Classes *types.ClassTable

	// ClassNodes associates each AST class node with the ClassInfo the
	// registrar installed for it, or leaves it absent when registration
	// itself failed (illegal name or redefinition) — so later passes can
	// skip a class without re-deriving its name.
	ClassNodes map[*ast.Class]*types.ClassInfo

	// Diags accumulates every diagnostic in emission order.
	Diags *errors.Diagnostics

	// ObjectEnvs holds the frozen base object environment per class,
	// computed by the environment builder. Expression checking
	// clones the relevant entry before pushing further bindings onto it.
	ObjectEnvs map[types.Type][]Binding

	// Methods is the flat method environment built by the environment
	// builder.
	Methods *MethodEnv
}

// NewContext creates an empty analysis context bound to a diagnostics
// collector.
func NewContext(diags *errors.Diagnostics) *Context {
	return &Context{
		Classes:    types.NewClassTable(),
		ClassNodes: make(map[*ast.Class]*types.ClassInfo),
		Diags:      diags,
		ObjectEnvs: make(map[types.Type][]Binding),
	}
}
