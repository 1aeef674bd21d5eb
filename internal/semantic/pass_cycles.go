package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

// cycleChecker walks each class's parent chain looking for a return to the
// starting class. A class whose parent never got linked is skipped, since
// the parent linker already reported the reason.
//
// When a cycle is found, the offending class is orphaned (Parent set back
// to nil) so that every later pass walking parent chains (attribute
// redefinition, override consistency, the environment builder) is
// guaranteed to terminate.
type cycleChecker struct{}

// NewCycleChecker creates the cycle checker pass.
func NewCycleChecker() Pass { return &cycleChecker{} }

func (p *cycleChecker) Name() string { return "cycle-checker" }

func (p *cycleChecker) Run(program *ast.Program, ctx *Context) error {
	var cyclic []*types.ClassInfo

	for _, class := range program.Classes {
		ci, ok := ctx.ClassNodes[class]
		if !ok || ci.Parent == nil {
			continue
		}
		if types.InheritsFrom(ci, ci.Name) {
			ctx.Diags.Add(errors.NewInheritanceCycle(class.Name.Pos(), string(ci.Name)))
			cyclic = append(cyclic, ci)
		}
	}

	// Detection must finish for every class before any Parent is nulled:
	// two classes in the same cycle each depend on the other's still-intact
	// chain to detect their own membership in it.
	for _, ci := range cyclic {
		ci.Parent = nil
	}
	return nil
}
