package semantic

import (
	"github.com/coolc/coolc/internal/ast"
)

// Pass represents a single semantic analysis pass. The multi-pass
// architecture mirrors the staged pipeline described by the analyzer's
// design: each pass reads and enriches the shared Context, and later
// passes build on the registry earlier passes constructed.
type Pass interface {
	// Name identifies the pass for logging and debugging.
	Name() string

	// Run executes this pass over the program, reading and writing ctx.
	// Semantic problems are recorded in ctx.Diags, never returned as Go
	// errors; a non-nil return is reserved for fatal internal failures.
	Run(program *ast.Program, ctx *Context) error
}

// PassManager runs a fixed sequence of passes in order.
type PassManager struct {
	passes []Pass
}

// NewPassManager creates a manager that will run passes in the given order.
func NewPassManager(passes ...Pass) *PassManager {
	return &PassManager{passes: passes}
}

// RunAll executes every pass in sequence. Unlike a manager that halts on
// the first critical error, this one always runs every pass: the analyzer
// follows continue-past-error semantics end to end, so later passes must
// still produce whatever tables they can even after earlier passes
// recorded diagnostics. Only a non-nil Go error (an internal failure, not
// a semantic one) stops the run early.
func (pm *PassManager) RunAll(program *ast.Program, ctx *Context) error {
	for _, pass := range pm.passes {
		if err := pass.Run(program, ctx); err != nil {
			return err
		}
	}
	return nil
}

// AddPass appends a pass to the end of the sequence.
func (pm *PassManager) AddPass(pass Pass) {
	pm.passes = append(pm.passes, pass)
}

// Passes returns the registered passes in run order.
func (pm *PassManager) Passes() []Pass {
	return pm.passes
}
