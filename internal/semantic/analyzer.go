// Package semantic implements the Cool semantic analyzer: a fixed pipeline
// of passes that builds a class registry, derives object/method
// environments, and type-checks every expression in the program.
package semantic

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/errors"
	"github.com/coolc/coolc/internal/types"
)

// Result is the output contract handed to code generation:
// the frozen class table, the per-class object environments, the flat
// method environment, and whether any diagnostic fired during analysis.
type Result struct {
	Classes    *types.ClassTable
	ObjectEnvs map[types.Type][]Binding
	Methods    *MethodEnv
	Diags      *errors.Diagnostics
	HadErrors  bool
}

// Analyzer runs the full semantic analysis pipeline over a parsed program.
type Analyzer struct {
	manager *PassManager
}

// NewAnalyzer builds an analyzer with the standard pass sequence: built-ins,
// class registration, parent linking, cycle checking, attribute checking,
// method checking (registration then override consistency), environment
// building, and finally body checking.
func NewAnalyzer() *Analyzer {
	return &Analyzer{manager: NewPassManager(
		NewBuiltinInstaller(),
		NewClassRegistrar(),
		NewParentLinker(),
		NewCycleChecker(),
		NewAttributeChecker(),
		NewMethodRegistrar(),
		NewMethodOverrideChecker(),
		NewEnvironmentBuilder(),
		NewBodyChecker(),
	)}
}

// NewAnalyzerWithoutPrelude builds an analyzer that skips the built-in
// installer, so the class registrar, parent linker, and cycle checker can
// be exercised in isolation against a registry that starts out empty
// instead of seeded with Object/IO/Int/String/Bool. Used by "coolc check
// --no-prelude" and by registrar-focused unit tests.
func NewAnalyzerWithoutPrelude() *Analyzer {
	return &Analyzer{manager: NewPassManager(
		NewClassRegistrar(),
		NewParentLinker(),
		NewCycleChecker(),
		NewAttributeChecker(),
		NewMethodRegistrar(),
		NewMethodOverrideChecker(),
		NewEnvironmentBuilder(),
		NewBodyChecker(),
	)}
}

// Analyze runs the pipeline over program. source and file are used only for
// diagnostic rendering (source is the raw program text for caret context,
// file is the optional filename shown in the wire-format diagnostics).
func (a *Analyzer) Analyze(program *ast.Program, source, file string) (*Result, error) {
	diags := errors.NewDiagnostics(source, file)
	ctx := NewContext(diags)

	if err := a.manager.RunAll(program, ctx); err != nil {
		return nil, err
	}

	return &Result{
		Classes:    ctx.Classes,
		ObjectEnvs: ctx.ObjectEnvs,
		Methods:    ctx.Methods,
		Diags:      diags,
		HadErrors:  diags.HasErrors(),
	}, nil
}
