// Package codegen is a minimal stub consumer of the semantic analyzer's
// output contract. Real x86-64 code generation is out of scope; Emit
// exists to prove every class, attribute, and method the analyzer
// resolved is reachable and visitable by something downstream.
package codegen

import (
	"fmt"
	"io"

	"github.com/coolc/coolc/internal/semantic"
	"github.com/coolc/coolc/internal/types"
)

// Output is the analyzer's result reshaped into the external interface
// code generation actually consumes: the class table, one object
// environment per class, the flat method environment, and whether any
// diagnostic fired.
type Output struct {
	ClassTable []*types.ClassInfo
	ObjectEnv  map[string][]semantic.Binding
	MethodEnv  *semantic.MethodEnv
	HadErrors  bool
}

// FromResult adapts a semantic.Result into an Output.
func FromResult(r *semantic.Result) *Output {
	objEnv := make(map[string][]semantic.Binding, len(r.ObjectEnvs))
	for class, bindings := range r.ObjectEnvs {
		objEnv[string(class)] = bindings
	}
	return &Output{
		ClassTable: r.Classes.Classes(),
		ObjectEnv:  objEnv,
		MethodEnv:  r.Methods,
		HadErrors:  r.HadErrors,
	}
}

// Emit writes a deterministic placeholder assembly skeleton: a .text
// section header, one label per class, and a comment line per method the
// class itself declares, with its signature taken from the method
// environment. Inherited methods are listed only under the class that
// declares them. It never emits real instructions.
func Emit(w io.Writer, out *Output) error {
	if out.HadErrors {
		return fmt.Errorf("codegen: refusing to emit for a program with semantic errors")
	}

	if _, err := fmt.Fprintln(w, ".text"); err != nil {
		return err
	}

	for _, ci := range out.ClassTable {
		label := classLabel(ci.Name)
		if _, err := fmt.Fprintf(w, "\n.globl %s\n%s:\n", label, label); err != nil {
			return err
		}
		attrSlots := 0
		for _, b := range out.ObjectEnv[string(ci.Name)] {
			if b.Name != "self" {
				attrSlots++
			}
		}
		if _, err := fmt.Fprintf(w, "\t# object layout: %d attribute slot(s)\n", attrSlots); err != nil {
			return err
		}
		for _, name := range ci.MethodOrder {
			sig, _ := out.MethodEnv.Lookup(ci.Name, name)
			if sig == nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "\t# method slot: %s.%s(%d arg(s)) -> %s\n",
				ci.Name, sig.Name, len(sig.Formals), sig.ReturnType); err != nil {
				return err
			}
		}
	}
	return nil
}

func classLabel(name types.Type) string {
	return "Cool_" + string(name)
}
