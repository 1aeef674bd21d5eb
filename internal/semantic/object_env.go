package semantic

import "github.com/coolc/coolc/internal/types"

// Binding is a single (name, type) entry in an object environment.
type Binding struct {
	Name string
	Type types.Type
}

// ObjectEnv is the object environment: an ordered stack of
// name/type bindings. Lookup scans tail-first so the most recently pushed
// binding always wins, matching Cool's lexically-scoped shadowing rules
// for let/case/formal bindings layered on top of a class's attributes.
type ObjectEnv struct {
	bindings []Binding
}

// NewObjectEnv creates an environment seeded from a frozen base (typically
// a class's attributes-plus-self list from the environment builder). The
// base is copied so mutations never affect the stored frozen copy.
func NewObjectEnv(base []Binding) *ObjectEnv {
	e := &ObjectEnv{bindings: make([]Binding, len(base))}
	copy(e.bindings, base)
	return e
}

// Push adds a new binding on top of the stack.
func (e *ObjectEnv) Push(name string, typ types.Type) {
	e.bindings = append(e.bindings, Binding{Name: name, Type: typ})
}

// PopN removes the n most recently pushed bindings. Callers pop exactly
// the count they pushed, unwinding scopes in strict LIFO order.
func (e *ObjectEnv) PopN(n int) {
	e.bindings = e.bindings[:len(e.bindings)-n]
}

// Lookup scans from the top of the stack down and returns the nearest
// binding for name.
func (e *ObjectEnv) Lookup(name string) (types.Type, bool) {
	for i := len(e.bindings) - 1; i >= 0; i-- {
		if e.bindings[i].Name == name {
			return e.bindings[i].Type, true
		}
	}
	return types.Unknown, false
}

// Len reports the current stack depth.
func (e *ObjectEnv) Len() int { return len(e.bindings) }
