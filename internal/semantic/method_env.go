package semantic

import "github.com/coolc/coolc/internal/types"

// MethodEnv is the flat method environment: for every
// class, a table from method name to the signature visible on that class
// (its own methods plus inherited ones resolved at the nearest ancestor
// that declares them).
type MethodEnv struct {
	byClass map[types.Type]map[string]*types.MethodSignature
}

// BuildMethodEnv derives the flat method environment from a frozen class
// table: for each class, its own methods are inserted first, then each
// ancestor contributes any method name not already present.
func BuildMethodEnv(ct *types.ClassTable) *MethodEnv {
	me := &MethodEnv{byClass: make(map[types.Type]map[string]*types.MethodSignature)}
	for _, ci := range ct.Classes() {
		table := make(map[string]*types.MethodSignature)
		for cur := ci; cur != nil; cur = cur.Parent {
			for _, name := range cur.MethodOrder {
				if _, exists := table[name]; exists {
					continue
				}
				table[name] = cur.Methods[name]
			}
		}
		me.byClass[ci.Name] = table
	}
	return me
}

// Lookup returns the signature visible for method on class, if any.
func (me *MethodEnv) Lookup(class types.Type, method string) (*types.MethodSignature, bool) {
	table, ok := me.byClass[class]
	if !ok {
		return nil, false
	}
	sig, ok := table[method]
	return sig, ok
}

// ClassMethods returns the full flat method table for class.
func (me *MethodEnv) ClassMethods(class types.Type) map[string]*types.MethodSignature {
	return me.byClass[class]
}
