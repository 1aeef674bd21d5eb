package types

import "github.com/coolc/coolc/internal/token"

// Attribute is an attribute binding recorded against a ClassInfo.
// Declaration order is observable to object layout downstream, so it is
// preserved.
type Attribute struct {
	Name    string
	Type    Type
	NamePos token.Position
	TypePos token.Position
}

// Formal is a single method parameter.
type Formal struct {
	Name string
	Type Type
}

// MethodSignature is a method's name, return type, and ordered formals,
// plus the class that declares it. The defining class is what the method
// environment hands to code generation for dispatch-table slots.
type MethodSignature struct {
	Name          string
	ReturnType    Type
	Formals       []Formal
	DefiningClass Type
	Pos           token.Position
}

// ClassInfo is a resolved class: a name, an optional parent, and its own
// (non-inherited) attributes and methods. Attribute order is preserved;
// methods are keyed by name with an explicit order slice so iteration is
// deterministic.
type ClassInfo struct {
	Name        Type
	Parent      *ClassInfo
	Attributes  []*Attribute
	attrIndex   map[string]*Attribute
	Methods     map[string]*MethodSignature
	MethodOrder []string
	NamePos     token.Position
}

// NewClassInfo creates an empty class context for name.
func NewClassInfo(name Type, pos token.Position) *ClassInfo {
	return &ClassInfo{
		Name:      name,
		attrIndex: make(map[string]*Attribute),
		Methods:   make(map[string]*MethodSignature),
		NamePos:   pos,
	}
}

// AddAttribute registers an attribute, preserving declaration order.
func (c *ClassInfo) AddAttribute(a *Attribute) {
	c.Attributes = append(c.Attributes, a)
	c.attrIndex[a.Name] = a
}

// OwnAttribute returns the attribute declared directly on this class (not
// inherited), if any.
func (c *ClassInfo) OwnAttribute(name string) (*Attribute, bool) {
	a, ok := c.attrIndex[name]
	return a, ok
}

// AddMethod registers a method signature, preserving declaration order.
func (c *ClassInfo) AddMethod(sig *MethodSignature) {
	if _, exists := c.Methods[sig.Name]; !exists {
		c.MethodOrder = append(c.MethodOrder, sig.Name)
	}
	c.Methods[sig.Name] = sig
}

// OwnMethod returns the method declared directly on this class, if any.
func (c *ClassInfo) OwnMethod(name string) (*MethodSignature, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// FindMethod walks from this class up through its ancestors and returns the
// first (nearest) method signature with the given name.
func (c *ClassInfo) FindMethod(name string) (*MethodSignature, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// FindAttribute walks from this class up through its ancestors and returns
// the first (nearest) attribute with the given name.
func (c *ClassInfo) FindAttribute(name string) (*Attribute, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if a, ok := cur.attrIndex[name]; ok {
			return a, true
		}
	}
	return nil, false
}

// ClassTable is the class registry: an insertion-ordered list of class
// contexts (built-ins first, then user classes in textual order), plus a
// name index for O(1) lookup.
type ClassTable struct {
	order  []*ClassInfo
	byName map[Type]*ClassInfo
}

// NewClassTable creates an empty class table.
func NewClassTable() *ClassTable {
	return &ClassTable{byName: make(map[Type]*ClassInfo)}
}

// Register installs a new class context. Callers are responsible for
// rejecting redefinitions before calling Register.
func (ct *ClassTable) Register(ci *ClassInfo) {
	ct.order = append(ct.order, ci)
	ct.byName[ci.Name] = ci
}

// Lookup finds a class context by name. SELF_TYPE and Unknown never
// resolve here; callers must resolve SELF_TYPE against the enclosing class
// first.
func (ct *ClassTable) Lookup(name Type) (*ClassInfo, bool) {
	ci, ok := ct.byName[name]
	return ci, ok
}

// Classes returns the full ordered class list.
func (ct *ClassTable) Classes() []*ClassInfo { return ct.order }

// IsSubtype reports whether lhs <= rhs, resolving SELF_TYPE on both sides
// against enclosing first. Both sides need resolution because expression
// results (New, Dispatch) keep SELF_TYPE as a live sentinel rather than
// eagerly concretizing it.
//
// Unknown is treated as trivially compatible with anything, so that a
// sub-expression whose own check already failed never triggers a second,
// cascading diagnostic here.
func (ct *ClassTable) IsSubtype(lhs, rhs Type, enclosing Type) bool {
	lhs = ResolveSelf(lhs, enclosing)
	rhs = ResolveSelf(rhs, enclosing)
	if lhs.IsUnknown() || rhs.IsUnknown() {
		return true
	}
	cur, ok := ct.Lookup(lhs)
	if !ok {
		return false
	}
	for cur != nil {
		if cur.Name == rhs {
			return true
		}
		cur = cur.Parent
	}
	return false
}

// IsSubtypePlain reports whether lhs <= rhs without resolving SELF_TYPE on
// either side. Attribute initializer compatibility uses this plain check,
// while method-body compatibility goes through the SELF_TYPE-aware
// IsSubtype; the asymmetry is deliberate.
func (ct *ClassTable) IsSubtypePlain(lhs, rhs Type) bool {
	if lhs.IsUnknown() || rhs.IsUnknown() {
		return true
	}
	if lhs.IsSelf() || rhs.IsSelf() {
		return lhs.IsSelf() && rhs.IsSelf()
	}
	cur, ok := ct.Lookup(lhs)
	if !ok {
		return false
	}
	for cur != nil {
		if cur.Name == rhs {
			return true
		}
		cur = cur.Parent
	}
	return false
}

// LeastUpperBound returns the nearest common ancestor of a and b, resolving
// SELF_TYPE against enclosing first.
func (ct *ClassTable) LeastUpperBound(a, b Type, enclosing Type) Type {
	a = ResolveSelf(a, enclosing)
	b = ResolveSelf(b, enclosing)
	if a.IsUnknown() {
		return b
	}
	if b.IsUnknown() {
		return a
	}
	ca, ok := ct.Lookup(a)
	if !ok {
		return Unknown
	}
	cb, ok := ct.Lookup(b)
	if !ok {
		return Unknown
	}
	for x := ca; x != nil; x = x.Parent {
		for y := cb; y != nil; y = y.Parent {
			if x.Name == y.Name {
				return x.Name
			}
		}
	}
	// Unreachable in a well-formed registry: Object is a common ancestor of
	// every class.
	return Unknown
}

// InheritsFrom walks the parent chain of ci and reports whether start
// reappears, i.e. whether ci participates in an inheritance cycle. ci
// itself is not considered part of its own chain until the walk reaches
// back to it through at least one parent link.
//
// The walk tracks visited nodes so that a cycle elsewhere in the chain
// (not involving start) can never turn this into an infinite loop.
func InheritsFrom(ci *ClassInfo, start Type) bool {
	visited := make(map[*ClassInfo]bool)
	for p := ci.Parent; p != nil; p = p.Parent {
		if visited[p] {
			return false
		}
		visited[p] = true
		if p.Name == start {
			return true
		}
	}
	return false
}
