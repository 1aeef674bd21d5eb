package types

import (
	"testing"

	"github.com/coolc/coolc/internal/token"
	"github.com/google/go-cmp/cmp"
)

// buildHierarchy builds:
//
//	Object
//	  A
//	    B
//	      D
//	    C
//
// which is enough to exercise subtyping, LUB, and cycle detection without
// needing a full parsed program.
func buildHierarchy(t *testing.T) (ct *ClassTable, object, a, b, c, d *ClassInfo) {
	t.Helper()
	ct = NewClassTable()

	object = NewClassInfo(ObjectClass, token.Position{})
	ct.Register(object)

	a = NewClassInfo("A", token.Position{})
	a.Parent = object
	ct.Register(a)

	b = NewClassInfo("B", token.Position{})
	b.Parent = a
	ct.Register(b)

	c = NewClassInfo("C", token.Position{})
	c.Parent = a
	ct.Register(c)

	d = NewClassInfo("D", token.Position{})
	d.Parent = b
	ct.Register(d)

	return ct, object, a, b, c, d
}

func TestIsSubtypeReflexiveAndTransitive(t *testing.T) {
	ct, _, _, _, _, d := buildHierarchy(t)

	cases := []struct {
		lhs, rhs Type
		want     bool
	}{
		{"D", "D", true},
		{"D", "B", true},
		{"D", "A", true},
		{"D", "Object", true},
		{"D", "C", false},
		{"C", "B", false},
		{"Object", "D", false},
	}
	for _, tc := range cases {
		if got := ct.IsSubtype(tc.lhs, tc.rhs, "D"); got != tc.want {
			t.Errorf("IsSubtype(%s, %s) = %v, want %v", tc.lhs, tc.rhs, got, tc.want)
		}
	}
	_ = d
}

func TestIsSubtypeResolvesSelfTypeOnBothSides(t *testing.T) {
	ct, _, _, _, _, _ := buildHierarchy(t)

	if !ct.IsSubtype(SelfType, "A", "D") {
		t.Error("SELF_TYPE in class D must resolve to D, and D <= A")
	}
	if ct.IsSubtype(SelfType, "C", "D") {
		t.Error("SELF_TYPE in class D resolves to D, which is not <= C")
	}
	if !ct.IsSubtype("D", SelfType, "D") {
		t.Error("SELF_TYPE as rhs in class D resolves to D, and D <= D")
	}
}

func TestIsSubtypeUnknownIsTriviallyCompatible(t *testing.T) {
	ct, _, _, _, _, _ := buildHierarchy(t)

	if !ct.IsSubtype(Unknown, "A", "D") {
		t.Error("an Unknown lhs (already-erroneous sub-expression) must not cascade a second diagnostic")
	}
	if !ct.IsSubtype("A", Unknown, "D") {
		t.Error("an Unknown rhs must likewise be treated as compatible")
	}
}

func TestIsSubtypePlainDoesNotResolveSelfType(t *testing.T) {
	ct, _, _, _, _, _ := buildHierarchy(t)

	if ct.IsSubtypePlain(SelfType, "A") {
		t.Error("IsSubtypePlain must not resolve SELF_TYPE; only SELF_TYPE <= SELF_TYPE is allowed through this path")
	}
	if !ct.IsSubtypePlain(SelfType, SelfType) {
		t.Error("SELF_TYPE is plain-compatible with itself")
	}
	if !ct.IsSubtypePlain("D", "A") {
		t.Error("concrete ancestor check should still hold under IsSubtypePlain")
	}
}

func TestLeastUpperBound(t *testing.T) {
	ct, object, _, _, _, d := buildHierarchy(t)

	cases := []struct {
		a, b Type
		want Type
	}{
		{"D", "D", "D"},
		{"B", "C", "A"},
		{"D", "C", "A"},
		{"D", "Object", "Object"},
	}
	for _, tc := range cases {
		if got := ct.LeastUpperBound(tc.a, tc.b, "D"); got != tc.want {
			t.Errorf("LUB(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
	_ = object
	_ = d
}

func TestLeastUpperBoundResolvesSelfType(t *testing.T) {
	ct, _, _, _, _, _ := buildHierarchy(t)

	if got := ct.LeastUpperBound(SelfType, "C", "D"); got != "A" {
		t.Errorf("LUB(SELF_TYPE, C) in class D = %s, want A (SELF_TYPE resolves to D first)", got)
	}
}

func TestInheritsFromDetectsCycle(t *testing.T) {
	ct := NewClassTable()
	x := NewClassInfo("X", token.Position{})
	y := NewClassInfo("Y", token.Position{})
	z := NewClassInfo("Z", token.Position{})
	x.Parent = z
	y.Parent = x
	z.Parent = y
	ct.Register(x)
	ct.Register(y)
	ct.Register(z)

	if !InheritsFrom(x, "X") {
		t.Error("X -> Z -> Y -> X is a cycle back to X")
	}
}

func TestInheritsFromNoCycleForWellFormedChain(t *testing.T) {
	_, _, _, _, _, d := buildHierarchy(t)

	if InheritsFrom(d, "D") {
		t.Error("D -> B -> A -> Object never loops back to D")
	}
	if !InheritsFrom(d, "A") {
		t.Error("D does inherit from A")
	}
}

func TestClassTableClassesPreservesRegistrationOrder(t *testing.T) {
	ct, object, a, b, c, d := buildHierarchy(t)

	want := []Type{object.Name, a.Name, b.Name, c.Name, d.Name}
	var got []Type
	for _, ci := range ct.Classes() {
		got = append(got, ci.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Classes() order mismatch (-want +got):\n%s", diff)
	}
}

func TestClassInfoAddMethodPreservesOrderAndAllowsOverride(t *testing.T) {
	ci := NewClassInfo("A", token.Position{})
	ci.AddMethod(&MethodSignature{Name: "f", ReturnType: IntClass, DefiningClass: "A"})
	ci.AddMethod(&MethodSignature{Name: "g", ReturnType: BoolClass, DefiningClass: "A"})
	ci.AddMethod(&MethodSignature{Name: "f", ReturnType: StringClass, DefiningClass: "A"})

	if diff := cmp.Diff([]string{"f", "g"}, ci.MethodOrder); diff != "" {
		t.Errorf("MethodOrder mismatch (-want +got):\n%s", diff)
	}
	sig, ok := ci.OwnMethod("f")
	if !ok || sig.ReturnType != StringClass {
		t.Errorf("re-adding f should replace its signature, got %+v (ok=%v)", sig, ok)
	}
}

func TestClassInfoFindAttributeWalksAncestors(t *testing.T) {
	_, _, a, b, _, _ := buildHierarchy(t)
	a.AddAttribute(&Attribute{Name: "x", Type: IntClass})

	attr, ok := b.FindAttribute("x")
	if !ok || attr.Type != IntClass {
		t.Errorf("B should find inherited attribute x:Int from A, got %+v (ok=%v)", attr, ok)
	}
	if _, ok := b.OwnAttribute("x"); ok {
		t.Error("x is inherited, not B's own attribute")
	}
}
