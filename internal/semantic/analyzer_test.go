package semantic

import (
	"strings"
	"testing"

	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
)

// analyzeSource parses and analyzes input, failing the test if the parser
// itself reported errors (the semantic analyzer is this package's concern,
// not the parser's).
func analyzeSource(t *testing.T, input string) *Result {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors: %v", p.Errors())
	}

	result, err := NewAnalyzer().Analyze(program, input, "")
	if err != nil {
		t.Fatalf("analyzer returned an internal error: %v", err)
	}
	return result
}

func diagMessages(result *Result) []string {
	var msgs []string
	for _, e := range result.Diags.Errors() {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

func expectNoErrors(t *testing.T, input string) *Result {
	t.Helper()
	result := analyzeSource(t, input)
	if result.HadErrors {
		t.Errorf("expected no errors, got: %v", diagMessages(result))
	}
	return result
}

func expectError(t *testing.T, input string, substr string) *Result {
	t.Helper()
	result := analyzeSource(t, input)
	if !result.HadErrors {
		t.Errorf("expected an error containing %q, got none", substr)
		return result
	}
	for _, msg := range diagMessages(result) {
		if strings.Contains(msg, substr) {
			return result
		}
	}
	t.Errorf("expected an error containing %q, got: %v", substr, diagMessages(result))
	return result
}

// Two mutually-inheriting classes each get their own cycle diagnostic,
// and the run still reports HadErrors.
func TestScenario_InheritanceCycle(t *testing.T) {
	result := analyzeSource(t, `
		class A inherits B { };
		class B inherits A { };
	`)
	if !result.HadErrors {
		t.Fatal("expected HadErrors")
	}
	msgs := diagMessages(result)
	count := 0
	for _, m := range msgs {
		if strings.Contains(m, "Inheritance cycle for class") {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 cycle diagnostics, got %d: %v", count, msgs)
	}
}

func TestScenario_AttributeRedefined(t *testing.T) {
	expectError(t, `
		class A { x : Int; x : String; };
	`, "Class A redefines attribute x")
}

func TestScenario_FormalRedefined(t *testing.T) {
	expectError(t, `
		class A { f(x:Int, x:Int) : Int { x }; };
	`, "Method f of class A redefines formal parameter x")
}

func TestScenario_OverrideFormalTypeChanged(t *testing.T) {
	result := expectError(t, `
		class A inherits IO { f(x:Int):Int { x }; };
		class B inherits A { f(x:String):Int { 0 }; };
	`, "changes type of formal parameter x from Int to String")
	if !result.HadErrors {
		t.Error("expected non-zero exit status")
	}
}

func TestScenario_LetInitIncompatible(t *testing.T) {
	expectError(t, `
		class Main { main():Object { let x:Int <- "hi" in x }; };
	`, "Type String of initialization expression of identifier x is incompatible with declared type Int")
}

// "new SELF_TYPE" is legal in a method body and infers the enclosing
// class.
func TestScenario_NewSelfTypeInMethodBody(t *testing.T) {
	expectNoErrors(t, `
		class Main { main():Object { new SELF_TYPE }; };
	`)
}

func TestClassDeclaredSelfType(t *testing.T) {
	expectError(t, `
		class SELF_TYPE { };
	`, "Class has illegal name SELF_TYPE")
}

func TestClassRedefined(t *testing.T) {
	expectError(t, `
		class A { };
		class A { };
	`, "Class A is redefined")
}

func TestIllegalParent(t *testing.T) {
	for _, parent := range []string{"Int", "String", "Bool", "SELF_TYPE"} {
		expectError(t, `class A inherits `+parent+` { };`, "has illegal parent "+parent)
	}
}

func TestUndefinedParent(t *testing.T) {
	expectError(t, `class A inherits Ghost { };`, "Class A has undefined parent Ghost")
}

// A class with an undefined parent is still well-formed enough that its
// own members (that don't reference the missing parent) are checked
// without cascading into further diagnostics.
func TestUndefinedParentDoesNotCascade(t *testing.T) {
	result := analyzeSource(t, `
		class A inherits Ghost {
			x : Int <- 5;
			f() : Int { x };
		};
	`)
	msgs := diagMessages(result)
	if len(msgs) != 1 {
		t.Errorf("expected exactly one diagnostic (undefined parent), got: %v", msgs)
	}
}

func TestAttributeIllegalNameSelf(t *testing.T) {
	expectError(t, `class A { self : Int; };`, "Class A has attribute with illegal name self")
}

func TestAttributeUndefinedType(t *testing.T) {
	expectError(t, `class A { x : Ghost; };`, "Class A has attribute x with undefined type Ghost")
}

func TestAttributeRedefinesInherited(t *testing.T) {
	expectError(t, `
		class A { x : Int; };
		class B inherits A { x : String; };
	`, "Class B redefines inherited attribute x")
}

func TestMethodRedefined(t *testing.T) {
	expectError(t, `
		class A { f() : Int { 0 }; f() : Int { 1 }; };
	`, "Class A redefines method f")
}

func TestFormalIllegalNameSelf(t *testing.T) {
	expectError(t, `class A { f(self : Int) : Int { 0 }; };`, "has formal parameter with illegal name self")
}

func TestFormalIllegalTypeSelfType(t *testing.T) {
	expectError(t, `class A { f(x : SELF_TYPE) : Int { 0 }; };`, "has formal parameter x with illegal type SELF_TYPE")
}

func TestFormalUndefinedType(t *testing.T) {
	expectError(t, `class A { f(x : Ghost) : Int { 0 }; };`, "has formal parameter x with undefined type Ghost")
}

func TestMethodUndefinedReturnType(t *testing.T) {
	expectError(t, `class A { f() : Ghost { 0 }; };`, "has undefined return type Ghost")
}

func TestOverrideFormalCountMismatch(t *testing.T) {
	expectError(t, `
		class A { f(x:Int) : Int { x }; };
		class B inherits A { f() : Int { 0 }; };
	`, "Class B overrides method f with different number of formal parameters")
}

func TestOverrideReturnTypeChanged(t *testing.T) {
	expectError(t, `
		class A { f() : Int { 0 }; };
		class B inherits A { f() : String { "x" }; };
	`, "Class B overrides method f but changes return type from Int to String")
}

// Overriding with an identical signature is not an error.
func TestOverrideConsistentSignature(t *testing.T) {
	expectNoErrors(t, `
		class A { f(x:Int) : Int { x }; };
		class B inherits A { f(x:Int) : Int { x + 1 }; };
	`)
}

func TestUndefinedIdentifier(t *testing.T) {
	expectError(t, `class A { f() : Object { ghost }; };`, "Undefined identifier ghost")
}

func TestCannotAssignToSelf(t *testing.T) {
	expectError(t, `class A { f() : Object { self <- new A }; };`, "Cannot assign to self")
}

func TestAssignIncompatible(t *testing.T) {
	expectError(t, `
		class A {
			x : Int;
			f() : Object { x <- "hi" };
		};
	`, "Type String of assigned expression is incompatible with declared type Int of identifier x")
}

func TestNewUndefinedType(t *testing.T) {
	expectError(t, `class A { f() : Object { new Ghost }; };`, "new is used with undefined type Ghost")
}

func TestIfConditionNotBool(t *testing.T) {
	expectError(t, `class A { f() : Int { if 1 then 2 else 3 fi }; };`, "If condition has type Int instead of Bool")
}

func TestWhileConditionNotBool(t *testing.T) {
	expectError(t, `class A { f() : Object { while 1 loop 2 pool }; };`, "While condition has type Int instead of Bool")
}

func TestWhileResultIsObject(t *testing.T) {
	result := analyzeSource(t, `
		class Main inherits IO {
			f() : Object { while false loop out_string("x") pool };
		};
	`)
	if result.HadErrors {
		t.Fatalf("unexpected errors: %v", diagMessages(result))
	}
}

func TestUndefinedMethod(t *testing.T) {
	expectError(t, `class A { f() : Object { self.ghost() }; };`, "Undefined method ghost in class A")
}

func TestWrongNumberOfArguments(t *testing.T) {
	expectError(t, `
		class A {
			f(x:Int) : Int { x };
			g() : Int { f() };
		};
	`, "Method f of class A is applied to wrong number of arguments")
}

func TestArgumentIncompatible(t *testing.T) {
	expectError(t, `
		class A {
			f(x:Int) : Int { x };
			g() : Int { f("hi") };
		};
	`, `In call to method f of class A, actual type String of formal parameter x is incompatible with declared type Int`)
}

func TestStaticDispatchSelfType(t *testing.T) {
	expectError(t, `
		class A { f() : Object { (new A)@SELF_TYPE.f() }; };
	`, "Type of static dispatch cannot be SELF_TYPE")
}

func TestStaticDispatchUndefinedType(t *testing.T) {
	expectError(t, `
		class A { f() : Object { (new A)@Ghost.f() }; };
	`, "Type Ghost of static dispatch is undefined")
}

func TestStaticDispatchNotSuperclass(t *testing.T) {
	expectError(t, `
		class A { };
		class B { };
		class Main { f() : Object { (new A)@B.abort() }; };
	`, "Type B of static dispatch is not a superclass of type A")
}

func TestEqCannotCompareCrossPrimitive(t *testing.T) {
	expectError(t, `class A { f() : Bool { 1 = "1" }; };`, "Cannot compare Int with String")
}

func TestEqComparingObjectsIsLegal(t *testing.T) {
	expectNoErrors(t, `
		class A { };
		class Main { f() : Bool { (new A) = (new A) }; };
	`)
}

func TestMethodBodyIncompatibleWithReturnType(t *testing.T) {
	expectError(t, `class A { f() : Int { "hi" }; };`, "Type String of the body of method f is incompatible with declared return type Int")
}

func TestAttributeInitIncompatible(t *testing.T) {
	expectError(t, `class A { x : Int <- "hi"; };`, "Type String of initialization expression of attribute x is incompatible with declared type Int")
}

func TestCaseIllegalBranchName(t *testing.T) {
	expectError(t, `
		class A { f() : Object { case 1 of self : Int => 1; esac }; };
	`, "Case variable has illegal name self")
}

func TestCaseIllegalBranchType(t *testing.T) {
	expectError(t, `
		class A { f() : Object { case 1 of x : SELF_TYPE => x; esac }; };
	`, "Case variable x has illegal type SELF_TYPE")
}

func TestCaseUndefinedBranchType(t *testing.T) {
	expectError(t, `
		class A { f() : Object { case 1 of x : Ghost => 1; esac }; };
	`, "Case variable x has undefined type Ghost")
}

func TestCaseResultIsLubOfBranches(t *testing.T) {
	result := analyzeSource(t, `
		class Animal { };
		class Dog inherits Animal { };
		class Cat inherits Animal { };
		class Main {
			f(x : Object) : Animal {
				case x of
					d : Dog => d;
					c : Cat => c;
				esac
			};
		};
	`)
	if result.HadErrors {
		t.Fatalf("unexpected errors: %v", diagMessages(result))
	}
}

// An attribute whose initializer is self yields the
// enclosing class's type and is accepted exactly when that type is <= the
// declared attribute type.
func TestSelfInitializerAcceptedWhenCompatible(t *testing.T) {
	expectNoErrors(t, `
		class A { x : A <- self; };
	`)
}

func TestSelfInitializerRejectedWhenIncompatible(t *testing.T) {
	expectError(t, `
		class B { x : Int <- self; };
	`, "Type B of initialization expression of attribute x is incompatible with declared type Int")
}

// After type-checking any expression, the
// object-environment stack returns to its original size.
func TestObjectEnvStackUnwindsAfterLet(t *testing.T) {
	env := NewObjectEnv([]Binding{{Name: "self", Type: "A"}})
	before := env.Len()

	checker := NewChecker(&Context{Classes: newTestClassTable(t)}, "A", env)
	letExpr := mustParseExpr(t, `let x:Int <- 1, y:Int <- 2 in x + y`)
	checker.Check(letExpr)

	if env.Len() != before {
		t.Errorf("object environment stack leaked: before=%d after=%d", before, env.Len())
	}
}

func TestObjectEnvStackUnwindsAfterCase(t *testing.T) {
	env := NewObjectEnv([]Binding{{Name: "self", Type: "A"}})
	before := env.Len()

	ct := newTestClassTable(t)
	checker := NewChecker(&Context{Classes: ct}, "A", env)
	caseExpr := mustParseExpr(t, `case 1 of x : Int => x; esac`)
	checker.Check(caseExpr)

	if env.Len() != before {
		t.Errorf("object environment stack leaked: before=%d after=%d", before, env.Len())
	}
}
