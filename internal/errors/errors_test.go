package errors

import (
	"strings"
	"testing"

	"github.com/coolc/coolc/internal/token"
)

func TestFormatSemanticWithFile(t *testing.T) {
	e := NewCompilerError(KindExpression, token.Position{Line: 3, Column: 7}, "Undefined identifier x", "", "good.cl")

	got := e.FormatSemantic()
	want := `"good.cl", line 3:7, Semantic error: Undefined identifier x`
	if got != want {
		t.Errorf("FormatSemantic() = %q, want %q", got, want)
	}
}

func TestFormatSemanticWithoutFile(t *testing.T) {
	e := NewCompilerError(KindExpression, token.Position{Line: 1, Column: 1}, "Undefined identifier x", "", "")

	got := e.FormatSemantic()
	want := "line 1:1, Semantic error: Undefined identifier x"
	if got != want {
		t.Errorf("FormatSemantic() = %q, want %q", got, want)
	}
}

func TestErrorImplementsErrorInterfaceViaWireFormat(t *testing.T) {
	e := NewCompilerError(KindBody, token.Position{Line: 2, Column: 4}, "boom", "", "f.cl")
	var err error = e
	if err.Error() != e.FormatSemantic() {
		t.Error("Error() must delegate to FormatSemantic()")
	}
}

func TestFormatCaretPointsAtColumn(t *testing.T) {
	source := "class Main {\n  f() : Int { oops };\n};"
	e := NewCompilerError(KindExpression, token.Position{Line: 2, Column: 15}, "Undefined identifier oops", source, "f.cl")

	got := e.Format(false)
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines (header, source, caret), got %d: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], "f.cl:2:15") {
		t.Errorf("expected header line to cite f.cl:2:15, got %q", lines[0])
	}
	caretLine := lines[2]
	if idx := strings.Index(caretLine, "^"); idx != strings.Index(lines[1], "oops") {
		t.Errorf("caret at column %d does not line up with %q in %q", idx, "oops", lines[1])
	}
}

func TestFormatOmitsSourceContextWhenSourceEmpty(t *testing.T) {
	e := NewCompilerError(KindExpression, token.Position{Line: 1, Column: 1}, "boom", "", "")
	got := e.Format(false)
	if strings.Contains(got, "|") {
		t.Errorf("no source was given, expected no caret/source line, got %q", got)
	}
}

func TestDiagnosticsAddfAndOrdering(t *testing.T) {
	d := NewDiagnostics("", "prog.cl")
	d.Addf(KindClassDecl, token.Position{Line: 1, Column: 1}, "Class %s redefined", "A")
	d.Addf(KindAttribute, token.Position{Line: 2, Column: 3}, "Attribute %s redefined", "x")

	if !d.HasErrors() {
		t.Fatal("expected HasErrors to be true after Addf")
	}
	errs := d.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(errs))
	}
	if errs[0].Message != "Class A redefined" || errs[1].Message != "Attribute x redefined" {
		t.Errorf("diagnostics must preserve emission order, got %+v", errs)
	}
}

func TestDiagnosticsAddStampsSourceAndFile(t *testing.T) {
	d := NewDiagnostics("class A {};", "prog.cl")
	e := NewCompilerErrorf(KindClassDecl, token.Position{Line: 1, Column: 1}, "Class %s redefined", "A")
	d.Add(e)

	got := d.Errors()[0]
	if got.Source != "class A {};" || got.File != "prog.cl" {
		t.Errorf("Add must stamp the collector's Source/File onto the error, got Source=%q File=%q", got.Source, got.File)
	}
}

func TestDiagnosticsFormatSemanticJoinsOneDiagnosticPerLine(t *testing.T) {
	d := NewDiagnostics("", "prog.cl")
	d.Addf(KindClassDecl, token.Position{Line: 1, Column: 1}, "first")
	d.Addf(KindClassDecl, token.Position{Line: 2, Column: 1}, "second")

	got := d.FormatSemantic()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected exactly 2 lines, got %d: %q", len(lines), got)
	}
}

func TestDiagnosticsHasErrorsFalseWhenEmpty(t *testing.T) {
	d := NewDiagnostics("", "prog.cl")
	if d.HasErrors() {
		t.Error("a fresh Diagnostics collector must report no errors")
	}
}
