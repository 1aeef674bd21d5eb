package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/parser"
	"github.com/coolc/coolc/internal/semantic"
)

func analyze(t *testing.T, src string) *semantic.Result {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("parser errors: %v", p.Errors())
	}
	result, err := semantic.NewAnalyzer().Analyze(program, src, "")
	if err != nil {
		t.Fatalf("analyzer error: %v", err)
	}
	return result
}

func TestEmitRefusesWhenAnalysisHadErrors(t *testing.T) {
	result := analyze(t, `class Main { x : Int <- "oops"; };`)
	if !result.HadErrors {
		t.Fatal("fixture was expected to have a semantic error")
	}

	out := FromResult(result)
	var buf bytes.Buffer
	if err := Emit(&buf, out); err == nil {
		t.Error("expected Emit to refuse emitting for a program with semantic errors")
	}
}

func TestEmitWritesOneLabelPerClassAndMethodSlots(t *testing.T) {
	result := analyze(t, `class A {
  x : Int <- 0;
  f(y : Int) : Int { y };
};`)
	if result.HadErrors {
		t.Fatalf("fixture was expected to be error-free, got: %v", result.Diags.Errors())
	}

	out := FromResult(result)
	var buf bytes.Buffer
	if err := Emit(&buf, out); err != nil {
		t.Fatalf("Emit returned an error: %v", err)
	}

	text := buf.String()
	if !strings.Contains(text, ".globl Cool_A") {
		t.Errorf("expected a label for class A, got:\n%s", text)
	}
	if !strings.Contains(text, "method slot: A.f(1 arg(s)) -> Int") {
		t.Errorf("expected a method slot comment for A.f, got:\n%s", text)
	}
	if !strings.Contains(text, ".globl Cool_Object") {
		t.Errorf("expected built-in classes to get labels too, got:\n%s", text)
	}
}
