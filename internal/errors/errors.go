// Package errors formats compiler diagnostics: a caret-annotated human
// format for terminal output, plus the line-based wire format that is
// part of the semantic analyzer's external contract.
package errors

import (
	"fmt"
	"strings"

	"github.com/coolc/coolc/internal/token"
)

// Kind classifies a semantic error for programmatic inspection.
type Kind string

const (
	KindClassDecl  Kind = "class_decl"
	KindAttribute  Kind = "attribute"
	KindMethodDecl Kind = "method_decl"
	KindOverride   Kind = "override"
	KindExpression Kind = "expression"
	KindBody       Kind = "body"
)

// CompilerError is a single diagnostic with source position and optional
// source context for human-facing display.
type CompilerError struct {
	Kind    Kind
	Pos     token.Position
	Message string
	Source  string
	File    string
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(kind Kind, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// NewCompilerErrorf is NewCompilerError with a formatted message and no
// source/file context; callers that need caret rendering pass the result to
// Diagnostics.Add, which stamps the collector's Source and File onto it.
func NewCompilerErrorf(kind Kind, pos token.Position, format string, args ...any) *CompilerError {
	return NewCompilerError(kind, pos, fmt.Sprintf(format, args...), "", "")
}

// Error implements the error interface via the semantic wire format.
func (e *CompilerError) Error() string { return e.FormatSemantic() }

// FormatSemantic renders the diagnostic in the line-based wire format:
// `"<filename>", line <L>:<C>, Semantic error: <message>`, with the
// filename clause omitted entirely when none was given.
func (e *CompilerError) FormatSemantic() string {
	if e.File != "" {
		return fmt.Sprintf("%q, line %d:%d, Semantic error: %s", e.File, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("line %d:%d, Semantic error: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Format renders a human-facing, caret-annotated diagnostic. Used by the
// CLI's --pretty mode; FormatSemantic remains the default because it is
// the format downstream tooling matches against.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Diagnostics accumulates compiler errors in emission order. Diagnostics
// are never reordered, only appended as each check fires.
type Diagnostics struct {
	errs   []*CompilerError
	Source string
	File   string
}

// NewDiagnostics creates an empty diagnostics collector bound to a source
// file (used to render %q filenames and caret source context).
func NewDiagnostics(source, file string) *Diagnostics {
	return &Diagnostics{Source: source, File: file}
}

// Addf records a new diagnostic of the given kind at pos.
func (d *Diagnostics) Addf(kind Kind, pos token.Position, format string, args ...any) {
	d.errs = append(d.errs, NewCompilerError(kind, pos, fmt.Sprintf(format, args...), d.Source, d.File))
}

// Add records a diagnostic built by one of the message-catalog
// constructors in messages.go, stamping it with this collector's source
// and filename for caret rendering.
func (d *Diagnostics) Add(e *CompilerError) {
	e.Source = d.Source
	e.File = d.File
	d.errs = append(d.errs, e)
}

// HasErrors reports whether any diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool { return len(d.errs) > 0 }

// Errors returns the recorded diagnostics in emission order.
func (d *Diagnostics) Errors() []*CompilerError { return d.errs }

// FormatSemantic renders every diagnostic, one per line, in the wire
// format.
func (d *Diagnostics) FormatSemantic() string {
	lines := make([]string, len(d.errs))
	for i, e := range d.errs {
		lines[i] = e.FormatSemantic()
	}
	return strings.Join(lines, "\n")
}

// Format renders every diagnostic in the human-facing caret format.
func (d *Diagnostics) Format(color bool) string {
	parts := make([]string, len(d.errs))
	for i, e := range d.errs {
		parts[i] = e.Format(color)
	}
	return strings.Join(parts, "\n\n")
}
