// Package ast defines the Abstract Syntax Tree node types for Cool.
package ast

import (
	"bytes"
	"fmt"

	"github.com/coolc/coolc/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is any node that yields a value and a static type.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of the AST: an ordered sequence of classes, order
// preserved for deterministic diagnostics.
type Program struct {
	Classes []*Class
}

func (p *Program) Pos() token.Position {
	if len(p.Classes) > 0 {
		return p.Classes[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, c := range p.Classes {
		out.WriteString(c.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Identifier names a class, method, attribute, formal, or variable. Every
// name reference in the AST carries a position for diagnostics.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()     {}
func (i *Identifier) Pos() token.Position { return i.Token.Pos }
func (i *Identifier) String() string      { return i.Value }

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()     {}
func (il *IntegerLiteral) Pos() token.Position { return il.Token.Pos }
func (il *IntegerLiteral) String() string      { return il.Token.Literal }

// StringLiteral is a string constant.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()     {}
func (sl *StringLiteral) Pos() token.Position { return sl.Token.Pos }
func (sl *StringLiteral) String() string      { return fmt.Sprintf("%q", sl.Value) }

// BooleanLiteral is a true/false constant.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()     {}
func (bl *BooleanLiteral) Pos() token.Position { return bl.Token.Pos }
func (bl *BooleanLiteral) String() string      { return bl.Token.Literal }
