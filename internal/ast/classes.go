package ast

import (
	"bytes"
	"strings"

	"github.com/coolc/coolc/internal/token"
)

// Class represents a class declaration: class Name [inherits Parent] { ... }.
type Class struct {
	Token      token.Token // the "class" keyword
	Name       *Identifier
	Superclass *Identifier // nil when no explicit "inherits" clause
	Attributes []*Attribute
	Methods    []*Method
}

func (c *Class) Pos() token.Position { return c.Token.Pos }

func (c *Class) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(c.Name.Value)
	if c.Superclass != nil {
		out.WriteString(" inherits ")
		out.WriteString(c.Superclass.Value)
	}
	out.WriteString(" {\n")
	for _, a := range c.Attributes {
		out.WriteString("  " + a.String() + ";\n")
	}
	for _, m := range c.Methods {
		out.WriteString("  " + m.String() + ";\n")
	}
	out.WriteString("}")
	return out.String()
}

// Attribute is a class field declaration: name : Type [<- value].
type Attribute struct {
	Name  *Identifier
	Type  *Identifier
	Value Expression // nil when no initializer is present
}

func (a *Attribute) Pos() token.Position { return a.Name.Pos() }

func (a *Attribute) String() string {
	s := a.Name.Value + " : " + a.Type.Value
	if a.Value != nil {
		s += " <- " + a.Value.String()
	}
	return s
}

// Formal is a single method parameter: name : Type.
type Formal struct {
	Name *Identifier
	Type *Identifier
}

func (f *Formal) Pos() token.Position { return f.Name.Pos() }
func (f *Formal) String() string      { return f.Name.Value + " : " + f.Type.Value }

// Method is a class method declaration.
type Method struct {
	Name    *Identifier
	Formals []*Formal
	Type    *Identifier // declared return type
	Body    Expression
}

func (m *Method) Pos() token.Position { return m.Name.Pos() }

func (m *Method) String() string {
	formals := make([]string, len(m.Formals))
	for i, f := range m.Formals {
		formals[i] = f.String()
	}
	return m.Name.Value + "(" + strings.Join(formals, ", ") + ") : " + m.Type.Value + " { " + m.Body.String() + " }"
}
