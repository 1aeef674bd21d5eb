// Package parser implements a hand-written recursive-descent/Pratt parser
// for Cool, producing the AST the semantic analyzer consumes. The
// analyzer is this repository's center of gravity; the parser exists so
// the CLI and fixture tests can drive real source text through it.
package parser

import (
	"fmt"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/lexer"
	"github.com/coolc/coolc/internal/token"
)

// Precedence levels, lowest to highest, matching Cool's operator grammar:
// assignment binds loosest, dispatch (`.`/`@`) binds tightest.
const (
	_ int = iota
	LOWEST
	NOT
	COMPARE // < <= =
	SUM     // + -
	PRODUCT // * /
	ISVOID
	NEG // unary ~
	DISPATCH
)

var precedences = map[token.Type]int{
	token.NOT:    NOT,
	token.LT:     COMPARE,
	token.LE:     COMPARE,
	token.EQ:     COMPARE,
	token.PLUS:   SUM,
	token.MINUS:  SUM,
	token.STAR:   PRODUCT,
	token.SLASH:  PRODUCT,
	token.DOT:    DISPATCH,
	token.AT:     DISPATCH,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a token stream into an *ast.Program.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errors []string

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New creates a parser over l, priming the first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[token.Type]prefixParseFn{
		token.IDENT:     p.parseIdentifier,
		token.TYPEID:    p.parseIdentifier,
		token.INTEGER:   p.parseIntegerLiteral,
		token.STRING:    p.parseStringLiteral,
		token.BOOLCONST: p.parseBooleanLiteral,
		token.NOT:       p.parseNot,
		token.TILDE:     p.parseNeg,
		token.ISVOID:    p.parseIsVoid,
		token.LPAREN:    p.parseGroup,
		token.LBRACE:    p.parseBlock,
		token.IF:        p.parseIf,
		token.WHILE:     p.parseWhile,
		token.LET:       p.parseLet,
		token.CASE:      p.parseCase,
		token.NEW:       p.parseNew,
	}

	p.infixFns = map[token.Type]infixParseFn{
		token.PLUS:   p.parseBinary,
		token.MINUS:  p.parseBinary,
		token.STAR:   p.parseBinary,
		token.SLASH:  p.parseBinary,
		token.LT:     p.parseBinary,
		token.LE:     p.parseBinary,
		token.EQ:     p.parseBinary,
		token.DOT: p.parseDispatch,
		token.AT:  p.parseDispatch,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every parse error collected so far.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", p.cur.Pos.Line, fmt.Sprintf(format, args...)))
}

func (p *Parser) expect(t token.Type) bool {
	if p.cur.Type != t {
		p.errorf("expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
		return false
	}
	return true
}

func (p *Parser) expectAndAdvance(t token.Type) bool {
	if !p.expect(t) {
		return false
	}
	p.nextToken()
	return true
}

// ParseProgram parses a full program: a sequence of semicolon-terminated
// class declarations. Empty input yields an empty program and no error.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}

	for p.cur.Type != token.EOF {
		class := p.parseClass()
		if class != nil {
			prog.Classes = append(prog.Classes, class)
		}
		if p.cur.Type == token.SEMI {
			p.nextToken()
		} else {
			p.synchronizeToNextClass()
		}
	}
	return prog
}

// synchronizeToNextClass skips tokens until the start of another class
// declaration or EOF, so a single malformed class does not abort parsing
// of the rest of the program.
func (p *Parser) synchronizeToNextClass() {
	for p.cur.Type != token.EOF && p.cur.Type != token.CLASS {
		p.nextToken()
	}
}

func (p *Parser) parseClass() *ast.Class {
	tok := p.cur
	if !p.expectAndAdvance(token.CLASS) {
		return nil
	}

	if !p.expect(token.TYPEID) {
		return nil
	}
	name := &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	class := &ast.Class{Token: tok, Name: name}

	if p.cur.Type == token.INHERITS {
		p.nextToken()
		if !p.expect(token.TYPEID) {
			return class
		}
		class.Superclass = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
		p.nextToken()
	}

	if !p.expectAndAdvance(token.LBRACE) {
		return class
	}

	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		p.parseFeature(class)
		if p.cur.Type == token.SEMI {
			p.nextToken()
		} else {
			break
		}
	}
	p.expectAndAdvance(token.RBRACE)

	return class
}

func (p *Parser) parseFeature(class *ast.Class) {
	if !p.expect(token.IDENT) {
		p.nextToken()
		return
	}
	nameTok := p.cur
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
	p.nextToken()

	if p.cur.Type == token.LPAREN {
		class.Methods = append(class.Methods, p.parseMethod(name))
		return
	}
	class.Attributes = append(class.Attributes, p.parseAttribute(name))
}

func (p *Parser) parseAttribute(name *ast.Identifier) *ast.Attribute {
	attr := &ast.Attribute{Name: name}
	if !p.expectAndAdvance(token.COLON) {
		return attr
	}
	if !p.expect(token.TYPEID) {
		return attr
	}
	attr.Type = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	if p.cur.Type == token.ASSIGN {
		p.nextToken()
		attr.Value = p.parseExpression(LOWEST)
	}
	return attr
}

func (p *Parser) parseMethod(name *ast.Identifier) *ast.Method {
	method := &ast.Method{Name: name}
	if !p.expectAndAdvance(token.LPAREN) {
		return method
	}

	for p.cur.Type != token.RPAREN && p.cur.Type != token.EOF {
		method.Formals = append(method.Formals, p.parseFormal())
		if p.cur.Type == token.COMMA {
			p.nextToken()
		} else {
			break
		}
	}
	p.expectAndAdvance(token.RPAREN)

	if !p.expectAndAdvance(token.COLON) {
		return method
	}
	if !p.expect(token.TYPEID) {
		return method
	}
	method.Type = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	if !p.expectAndAdvance(token.LBRACE) {
		return method
	}
	method.Body = p.parseExpression(LOWEST)
	p.expectAndAdvance(token.RBRACE)
	return method
}

func (p *Parser) parseFormal() *ast.Formal {
	if !p.expect(token.IDENT) {
		p.nextToken()
		return &ast.Formal{}
	}
	name := &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	f := &ast.Formal{Name: name}
	if !p.expectAndAdvance(token.COLON) {
		return f
	}
	if !p.expect(token.TYPEID) {
		return f
	}
	f.Type = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()
	return f
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	// Assignment binds loosest and its left side must be a bare identifier,
	// so it is recognized here rather than folded into the infix table.
	if p.cur.Type == token.IDENT && p.peek.Type == token.ASSIGN {
		return p.parseAssign()
	}

	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.errorf("unexpected token %s (%q) in expression", p.cur.Type, p.cur.Literal)
		p.nextToken()
		return nil
	}
	left := prefix()

	for p.cur.Type != token.SEMI && precedence < p.peekPrecedenceForCur() {
		infix, ok := p.infixFns[p.cur.Type]
		if !ok {
			return left
		}
		left = infix(left)
	}
	return left
}

// peekPrecedenceForCur returns the precedence of the current token, used
// because infix parsing here advances past the operator itself inside
// each infix function rather than before calling it.
func (p *Parser) peekPrecedenceForCur() int {
	if pr, ok := precedences[p.cur.Type]; ok {
		return pr
	}
	return LOWEST
}
