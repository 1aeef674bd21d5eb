package parser

import (
	"strconv"

	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/token"
)

// Each parse*/prefix function assumes p.cur sits on the construct's first
// token on entry, and leaves p.cur on the token immediately following it.
// Infix functions additionally receive the already-parsed left operand and
// assume p.cur sits on the operator token.

func (p *Parser) parseAssign() ast.Expression {
	name := &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken() // consume identifier, cur = "<-"
	tok := p.cur
	p.nextToken() // consume "<-"
	value := p.parseExpression(LOWEST)
	return &ast.Assign{Token: tok, Name: name, Value: value}
}

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.cur
	name := &ast.Identifier{Token: tok, Value: tok.Literal}
	if p.peek.Type == token.LPAREN {
		p.nextToken() // consume identifier, cur = "("
		args := p.parseArgs()
		return &ast.Dispatch{Token: tok, Method: name, Args: args}
	}
	p.nextToken()
	return name
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.cur
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q", tok.Literal)
	}
	p.nextToken()
	return &ast.IntegerLiteral{Token: tok, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.cur
	p.nextToken()
	return &ast.StringLiteral{Token: tok, Value: tok.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	tok := p.cur
	p.nextToken()
	return &ast.BooleanLiteral{Token: tok, Value: tok.Literal == "true"}
}

func (p *Parser) parseNot() ast.Expression {
	tok := p.cur
	p.nextToken()
	expr := p.parseExpression(NOT)
	return &ast.UnaryExpr{Token: tok, Op: ast.OpNot, Expr: expr}
}

func (p *Parser) parseNeg() ast.Expression {
	tok := p.cur
	p.nextToken()
	expr := p.parseExpression(NEG)
	return &ast.UnaryExpr{Token: tok, Op: ast.OpNeg, Expr: expr}
}

func (p *Parser) parseIsVoid() ast.Expression {
	tok := p.cur
	p.nextToken()
	expr := p.parseExpression(ISVOID)
	return &ast.IsVoid{Token: tok, Expr: expr}
}

func (p *Parser) parseGroup() ast.Expression {
	tok := p.cur
	p.nextToken() // consume "("
	expr := p.parseExpression(LOWEST)
	p.expectAndAdvance(token.RPAREN)
	return &ast.GroupExpr{Token: tok, Expr: expr}
}

func (p *Parser) parseBlock() ast.Expression {
	tok := p.cur
	p.nextToken() // consume "{"
	block := &ast.Block{Token: tok}
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		expr := p.parseExpression(LOWEST)
		block.Exprs = append(block.Exprs, expr)
		if !p.expectAndAdvance(token.SEMI) {
			break
		}
	}
	p.expectAndAdvance(token.RBRACE)
	return block
}

func (p *Parser) parseIf() ast.Expression {
	tok := p.cur
	p.nextToken() // consume "if"
	pred := p.parseExpression(LOWEST)
	p.expectAndAdvance(token.THEN)
	thenExpr := p.parseExpression(LOWEST)
	p.expectAndAdvance(token.ELSE)
	elseExpr := p.parseExpression(LOWEST)
	p.expectAndAdvance(token.FI)
	return &ast.If{Token: tok, Pred: pred, Then: thenExpr, Else: elseExpr}
}

func (p *Parser) parseWhile() ast.Expression {
	tok := p.cur
	p.nextToken() // consume "while"
	pred := p.parseExpression(LOWEST)
	p.expectAndAdvance(token.LOOP)
	body := p.parseExpression(LOWEST)
	p.expectAndAdvance(token.POOL)
	return &ast.While{Token: tok, Pred: pred, Body: body}
}

func (p *Parser) parseLet() ast.Expression {
	tok := p.cur
	p.nextToken() // consume "let"

	var inits []*ast.LetInit
	for {
		inits = append(inits, p.parseLetInit())
		if p.cur.Type != token.COMMA {
			break
		}
		p.nextToken()
	}
	p.expectAndAdvance(token.IN)
	body := p.parseExpression(LOWEST)
	return &ast.Let{Token: tok, Inits: inits, Body: body}
}

func (p *Parser) parseLetInit() *ast.LetInit {
	if !p.expect(token.IDENT) {
		p.nextToken()
		return &ast.LetInit{Name: &ast.Identifier{}, Type: &ast.Identifier{}}
	}
	name := &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	init := &ast.LetInit{Name: name}
	if !p.expectAndAdvance(token.COLON) {
		return init
	}
	if !p.expect(token.TYPEID) {
		return init
	}
	init.Type = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	if p.cur.Type == token.ASSIGN {
		p.nextToken()
		init.Init = p.parseExpression(LOWEST)
	}
	return init
}

func (p *Parser) parseCase() ast.Expression {
	tok := p.cur
	p.nextToken() // consume "case"
	expr := p.parseExpression(LOWEST)
	p.expectAndAdvance(token.OF)

	c := &ast.Case{Token: tok, Expr: expr}
	for p.cur.Type != token.ESAC && p.cur.Type != token.EOF {
		c.Branches = append(c.Branches, p.parseCaseBranch())
		if !p.expectAndAdvance(token.SEMI) {
			break
		}
	}
	p.expectAndAdvance(token.ESAC)
	return c
}

func (p *Parser) parseCaseBranch() *ast.CaseBranch {
	if !p.expect(token.IDENT) {
		p.nextToken()
		return &ast.CaseBranch{Name: &ast.Identifier{}, Type: &ast.Identifier{}}
	}
	name := &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	branch := &ast.CaseBranch{Name: name}
	if !p.expectAndAdvance(token.COLON) {
		return branch
	}
	if !p.expect(token.TYPEID) {
		return branch
	}
	branch.Type = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	if !p.expectAndAdvance(token.DARROW) {
		return branch
	}
	branch.Body = p.parseExpression(LOWEST)
	return branch
}

func (p *Parser) parseNew() ast.Expression {
	tok := p.cur
	p.nextToken() // consume "new"
	if !p.expect(token.TYPEID) {
		return &ast.New{Token: tok, Type: &ast.Identifier{}}
	}
	typ := &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()
	return &ast.New{Token: tok, Type: typ}
}

func (p *Parser) parseArgs() []ast.Expression {
	p.nextToken() // consume "("
	var args []ast.Expression
	if p.cur.Type == token.RPAREN {
		p.nextToken()
		return args
	}
	args = append(args, p.parseExpression(LOWEST))
	for p.cur.Type == token.COMMA {
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	p.expectAndAdvance(token.RPAREN)
	return args
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.cur
	var op ast.BinOp
	switch tok.Type {
	case token.PLUS:
		op = ast.OpAdd
	case token.MINUS:
		op = ast.OpSub
	case token.STAR:
		op = ast.OpMul
	case token.SLASH:
		op = ast.OpDiv
	case token.LT:
		op = ast.OpLt
	case token.LE:
		op = ast.OpLe
	case token.EQ:
		op = ast.OpEq
	}
	precedence := p.peekPrecedenceForCur()
	p.nextToken() // consume operator
	right := p.parseExpression(precedence)
	return &ast.BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
}

// parseDispatch handles both plain dot dispatch (expr.method(args)) and
// static dispatch (expr@Type.method(args)); p.cur is "." or "@" on entry.
func (p *Parser) parseDispatch(left ast.Expression) ast.Expression {
	tok := p.cur

	var staticType *ast.Identifier
	if p.cur.Type == token.AT {
		p.nextToken() // consume "@"
		if p.expect(token.TYPEID) {
			staticType = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
			p.nextToken()
		}
		p.expectAndAdvance(token.DOT)
	} else {
		p.nextToken() // consume "."
	}

	if !p.expect(token.IDENT) {
		return left
	}
	method := &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
	p.nextToken()

	if !p.expect(token.LPAREN) {
		return left
	}
	args := p.parseArgs()

	return &ast.StaticDispatch{Token: tok, Receiver: left, StaticType: staticType, Method: method, Args: args}
}
