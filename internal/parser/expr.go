package parser

import (
	"strconv"

	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/token"
)

// parseExpression is the Pratt-parsing entry point: parse a prefix
// expression, then keep folding in infix operators whose precedence
// exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curTok.Type]
	if !ok {
		p.noPrefixParseFnError(p.curTok)
		return &ast.BadExpr{Token: p.curTok}
	}
	left := prefix()

	for !p.peekIs(token.SEMI) && minPrec < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekTok.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

// parseExpressionList parses a comma-separated list of expressions.
func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}
	p.expect(end)
	return list
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	tok := p.curTok
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.addError(tok.Pos, "invalid integer literal: "+tok.Literal, ErrUnexpectedToken)
		return &ast.BadExpr{Token: tok}
	}
	return &ast.IntegerLiteral{Token: tok, Value: v}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curTok
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.addError(tok.Pos, "invalid float literal: "+tok.Literal, ErrUnexpectedToken)
		return &ast.BadExpr{Token: tok}
	}
	return &ast.FloatLiteral{Token: tok, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curTok, Value: p.curTok.Literal}
}

func (p *Parser) parseRuneLiteral() ast.Expression {
	r := []rune(p.curTok.Literal)
	var v rune
	if len(r) > 0 {
		v = r[0]
	}
	return &ast.RuneLiteral{Token: p.curTok, Value: v}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{Token: p.curTok, Value: p.curIs(token.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curTok}
}

func (p *Parser) parseParenExpr() ast.Expression {
	tok := p.curTok
	p.nextToken()
	x := p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	return &ast.ParenExpr{Token: tok, X: x}
}

func (p *Parser) parsePrefixExpr() ast.Expression {
	tok := p.curTok
	p.nextToken()
	x := p.parseExpression(PREFIX)
	return &ast.UnaryExpr{Token: tok, Op: tok.Type, X: x}
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	tok := p.curTok
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpr{Token: tok, Left: left, Op: tok.Type, Right: right}
}

func (p *Parser) parseCallExpr(proc ast.Expression) ast.Expression {
	tok := p.curTok
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpr{Token: tok, Proc: proc, Args: args}
}

func (p *Parser) parseIndexExpr(x ast.Expression) ast.Expression {
	tok := p.curTok
	p.nextToken()
	idx := p.parseExpression(LOWEST)
	p.expect(token.RBRACK)
	return &ast.IndexExpr{Token: tok, X: x, Index: idx}
}

func (p *Parser) parseSelectorExpr(x ast.Expression) ast.Expression {
	tok := p.curTok
	if !p.expect(token.IDENT) {
		return &ast.BadExpr{Token: tok}
	}
	sel := &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}
	return &ast.SelectorExpr{Token: tok, X: x, Sel: sel}
}
