package parser

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/token"
)

// parseTypeExpr parses a type expression. It is a separate grammar
// entry point from parseExpression: `^T` and `[]T`/`[N]T` only ever
// arise in type position, so there is no ambiguity with the
// corresponding value-level prefix/index operators to resolve.
func (p *Parser) parseTypeExpr() ast.Expression {
	switch p.curTok.Type {
	case token.IDENT:
		return &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}

	case token.CARET:
		tok := p.curTok
		p.nextToken()
		elem := p.parseTypeExpr()
		return &ast.PointerTypeExpr{Token: tok, Elem: elem}

	case token.LBRACK:
		tok := p.curTok
		if p.peekIs(token.RBRACK) {
			p.nextToken()
			p.nextToken()
			elem := p.parseTypeExpr()
			return &ast.SliceTypeExpr{Token: tok, Elem: elem}
		}
		p.nextToken()
		count := p.parseExpression(LOWEST)
		if !p.expect(token.RBRACK) {
			return &ast.BadExpr{Token: tok}
		}
		p.nextToken()
		elem := p.parseTypeExpr()
		return &ast.ArrayTypeExpr{Token: tok, Count: count, Elem: elem}

	case token.PROC:
		return p.parseProcTypeExpr()

	default:
		p.addError(p.curTok.Pos, "expected a type", ErrUnexpectedToken)
		return &ast.BadExpr{Token: p.curTok}
	}
}

// parseProcTypeExpr parses `proc(params) [-> results]`.
func (p *Parser) parseProcTypeExpr() *ast.ProcTypeExpr {
	tok := p.curTok
	if !p.expect(token.LPAREN) {
		return &ast.ProcTypeExpr{Token: tok, Params: &ast.FieldList{Token: tok}}
	}
	params := p.parseFieldList(token.RPAREN)

	var results *ast.FieldList
	if p.peekIs(token.ARROW) {
		p.nextToken()
		resultsTok := p.peekTok
		if p.peekIs(token.LPAREN) {
			p.nextToken()
			results = p.parseFieldList(token.RPAREN)
		} else {
			p.nextToken()
			t := p.parseTypeExpr()
			results = &ast.FieldList{Token: resultsTok, List: []*ast.Field{{Type: t}}}
		}
	}

	return &ast.ProcTypeExpr{Token: tok, Params: params, Results: results}
}

// parseFieldList parses a parenthesized, comma-separated list of
// `name : Type` fields. The current token is the opening paren; it
// returns with the current token on the matching close paren.
func (p *Parser) parseFieldList(end token.Type) *ast.FieldList {
	fl := &ast.FieldList{Token: p.curTok}
	if p.peekIs(end) {
		p.nextToken()
		return fl
	}
	for {
		p.nextToken()
		if !p.curIs(token.IDENT) {
			p.addError(p.curTok.Pos, "expected a parameter name", ErrExpectedIdent)
			break
		}
		name := &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}
		if !p.expect(token.COLON) {
			break
		}
		p.nextToken()
		t := p.parseTypeExpr()
		fl.List = append(fl.List, &ast.Field{Names: []*ast.Identifier{name}, Type: t})

		if !p.peekIs(token.COMMA) {
			break
		}
		p.nextToken()
	}
	p.expect(end)
	return fl
}
