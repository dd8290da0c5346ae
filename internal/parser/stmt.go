package parser

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/lexer"
	"github.com/stone-lang/stonec/internal/token"
)

// parseStatement dispatches on the current token's leading keyword;
// everything that doesn't start with a keyword falls through to
// parseSimpleStatement, which disambiguates declaration/assignment/
// expression forms by scanning the operator that follows an
// expression list.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Type {
	case token.SEMI:
		return &ast.EmptyStmt{Token: p.curTok}

	case token.LBRACE:
		return p.parseBlockStatement()

	case token.IF:
		return p.parseIfStatement()

	case token.FOR:
		return p.parseForStatement()

	case token.RETURN:
		return p.parseReturnStatement()

	case token.BREAK:
		tok := p.curTok
		p.expect(token.SEMI)
		return &ast.BreakStatement{Token: tok}

	case token.CONTINUE:
		tok := p.curTok
		p.expect(token.SEMI)
		return &ast.ContinueStatement{Token: tok}

	case token.DEFER:
		return p.parseDeferStatement()

	case token.VAR:
		return p.parseVarStatement()

	case token.TYPE:
		return p.parseTypeDeclStatement()

	case token.AT:
		return p.parseTagStatement()

	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curTok}
	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		errCount := len(p.errors)
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if len(p.errors) > errCount {
			p.synchronize()
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	tok := p.curTok
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expect(token.LBRACE) {
		return &ast.IfStatement{Token: tok, Condition: cond, Consequence: &ast.BlockStatement{Token: p.curTok}}
	}
	consequence := p.parseBlockStatement()

	var alt ast.Statement
	if p.peekIs(token.ELSE) {
		p.nextToken()
		if p.peekIs(token.IF) {
			p.nextToken()
			alt = p.parseIfStatement()
		} else if p.expect(token.LBRACE) {
			alt = p.parseBlockStatement()
		}
	}

	return &ast.IfStatement{Token: tok, Condition: cond, Consequence: consequence, Alternative: alt}
}

// parseForStatement parses all three for-loop shapes Stone supports:
// infinite (`for { }`), condition-only (`for cond { }`), and the full
// C-style three-clause form (`for init; cond; post { }`).
func (p *Parser) parseForStatement() *ast.ForStatement {
	tok := p.curTok
	p.nextToken()

	if p.curIs(token.LBRACE) {
		return &ast.ForStatement{Token: tok, Body: p.parseBlockStatement()}
	}

	// Try condition-only form: a bare expression directly followed by
	// `{`. Anything else is the three-clause form.
	if !p.curIs(token.SEMI) {
		save := p.snapshot()
		expr := p.parseExpression(LOWEST)
		if p.peekIs(token.LBRACE) {
			p.nextToken()
			return &ast.ForStatement{Token: tok, Cond: expr, Body: p.parseBlockStatement()}
		}
		p.restore(save)
	}

	// Each clause below either finds curTok already sitting on the
	// separator/brace that marks an empty clause, or parses the
	// clause and then advances onto that marker itself — either way
	// exactly one shared nextToken() moves past the marker.
	var init ast.Statement
	if !p.curIs(token.SEMI) {
		init = p.parseSimpleStatementNoTerm()
		p.expect(token.SEMI)
	}
	p.nextToken()

	var cond ast.Expression
	if !p.curIs(token.SEMI) {
		cond = p.parseExpression(LOWEST)
		p.expect(token.SEMI)
	}
	p.nextToken()

	var post ast.Statement
	if !p.curIs(token.LBRACE) {
		post = p.parseSimpleStatementNoTerm()
		p.nextToken()
	}
	if !p.curIs(token.LBRACE) {
		p.addError(p.curTok.Pos, "expected { to open the loop body", ErrUnexpectedToken)
	}
	body := p.parseBlockStatement()

	return &ast.ForStatement{Token: tok, Init: init, Cond: cond, Post: post, Body: body}
}

// parserSnapshot is a lightweight position-only backtracking point,
// sufficient for the for-loop shape lookahead above since nothing
// else in Stone's grammar needs it.
type parserSnapshot struct {
	l       lexer.LexerState
	curTok  token.Token
	peekTok token.Token
}

func (p *Parser) snapshot() parserSnapshot {
	return parserSnapshot{l: p.l.SaveState(), curTok: p.curTok, peekTok: p.peekTok}
}

func (p *Parser) restore(s parserSnapshot) {
	p.l.RestoreState(s.l)
	p.curTok = s.curTok
	p.peekTok = s.peekTok
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	tok := p.curTok
	st := &ast.ReturnStatement{Token: tok}
	if !p.peekIs(token.SEMI) {
		p.nextToken()
		st.Results = append(st.Results, p.parseExpression(LOWEST))
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			st.Results = append(st.Results, p.parseExpression(LOWEST))
		}
	}
	p.expect(token.SEMI)
	return st
}

func (p *Parser) parseDeferStatement() *ast.DeferStatement {
	tok := p.curTok
	p.nextToken()
	call := p.parseStatement()
	return &ast.DeferStatement{Token: tok, Call: call}
}

// parseTagStatement parses one or more stacked `@tag` prefixes and
// recurses into the statement they annotate. A tag stack immediately
// in front of a procedure declaration folds into that declaration's
// Tags instead of producing a TagStatement wrapper, matching how
// initializeProcedure validates tags on the declaration itself.
func (p *Parser) parseTagStatement() ast.Statement {
	tok := p.curTok
	switch p.peekTok.Type {
	case token.IDENT, token.FOREIGN, token.INLINE, token.NO_INLINE:
		p.nextToken()
	default:
		p.peekError(token.IDENT)
		return &ast.BadStmt{Token: tok}
	}
	tag := p.curTok.Literal
	p.nextToken()
	inner := p.parseStatement()

	if proc, ok := inner.(*ast.ProcDeclStatement); ok {
		proc.Tags = append([]string{tag}, proc.Tags...)
		return proc
	}
	return &ast.TagStatement{Token: tok, Tag: tag, Stmt: inner}
}
