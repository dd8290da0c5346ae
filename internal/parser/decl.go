package parser

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/token"
)

// parseSimpleStatement parses the statement forms that don't start
// with a keyword: plain/compound assignment, inc/dec, `:=`/`::`
// declarations, and bare expression statements. It consumes the
// trailing `;`.
func (p *Parser) parseSimpleStatement() ast.Statement {
	return p.parseSimpleStatementCore(true)
}

// parseSimpleStatementNoTerm is the same grammar used for a
// for-loop's post clause, which is not itself `;`-terminated (the
// loop header's own semicolons delimit it).
func (p *Parser) parseSimpleStatementNoTerm() ast.Statement {
	return p.parseSimpleStatementCore(false)
}

// parseSimpleStatementCore parses a comma-separated expression list,
// then dispatches on the operator that follows it. Go's own parser
// resolves the same `x, y := ...` vs `x, y = ...` vs `x` ambiguity
// this way: parse the list once as expressions, decide its meaning
// from what comes next.
func (p *Parser) parseSimpleStatementCore(consumeSemi bool) ast.Statement {
	tok := p.curTok
	list := []ast.Expression{p.parseExpression(LOWEST)}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	var stmt ast.Statement
	switch {
	case p.peekIs(token.DEFINE):
		stmt = p.finishShortVarDecl(tok, list)

	case p.peekIs(token.DCOLON):
		p.nextToken()
		stmt = p.finishColonDecl(tok, list)

	case isAssignOp(p.peekTok.Type):
		p.nextToken()
		op := p.curTok.Type
		p.nextToken()
		rhs := []ast.Expression{p.parseExpression(LOWEST)}
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			rhs = append(rhs, p.parseExpression(LOWEST))
		}
		stmt = &ast.AssignStatement{Token: tok, Lhs: list, Op: op, Rhs: rhs}

	case p.peekIs(token.INC), p.peekIs(token.DEC):
		p.nextToken()
		if len(list) != 1 {
			p.addError(tok.Pos, "inc/dec statement requires exactly one operand", ErrUnexpectedToken)
			stmt = &ast.BadStmt{Token: tok}
		} else {
			stmt = &ast.IncDecStatement{Token: tok, X: list[0], Op: p.curTok.Type}
		}

	default:
		if len(list) == 1 {
			stmt = &ast.ExpressionStatement{Token: tok, Expression: list[0]}
		} else {
			p.addError(tok.Pos, "unexpected comma-separated expression list", ErrUnexpectedToken)
			stmt = &ast.BadStmt{Token: tok}
		}
	}

	// A procedure declaration manages its own terminator (a `;` for a
	// foreign/bodyless form, nothing after a `{ }` body), so it never
	// goes through the generic trailing-semicolon consumption below.
	if _, isProc := stmt.(*ast.ProcDeclStatement); isProc {
		return stmt
	}

	if consumeSemi {
		p.expect(token.SEMI)
	}
	return stmt
}

func isAssignOp(t token.Type) bool {
	switch t {
	case token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN:
		return true
	default:
		return false
	}
}

// exprsToIdents converts a parsed expression list into an identifier
// list, as required on the left of `:=` and `::`.
func (p *Parser) exprsToIdents(list []ast.Expression) ([]*ast.Identifier, bool) {
	idents := make([]*ast.Identifier, len(list))
	for i, e := range list {
		id, ok := e.(*ast.Identifier)
		if !ok {
			p.addError(e.Pos(), "expected an identifier", ErrExpectedIdent)
			return nil, false
		}
		idents[i] = id
	}
	return idents, true
}

// finishShortVarDecl builds the `x, y := expr, expr` declaration form
// once the LHS list has been parsed and peekTok is the `:=`.
func (p *Parser) finishShortVarDecl(tok token.Token, lhs []ast.Expression) ast.Statement {
	names, ok := p.exprsToIdents(lhs)
	if !ok {
		return &ast.BadStmt{Token: tok}
	}
	p.nextToken()
	p.nextToken()
	values := []ast.Expression{p.parseExpression(LOWEST)}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		values = append(values, p.parseExpression(LOWEST))
	}
	return &ast.VarDeclStatement{Token: tok, Names: names, Values: values, Mutable: true}
}

// finishColonDecl parses everything after `::`: a procedure
// declaration when the single name is followed by `proc`, otherwise
// the immutable constant/type-valued declaration form.
func (p *Parser) finishColonDecl(tok token.Token, lhs []ast.Expression) ast.Statement {
	if len(lhs) == 1 && p.peekIs(token.PROC) {
		name, ok := p.exprsToIdents(lhs)
		if !ok {
			return &ast.BadStmt{Token: tok}
		}
		p.nextToken()
		return p.finishProcDecl(tok, name[0])
	}

	names, ok := p.exprsToIdents(lhs)
	if !ok {
		return &ast.BadStmt{Token: tok}
	}

	// What follows `::` is a type annotation only when it is a type-only
	// form (`^T`, `[]T`, `[N]T`) or a name directly followed by `=`
	// (`x :: int = 5`); anything else is already the first value
	// (`x :: 5`).
	var typeExpr ast.Expression
	valueAtCur := false
	if !p.peekIs(token.ASSIGN) && !p.peekIs(token.SEMI) {
		p.nextToken()
		if p.curIs(token.CARET) || p.curIs(token.LBRACK) || (p.curIs(token.IDENT) && p.peekIs(token.ASSIGN)) {
			typeExpr = p.parseTypeExpr()
		} else {
			valueAtCur = true
		}
	}

	var values []ast.Expression
	if valueAtCur || p.peekIs(token.ASSIGN) {
		if !valueAtCur {
			p.nextToken()
			p.nextToken()
		}
		values = append(values, p.parseExpression(LOWEST))
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			values = append(values, p.parseExpression(LOWEST))
		}
	}

	return &ast.VarDeclStatement{Token: tok, Names: names, Type: typeExpr, Values: values, Mutable: false}
}

// finishProcDecl parses `proc(params) [-> results] ( { body } | ; )`
// with curTok on `proc`. A declaration with no body (terminated by
// `;` instead of `{`) is the foreign-procedure shape; the checker does
// not reject a body-less procedure that lacks the `foreign` tag.
func (p *Parser) finishProcDecl(tok token.Token, name *ast.Identifier) *ast.ProcDeclStatement {
	sig := p.parseProcTypeExpr()

	var body *ast.BlockStatement
	if p.peekIs(token.LBRACE) {
		p.nextToken()
		body = p.parseBlockStatement()
	} else {
		p.expect(token.SEMI)
	}

	return &ast.ProcDeclStatement{Token: tok, Name: name, Type: sig, Body: body}
}

// parseVarStatement parses the explicit `var` keyword form. It builds
// the same mutable VarDeclStatement as `:=`, so the checker's
// mixed-redeclaration rule (reusing an existing local of the same
// name) applies to it as well.
func (p *Parser) parseVarStatement() ast.Statement {
	tok := p.curTok
	if !p.expect(token.IDENT) {
		return &ast.BadStmt{Token: tok}
	}
	names := []*ast.Identifier{{Token: p.curTok, Value: p.curTok.Literal}}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		if !p.expect(token.IDENT) {
			return &ast.BadStmt{Token: tok}
		}
		names = append(names, &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal})
	}

	var typeExpr ast.Expression
	if !p.peekIs(token.ASSIGN) && !p.peekIs(token.SEMI) {
		p.nextToken()
		typeExpr = p.parseTypeExpr()
	}

	var values []ast.Expression
	if p.peekIs(token.ASSIGN) {
		p.nextToken()
		p.nextToken()
		values = append(values, p.parseExpression(LOWEST))
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			values = append(values, p.parseExpression(LOWEST))
		}
	}

	p.expect(token.SEMI)
	return &ast.VarDeclStatement{Token: tok, Names: names, Type: typeExpr, Values: values, Mutable: true}
}

// parseTypeDeclStatement parses `type Name = TypeExpr;`.
func (p *Parser) parseTypeDeclStatement() ast.Statement {
	tok := p.curTok
	if !p.expect(token.IDENT) {
		return &ast.BadStmt{Token: tok}
	}
	name := &ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}
	if !p.expect(token.ASSIGN) {
		return &ast.BadStmt{Token: tok}
	}
	p.nextToken()
	t := p.parseTypeExpr()
	p.expect(token.SEMI)
	return &ast.TypeDeclStatement{Token: tok, Name: name, Type: t}
}
