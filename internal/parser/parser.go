// Package parser implements a recursive-descent, Pratt-style parser
// that turns a token stream from internal/lexer into the
// internal/ast node types the checker walks.
//
// Stone's grammar has no construct that needs more than one
// speculative backtrack point, so the parser gets by on a plain
// two-token lookahead (curTok/peekTok) plus an explicit
// snapshot/restore for the one ambiguous construct (the for-loop
// header) rather than a general arbitrary-lookahead cursor.
package parser

import (
	"fmt"

	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/lexer"
	"github.com/stone-lang/stonec/internal/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	LOGIC_OR
	LOGIC_AND
	EQUALITY
	COMPARISON
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.Type]int{
	token.LOR:     LOGIC_OR,
	token.LAND:    LOGIC_AND,
	token.EQ:      EQUALITY,
	token.NEQ:     EQUALITY,
	token.LT:      COMPARISON,
	token.LEQ:     COMPARISON,
	token.GT:      COMPARISON,
	token.GEQ:     COMPARISON,
	token.PLUS:    SUM,
	token.MINUS:   SUM,
	token.STAR:    PRODUCT,
	token.SLASH:   PRODUCT,
	token.PERCENT: PRODUCT,
	token.LPAREN:  CALL,
	token.LBRACK:  CALL,
	token.PERIOD:  CALL,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser turns a token stream into a *ast.Program, accumulating
// ParserErrors instead of stopping at the first one: each statement
// that fails to parse is replaced with a BadStmt/BadExpr placeholder
// so the rest of the file can still be checked.
type Parser struct {
	l *lexer.Lexer

	curTok  token.Token
	peekTok token.Token

	errors []*ParserError

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.RUNE, p.parseRuneLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolLiteral)
	p.registerPrefix(token.FALSE, p.parseBoolLiteral)
	p.registerPrefix(token.NIL, p.parseNilLiteral)
	p.registerPrefix(token.LPAREN, p.parseParenExpr)
	p.registerPrefix(token.MINUS, p.parsePrefixExpr)
	p.registerPrefix(token.NOT, p.parsePrefixExpr)
	p.registerPrefix(token.CARET, p.parsePrefixExpr)
	p.registerPrefix(token.AMP, p.parsePrefixExpr)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, t := range []token.Type{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.LAND, token.LOR, token.EQ, token.NEQ,
		token.LT, token.LEQ, token.GT, token.GEQ,
	} {
		p.registerInfix(t, p.parseBinaryExpr)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpr)
	p.registerInfix(token.LBRACK, p.parseIndexExpr)
	p.registerInfix(token.PERIOD, p.parseSelectorExpr)

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every accumulated parse error.
func (p *Parser) Errors() []*ParserError {
	return p.errors
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn) { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)   { p.infixParseFns[t] = fn }

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.Next()
}

func (p *Parser) curIs(t token.Type) bool  { return p.curTok.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peekTok.Type == t }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Type]; ok {
		return prec
	}
	return LOWEST
}

// expect advances past t if it is the peek token, otherwise records a
// ParserError and leaves the cursor in place.
func (p *Parser) expect(t token.Type) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.addError(p.peekTok.Pos, fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peekTok.Type), ErrUnexpectedToken)
}

func (p *Parser) addError(pos token.Position, msg, code string) {
	p.errors = append(p.errors, NewParserError(pos, msg, code))
}

func (p *Parser) noPrefixParseFnError(t token.Token) {
	p.addError(t.Pos, fmt.Sprintf("no prefix parse function for %s found", t.Type), ErrNoPrefixParse)
}

// Parse runs the parser to completion and returns the resulting
// program; parse errors accumulate in Errors() rather than aborting.
func Parse(l *lexer.Lexer) (*ast.Program, []*ParserError) {
	p := New(l)
	prog := p.ParseProgram()
	return prog, p.errors
}

// ParseProgram parses the whole token stream as a flat statement
// list (Stone has no module/import system).
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		errCount := len(p.errors)
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		if len(p.errors) > errCount {
			p.synchronize()
		}
		p.nextToken()
	}
	return prog
}

// synchronize advances past tokens until a likely statement boundary
// (`;` or a statement-starting keyword) so one malformed statement
// doesn't cascade errors through the rest of the file.
func (p *Parser) synchronize() {
	for !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			return
		}
		switch p.peekTok.Type {
		case token.VAR, token.TYPE, token.IF, token.FOR, token.RETURN, token.DEFER, token.LBRACE, token.RBRACE:
			return
		}
		p.nextToken()
	}
}
