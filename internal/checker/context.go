// Package checker implements the statement and declaration checker: a
// mutually-recursive, type-directed walk over an already-parsed AST
// that resolves identifiers, runs assignability and constant-folding
// rules from internal/types and internal/exprcheck, performs
// termination analysis for mandatory-return enforcement, and reports
// diagnostics through internal/errors. It assumes a populated lexical
// scope graph; lexing, parsing, and the expression-checker's own
// internals live in sibling packages.
package checker

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/errors"
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

// DeclarationInfo is the per-entity record the dispatcher attaches
// when it first sees a declaration: the declaring scope, the sibling
// entities sharing one right-hand side (multi-name var/const forms),
// the type expression AST (if any), the initializer expression AST
// (if any), and — for procedures — the declaration AST itself.
type DeclarationInfo struct {
	Scope    *scope.Scope
	Entities []*scope.Entity
	TypeExpr ast.Expression
	Init     []ast.Expression
	ProcDecl *ast.ProcDeclStatement
}

type deferredBody struct {
	entity *scope.Entity
	decl   *DeclarationInfo
	sig    *types.Procedure
	body   *ast.BlockStatement
}

// Context is the mutable state threaded through every checker
// operation: the current and file scopes, the stack of enclosing
// procedure signatures, whether we're inside a defer statement, the
// entity->declaration map, the currently-active declaration (for
// cycle diagnostics raised from within the expression checker), and
// the accumulated diagnostics.
type Context struct {
	CurrScope  *scope.Scope
	FileScope  *scope.Scope
	ProcStack  []*types.Procedure
	InDefer    bool
	Entities   map[*scope.Entity]*DeclarationInfo
	Decl       *DeclarationInfo
	Source     string
	File       string
	Errors     []*errors.Diagnostic
	worklist   []deferredBody

	// DeferBodies is true while walking the top-level file statement
	// list, so forward references between procedures resolve against
	// completed signatures rather than a partially-checked body. It is
	// false once inside any procedure body, where a nested procedure
	// declaration checks its own body immediately.
	DeferBodies bool
}

// New creates a Context rooted at a fresh file scope, with the
// predeclared type names already installed.
func New(source, file string) *Context {
	fileScope := scope.New(scope.File, nil)
	registerBuiltinTypes(fileScope)
	return &Context{
		CurrScope: fileScope,
		FileScope: fileScope,
		Entities:  make(map[*scope.Entity]*DeclarationInfo),
		Source:    source,
		File:      file,
	}
}

// AddError implements exprcheck.Sink, letting the expression checker
// report through the same diagnostics sink as the statement
// dispatcher.
func (c *Context) AddError(pos token.Position, format string, args ...any) {
	c.Errors = append(c.Errors, errors.New(pos, c.Source, c.File, format, args...))
}

// HasErrors reports whether any diagnostic has been recorded.
func (c *Context) HasErrors() bool {
	return len(c.Errors) > 0
}

// OpenScope pushes a new scope of kind enclosed by the current one and
// makes it current.
func (c *Context) OpenScope(kind scope.ScopeKind) *scope.Scope {
	s := scope.New(kind, c.CurrScope)
	c.CurrScope = s
	return s
}

// CloseScope restores the previous current scope. Callers must pair
// every OpenScope with exactly one CloseScope on every exit path,
// including error returns.
func (c *Context) CloseScope(prev *scope.Scope) {
	c.CurrScope = prev
}

// PushProcedure enters a procedure body, making sig available to
// Return-statement checking.
func (c *Context) PushProcedure(sig *types.Procedure) {
	c.ProcStack = append(c.ProcStack, sig)
}

// PopProcedure leaves the innermost procedure body.
func (c *Context) PopProcedure() {
	c.ProcStack = c.ProcStack[:len(c.ProcStack)-1]
}

// CurrentProcedure returns the signature of the innermost enclosing
// procedure, or nil outside any procedure body.
func (c *Context) CurrentProcedure() *types.Procedure {
	if len(c.ProcStack) == 0 {
		return nil
	}
	return c.ProcStack[len(c.ProcStack)-1]
}

// deferBody enqueues a procedure body for checking after the
// top-level statement list has been fully walked, letting forward
// references across procedures resolve against completed signatures.
func (c *Context) deferBody(entity *scope.Entity, decl *DeclarationInfo, sig *types.Procedure, body *ast.BlockStatement) {
	c.worklist = append(c.worklist, deferredBody{entity: entity, decl: decl, sig: sig, body: body})
}

// drainWorklist checks every deferred procedure body, in the order
// they were declared.
func (c *Context) drainWorklist() {
	for len(c.worklist) > 0 {
		item := c.worklist[0]
		c.worklist = c.worklist[1:]
		c.checkProcedureBody(item.entity, item.decl, item.sig, item.body)
	}
}
