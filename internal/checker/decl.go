package checker

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/exprcheck"
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/types"
)

// initializeConstant runs the constant-declaration entity initializer
// for one entity: cycle check, optional constant-representable type
// expression, initializer evaluation, and installation via the
// assignment coercer.
func (c *Context) initializeConstant(e *scope.Entity, decl *DeclarationInfo, initExpr ast.Expression) {
	if e.State == scope.InProgress {
		c.AddError(e.Token.Pos, "illegal cyclic declaration of %s", e.Name)
		e.Type = types.Invalid
		e.State = scope.Resolved
		return
	}
	e.State = scope.InProgress
	defer func() { e.State = scope.Resolved }()

	var declType types.Type
	if decl.TypeExpr != nil {
		declType = exprcheck.CheckType(c, decl.Scope, decl.TypeExpr, "")
		if !types.IsInvalid(declType) && !types.IsConstantRepresentable(declType) {
			c.AddError(decl.TypeExpr.Pos(), "%s is not a valid constant type", declType.String())
			declType = types.Invalid
		}
		e.Type = declType
	}

	if initExpr == nil {
		if e.Type == nil {
			e.Type = types.Invalid
		}
		return
	}

	o := exprcheck.CheckExpression(c, decl.Scope, initExpr)
	if o.IsInvalid() {
		e.Type = types.Invalid
		return
	}
	if o.Mode != exprcheck.ConstantMode {
		c.AddError(initExpr.Pos(), "`%s` is not a constant", e.Name)
		e.Type = types.Invalid
		return
	}

	c.coerce(o, declType, "constant declaration")
	if o.IsInvalid() {
		e.Type = types.Invalid
		return
	}
	if e.Type == nil {
		e.Type = o.Type
	}
	e.Value = o.Value
}

// initializeVariable runs the variable-declaration entity initializer
// over every entity sharing one var statement, handling both the
// single-name and multi-name forms.
func (c *Context) initializeVariable(ents []*scope.Entity, decl *DeclarationInfo, pos ast.Node) {
	for _, e := range ents {
		if e.State == scope.InProgress {
			c.AddError(e.Token.Pos, "illegal cyclic declaration of %s", e.Name)
			e.Type = types.Invalid
			e.State = scope.Resolved
		}
	}

	var declType types.Type
	if decl.TypeExpr != nil {
		declType = exprcheck.CheckType(c, decl.Scope, decl.TypeExpr, "")
		for _, e := range ents {
			if e.State != scope.Resolved {
				e.Type = declType
			}
		}
	}

	active := make([]*scope.Entity, 0, len(ents))
	for _, e := range ents {
		if e.State != scope.Resolved {
			e.State = scope.InProgress
			active = append(active, e)
		}
	}

	if len(decl.Init) == 0 {
		for _, e := range active {
			if e.Type == nil {
				c.AddError(pos.Pos(), "missing type or initializer for %s", e.Name)
				e.Type = types.Invalid
			}
			e.State = scope.Resolved
		}
		return
	}

	if len(ents) == 1 && len(decl.Init) == 1 {
		o := exprcheck.CheckExpression(c, decl.Scope, decl.Init[0])
		c.coerce(o, declType, "variable declaration")
		e := ents[0]
		if o.IsInvalid() {
			e.Type = types.Invalid
		} else if e.Type == nil {
			e.Type = o.Type
		}
		e.State = scope.Resolved
		return
	}

	// Every name keeps its position against the right-hand side, including
	// a reused, already-resolved local, which keeps its existing type.
	c.bindDeclaration(ents, declType, decl.Init, pos)
	for _, e := range active {
		e.State = scope.Resolved
	}
}

// initializeTypeName runs the type-declaration entity initializer:
// installs a fresh Named shell before recursively resolving the
// right-hand type expression (so pointer/slice indirection can close
// a self-reference), then collapses any transient Named layer so the
// named type's base is a concrete constructor.
func (c *Context) initializeTypeName(e *scope.Entity, decl *DeclarationInfo) {
	named := &types.Named{Name: e.Name}
	e.Type = named
	e.State = scope.InProgress

	base := exprcheck.CheckType(c, decl.Scope, decl.TypeExpr, "")
	if n, ok := base.(*types.Named); ok && n == named {
		c.AddError(decl.TypeExpr.Pos(), "illegal cyclic declaration of %s", e.Name)
		named.Base = types.Invalid
	} else if types.IsInvalid(base) {
		named.Base = types.Invalid
	} else {
		named.Base = types.GetBaseType(base)
	}
	e.State = scope.Resolved
}

// initializeProcedure runs the procedure-declaration entity
// initializer: builds the signature shell (supporting mutual
// recursion), resolves the parameter/result types in a fresh
// parameter scope rooted at the file scope, validates the tag set,
// and either checks the body immediately or enqueues it for the
// deferred worklist.
func (c *Context) initializeProcedure(e *scope.Entity, decl *DeclarationInfo, checkBodyLater bool) {
	pd := decl.ProcDecl
	sig := &types.Procedure{}
	e.Type = sig
	e.State = scope.InProgress

	prevScope := c.CurrScope
	c.CurrScope = scope.New(scope.ProcedureScope, c.FileScope)
	decl.Scope = c.CurrScope

	sig.Params = paramsTuple(c, pd.Type.Params)
	sig.Results = paramsTuple(c, pd.Type.Results)

	foreign, inline, noInline := false, false, false
	for _, tag := range pd.Tags {
		switch tag {
		case "foreign":
			foreign = true
		case "inline":
			inline = true
		case "no_inline":
			noInline = true
		default:
			c.AddError(pd.Pos(), "unknown procedure tag @%s", tag)
		}
	}
	if inline && noInline {
		c.AddError(pd.Pos(), "procedure cannot be tagged both inline and no_inline")
	}
	if foreign && pd.Body != nil {
		c.AddError(pd.Pos(), "foreign procedure cannot have a body")
	}

	e.State = scope.Resolved

	if pd.Body != nil && !foreign {
		if checkBodyLater {
			bodyScope := c.CurrScope
			c.CurrScope = prevScope
			c.deferBodyIn(e, decl, sig, pd.Body, bodyScope)
			return
		}
		c.checkProcedureBody(e, decl, sig, pd.Body)
	}

	c.CurrScope = prevScope
}

func paramsTuple(c *Context, fl *ast.FieldList) *types.Tuple {
	if fl == nil {
		return &types.Tuple{}
	}
	var vars []types.TupleVar
	for _, f := range fl.List {
		t := exprcheck.CheckType(c, c.CurrScope, f.Type, "")
		if len(f.Names) == 0 {
			vars = append(vars, types.TupleVar{Type: t})
			continue
		}
		for _, n := range f.Names {
			vars = append(vars, types.TupleVar{Name: n.Value, Type: t})
			ent := scope.NewVariable(n.Value, n.Token, c.CurrScope)
			ent.Type = t
			ent.State = scope.Resolved
			c.CurrScope.Define(ent)
		}
	}
	return &types.Tuple{Vars: vars}
}

// checkProcedureBody checks a procedure's statement list with its
// signature pushed onto the procedure stack, inside the parameter
// scope that declared its results and parameters.
func (c *Context) checkProcedureBody(e *scope.Entity, decl *DeclarationInfo, sig *types.Procedure, body *ast.BlockStatement) {
	prevScope := c.CurrScope
	c.CurrScope = decl.Scope
	c.PushProcedure(sig)

	c.checkStatementList(body.Statements)

	c.PopProcedure()
	c.CurrScope = prevScope

	if sig.Results.Len() > 0 && !terminatesList(body.Statements) {
		c.AddError(body.Pos(), "Missing return statement at the end of the procedure")
	}
}

func (c *Context) deferBodyIn(e *scope.Entity, decl *DeclarationInfo, sig *types.Procedure, body *ast.BlockStatement, bodyScope *scope.Scope) {
	decl.Scope = bodyScope
	c.deferBody(e, decl, sig, body)
}

// checkVarDecl dispatches a var-declaration statement to its mutable
// or immutable handling.
func (c *Context) checkVarDecl(st *ast.VarDeclStatement) {
	if st.Mutable {
		c.checkMutableVarDecl(st)
		return
	}
	c.checkConstDecl(st)
}

// checkMutableVarDecl implements the `var` form: names are looked up
// in the current scope and reused if already declared there
// (supporting Go-style mixed redeclaration), the shared type
// expression is resolved once, and new entities are registered into
// the scope only after the initializer has been checked.
func (c *Context) checkMutableVarDecl(st *ast.VarDeclStatement) {
	ents := make([]*scope.Entity, len(st.Names))
	for i, n := range st.Names {
		if n.IsBlank() {
			ents[i] = scope.NewDummy(n.Token)
			continue
		}
		if existing, ok := c.CurrScope.LookupLocal(n.Value); ok {
			ents[i] = existing
			continue
		}
		ents[i] = scope.NewVariable(n.Value, n.Token, c.CurrScope)
	}

	decl := &DeclarationInfo{Scope: c.CurrScope, Entities: ents, TypeExpr: st.Type, Init: st.Values}
	prevDecl := c.Decl
	c.Decl = decl
	c.initializeVariable(ents, decl, st)
	c.Decl = prevDecl

	for i, n := range st.Names {
		if n.IsBlank() {
			continue
		}
		c.Entities[ents[i]] = decl
		c.CurrScope.Define(ents[i])
	}
}

// checkConstDecl implements the `::` immutable form: names pair to
// values one-for-one, each as its own constant declaration.
func (c *Context) checkConstDecl(st *ast.VarDeclStatement) {
	if len(st.Values) == 0 && st.Type == nil {
		c.AddError(st.Pos(), "constant declaration requires a type or an initializer")
	}
	if len(st.Names) > len(st.Values) {
		c.AddError(st.Pos(), "too few values on the right hand side of the declaration")
	}

	for i, n := range st.Names {
		var initExpr ast.Expression
		if i < len(st.Values) {
			initExpr = st.Values[i]
		}

		var ent *scope.Entity
		if n.IsBlank() {
			ent = scope.NewDummy(n.Token)
		} else {
			ent = scope.NewConstant(n.Value, n.Token, c.CurrScope)
		}

		decl := &DeclarationInfo{Scope: c.CurrScope, Entities: []*scope.Entity{ent}, TypeExpr: st.Type, Init: []ast.Expression{initExpr}}
		prevDecl := c.Decl
		c.Decl = decl
		c.initializeConstant(ent, decl, initExpr)
		c.Decl = prevDecl

		if !n.IsBlank() {
			c.Entities[ent] = decl
			c.CurrScope.Define(ent)
		}
	}
}

// checkProcDeclStatement creates the procedure entity, registers it
// immediately (so mutual recursion and forward references resolve),
// and runs the procedure entity initializer.
func (c *Context) checkProcDeclStatement(st *ast.ProcDeclStatement) {
	ent := scope.NewProcedure(st.Name.Value, st.Token, c.CurrScope)
	c.CurrScope.Define(ent)
	decl := &DeclarationInfo{Scope: c.CurrScope, ProcDecl: st}
	c.Entities[ent] = decl

	prevDecl := c.Decl
	c.Decl = decl
	c.initializeProcedure(ent, decl, c.DeferBodies)
	c.Decl = prevDecl
}

// checkTypeDeclStatement creates the type-name entity, registers it,
// and runs the type-name entity initializer.
func (c *Context) checkTypeDeclStatement(st *ast.TypeDeclStatement) {
	ent := scope.NewTypeName(st.Name.Value, st.Token, c.CurrScope)
	c.CurrScope.Define(ent)
	decl := &DeclarationInfo{Scope: c.CurrScope, TypeExpr: st.Type}
	c.Entities[ent] = decl

	prevDecl := c.Decl
	c.Decl = decl
	c.initializeTypeName(ent, decl)
	c.Decl = prevDecl
}
