package checker

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/exprcheck"
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

// checkStatementList walks stmts in order without opening a new
// scope; callers that need a fresh frame (blocks, for-loops, the
// procedure body) open and close it around the call.
func (c *Context) checkStatementList(stmts []ast.Statement) {
	for _, s := range stmts {
		c.checkStatement(s)
	}
}

// checkStatement is the statement dispatcher: it classifies s by AST
// kind and routes to the matching rule.
func (c *Context) checkStatement(s ast.Statement) {
	switch st := s.(type) {
	case *ast.EmptyStmt, *ast.BadStmt, *ast.BreakStatement, *ast.ContinueStatement:
		// no-op

	case *ast.ExpressionStatement:
		c.checkExpressionStatement(st)

	case *ast.TagStatement:
		c.AddError(st.Pos(), "unsupported directive @%s", st.Tag)
		c.checkStatement(st.Stmt)

	case *ast.IncDecStatement:
		c.checkIncDec(st)

	case *ast.AssignStatement:
		c.checkAssign(st)

	case *ast.BlockStatement:
		prev := c.OpenScope(scope.Block)
		c.checkStatementList(st.Statements)
		c.CloseScope(prev)

	case *ast.IfStatement:
		c.checkIf(st)

	case *ast.ReturnStatement:
		c.checkReturn(st)

	case *ast.ForStatement:
		c.checkFor(st)

	case *ast.DeferStatement:
		c.checkDefer(st)

	case *ast.VarDeclStatement:
		c.checkVarDecl(st)

	case *ast.ProcDeclStatement:
		c.checkProcDeclStatement(st)

	case *ast.TypeDeclStatement:
		c.checkTypeDeclStatement(st)

	default:
		c.AddError(s.Pos(), "unsupported statement")
	}
}

func (c *Context) checkExpressionStatement(st *ast.ExpressionStatement) {
	o := exprcheck.CheckExpression(c, c.CurrScope, st.Expression)
	if o.IsInvalid() {
		return
	}
	if o.Mode == exprcheck.TypeMode {
		c.AddError(st.Pos(), "Is not an expression")
		return
	}
	if !isStatementExpression(st.Expression) {
		c.AddError(st.Pos(), "Expression is not used")
	}
}

// isStatementExpression reports whether expr is legal as a bare
// statement: only calls carry side effects worth standing alone.
func isStatementExpression(expr ast.Expression) bool {
	_, ok := ast.UnparenExpression(expr).(*ast.CallExpr)
	return ok
}

func (c *Context) checkIncDec(st *ast.IncDecStatement) {
	target := c.checkLValue(st.X)
	if target.IsInvalid() {
		return
	}
	if !types.IsNumeric(target.Type) {
		c.AddError(st.Pos(), "operand of %s must be numeric", st.Op.String())
		return
	}
	one := &ast.IntegerLiteral{Token: st.Token, Value: 1}
	op := token.PLUS
	if st.Op == token.DEC {
		op = token.MINUS
	}
	rhs := &ast.BinaryExpr{Token: st.Token, Left: st.X, Op: op, Right: one}
	// The synthesized binary expression is checked for its type-error
	// side effects only; the result is never assigned back to the
	// operand. Stone's checker does not model mutation through ++/--.
	exprcheck.CheckBinaryExpression(c, c.CurrScope, rhs)
}

func (c *Context) checkAssign(st *ast.AssignStatement) {
	if len(st.Lhs) == 0 {
		c.AddError(st.Pos(), "assignment requires at least one left-hand side")
		return
	}

	if st.Op == token.ASSIGN {
		c.bindAssign(st.Lhs, st.Rhs)
		return
	}

	if len(st.Lhs) != 1 || len(st.Rhs) != 1 {
		c.AddError(st.Pos(), "compound assignment requires exactly one value on each side")
		return
	}

	op := compoundOp(st.Op)
	synthesized := &ast.BinaryExpr{Token: st.Token, Left: st.Lhs[0], Op: op, Right: st.Rhs[0]}
	lv := c.checkLValue(st.Lhs[0])
	rhsOperand := exprcheck.CheckBinaryExpression(c, c.CurrScope, synthesized)
	if lv.IsInvalid() {
		return
	}
	c.coerce(rhsOperand, lv.Type, "assignment")
}

func compoundOp(op token.Type) token.Type {
	switch op {
	case token.PLUS_ASSIGN:
		return token.PLUS
	case token.MINUS_ASSIGN:
		return token.MINUS
	case token.STAR_ASSIGN:
		return token.STAR
	case token.SLASH_ASSIGN:
		return token.SLASH
	default:
		return op
	}
}

func (c *Context) checkIf(st *ast.IfStatement) {
	cond := exprcheck.CheckExpression(c, c.CurrScope, st.Condition)
	if !cond.IsInvalid() && !isBoolType(cond.Type) {
		c.AddError(st.Condition.Pos(), "non-boolean condition in if statement")
	}
	c.checkStatement(st.Consequence)
	if st.Alternative == nil {
		return
	}
	switch st.Alternative.(type) {
	case *ast.IfStatement, *ast.BlockStatement:
		c.checkStatement(st.Alternative)
	default:
		c.AddError(st.Alternative.Pos(), "invalid else statement")
	}
}

func isBoolType(t types.Type) bool {
	b, ok := types.GetBaseType(t).(*types.Basic)
	return ok && (b.Kind == types.Bool || b.Kind == types.UntypedBool)
}

func (c *Context) checkReturn(st *ast.ReturnStatement) {
	sig := c.CurrentProcedure()
	if sig == nil {
		c.AddError(st.Pos(), "return statement outside a procedure")
		return
	}
	if c.InDefer {
		c.AddError(st.Pos(), "you cannot return within a defer statement")
		return
	}

	// Pair each return expression against the procedure's results
	// tuple (expanding a single tuple-typed call across every slot),
	// then coerce each paired value to its slot's declared type.
	values, consumed := c.pairValues(st.Results, sig.Results.Len())
	for i, v := range sig.Results.Vars {
		if i >= len(values) {
			c.AddError(st.Pos(), "too few values on the right hand side of the return statement")
			break
		}
		c.coerce(values[i].operand, v.Type, "return")
	}
	if consumed < len(st.Results) {
		c.AddError(st.Pos(), "too many values on the right hand side of the return statement")
		for _, extra := range st.Results[consumed:] {
			exprcheck.CheckExpression(c, c.CurrScope, extra)
		}
	}
}

func (c *Context) checkFor(st *ast.ForStatement) {
	prev := c.OpenScope(scope.Block)
	defer c.CloseScope(prev)

	if st.Init != nil {
		c.checkStatement(st.Init)
	}
	if st.Cond != nil {
		cond := exprcheck.CheckExpression(c, c.CurrScope, st.Cond)
		if !cond.IsInvalid() && !isBoolType(cond.Type) {
			c.AddError(st.Cond.Pos(), "non-boolean condition in for statement")
		}
	}
	if st.Post != nil {
		c.checkStatement(st.Post)
	}
	c.checkStatement(st.Body)
}

func (c *Context) checkDefer(st *ast.DeferStatement) {
	switch st.Call.(type) {
	case *ast.VarDeclStatement, *ast.ProcDeclStatement, *ast.TypeDeclStatement:
		c.AddError(st.Pos(), "cannot defer a declaration")
		return
	}
	prev := c.InDefer
	c.InDefer = true
	c.checkStatement(st.Call)
	c.InDefer = prev
}
