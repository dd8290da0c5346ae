package checker

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/exprcheck"
	"github.com/stone-lang/stonec/internal/scope"
)

// checkLValue validates that lhs is mutable-addressable, returning
// the checked operand. The `_` identifier is the write-only sink: it
// is accepted unconditionally and never resolves to a scope entity.
func (c *Context) checkLValue(lhs ast.Expression) *exprcheck.Operand {
	if id, ok := ast.UnparenExpression(lhs).(*ast.Identifier); ok && id.IsBlank() {
		return &exprcheck.Operand{Mode: exprcheck.VariableMode, Expr: lhs}
	}

	var preserved *bool
	if id, ok := ast.UnparenExpression(lhs).(*ast.Identifier); ok {
		if ent, found := c.CurrScope.Lookup(id.Value); found && ent.Kind == scope.Variable {
			used := ent.Used
			preserved = &used
		}
	}

	o := exprcheck.CheckExpression(c, c.CurrScope, lhs)

	if preserved != nil {
		if id, ok := ast.UnparenExpression(lhs).(*ast.Identifier); ok {
			if ent, found := c.CurrScope.Lookup(id.Value); found {
				ent.Used = *preserved
			}
		}
	}

	if o.IsInvalid() {
		return o
	}

	if o.Mode != exprcheck.VariableMode {
		if sel, ok := ast.UnparenExpression(lhs).(*ast.SelectorExpr); ok {
			exprcheck.CheckExpression(c, c.CurrScope, sel.X)
		}
		c.AddError(lhs.Pos(), "Cannot assign to `%s`", lhs.String())
		return exprcheck.InvalidOperand(lhs)
	}

	return o
}
