package checker

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/exprcheck"
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/types"
)

// pairedValue is one slot the multi-value binder resolved: either a
// plain checked operand, or one component of a tuple-typed operand
// shared by several slots.
type pairedValue struct {
	operand *exprcheck.Operand
	expr    ast.Expression // the owning RHS expression, for diagnostics
}

// pairValues walks rhs in order, expanding any tuple-typed multi-value
// expression into its components, until want slots have been produced
// or rhs is exhausted. It returns the produced values and the count
// of RHS expressions actually consumed.
func (c *Context) pairValues(rhs []ast.Expression, want int) (values []pairedValue, consumed int) {
	for consumed = 0; consumed < len(rhs) && len(values) < want; consumed++ {
		o := exprcheck.CheckMultiExpression(c, c.CurrScope, rhs[consumed])
		if tuple, ok := o.Type.(*types.Tuple); ok && !o.IsInvalid() {
			for _, v := range tuple.Vars {
				values = append(values, pairedValue{
					operand: &exprcheck.Operand{Mode: exprcheck.Value, Type: v.Type, Expr: rhs[consumed]},
					expr:    rhs[consumed],
				})
			}
			continue
		}
		values = append(values, pairedValue{operand: o, expr: rhs[consumed]})
	}
	return values, consumed
}

// bindAssign implements the assignment form of the multi-value
// binder: each LHS slot must already be an l-value.
func (c *Context) bindAssign(lhs, rhs []ast.Expression) {
	values, consumed := c.pairValues(rhs, len(lhs))

	for i, target := range lhs {
		lv := c.checkLValue(target)
		if i >= len(values) {
			continue
		}
		if lv.IsInvalid() {
			continue
		}
		c.coerce(values[i].operand, lv.Type, "assignment")
	}

	for _, extra := range rhs[consumed:] {
		exprcheck.CheckExpression(c, c.CurrScope, extra)
	}
}

// bindDeclaration implements the declaration-initialization form:
// ents are freshly created (not yet registered) entities sharing one
// right-hand side. declType, if non-nil, has already been resolved
// and applies to every entity. Cardinality mismatches are reported as
// "too few"/"too many values on the right hand side of the
// declaration" against pos.
func (c *Context) bindDeclaration(ents []*scope.Entity, declType types.Type, rhs []ast.Expression, pos ast.Node) {
	if len(rhs) == 0 {
		for _, e := range ents {
			if declType == nil {
				e.Type = types.Invalid
			} else {
				e.Type = declType
			}
		}
		return
	}

	values, consumed := c.pairValues(rhs, len(ents))

	for i, e := range ents {
		if i >= len(values) {
			if declType == nil && e.Type == nil {
				c.AddError(pos.Pos(), "too few values on the right hand side of the declaration")
				e.Type = types.Invalid
			} else if declType != nil {
				e.Type = declType
			}
			continue
		}
		o := values[i].operand
		c.coerce(o, declType, "declaration")
		if e.Type == nil {
			if o.IsInvalid() {
				e.Type = types.Invalid
			} else {
				e.Type = o.Type
			}
		}
		if e.Kind == scope.Constant {
			e.Value = o.Value
		}
	}

	if consumed < len(rhs) {
		c.AddError(pos.Pos(), "too many values on the right hand side of the declaration")
		for _, extra := range rhs[consumed:] {
			exprcheck.CheckExpression(c, c.CurrScope, extra)
		}
	}
}
