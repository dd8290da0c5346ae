package exprcheck

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

// CheckBinaryExpression checks both operands, unifies their types
// (converting whichever side is untyped to the other's type, or
// defaulting both if both are untyped), and classifies the result by
// operator family: comparisons always yield bool, logical operators
// require bool operands, and arithmetic operators require the
// operands to share a numeric type (or, for `+`, a string type).
func CheckBinaryExpression(sink Sink, sc *scope.Scope, e *ast.BinaryExpr) *Operand {
	left := CheckExpression(sink, sc, e.Left)
	right := CheckExpression(sink, sc, e.Right)
	if left.IsInvalid() || right.IsInvalid() {
		return InvalidOperand(e)
	}

	switch e.Op {
	case token.LAND, token.LOR:
		return checkLogical(sink, e, left, right)
	case token.EQ, token.NEQ, token.LT, token.LEQ, token.GT, token.GEQ:
		return checkComparison(sink, e, left, right)
	default:
		return checkArithmetic(sink, e, left, right)
	}
}

func checkLogical(sink Sink, e *ast.BinaryExpr, left, right *Operand) *Operand {
	if !isBool(left.Type) || !isBool(right.Type) {
		sink.AddError(e.Pos(), "operator %s requires bool operands", e.Op.String())
		return InvalidOperand(e)
	}
	mode := Value
	if left.Mode == ConstantMode && right.Mode == ConstantMode {
		mode = ConstantMode
	}
	return &Operand{Mode: mode, Type: types.BOOL, Expr: e}
}

func checkComparison(sink Sink, e *ast.BinaryExpr, left, right *Operand) *Operand {
	if !unify(left, right) {
		sink.AddError(e.Pos(), "mismatched types %s and %s", left.Type.String(), right.Type.String())
		return InvalidOperand(e)
	}
	return &Operand{Mode: Value, Type: types.BOOL, Expr: e}
}

func checkArithmetic(sink Sink, e *ast.BinaryExpr, left, right *Operand) *Operand {
	if !unify(left, right) {
		sink.AddError(e.Pos(), "mismatched types %s and %s", left.Type.String(), right.Type.String())
		return InvalidOperand(e)
	}
	if e.Op == token.PLUS && isString(left.Type) {
		return resultOperand(e, left, right)
	}
	if !types.IsNumeric(left.Type) {
		sink.AddError(e.Pos(), "operator %s not defined for %s", e.Op.String(), left.Type.String())
		return InvalidOperand(e)
	}
	return resultOperand(e, left, right)
}

func resultOperand(e *ast.BinaryExpr, left, right *Operand) *Operand {
	mode := Value
	if left.Mode == ConstantMode && right.Mode == ConstantMode {
		mode = ConstantMode
	}
	return &Operand{Mode: mode, Type: left.Type, Expr: e}
}

// unify makes left and right agree on a single type in place,
// converting whichever side is untyped to match the other, or
// defaulting both independently when both are untyped. Reports false
// (without emitting a diagnostic; the caller owns the message) when
// the two sides cannot be reconciled.
func unify(left, right *Operand) bool {
	leftUntyped := types.IsUntyped(left.Type)
	rightUntyped := types.IsUntyped(right.Type)

	switch {
	case leftUntyped && !rightUntyped:
		left.Type = right.Type
	case rightUntyped && !leftUntyped:
		right.Type = left.Type
	case leftUntyped && rightUntyped:
		lb := left.Type.(*types.Basic)
		rb := right.Type.(*types.Basic)
		ld, lok := types.DefaultType(lb.Kind)
		rd, rok := types.DefaultType(rb.Kind)
		if !lok || !rok {
			return false
		}
		left.Type, right.Type = ld, rd
	}
	return left.Type.Equals(right.Type)
}

func isBool(t types.Type) bool {
	b, ok := types.GetBaseType(t).(*types.Basic)
	return ok && (b.Kind == types.Bool || b.Kind == types.UntypedBool)
}

func isString(t types.Type) bool {
	b, ok := types.GetBaseType(t).(*types.Basic)
	return ok && (b.Kind == types.Str || b.Kind == types.UntypedString)
}
