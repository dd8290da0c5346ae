package exprcheck

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/types"
)

// ConvertToTyped materializes an untyped operand against target: a
// constant is checked for representability and retyped in place; a
// non-constant untyped operand (the `nil` literal) is simply retyped
// if target accepts it. Already-typed operands are left untouched —
// the caller's assignability judge decides whether they're compatible
// with target.
func ConvertToTyped(sink Sink, o *Operand, target types.Type) {
	if o.IsInvalid() || !types.IsUntyped(o.Type) {
		return
	}

	if o.Mode == ConstantMode {
		if !CheckValueIsExpressible(sink, o, target) {
			o.Mode = Invalid
			o.Type = types.Invalid
			return
		}
		o.Type = target
		return
	}

	// Untyped, non-constant: only the nil literal reaches here.
	if _, ok := types.GetBaseType(target).(*types.Pointer); ok || types.GetBaseType(target) == types.RAWPTR {
		o.Type = target
		return
	}
	sink.AddError(o.Expr.Pos(), "cannot use untyped nil as %s", target.String())
	o.Mode = Invalid
	o.Type = types.Invalid
}

// CheckValueIsExpressible reports whether o's constant value fits
// target, emitting a diagnostic and returning false if not.
func CheckValueIsExpressible(sink Sink, o *Operand, target types.Type) bool {
	if types.IsInvalid(target) {
		return false
	}
	if !types.IsRepresentable(o.Value, target) {
		sink.AddError(o.Expr.Pos(), "constant %s cannot be represented as %s", o.Type.String(), target.String())
		return false
	}
	return true
}

// CheckType resolves a type expression to a types.Type. A bare
// Identifier naming a declared type resolves to that entity's type
// as declared (a user type name yields its *types.Named, not the
// underlying base); if name is non-empty, the resolved type
// is wrapped fresh as a Named type with that name (used for `type T =
// <expr>` declarations, never for a plain reference to an existing
// type name).
func CheckType(sink Sink, sc *scope.Scope, expr ast.Expression, name string) types.Type {
	t := checkTypeExpr(sink, sc, expr)
	if name == "" || types.IsInvalid(t) {
		return t
	}
	return &types.Named{Name: name, Base: t}
}

func checkTypeExpr(sink Sink, sc *scope.Scope, expr ast.Expression) types.Type {
	expr = ast.UnparenExpression(expr)
	switch e := expr.(type) {
	case *ast.Identifier:
		return checkTypeIdentifier(sink, sc, e)

	case *ast.PointerTypeExpr:
		elem := checkTypeExpr(sink, sc, e.Elem)
		if types.IsInvalid(elem) {
			return types.Invalid
		}
		return &types.Pointer{Elem: elem}

	case *ast.SliceTypeExpr:
		elem := checkTypeExpr(sink, sc, e.Elem)
		if types.IsInvalid(elem) {
			return types.Invalid
		}
		return &types.Slice{Elem: elem}

	case *ast.ArrayTypeExpr:
		elem := checkTypeExpr(sink, sc, e.Elem)
		countOp := CheckExpression(sink, sc, e.Count)
		if types.IsInvalid(elem) || countOp.IsInvalid() || countOp.Value.Int == nil {
			return types.Invalid
		}
		return &types.Array{Elem: elem, Count: countOp.Value.Int.Int64()}

	case *ast.ProcTypeExpr:
		return checkProcTypeExpr(sink, sc, e)

	default:
		sink.AddError(expr.Pos(), "expected a type")
		return types.Invalid
	}
}

func checkTypeIdentifier(sink Sink, sc *scope.Scope, id *ast.Identifier) types.Type {
	ent, ok := sc.Lookup(id.Value)
	if !ok {
		sink.AddError(id.Pos(), "undeclared type: %s", id.Value)
		return types.Invalid
	}
	if ent.Kind != scope.TypeName {
		sink.AddError(id.Pos(), "%s is not a type", id.Value)
		return types.Invalid
	}
	// ent.Type may still be an in-progress *types.Named shell (its Base
	// not yet set) when this reference is reached through a pointer or
	// slice indirection inside the type's own right-hand side — that
	// is the mechanism that lets self-referential types close.
	return ent.Type
}

func checkProcTypeExpr(sink Sink, sc *scope.Scope, e *ast.ProcTypeExpr) types.Type {
	params := checkFieldListAsTuple(sink, sc, e.Params)
	results := checkFieldListAsTuple(sink, sc, e.Results)
	return &types.Procedure{Params: params, Results: results}
}

func checkFieldListAsTuple(sink Sink, sc *scope.Scope, fl *ast.FieldList) *types.Tuple {
	if fl == nil {
		return &types.Tuple{}
	}
	var vars []types.TupleVar
	for _, f := range fl.List {
		t := checkTypeExpr(sink, sc, f.Type)
		if len(f.Names) == 0 {
			vars = append(vars, types.TupleVar{Type: t})
			continue
		}
		for _, n := range f.Names {
			vars = append(vars, types.TupleVar{Name: n.Value, Type: t})
		}
	}
	return &types.Tuple{Vars: vars}
}
