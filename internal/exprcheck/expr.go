package exprcheck

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

// CheckExpression checks expr in a single-value context. Multi-value
// calls still come back with a Tuple-typed operand; it is the
// assignment coercer's job to reject a tuple where a single value is
// required.
func CheckExpression(sink Sink, sc *scope.Scope, expr ast.Expression) *Operand {
	return CheckMultiExpression(sink, sc, expr)
}

// CheckMultiExpression is the single entry point every expression
// kind flows through. It resolves identifiers against sc, folds
// literals into untyped constant operands, and recurses into
// composite expressions.
func CheckMultiExpression(sink Sink, sc *scope.Scope, expr ast.Expression) *Operand {
	expr = ast.UnparenExpression(expr)
	if expr == nil {
		return InvalidOperand(expr)
	}

	switch e := expr.(type) {
	case *ast.BadExpr:
		return InvalidOperand(expr)

	case *ast.Identifier:
		return checkIdentifier(sink, sc, e)

	case *ast.IntegerLiteral:
		return &Operand{Mode: ConstantMode, Type: types.UNTYPED_INT, Expr: expr, Value: types.NewInt(e.Value)}

	case *ast.FloatLiteral:
		return &Operand{Mode: ConstantMode, Type: types.UNTYPED_FLOAT, Expr: expr, Value: types.NewFloat(e.Value)}

	case *ast.StringLiteral:
		return &Operand{Mode: ConstantMode, Type: types.UNTYPED_STRING, Expr: expr, Value: types.NewString(e.Value)}

	case *ast.RuneLiteral:
		return &Operand{Mode: ConstantMode, Type: types.UNTYPED_RUNE, Expr: expr, Value: types.NewRune(e.Value)}

	case *ast.BoolLiteral:
		return &Operand{Mode: ConstantMode, Type: types.UNTYPED_BOOL, Expr: expr, Value: types.NewBool(e.Value)}

	case *ast.NilLiteral:
		return &Operand{Mode: Value, Type: types.UNTYPED_POINTER, Expr: expr}

	case *ast.UnaryExpr:
		return checkUnary(sink, sc, e)

	case *ast.BinaryExpr:
		return CheckBinaryExpression(sink, sc, e)

	case *ast.CallExpr:
		return checkCall(sink, sc, e)

	case *ast.SelectorExpr:
		return checkSelector(sink, sc, e)

	case *ast.IndexExpr:
		return checkIndex(sink, sc, e)

	default:
		sink.AddError(expr.Pos(), "unsupported expression")
		return InvalidOperand(expr)
	}
}

func checkIdentifier(sink Sink, sc *scope.Scope, id *ast.Identifier) *Operand {
	if id.IsBlank() {
		sink.AddError(id.Pos(), "cannot use `_` as a value")
		return InvalidOperand(id)
	}

	ent, ok := sc.Lookup(id.Value)
	if !ok {
		sink.AddError(id.Pos(), "undeclared name: %s", id.Value)
		return InvalidOperand(id)
	}

	if ent.State == scope.InProgress {
		sink.AddError(id.Pos(), "illegal cyclic reference to %s", id.Value)
		return InvalidOperand(id)
	}

	ent.Used = true

	switch ent.Kind {
	case scope.Variable:
		return &Operand{Mode: VariableMode, Type: ent.Type, Expr: id}
	case scope.Constant:
		return &Operand{Mode: ConstantMode, Type: ent.Type, Expr: id, Value: ent.Value}
	case scope.TypeName:
		return &Operand{Mode: TypeMode, Type: ent.Type, Expr: id}
	case scope.Procedure:
		return &Operand{Mode: Value, Type: ent.Type, Expr: id}
	default:
		return InvalidOperand(id)
	}
}

func checkUnary(sink Sink, sc *scope.Scope, e *ast.UnaryExpr) *Operand {
	x := CheckExpression(sink, sc, e.X)
	if x.IsInvalid() {
		return InvalidOperand(e)
	}
	switch e.Op {
	case token.NOT:
		return &Operand{Mode: Value, Type: x.Type, Expr: e}
	default:
		if !types.IsNumeric(x.Type) {
			sink.AddError(e.Pos(), "operator %s not defined for %s", e.Op.String(), x.Type.String())
			return InvalidOperand(e)
		}
		return &Operand{Mode: x.Mode, Type: x.Type, Expr: e, Value: x.Value}
	}
}

func checkCall(sink Sink, sc *scope.Scope, e *ast.CallExpr) *Operand {
	proc := CheckExpression(sink, sc, e.Proc)
	if proc.IsInvalid() {
		for _, a := range e.Args {
			CheckExpression(sink, sc, a)
		}
		return InvalidOperand(e)
	}

	sig, ok := proc.Type.(*types.Procedure)
	if !ok {
		sink.AddError(e.Pos(), "cannot call non-procedure value")
		for _, a := range e.Args {
			CheckExpression(sink, sc, a)
		}
		return InvalidOperand(e)
	}

	if len(e.Args) != sig.Params.Len() {
		sink.AddError(e.Pos(), "wrong number of arguments: expected %d, got %d", sig.Params.Len(), len(e.Args))
	}

	for i, a := range e.Args {
		arg := CheckExpression(sink, sc, a)
		if arg.IsInvalid() || i >= sig.Params.Len() {
			continue
		}
		ConvertToTyped(sink, arg, sig.Params.Vars[i].Type)
	}

	switch sig.Results.Len() {
	case 0:
		return &Operand{Mode: NoValue, Type: types.Invalid, Expr: e}
	case 1:
		return &Operand{Mode: Value, Type: sig.Results.Vars[0].Type, Expr: e}
	default:
		return &Operand{Mode: Value, Type: sig.Results, Expr: e}
	}
}

func checkSelector(sink Sink, sc *scope.Scope, e *ast.SelectorExpr) *Operand {
	x := CheckExpression(sink, sc, e.X)
	if x.IsInvalid() {
		return InvalidOperand(e)
	}
	sink.AddError(e.Pos(), "undefined field or method: %s", e.Sel.Value)
	return InvalidOperand(e)
}

func checkIndex(sink Sink, sc *scope.Scope, e *ast.IndexExpr) *Operand {
	x := CheckExpression(sink, sc, e.X)
	idx := CheckExpression(sink, sc, e.Index)
	if x.IsInvalid() || idx.IsInvalid() {
		return InvalidOperand(e)
	}
	if !types.IsNumeric(idx.Type) {
		sink.AddError(e.Index.Pos(), "index must be numeric")
		return InvalidOperand(e)
	}
	switch base := types.GetBaseType(x.Type).(type) {
	case *types.Array:
		return &Operand{Mode: VariableMode, Type: base.Elem, Expr: e}
	case *types.Slice:
		return &Operand{Mode: VariableMode, Type: base.Elem, Expr: e}
	default:
		sink.AddError(e.X.Pos(), "cannot index non-array/slice type %s", x.Type.String())
		return InvalidOperand(e)
	}
}
