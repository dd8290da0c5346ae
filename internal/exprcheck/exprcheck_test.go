package exprcheck

import (
	"testing"

	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

// testSink records every diagnostic instead of formatting it, so
// tests can assert on count without internal/errors.
type testSink struct {
	messages []string
}

func (s *testSink) AddError(pos token.Position, format string, args ...any) {
	s.messages = append(s.messages, format)
}

func newTestScope() *scope.Scope {
	s := scope.New(scope.File, nil)
	for name, t := range map[string]types.Type{
		"bool": types.BOOL, "int": types.INT, "string": types.STRING,
	} {
		ent := scope.NewTypeName(name, token.Token{Literal: name}, s)
		ent.Type = t
		ent.State = scope.Resolved
		s.Define(ent)
	}
	return s
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Token: token.Token{Literal: name}, Value: name}
}

func TestCheckMultiExpressionIntegerLiteral(t *testing.T) {
	sink := &testSink{}
	o := CheckMultiExpression(sink, newTestScope(), &ast.IntegerLiteral{Value: 5})
	if len(sink.messages) != 0 {
		t.Fatalf("unexpected errors: %v", sink.messages)
	}
	if o.Mode != ConstantMode || !o.Type.Equals(types.UNTYPED_INT) {
		t.Errorf("got mode=%s type=%s, want constant untyped int", o.Mode, o.Type)
	}
}

func TestCheckMultiExpressionUndeclaredIdentifier(t *testing.T) {
	sink := &testSink{}
	o := CheckMultiExpression(sink, newTestScope(), ident("nope"))
	if len(sink.messages) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.messages), sink.messages)
	}
	if !o.IsInvalid() {
		t.Error("undeclared identifier should yield an invalid operand")
	}
}

func TestCheckMultiExpressionBlankIdentifierIsInvalid(t *testing.T) {
	sink := &testSink{}
	o := CheckMultiExpression(sink, newTestScope(), ident("_"))
	if !o.IsInvalid() {
		t.Error("`_` used as a value should be invalid")
	}
	if len(sink.messages) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.messages), sink.messages)
	}
}

func TestCheckMultiExpressionVariableResolves(t *testing.T) {
	sc := newTestScope()
	ent := scope.NewVariable("x", token.Token{Literal: "x"}, sc)
	ent.Type = types.INT
	ent.State = scope.Resolved
	sc.Define(ent)

	sink := &testSink{}
	o := CheckMultiExpression(sink, sc, ident("x"))
	if len(sink.messages) != 0 {
		t.Fatalf("unexpected errors: %v", sink.messages)
	}
	if o.Mode != VariableMode || !o.Type.Equals(types.INT) {
		t.Errorf("got mode=%s type=%s, want variable int", o.Mode, o.Type)
	}
	if !ent.Used {
		t.Error("resolving an identifier should mark the entity used")
	}
}

func TestCheckMultiExpressionCyclicReference(t *testing.T) {
	sc := newTestScope()
	ent := scope.NewConstant("x", token.Token{Literal: "x"}, sc)
	ent.State = scope.InProgress
	sc.Define(ent)

	sink := &testSink{}
	o := CheckMultiExpression(sink, sc, ident("x"))
	if !o.IsInvalid() {
		t.Error("referencing an in-progress entity should be invalid")
	}
	if len(sink.messages) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.messages), sink.messages)
	}
}

func TestCheckBinaryExpressionComparisonYieldsBool(t *testing.T) {
	sink := &testSink{}
	e := &ast.BinaryExpr{
		Left:  &ast.IntegerLiteral{Value: 1},
		Op:    token.LT,
		Right: &ast.IntegerLiteral{Value: 2},
	}
	o := CheckBinaryExpression(sink, newTestScope(), e)
	if len(sink.messages) != 0 {
		t.Fatalf("unexpected errors: %v", sink.messages)
	}
	if !o.Type.Equals(types.BOOL) {
		t.Errorf("comparison result type = %s, want bool", o.Type)
	}
}

func TestCheckBinaryExpressionArithmeticMismatch(t *testing.T) {
	sink := &testSink{}
	e := &ast.BinaryExpr{
		Left:  &ast.IntegerLiteral{Value: 1},
		Op:    token.PLUS,
		Right: &ast.StringLiteral{Value: "x"},
	}
	o := CheckBinaryExpression(sink, newTestScope(), e)
	if !o.IsInvalid() {
		t.Error("int + string should be invalid")
	}
	if len(sink.messages) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.messages), sink.messages)
	}
}

func TestCheckBinaryExpressionStringConcatenation(t *testing.T) {
	sink := &testSink{}
	e := &ast.BinaryExpr{
		Left:  &ast.StringLiteral{Value: "a"},
		Op:    token.PLUS,
		Right: &ast.StringLiteral{Value: "b"},
	}
	o := CheckBinaryExpression(sink, newTestScope(), e)
	if len(sink.messages) != 0 {
		t.Fatalf("unexpected errors: %v", sink.messages)
	}
	if o.Mode != ConstantMode || !o.Type.Equals(types.STRING) {
		t.Errorf("got mode=%s type=%s, want constant string", o.Mode, o.Type)
	}
}

func TestCheckBinaryExpressionLogicalRequiresBool(t *testing.T) {
	sink := &testSink{}
	e := &ast.BinaryExpr{
		Left:  &ast.IntegerLiteral{Value: 1},
		Op:    token.LAND,
		Right: &ast.BoolLiteral{Value: true},
	}
	o := CheckBinaryExpression(sink, newTestScope(), e)
	if !o.IsInvalid() {
		t.Error("&& with a non-bool operand should be invalid")
	}
	if len(sink.messages) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.messages), sink.messages)
	}
}

func TestCheckTypeResolvesBuiltin(t *testing.T) {
	sink := &testSink{}
	ty := CheckType(sink, newTestScope(), ident("int"), "")
	if len(sink.messages) != 0 {
		t.Fatalf("unexpected errors: %v", sink.messages)
	}
	if !ty.Equals(types.INT) {
		t.Errorf("CheckType(int) = %s, want int", ty)
	}
}

func TestCheckTypeUndeclaredName(t *testing.T) {
	sink := &testSink{}
	ty := CheckType(sink, newTestScope(), ident("Nope"), "")
	if !types.IsInvalid(ty) {
		t.Error("undeclared type name should resolve to Invalid")
	}
	if len(sink.messages) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.messages), sink.messages)
	}
}

func TestCheckTypeNamedWrapsFreshType(t *testing.T) {
	sink := &testSink{}
	ty := CheckType(sink, newTestScope(), ident("int"), "Meters")
	named, ok := ty.(*types.Named)
	if !ok {
		t.Fatalf("CheckType with a name should return a *types.Named, got %T", ty)
	}
	if named.Name != "Meters" || !named.Base.Equals(types.INT) {
		t.Errorf("got Named{%s, %s}, want Named{Meters, int}", named.Name, named.Base)
	}
}

func TestCheckTypePointerExpr(t *testing.T) {
	sink := &testSink{}
	ty := CheckType(sink, newTestScope(), &ast.PointerTypeExpr{Elem: ident("int")}, "")
	ptr, ok := ty.(*types.Pointer)
	if !ok {
		t.Fatalf("CheckType(^int) = %T, want *types.Pointer", ty)
	}
	if !ptr.Elem.Equals(types.INT) {
		t.Errorf("pointer elem = %s, want int", ptr.Elem)
	}
}

func TestConvertToTypedRepresentableConstant(t *testing.T) {
	sink := &testSink{}
	o := &Operand{Mode: ConstantMode, Type: types.UNTYPED_INT, Value: types.NewInt(5)}
	ConvertToTyped(sink, o, types.INT)
	if o.IsInvalid() {
		t.Fatalf("expected conversion to succeed, got errors: %v", sink.messages)
	}
	if !o.Type.Equals(types.INT) {
		t.Errorf("converted type = %s, want int", o.Type)
	}
}

func TestConvertToTypedUnrepresentableConstant(t *testing.T) {
	sink := &testSink{}
	o := &Operand{Mode: ConstantMode, Type: types.UNTYPED_STRING, Value: types.NewString("x"),
		Expr: &ast.StringLiteral{Value: "x"}}
	ConvertToTyped(sink, o, types.INT)
	if !o.IsInvalid() {
		t.Error("converting a string constant to int should fail")
	}
	if len(sink.messages) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(sink.messages), sink.messages)
	}
}

func TestOperandIsTuple(t *testing.T) {
	tuple := &Operand{Type: &types.Tuple{Vars: []types.TupleVar{{Type: types.INT}, {Type: types.INT}}}}
	if !tuple.IsTuple() {
		t.Error("operand typed as a Tuple should report IsTuple")
	}
	scalar := &Operand{Type: types.INT}
	if scalar.IsTuple() {
		t.Error("scalar-typed operand should not report IsTuple")
	}
}

func TestInvalidOperandIsInvalid(t *testing.T) {
	o := InvalidOperand(ident("x"))
	if !o.IsInvalid() {
		t.Error("InvalidOperand should always report IsInvalid")
	}
	var nilOperand *Operand
	if !nilOperand.IsInvalid() {
		t.Error("a nil *Operand should report IsInvalid")
	}
}
