// Package exprcheck implements expression checking: resolving
// identifiers to operands, folding constant literals, checking binary
// and unary operators, and converting operands to a target type. The
// statement/declaration checker in internal/checker drives these
// entry points; this package owns none of the checker's own state and
// reports diagnostics through the Sink interface so it never needs to
// import internal/checker.
package exprcheck

import (
	"github.com/stone-lang/stonec/internal/ast"
	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

// Mode classifies what kind of thing an Operand denotes.
type Mode int

const (
	Invalid Mode = iota
	NoValue
	Value
	VariableMode
	ConstantMode
	TypeMode
)

func (m Mode) String() string {
	switch m {
	case NoValue:
		return "no-value"
	case Value:
		return "value"
	case VariableMode:
		return "variable"
	case ConstantMode:
		return "constant"
	case TypeMode:
		return "type"
	default:
		return "invalid"
	}
}

// Operand is the transient per-expression judgment record passed
// between checker procedures.
type Operand struct {
	Mode  Mode
	Type  types.Type
	Expr  ast.Expression
	Value types.Value
}

// InvalidOperand builds the canonical Invalid operand rooted at expr.
// Every component that receives it must short-circuit silently.
func InvalidOperand(expr ast.Expression) *Operand {
	return &Operand{Mode: Invalid, Type: types.Invalid, Expr: expr}
}

// IsInvalid reports whether o denotes the Invalid mode (or is nil).
func (o *Operand) IsInvalid() bool {
	return o == nil || o.Mode == Invalid
}

// IsTuple reports whether o's type is a multi-value Tuple; the
// assignment coercer rejects these in single-value context.
func (o *Operand) IsTuple() bool {
	if o == nil || o.Type == nil {
		return false
	}
	_, ok := o.Type.(*types.Tuple)
	return ok
}

// Sink receives diagnostics from the expression checker without this
// package depending on the checker's Context type.
type Sink interface {
	AddError(pos token.Position, format string, args ...any)
}

// ExpressionKind classifies an already-checked expression so the
// statement checker can enforce that only calls and other
// statement-expressions are legal as a bare expression statement.
type ExpressionKind int

const (
	KindExpression ExpressionKind = iota
	KindStatement
)
