package ast

import "github.com/stone-lang/stonec/internal/token"

// Type expressions share Expression's interface: a bare Identifier
// names a type exactly the way it names a value, and the checker
// disambiguates by the position the expression appears in.

// PointerTypeExpr is `^T`.
type PointerTypeExpr struct {
	Token token.Token
	Elem  Expression
}

func (p *PointerTypeExpr) expressionNode()      {}
func (p *PointerTypeExpr) TokenLiteral() string { return p.Token.Literal }
func (p *PointerTypeExpr) String() string       { return "^" + p.Elem.String() }
func (p *PointerTypeExpr) Pos() token.Position  { return p.Token.Pos }

// ArrayTypeExpr is `[N]T`.
type ArrayTypeExpr struct {
	Token token.Token
	Count Expression
	Elem  Expression
}

func (a *ArrayTypeExpr) expressionNode()      {}
func (a *ArrayTypeExpr) TokenLiteral() string { return a.Token.Literal }
func (a *ArrayTypeExpr) String() string       { return "[" + a.Count.String() + "]" + a.Elem.String() }
func (a *ArrayTypeExpr) Pos() token.Position  { return a.Token.Pos }

// SliceTypeExpr is `[]T`.
type SliceTypeExpr struct {
	Token token.Token
	Elem  Expression
}

func (s *SliceTypeExpr) expressionNode()      {}
func (s *SliceTypeExpr) TokenLiteral() string { return s.Token.Literal }
func (s *SliceTypeExpr) String() string       { return "[]" + s.Elem.String() }
func (s *SliceTypeExpr) Pos() token.Position  { return s.Token.Pos }

// Field is one entry of a parameter or result list: zero or more
// names sharing a type expression.
type Field struct {
	Names []*Identifier
	Type  Expression
}

// FieldList is an ordered sequence of Fields, used for procedure
// parameters and results.
type FieldList struct {
	Token token.Token
	List  []*Field
}

func (f *FieldList) TokenLiteral() string { return f.Token.Literal }
func (f *FieldList) Pos() token.Position  { return f.Token.Pos }

// Len returns the number of individual names across all fields.
func (f *FieldList) Len() int {
	if f == nil {
		return 0
	}
	n := 0
	for _, fld := range f.List {
		if len(fld.Names) == 0 {
			n++ // unnamed result field still counts as one slot
			continue
		}
		n += len(fld.Names)
	}
	return n
}

// ProcTypeExpr is a procedure type/signature: `proc(params) -> results`.
type ProcTypeExpr struct {
	Token   token.Token
	Params  *FieldList
	Results *FieldList
}

func (p *ProcTypeExpr) expressionNode()      {}
func (p *ProcTypeExpr) TokenLiteral() string { return p.Token.Literal }
func (p *ProcTypeExpr) String() string       { return "proc(...)" }
func (p *ProcTypeExpr) Pos() token.Position  { return p.Token.Pos }
