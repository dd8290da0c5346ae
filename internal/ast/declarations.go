package ast

import (
	"strings"

	"github.com/stone-lang/stonec/internal/token"
)

// VarDeclStatement covers both the mutable (`var`) and immutable
// (`::`/const) declaration forms; Mutable selects which entity
// initializer applies. Multiple Names may share one Type expression
// and one Values list; the multi-value binder pairs them up.
type VarDeclStatement struct {
	Token   token.Token
	Names   []*Identifier
	Type    Expression // optional type annotation shared by all Names
	Values  []Expression
	Mutable bool
}

func (s *VarDeclStatement) statementNode()      {}
func (s *VarDeclStatement) TokenLiteral() string { return s.Token.Literal }
func (s *VarDeclStatement) String() string {
	var names []string
	for _, n := range s.Names {
		names = append(names, n.Value)
	}
	return strings.Join(names, ", ") + " := ..."
}
func (s *VarDeclStatement) Pos() token.Position { return s.Token.Pos }

// TypeDeclStatement introduces a Named type: `type Name = TypeExpr`.
type TypeDeclStatement struct {
	Token token.Token
	Name  *Identifier
	Type  Expression
}

func (s *TypeDeclStatement) statementNode()      {}
func (s *TypeDeclStatement) TokenLiteral() string { return s.Token.Literal }
func (s *TypeDeclStatement) String() string       { return "type " + s.Name.Value + " = " + s.Type.String() }
func (s *TypeDeclStatement) Pos() token.Position  { return s.Token.Pos }

// ProcDeclStatement is `name :: proc(params) -> results { body }`,
// optionally carrying tags (`foreign`, `inline`, `no_inline`).
type ProcDeclStatement struct {
	Token token.Token
	Name  *Identifier
	Type  *ProcTypeExpr
	Tags  []string
	Body  *BlockStatement // nil for a `foreign` declaration
}

func (s *ProcDeclStatement) statementNode()      {}
func (s *ProcDeclStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ProcDeclStatement) String() string {
	out := s.Name.Value + " :: proc(...)"
	if s.Body != nil {
		out += " " + s.Body.String()
	}
	return out
}
func (s *ProcDeclStatement) Pos() token.Position { return s.Token.Pos }
