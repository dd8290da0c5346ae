// Package scope implements the lexical-scope graph and entity records
// backing name resolution: push/pop scope frames and a chained
// lookup over *Entity records, since the checker needs the full
// entity record (kind, state, used flag, constant value) during
// declaration checking, not just a bare types.Type.
package scope

import (
	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

// Kind distinguishes the four entity kinds, plus the Dummy kind used
// for `_` and error recovery.
type Kind int

const (
	Variable Kind = iota
	Constant
	TypeName
	Procedure
	Dummy
)

func (k Kind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Constant:
		return "constant"
	case TypeName:
		return "type"
	case Procedure:
		return "procedure"
	default:
		return "dummy"
	}
}

// State models the three-state cycle-breaking lifecycle used in place
// of a raw `visited` bool: Unresolved -> InProgress -> Resolved.
// InProgress is set before an
// initializer is checked so a recursive reference to the same entity
// observes InProgress and bails out with Invalid instead of recursing
// unboundedly.
type State int

const (
	Unresolved State = iota
	InProgress
	Resolved
)

// Entity is a named program thing: a variable, constant, type name,
// procedure, or the `_`/recovery dummy.
//
// Every entity owns its declaration token (source position +
// identifier text), its Type (nil/unset until an initializer
// resolves it), and the Scope that declared it. Entities live for the
// full compilation once created; Go's GC retires them.
type Entity struct {
	Kind   Kind
	Name   string
	Token  token.Token
	Type   types.Type
	Scope  *Scope
	State  State
	Used   bool        // Variable: has this variable been referenced
	Value  types.Value // Constant: the folded compile-time value
}

// NewVariable creates an unresolved Variable entity.
func NewVariable(name string, tok token.Token, declScope *Scope) *Entity {
	return &Entity{Kind: Variable, Name: name, Token: tok, Scope: declScope}
}

// NewConstant creates an unresolved Constant entity.
func NewConstant(name string, tok token.Token, declScope *Scope) *Entity {
	return &Entity{Kind: Constant, Name: name, Token: tok, Scope: declScope}
}

// NewTypeName creates an unresolved TypeName entity.
func NewTypeName(name string, tok token.Token, declScope *Scope) *Entity {
	return &Entity{Kind: TypeName, Name: name, Token: tok, Scope: declScope}
}

// NewProcedure creates an unresolved Procedure entity.
func NewProcedure(name string, tok token.Token, declScope *Scope) *Entity {
	return &Entity{Kind: Procedure, Name: name, Token: tok, Scope: declScope}
}

// NewDummy creates the write-only `_` sink entity, or a recovery
// placeholder after an error. Dummy entities are never added to a
// scope's symbol map: they exist only as a return
// value callers can safely type-assign without it ever being looked
// up again.
func NewDummy(tok token.Token) *Entity {
	return &Entity{Kind: Dummy, Name: "_", Token: tok, Type: types.Invalid}
}
