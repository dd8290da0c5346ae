// Package types implements the Stone type system: a tagged-variant
// Type model plus the structural predicates (GetBaseType, IsUntyped,
// DefaultType) that both the checker and the expression checker rely
// on.
//
// Type.Equals / Type.String / Type.TypeKind form a small uniform
// contract every constructor below implements, covering Stone's
// primitive/pointer/array/slice/tuple/procedure/named constructors.
package types

import "fmt"

// Type is the shared interface over every type constructor: Basic,
// Pointer, Array, Slice, Tuple, Procedure, Named, and the Invalid
// sentinel.
type Type interface {
	String() string
	TypeKind() string
	Equals(other Type) bool
}

// BasicKind enumerates concrete primitive kinds plus the untyped
// kinds that represent literal constants awaiting a target type.
type BasicKind int

const (
	InvalidKind BasicKind = iota

	// Concrete primitives.
	Bool
	Int
	U8
	Float
	Str
	Rune
	RawPointer // Odin-style rawptr: implicitly convertible with any *T

	// Untyped literal kinds.
	UntypedBool
	UntypedInteger
	UntypedFloat
	UntypedString
	UntypedRune
	// UntypedPointer is the type of the `nil` literal. Defaulting it
	// with no target type fails with "use of untyped nil"; it is the
	// only untyped kind with no default typed form.
	UntypedPointer
)

var basicNames = map[BasicKind]string{
	InvalidKind: "invalid",
	Bool:        "bool", Int: "int", U8: "u8", Float: "float", Str: "string", Rune: "rune",
	RawPointer:     "rawptr",
	UntypedBool:    "untyped bool",
	UntypedInteger: "untyped int",
	UntypedFloat:   "untyped float",
	UntypedString:  "untyped string",
	UntypedRune:    "untyped rune",
	UntypedPointer: "untyped nil",
}

// Basic is a concrete or untyped primitive type.
type Basic struct {
	Kind BasicKind
}

func (b *Basic) String() string   { return basicNames[b.Kind] }
func (b *Basic) TypeKind() string { return "BASIC" }
func (b *Basic) Equals(other Type) bool {
	o, ok := other.(*Basic)
	return ok && o.Kind == b.Kind
}

// IsUntyped reports whether k is one of the untyped literal kinds.
func (k BasicKind) IsUntyped() bool {
	return k >= UntypedBool && k <= UntypedPointer
}

// Shared Basic instances. Constructed once; comparisons use
// Equals/Kind, not pointer identity (unlike Invalid, which is the
// one sentinel required to be referentially unique).
var (
	BOOL            Type = &Basic{Kind: Bool}
	INT             Type = &Basic{Kind: Int}
	U8_             Type = &Basic{Kind: U8}
	FLOAT           Type = &Basic{Kind: Float}
	STRING          Type = &Basic{Kind: Str}
	RUNE            Type = &Basic{Kind: Rune}
	RAWPTR          Type = &Basic{Kind: RawPointer}
	UNTYPED_BOOL    Type = &Basic{Kind: UntypedBool}
	UNTYPED_INT     Type = &Basic{Kind: UntypedInteger}
	UNTYPED_FLOAT   Type = &Basic{Kind: UntypedFloat}
	UNTYPED_STRING  Type = &Basic{Kind: UntypedString}
	UNTYPED_RUNE    Type = &Basic{Kind: UntypedRune}
	UNTYPED_POINTER Type = &Basic{Kind: UntypedPointer}
)

// invalidType is the unique Invalid sentinel: any check that receives
// it returns early rather than cascading further diagnostics.
type invalidType struct{}

func (*invalidType) String() string           { return "invalid type" }
func (*invalidType) TypeKind() string          { return "INVALID" }
func (*invalidType) Equals(other Type) bool    { _, ok := other.(*invalidType); return ok }

// Invalid is the single shared Invalid instance. Every component that
// receives it is required to short-circuit rather than cascade
// diagnostics.
var Invalid Type = &invalidType{}

// IsInvalid reports whether t is the Invalid sentinel (or nil, which
// callers treat the same way defensively).
func IsInvalid(t Type) bool {
	return t == nil || t == Invalid
}

// Pointer is `^T`.
type Pointer struct {
	Elem Type
}

func (p *Pointer) String() string   { return "^" + p.Elem.String() }
func (p *Pointer) TypeKind() string { return "POINTER" }
func (p *Pointer) Equals(other Type) bool {
	o, ok := other.(*Pointer)
	return ok && p.Elem.Equals(o.Elem)
}

// Array is `[N]T`, a fixed-count sequence.
type Array struct {
	Elem  Type
	Count int64
}

func (a *Array) String() string   { return fmt.Sprintf("[%d]%s", a.Count, a.Elem.String()) }
func (a *Array) TypeKind() string { return "ARRAY" }
func (a *Array) Equals(other Type) bool {
	o, ok := other.(*Array)
	return ok && a.Count == o.Count && a.Elem.Equals(o.Elem)
}

// Slice is `[]T`, a runtime-counted view.
type Slice struct {
	Elem Type
}

func (s *Slice) String() string   { return "[]" + s.Elem.String() }
func (s *Slice) TypeKind() string { return "SLICE" }
func (s *Slice) Equals(other Type) bool {
	o, ok := other.(*Slice)
	return ok && s.Elem.Equals(o.Elem)
}

// TupleVar is one component of a Tuple. Tuples only ever arise as
// procedure parameter/result lists or as the transient type of a
// multi-valued expression, and a component's Type is never itself a
// Tuple, so a lightweight (name, type) pair is sufficient. Modeling
// each component as a full Entity would pull a scope/entity
// dependency into this package and back again, a cycle Go has no
// forward declaration to break. The owning scope's real Entity for a
// named result still exists one layer up, in the procedure's result
// scope.
type TupleVar struct {
	Name string
	Type Type
}

// Tuple is the multi-value result type: not a first-class user type,
// only ever a procedure's parameter/result list or a transient
// multi-expression type.
type Tuple struct {
	Vars []TupleVar
}

func (t *Tuple) String() string {
	s := "("
	for i, v := range t.Vars {
		if i > 0 {
			s += ", "
		}
		s += v.Type.String()
	}
	return s + ")"
}
func (t *Tuple) TypeKind() string { return "TUPLE" }
func (t *Tuple) Equals(other Type) bool {
	o, ok := other.(*Tuple)
	if !ok || len(t.Vars) != len(o.Vars) {
		return false
	}
	for i := range t.Vars {
		if !t.Vars[i].Type.Equals(o.Vars[i].Type) {
			return false
		}
	}
	return true
}

// Len returns the number of result/parameter slots, treating a nil
// Tuple as zero (a procedure with no results).
func (t *Tuple) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Vars)
}

// Procedure is a procedure's signature.
type Procedure struct {
	Params  *Tuple
	Results *Tuple
}

func (p *Procedure) String() string {
	return "proc" + p.Params.String() + " -> " + p.Results.String()
}
func (p *Procedure) TypeKind() string { return "PROCEDURE" }
func (p *Procedure) Equals(other Type) bool {
	o, ok := other.(*Procedure)
	return ok && p.Params.Equals(o.Params) && p.Results.Equals(o.Results)
}

// Named wraps a non-Named base type with a user-given name, giving it
// nominal identity: two Named types over the same base are distinct
// unless they are the same *Named instance.
type Named struct {
	Name string
	Base Type
}

func (n *Named) String() string   { return n.Name }
func (n *Named) TypeKind() string { return "NAMED" }
func (n *Named) Equals(other Type) bool {
	o, ok := other.(*Named)
	return ok && o == n // nominal: pointer identity, not structural
}

// GetBaseType unwraps one or more Named layers, returning the first
// non-Named constructor underneath. A Named always wraps a non-Named
// base in practice, so this unwraps at most once, but the loop is
// defensive against a future relaxation.
func GetBaseType(t Type) Type {
	for {
		n, ok := t.(*Named)
		if !ok {
			return t
		}
		t = n.Base
	}
}

// IsNamed reports whether t is a Named type. Assignability between
// two named types requires an identical Named pointer; assignability
// involving an unnamed type falls back to structural comparison.
func IsNamed(t Type) bool {
	_, ok := t.(*Named)
	return ok
}

// IsUntyped reports whether t's base is one of the untyped basic
// kinds.
func IsUntyped(t Type) bool {
	b, ok := GetBaseType(t).(*Basic)
	return ok && b.Kind.IsUntyped()
}

// DefaultType returns the concrete typed form an untyped constant of
// kind k materializes to when no target type is available.
// UntypedPointer has no default and returns Invalid with ok false,
// signaling "use of untyped nil".
func DefaultType(k BasicKind) (Type, bool) {
	switch k {
	case UntypedBool:
		return BOOL, true
	case UntypedInteger:
		return INT, true
	case UntypedFloat:
		return FLOAT, true
	case UntypedString:
		return STRING, true
	case UntypedRune:
		return RUNE, true
	case UntypedPointer:
		return Invalid, false
	default:
		return Invalid, false
	}
}

// IsConstantRepresentable reports whether t is legal as the declared
// type of a constant: a concrete, non-untyped Basic,
// or a Pointer over such a Basic.
func IsConstantRepresentable(t Type) bool {
	base := GetBaseType(t)
	switch b := base.(type) {
	case *Basic:
		return !b.Kind.IsUntyped() && b.Kind != InvalidKind
	case *Pointer:
		return IsConstantRepresentable(b.Elem)
	default:
		return false
	}
}

// IsNumeric reports whether t's base is one of the numeric basic
// kinds (typed or untyped).
func IsNumeric(t Type) bool {
	b, ok := GetBaseType(t).(*Basic)
	if !ok {
		return false
	}
	switch b.Kind {
	case Int, U8, Float, UntypedInteger, UntypedFloat:
		return true
	default:
		return false
	}
}
