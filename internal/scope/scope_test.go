package scope

import (
	"testing"

	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

func TestDefineAndLookupLocal(t *testing.T) {
	s := New(File, nil)
	e := NewVariable("x", token.Token{}, s)
	s.Define(e)

	got, ok := s.LookupLocal("x")
	if !ok || got != e {
		t.Fatalf("LookupLocal(x) = %v, %v, want %v, true", got, ok, e)
	}
	if _, ok := s.LookupLocal("y"); ok {
		t.Error("LookupLocal(y) should not find an undeclared name")
	}
}

func TestIsDeclaredInScope(t *testing.T) {
	s := New(File, nil)
	if s.IsDeclaredInScope("x") {
		t.Error("x should not be declared yet")
	}
	s.Define(NewVariable("x", token.Token{}, s))
	if !s.IsDeclaredInScope("x") {
		t.Error("x should now be declared")
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	file := New(File, nil)
	file.Define(NewVariable("x", token.Token{}, file))

	block := New(Block, file)
	got, ok := block.Lookup("x")
	if !ok || got.Name != "x" {
		t.Fatalf("Lookup(x) from child scope = %v, %v, want found", got, ok)
	}
}

func TestLookupLocalDoesNotWalkParentChain(t *testing.T) {
	file := New(File, nil)
	file.Define(NewVariable("x", token.Token{}, file))

	block := New(Block, file)
	if _, ok := block.LookupLocal("x"); ok {
		t.Error("LookupLocal should not see entities in an enclosing scope")
	}
}

func TestLookupMissingName(t *testing.T) {
	s := New(File, nil)
	if _, ok := s.Lookup("nope"); ok {
		t.Error("Lookup should not find an undeclared name")
	}
}

func TestShadowingInnerScopeWins(t *testing.T) {
	file := New(File, nil)
	outer := NewVariable("x", token.Token{}, file)
	file.Define(outer)

	block := New(Block, file)
	inner := NewVariable("x", token.Token{}, block)
	block.Define(inner)

	got, ok := block.Lookup("x")
	if !ok || got != inner {
		t.Error("Lookup from the inner scope should find the shadowing entity, not the outer one")
	}
	got, ok = file.Lookup("x")
	if !ok || got != outer {
		t.Error("Lookup from the outer scope should still find the outer entity")
	}
}

func TestDefineOverwritesExisting(t *testing.T) {
	s := New(File, nil)
	first := NewVariable("x", token.Token{}, s)
	s.Define(first)
	second := NewConstant("x", token.Token{}, s)
	s.Define(second)

	got, _ := s.LookupLocal("x")
	if got != second {
		t.Error("Define should overwrite an existing entry under the same name")
	}
}

func TestEntityConstructors(t *testing.T) {
	s := New(File, nil)
	tok := token.Token{Literal: "x"}

	tests := []struct {
		name string
		ent  *Entity
		kind Kind
	}{
		{"variable", NewVariable("x", tok, s), Variable},
		{"constant", NewConstant("x", tok, s), Constant},
		{"type", NewTypeName("x", tok, s), TypeName},
		{"procedure", NewProcedure("x", tok, s), Procedure},
	}
	for _, tt := range tests {
		if tt.ent.Kind != tt.kind {
			t.Errorf("%s entity Kind = %v, want %v", tt.name, tt.ent.Kind, tt.kind)
		}
		if tt.ent.State != Unresolved {
			t.Errorf("%s entity State = %v, want Unresolved", tt.name, tt.ent.State)
		}
	}
}

func TestNewDummyIsNeverAddedToScope(t *testing.T) {
	d := NewDummy(token.Token{})
	if d.Kind != Dummy || d.Name != "_" {
		t.Errorf("NewDummy = %+v, want Kind=Dummy Name=_", d)
	}
	if !types.IsInvalid(d.Type) {
		t.Error("dummy entity should carry the Invalid type")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Variable, "variable"},
		{Constant, "constant"},
		{TypeName, "type"},
		{Procedure, "procedure"},
		{Dummy, "dummy"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
