package token

import "testing"

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPositionIsValid(t *testing.T) {
	if (Position{}).IsValid() {
		t.Error("zero Position should not be valid")
	}
	if !(Position{Line: 1}).IsValid() {
		t.Error("Position with Line 1 should be valid")
	}
}

func TestLookupKeywords(t *testing.T) {
	tests := []struct {
		ident string
		want  Type
	}{
		{"var", VAR},
		{"proc", PROC},
		{"return", RETURN},
		{"foreign", FOREIGN},
		{"notakeyword", IDENT},
		{"", IDENT},
	}
	for _, tt := range tests {
		if got := Lookup(tt.ident); got != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestTypeStringKnownAndUnknown(t *testing.T) {
	if got, want := PLUS.String(), "+"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	unknown := Type(9999)
	if got := unknown.String(); got != "Type(9999)" {
		t.Errorf("String() on unregistered type = %q, want Type(9999)", got)
	}
}

func TestIsLiteralAndIsKeyword(t *testing.T) {
	if !INT.IsLiteral() {
		t.Error("INT should be a literal kind")
	}
	if VAR.IsLiteral() {
		t.Error("VAR should not be a literal kind")
	}
	if !VAR.IsKeyword() {
		t.Error("VAR should be a keyword")
	}
	if IDENT.IsKeyword() {
		t.Error("IDENT should not be a keyword")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: IDENT, Literal: "x", Pos: Position{Line: 1, Column: 1}}
	got := tok.String()
	want := `IDENT("x")@1:1`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
