package lexer

import (
	"testing"

	"github.com/stone-lang/stonec/internal/token"
)

func TestNextTokenOperatorsAndPunctuation(t *testing.T) {
	input := `=+-*/%&^|!<>(){}[],;:.@`
	want := []token.Type{
		token.ASSIGN, token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.AMP, token.CARET, token.PIPE, token.NOT, token.LT, token.GT,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.LBRACK, token.RBRACK,
		token.COMMA, token.SEMI, token.COLON, token.PERIOD, token.AT, token.EOF,
	}

	l := New(input)
	for i, wantType := range want {
		tok := l.Next()
		if tok.Type != wantType {
			t.Fatalf("token[%d] = %s, want %s", i, tok.Type, wantType)
		}
	}
}

func TestNextTokenTwoCharOperators(t *testing.T) {
	input := ":= :: -> ++ -- == != <= >= && ||"
	want := []token.Type{
		token.DEFINE, token.DCOLON, token.ARROW, token.INC, token.DEC,
		token.EQ, token.NEQ, token.LEQ, token.GEQ, token.LAND, token.LOR, token.EOF,
	}
	l := New(input)
	for i, wantType := range want {
		tok := l.Next()
		if tok.Type != wantType {
			t.Fatalf("token[%d] = %s, want %s", i, tok.Type, wantType)
		}
	}
}

func TestNextTokenCompoundAssign(t *testing.T) {
	input := "+= -= *= /="
	want := []token.Type{token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN, token.EOF}
	l := New(input)
	for i, wantType := range want {
		tok := l.Next()
		if tok.Type != wantType {
			t.Fatalf("token[%d] = %s, want %s", i, tok.Type, wantType)
		}
	}
}

func TestNextTokenIdentifiersAndKeywords(t *testing.T) {
	input := "foo var if proc _ bar123"
	want := []struct {
		typ token.Type
		lit string
	}{
		{token.IDENT, "foo"},
		{token.VAR, "var"},
		{token.IF, "if"},
		{token.PROC, "proc"},
		{token.IDENT, "_"},
		{token.IDENT, "bar123"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range want {
		tok := l.Next()
		if tok.Type != tt.typ || tok.Literal != tt.lit {
			t.Fatalf("token[%d] = %s(%q), want %s(%q)", i, tok.Type, tok.Literal, tt.typ, tt.lit)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   token.Type
		lit   string
	}{
		{"123", token.INT, "123"},
		{"0", token.INT, "0"},
		{"3.14", token.FLOAT, "3.14"},
		{"0.5", token.FLOAT, "0.5"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.Next()
		if tok.Type != tt.typ || tok.Literal != tt.lit {
			t.Errorf("Next() = %s(%q), want %s(%q)", tok.Type, tok.Literal, tt.typ, tt.lit)
		}
	}
}

func TestNextTokenStringAndRune(t *testing.T) {
	l := New(`"hello\nworld" 'a' '\n'`)

	str := l.Next()
	if str.Type != token.STRING || str.Literal != "hello\nworld" {
		t.Errorf("string = %s(%q), want STRING(%q)", str.Type, str.Literal, "hello\nworld")
	}

	r1 := l.Next()
	if r1.Type != token.RUNE || r1.Literal != "a" {
		t.Errorf("rune = %s(%q), want RUNE(%q)", r1.Type, r1.Literal, "a")
	}

	r2 := l.Next()
	if r2.Type != token.RUNE || r2.Literal != "\n" {
		t.Errorf("rune = %s(%q), want RUNE(newline)", r2.Type, r2.Literal)
	}
}

func TestNextTokenSkipsComments(t *testing.T) {
	input := `
		// line comment
		x /* block
		comment */ := 1;
	`
	l := New(input)
	tok := l.Next()
	if tok.Type != token.IDENT || tok.Literal != "x" {
		t.Fatalf("got %s(%q), want IDENT(x)", tok.Type, tok.Literal)
	}
	tok = l.Next()
	if tok.Type != token.DEFINE {
		t.Fatalf("got %s, want DEFINE", tok.Type)
	}
}

func TestNextTokenPositionTracking(t *testing.T) {
	l := New("ab\ncd")
	tok := l.Next()
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Errorf("pos = %v, want line 1 col 1", tok.Pos)
	}
	tok = l.Next()
	if tok.Pos.Line != 2 {
		t.Errorf("pos.Line = %d, want 2", tok.Pos.Line)
	}
}

func TestSaveStateRestoreState(t *testing.T) {
	l := New("foo bar baz")
	_ = l.Next() // foo

	save := l.SaveState()
	bar := l.Next()
	if bar.Literal != "bar" {
		t.Fatalf("got %q, want bar", bar.Literal)
	}

	l.RestoreState(save)
	again := l.Next()
	if again.Literal != "bar" {
		t.Fatalf("after restore, got %q, want bar", again.Literal)
	}
	baz := l.Next()
	if baz.Literal != "baz" {
		t.Fatalf("after restore, got %q, want baz", baz.Literal)
	}
}

func TestAllReturnsEOFTerminated(t *testing.T) {
	toks := All("x := 1;")
	if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("All() should end with EOF, got %v", toks)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("$")
	tok := l.Next()
	if tok.Type != token.ILLEGAL {
		t.Errorf("got %s, want ILLEGAL", tok.Type)
	}
}

func TestBOMStripped(t *testing.T) {
	l := New("\xEF\xBB\xBFx")
	tok := l.Next()
	if tok.Type != token.IDENT || tok.Literal != "x" {
		t.Errorf("got %s(%q), want IDENT(x)", tok.Type, tok.Literal)
	}
}
