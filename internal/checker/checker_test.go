package checker

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stone-lang/stonec/internal/lexer"
	"github.com/stone-lang/stonec/internal/parser"
)

func check(t *testing.T, src string) *Context {
	t.Helper()
	l := lexer.New(src)
	prog, errs := parser.Parse(l)
	if len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return CheckProgram(src, "test.stone", prog)
}

func requireNoErrors(t *testing.T, c *Context) {
	t.Helper()
	if c.HasErrors() {
		var msgs []string
		for _, d := range c.Errors {
			msgs = append(msgs, d.Format(false))
		}
		t.Fatalf("unexpected errors: %v", msgs)
	}
}

func requireErrorCount(t *testing.T, c *Context, n int) {
	t.Helper()
	if len(c.Errors) != n {
		var msgs []string
		for _, d := range c.Errors {
			msgs = append(msgs, d.Format(false))
		}
		t.Fatalf("got %d errors, want %d: %v", len(c.Errors), n, msgs)
	}
}

func TestCheckProgramSimpleVarDecl(t *testing.T) {
	c := check(t, `x := 1; var y int = x;`)
	requireNoErrors(t, c)
}

func TestCheckProgramUndeclaredName(t *testing.T) {
	c := check(t, `x := y;`)
	requireErrorCount(t, c, 1)
}

func TestCheckProgramTypeMismatchAssignment(t *testing.T) {
	c := check(t, `var x int = "hello";`)
	requireErrorCount(t, c, 1)
}

func TestCheckProgramConstantDeclaration(t *testing.T) {
	c := check(t, `PI :: 3; x := PI;`)
	requireNoErrors(t, c)
}

func TestCheckProgramConstantRequiresValue(t *testing.T) {
	c := check(t, `x :: ;`)
	if !c.HasErrors() {
		t.Fatal("expected an error for a constant with no type or initializer")
	}
}

func TestCheckProgramMixedRedeclaration(t *testing.T) {
	c := check(t, `x := 1; x, y := 2, 3;`)
	requireNoErrors(t, c)
}

func TestCheckProgramProcedureCallArity(t *testing.T) {
	c := check(t, `
add :: proc(a : int, b : int) -> (r : int) {
	return a + b;
}
z := add(1);
`)
	requireErrorCount(t, c, 1)
}

func TestCheckProgramProcedureMutualRecursion(t *testing.T) {
	c := check(t, `
isEven :: proc(n : int) -> (r : bool) {
	if n == 0 {
		return true;
	}
	return isOdd(n - 1);
}
isOdd :: proc(n : int) -> (r : bool) {
	if n == 0 {
		return false;
	}
	return isEven(n - 1);
}
`)
	requireNoErrors(t, c)
}

func TestCheckProgramMissingReturn(t *testing.T) {
	c := check(t, `
f :: proc() -> (r : int) {
	x := 1;
}
`)
	requireErrorCount(t, c, 1)
}

func TestCheckProgramReturnInLoopTerminates(t *testing.T) {
	c := check(t, `
f :: proc() -> (r : int) {
	for {
		return 1;
	}
}
`)
	requireNoErrors(t, c)
}

func TestCheckProgramIfBothBranchesTerminate(t *testing.T) {
	c := check(t, `
f :: proc(n : int) -> (r : int) {
	if n > 0 {
		return 1;
	} else {
		return 0;
	}
}
`)
	requireNoErrors(t, c)
}

func TestCheckProgramNonBooleanCondition(t *testing.T) {
	c := check(t, `
f :: proc() {
	if 1 {
	}
}
`)
	requireErrorCount(t, c, 1)
}

func TestCheckProgramAssignToConstantIsInvalid(t *testing.T) {
	c := check(t, `PI :: 3; PI = 4;`)
	if !c.HasErrors() {
		t.Fatal("expected an error assigning to a constant")
	}
}

func TestCheckProgramBlankIdentifierSink(t *testing.T) {
	c := check(t, `_ := 1; _, x := 1, 2;`)
	requireNoErrors(t, c)
}

func TestCheckProgramCompoundAssignment(t *testing.T) {
	c := check(t, `x := 1; x += 2;`)
	requireNoErrors(t, c)
}

func TestCheckProgramCyclicTypeDeclaration(t *testing.T) {
	c := check(t, `type T = T;`)
	if !c.HasErrors() {
		t.Fatal("expected a cyclic declaration error")
	}
}

func TestCheckProgramSelfReferentialPointerTypeResolves(t *testing.T) {
	c := check(t, `
type Node = ^Node;
var n Node;
`)
	requireNoErrors(t, c)
}

func TestCheckProgramNamedTypeDeclaration(t *testing.T) {
	c := check(t, `
type Meters = int;
var x Meters = 5;
`)
	requireNoErrors(t, c)
}

func TestCheckProgramForThreeClause(t *testing.T) {
	c := check(t, `
f :: proc() {
	for i := 0; i < 10; i += 1 {
	}
}
`)
	requireNoErrors(t, c)
}

// TestCheckProgramDiagnosticFixtures snapshots the rendered diagnostic
// text for a small set of known-bad programs, one per declaration
// kind, so a change to message wording or caret placement shows up as
// a reviewable diff instead of a silent behavior change.
func TestCheckProgramDiagnosticFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{"undeclared_name", `x := y;`},
		{"assignment_type_mismatch", `var x int = "hello";`},
		{"procedure_call_arity", `
add :: proc(a : int, b : int) -> (r : int) {
	return a + b;
}
z := add(1);
`},
		{"cyclic_type_declaration", `type T = T;`},
	}

	for _, f := range fixtures {
		c := check(t, f.src)
		var rendered []string
		for _, d := range c.Errors {
			rendered = append(rendered, d.Format(false))
		}
		snaps.MatchSnapshot(t, f.name, strings.Join(rendered, "\n"))
	}
}
