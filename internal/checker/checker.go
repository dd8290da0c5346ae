package checker

import "github.com/stone-lang/stonec/internal/ast"

// CheckProgram is the entry point exposed to the driver: it walks
// every top-level statement, deferring procedure bodies into a
// worklist so forward references between procedures resolve against
// completed signatures, then drains that worklist. Diagnostics
// accumulate on the returned Context; there is no separate
// success/failure result.
func CheckProgram(source, file string, prog *ast.Program) *Context {
	c := New(source, file)
	c.DeferBodies = true
	c.checkStatementList(prog.Statements)
	c.DeferBodies = false
	c.drainWorklist()
	return c
}
