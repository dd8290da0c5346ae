package checker

import "github.com/stone-lang/stonec/internal/ast"

// terminates is the termination analyzer: a pure structural
// recursion over already-parsed statements, independent of Context,
// since it consults no entity or scope information.
func terminates(stmt ast.Statement) bool {
	switch s := stmt.(type) {
	case *ast.ReturnStatement:
		return true

	case *ast.BlockStatement:
		return terminatesList(s.Statements)

	case *ast.ExpressionStatement:
		// Strictly, this should terminate iff s.Expression terminates, but
		// Stone has no never-returning intrinsic expression (no panic/exit
		// call the checker treats specially), so every expression
		// statement is non-terminating in practice.
		return false

	case *ast.IfStatement:
		if s.Alternative == nil {
			return false
		}
		return terminates(s.Consequence) && terminates(s.Alternative)

	case *ast.ForStatement:
		return s.Cond == nil

	default:
		return false
	}
}

// terminatesList finds the last non-empty statement in a list and
// asks whether it terminates; an empty list never terminates.
func terminatesList(stmts []ast.Statement) bool {
	for i := len(stmts) - 1; i >= 0; i-- {
		if _, ok := stmts[i].(*ast.EmptyStmt); ok {
			continue
		}
		return terminates(stmts[i])
	}
	return false
}
