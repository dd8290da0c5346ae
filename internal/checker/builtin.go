package checker

import (
	"github.com/stone-lang/stonec/internal/scope"
	"github.com/stone-lang/stonec/internal/token"
	"github.com/stone-lang/stonec/internal/types"
)

// builtinTypes names every predeclared type identifier, resolved the
// same way a user-declared type name is: through a TypeName entity in
// scope, not through special-cased parser or checker logic.
var builtinTypes = map[string]types.Type{
	"bool":   types.BOOL,
	"int":    types.INT,
	"u8":     types.U8_,
	"float":  types.FLOAT,
	"string": types.STRING,
	"rune":   types.RUNE,
	"rawptr": types.RAWPTR,
}

// registerBuiltinTypes installs the predeclared type names into s,
// already Resolved so no initializer ever runs for them.
func registerBuiltinTypes(s *scope.Scope) {
	for name, t := range builtinTypes {
		ent := scope.NewTypeName(name, token.Token{Type: token.IDENT, Literal: name}, s)
		ent.Type = t
		ent.State = scope.Resolved
		s.Define(ent)
	}
}
