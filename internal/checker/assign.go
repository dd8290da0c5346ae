package checker

import (
	"github.com/stone-lang/stonec/internal/exprcheck"
	"github.com/stone-lang/stonec/internal/types"
)

// canAssign reports whether a source operand may flow into a slot of
// type target without an explicit conversion. Checks are tried in
// order; the first match decides.
func canAssign(o *exprcheck.Operand, target types.Type) bool {
	if o.IsInvalid() || types.IsInvalid(target) {
		return true // Invalid never cascades.
	}

	// Identical types always assign (Named types compare by identity).
	if o.Type.Equals(target) {
		return true
	}

	// An untyped constant or value assigns if it is representable in
	// the target's basic kind, or if both sides are untyped pointer
	// and typed pointer.
	if types.IsUntyped(o.Type) {
		targetBase := types.GetBaseType(target)
		if b, ok := targetBase.(*types.Basic); ok {
			if o.Mode == exprcheck.ConstantMode {
				return types.IsRepresentable(o.Value, target)
			}
			srcBase := types.GetBaseType(o.Type).(*types.Basic)
			if srcBase.Kind == types.UntypedBool {
				return b.Kind == types.Bool
			}
		}
		if _, ok := targetBase.(*types.Pointer); ok {
			srcBase := types.GetBaseType(o.Type).(*types.Basic)
			return srcBase.Kind == types.UntypedPointer
		}
	}

	srcBase := types.GetBaseType(o.Type)
	targetBase := types.GetBaseType(target)

	// Structural identity of the bases assigns, but only if at least
	// one side is unnamed; two distinct named types never unify even
	// with identical structure.
	if (!types.IsNamed(o.Type) || !types.IsNamed(target)) && srcBase.Equals(targetBase) {
		return true
	}

	// rawptr assigns to or from any typed pointer.
	_, srcIsPtr := srcBase.(*types.Pointer)
	_, targetIsPtr := targetBase.(*types.Pointer)
	srcIsRaw := srcBase.Equals(types.RAWPTR)
	targetIsRaw := targetBase.Equals(types.RAWPTR)
	if srcIsRaw && targetIsPtr {
		return true
	}
	if targetIsRaw && srcIsPtr {
		return true
	}

	// Arrays assign with equal element type and count.
	if srcArr, ok := srcBase.(*types.Array); ok {
		if targetArr, ok := targetBase.(*types.Array); ok {
			return srcArr.Count == targetArr.Count && srcArr.Elem.Equals(targetArr.Elem)
		}
	}

	// Slices assign with equal element type.
	if srcSlice, ok := srcBase.(*types.Slice); ok {
		if targetSlice, ok := targetBase.(*types.Slice); ok {
			return srcSlice.Elem.Equals(targetSlice.Elem)
		}
	}

	return false
}

// coerce converts untyped operands toward target then checks
// assignability, demoting o to Invalid and emitting a diagnostic on
// failure. context is a diagnostic label such as "assignment" or
// "return".
func (c *Context) coerce(o *exprcheck.Operand, target types.Type, context string) {
	if o.IsTuple() {
		c.AddError(o.Expr.Pos(), "multi-valued expression in single-value context")
		o.Mode = exprcheck.Invalid
		o.Type = types.Invalid
		return
	}
	if o.IsInvalid() {
		return
	}

	if types.IsUntyped(o.Type) {
		if target == nil {
			b := types.GetBaseType(o.Type).(*types.Basic)
			def, ok := types.DefaultType(b.Kind)
			if !ok {
				c.AddError(o.Expr.Pos(), "use of untyped nil")
				o.Mode = exprcheck.Invalid
				o.Type = types.Invalid
				return
			}
			exprcheck.ConvertToTyped(c, o, def)
		} else {
			exprcheck.ConvertToTyped(c, o, target)
		}
	}

	if o.IsInvalid() || target == nil {
		return
	}

	if !canAssign(o, target) {
		c.AddError(o.Expr.Pos(), "Cannot assign value `%s` of type `%s` to `%s` in %s",
			o.Expr.String(), o.Type.String(), target.String(), context)
		o.Mode = exprcheck.Invalid
		o.Type = types.Invalid
	}
}
