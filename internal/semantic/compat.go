package semantic

import (
	"github.com/cwbudde/gemc/internal/gemstone"
	"github.com/cwbudde/gemc/internal/types"
)

// compatible implements spec.md §4.3's structural compatibility rules:
// pointers match if their inner types match; classes match if they name
// the same class or one is a transitive base of the other, checked
// symmetrically; anything else must match by Kind exactly.
func compatible(a, b types.Type, state *gemstone.State) bool {
	if a.Kind == types.PointerKind && b.Kind == types.PointerKind {
		return compatible(*a.Inner, *b.Inner, state)
	}
	if a.Kind == types.PointerKind || b.Kind == types.PointerKind {
		return false
	}
	if a.Kind == types.ClassKind && b.Kind == types.ClassKind {
		return classesCompatible(a.Class, b.Class, state)
	}
	if a.Kind == types.ClassKind || b.Kind == types.ClassKind {
		return false
	}
	return a.Kind == b.Kind
}

func classesCompatible(a, b string, state *gemstone.State) bool {
	if a == b {
		return true
	}
	return isBaseOf(a, b, state) || isBaseOf(b, a, state)
}

// isBaseOf reports whether base is a (possibly transitive) base class of
// derived, climbing the class table's BaseClass chain.
func isBaseOf(base, derived string, state *gemstone.State) bool {
	seen := make(map[string]bool)
	cur := derived
	for {
		if seen[cur] {
			return false
		}
		seen[cur] = true

		decl, ok := state.LookupClass(cur)
		if !ok || decl.BaseClass == "" {
			return false
		}
		if decl.BaseClass == base {
			return true
		}
		cur = decl.BaseClass
	}
}
