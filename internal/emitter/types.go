package emitter

import (
	"strings"

	"github.com/cwbudde/gemc/internal/types"
)

// lowerType implements spec.md §4.4's type lowering table, including the
// emission law that Pointer(T) lowers to lowerType(T)+"*" regardless of
// nesting depth.
func lowerType(t types.Type) string {
	switch t.Kind {
	case types.Int:
		return "int"
	case types.Float:
		return "float"
	case types.String:
		return "std::string"
	case types.Bool:
		return "bool"
	case types.Void:
		return "void"
	case types.Char:
		return "char"
	case types.ClassKind:
		return t.Class
	case types.PointerKind:
		return lowerType(*t.Inner) + "*"
	default:
		return t.String()
	}
}

// declarator renders a `var`/`const` declaration's left-hand side. Two
// quirks from the original are preserved deliberately (spec.md §9, bug
// 3, and the "pointer star adjacency" detail of scenario 5): `const`
// sits between the type and the name (east-const) rather than before
// the type, and a pointer's trailing stars bind to the name rather than
// the base type, so `Pointer(Class("A"))` plus name `p` renders as
// `A *p`, not `A* p`.
func declarator(t types.Type, constant bool, name string) string {
	typeStr := lowerType(t)

	stars := ""
	base := typeStr
	for strings.HasSuffix(base, "*") {
		stars += "*"
		base = strings.TrimSuffix(base, "*")
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString(" ")
	sb.WriteString(stars)
	if constant {
		sb.WriteString("const ")
	}
	sb.WriteString(name)
	return sb.String()
}
