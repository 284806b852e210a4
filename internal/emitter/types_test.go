package emitter

import (
	"testing"

	"github.com/cwbudde/gemc/internal/types"
)

func TestLowerTypePrimitives(t *testing.T) {
	cases := map[types.Type]string{
		types.IntType:    "int",
		types.FloatType:  "float",
		types.StringType: "std::string",
		types.BoolType:   "bool",
		types.VoidType:   "void",
		types.CharType:   "char",
	}
	for in, want := range cases {
		if got := lowerType(in); got != want {
			t.Fatalf("lowerType(%s) = %q, want %q", in, got, want)
		}
	}
}

// Emission law (spec.md §8 invariant 6): emit(Pointer(T)) = emit(T) + "*",
// for arbitrarily nested pointers.
func TestLowerTypePointerNesting(t *testing.T) {
	pp := types.NewPointer(types.NewPointer(types.IntType))
	if got := lowerType(pp); got != "int**" {
		t.Fatalf("lowerType(int**) = %q, want int**", got)
	}
}

func TestDeclaratorPointerAdjacency(t *testing.T) {
	got := declarator(types.NewPointer(types.NewClass("A")), false, "p")
	if got != "A *p" {
		t.Fatalf("declarator = %q, want %q", got, "A *p")
	}
}

func TestDeclaratorEastConst(t *testing.T) {
	got := declarator(types.FloatType, true, "pi")
	if got != "float const pi" {
		t.Fatalf("declarator = %q, want %q", got, "float const pi")
	}
}
