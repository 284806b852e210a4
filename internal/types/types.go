// Package types implements the Gem type algebra of spec.md §3: the
// primitive set, Class(name), and arbitrarily nested Pointer(inner).
package types

import "fmt"

// Kind discriminates the cases of Type.
type Kind int

const (
	Int Kind = iota
	Float
	String
	Bool
	Void
	Char
	ClassKind
	PointerKind
)

// Type is the sealed algebra from spec.md §3. Primitive types carry no
// payload; ClassKind carries a class name; PointerKind carries the
// pointee Type. Construct instances with the helpers below rather than
// composite literals.
type Type struct {
	Kind  Kind
	Class string // valid when Kind == ClassKind
	Inner *Type  // valid when Kind == PointerKind
}

var (
	IntType    = Type{Kind: Int}
	FloatType  = Type{Kind: Float}
	StringType = Type{Kind: String}
	BoolType   = Type{Kind: Bool}
	VoidType   = Type{Kind: Void}
	CharType   = Type{Kind: Char}
)

// NewClass builds a Class(name) type.
func NewClass(name string) Type {
	return Type{Kind: ClassKind, Class: name}
}

// NewPointer builds a Pointer(inner) type. Pointer nesting is unbounded:
// NewPointer(NewPointer(IntType)) is well-formed (spec.md §3).
func NewPointer(inner Type) Type {
	cp := inner
	return Type{Kind: PointerKind, Inner: &cp}
}

func (t Type) String() string {
	switch t.Kind {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Void:
		return "void"
	case Char:
		return "char"
	case ClassKind:
		return t.Class
	case PointerKind:
		return t.Inner.String() + "*"
	default:
		return fmt.Sprintf("Type(%d)", int(t.Kind))
	}
}

// primitiveFromWord maps a reserved type-keyword to its primitive Type.
// ok is false for anything else (the caller should treat the word as a
// class name).
func primitiveFromWord(word string) (Type, bool) {
	switch word {
	case "int":
		return IntType, true
	case "float":
		return FloatType, true
	case "string":
		return StringType, true
	case "bool":
		return BoolType, true
	case "void":
		return VoidType, true
	case "char":
		return CharType, true
	default:
		return Type{}, false
	}
}

// FromWord resolves a base-type keyword or class name to a Type, with no
// Pointer wrapping applied (the parser's type grammar layers `*` suffixes
// on afterward).
func FromWord(word string) Type {
	if t, ok := primitiveFromWord(word); ok {
		return t
	}
	return NewClass(word)
}
