package gemstone

import (
	"testing"

	"github.com/cwbudde/gemc/internal/ast"
)

func TestIsBuiltinCoversPrintAndPrintln(t *testing.T) {
	if !IsBuiltin("print") {
		t.Fatalf("want print to be builtin")
	}
	if !IsBuiltin("println") {
		t.Fatalf("want println to be builtin")
	}
	if IsBuiltin("run") {
		t.Fatalf("want run to not be builtin")
	}
}

func TestDeclareClassOverwritesOnRedeclaration(t *testing.T) {
	s := New()
	first := &ast.ClassDecl{Name: "Animal", BaseClass: ""}
	second := &ast.ClassDecl{Name: "Animal", BaseClass: "LivingThing"}

	s.DeclareClass(first)
	s.DeclareClass(second)

	got, ok := s.LookupClass("Animal")
	if !ok {
		t.Fatalf("want Animal registered")
	}
	if got.BaseClass != "LivingThing" {
		t.Fatalf("want redeclaration to overwrite, got base %q", got.BaseClass)
	}
}

func TestLookupClassMissing(t *testing.T) {
	s := New()
	if _, ok := s.LookupClass("Nope"); ok {
		t.Fatalf("want missing class to report not found")
	}
}

func TestDeclareAndLookupVariable(t *testing.T) {
	s := New()
	v := &ast.VarDecl{Name: "x"}
	s.DeclareVariable(v)

	got, ok := s.LookupVariable("x")
	if !ok || got != v {
		t.Fatalf("want declared variable to be looked up by name")
	}
}
