package parser

import (
	"testing"

	"github.com/cwbudde/gemc/internal/ast"
)

func TestParseClassWithBaseAndMethods(t *testing.T) {
	prog := parse(t, `
class Animal {
	public virtual function speak() -> void;
}

class Dog: Animal {
	public override function speak() -> void {
		println("woof");
	}
}
`)
	if len(prog.Exprs) != 2 {
		t.Fatalf("want 2 top-level classes, got %d", len(prog.Exprs))
	}

	animal := prog.Exprs[0].(*ast.ClassDecl)
	if animal.Name != "Animal" || animal.BaseClass != "" {
		t.Fatalf("unexpected class: %+v", animal)
	}
	if len(animal.Methods) != 1 || !animal.Methods[0].IsVirtual {
		t.Fatalf("want one virtual method, got %+v", animal.Methods)
	}

	dog := prog.Exprs[1].(*ast.ClassDecl)
	if dog.BaseClass != "Animal" {
		t.Fatalf("want base class Animal, got %q", dog.BaseClass)
	}
	if !dog.Methods[0].IsOverride {
		t.Fatalf("want override method, got %+v", dog.Methods[0])
	}
}

// Mutual exclusion invariant (spec.md §8 invariant 3): a method may carry
// at most one of virtual, override, external.
func TestParseClassRejectsMultipleModifiers(t *testing.T) {
	p := newTestParser(`
class C {
	public virtual override function f() -> void;
}
`)
	p.ParseProgram()
	if p.Err() == nil {
		t.Fatalf("want parse error for virtual+override on one method")
	}
}

func TestParseExternalMethodHasNoBody(t *testing.T) {
	prog := parse(t, `
class C {
	public external function f() -> int;
}
`)
	c := prog.Exprs[0].(*ast.ClassDecl)
	m := c.Methods[0]
	if !m.IsExternal {
		t.Fatalf("want IsExternal=true")
	}
	if _, ok := m.Body.(*ast.Empty); !ok {
		t.Fatalf("want Empty body for external method, got %T", m.Body)
	}
}

func TestParseExternalMethodWithBodyIsParseError(t *testing.T) {
	p := newTestParser(`
class C {
	public external function f() -> int { return 1; }
}
`)
	p.ParseProgram()
	if p.Err() == nil {
		t.Fatalf("want parse error for external method with a body")
	}
}

func TestParseClassRegistersInGemstoneState(t *testing.T) {
	p := newTestParser(`class Foo { }`)
	p.ParseProgram()
	if p.Err() != nil {
		t.Fatalf("unexpected parse error: %v", p.Err())
	}
	if _, ok := p.State.LookupClass("Foo"); !ok {
		t.Fatalf("want Foo registered in class table")
	}
}
