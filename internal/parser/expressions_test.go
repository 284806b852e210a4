package parser

import (
	"testing"

	"github.com/cwbudde/gemc/internal/ast"
)

// Bug 2 fix (spec.md §9): `new C(a, b, c)` must parse the full
// comma-separated argument list, not drop it by skipping a fixed number
// of tokens.
func TestParseNewCapturesAllConstructorArgs(t *testing.T) {
	prog := parse(t, `var p: Point* = new Point(1, 2, 3);`)
	decl := prog.Exprs[0].(*ast.VarDecl)
	n, ok := decl.Value.(*ast.NewExpr)
	if !ok {
		t.Fatalf("want *ast.NewExpr, got %T", decl.Value)
	}
	if n.ClassName != "Point" {
		t.Fatalf("want ClassName Point, got %q", n.ClassName)
	}
	if len(n.Args) != 3 {
		t.Fatalf("want 3 constructor args, got %d: %+v", len(n.Args), n.Args)
	}
}

func TestParseNewWithNoArgs(t *testing.T) {
	prog := parse(t, `var p: Point* = new Point();`)
	decl := prog.Exprs[0].(*ast.VarDecl)
	n := decl.Value.(*ast.NewExpr)
	if len(n.Args) != 0 {
		t.Fatalf("want 0 args, got %d", len(n.Args))
	}
}

// Pointer nesting is unbounded (spec.md §3): the parser records each `*`
// suffix as one more Pointer wrapper.
func TestParsePointerTypeNesting(t *testing.T) {
	prog := parse(t, `var p: int** = new Point();`)
	decl := prog.Exprs[0].(*ast.VarDecl)
	if decl.VarType.String() != "int**" {
		t.Fatalf("want int**, got %s", decl.VarType.String())
	}
}

func TestParseMemberDotAccess(t *testing.T) {
	prog := parse(t, `var x: int = obj.field;`)
	decl := prog.Exprs[0].(*ast.VarDecl)
	m, ok := decl.Value.(*ast.MemberExpr)
	if !ok {
		t.Fatalf("want *ast.MemberExpr, got %T", decl.Value)
	}
	if m.Field != "field" {
		t.Fatalf("want field %q, got %q", "field", m.Field)
	}
	obj, ok := m.Object.(*ast.Identifier)
	if !ok || obj.Name != "obj" {
		t.Fatalf("want Identifier(obj), got %+v", m.Object)
	}
}

func TestParseChainedMemberCalls(t *testing.T) {
	prog := parse(t, `function f() -> void { return a->b()->c(); }`)
	fd := prog.Exprs[0].(*ast.FuncDecl)
	block := fd.Body.(*ast.Block)
	ret := block.Exprs[0].(*ast.Return)
	outer, ok := ret.Value.(*ast.MemberCallExpr)
	if !ok {
		t.Fatalf("want outer MemberCallExpr, got %T", ret.Value)
	}
	if outer.Call.Name != "c" {
		t.Fatalf("want outer call c, got %s", outer.Call.Name)
	}
	inner, ok := outer.Object.(*ast.MemberCallExpr)
	if !ok || inner.Call.Name != "b" {
		t.Fatalf("want inner MemberCallExpr b, got %+v", outer.Object)
	}
}

func TestParseParenthesizedExpression(t *testing.T) {
	prog := parse(t, `var x: int = (1 + 2) * 3;`)
	decl := prog.Exprs[0].(*ast.VarDecl)
	top := decl.Value.(*ast.BinaryOp)
	if _, ok := top.Left.(*ast.BinaryOp); !ok {
		t.Fatalf("want parenthesized BinaryOp on the left, got %T", top.Left)
	}
}

func TestParseNestedBlockAsExpression(t *testing.T) {
	prog := parse(t, `{ { 1; } }`)
	outer, ok := prog.Exprs[0].(*ast.Block)
	if !ok {
		t.Fatalf("want outer *ast.Block, got %T", prog.Exprs[0])
	}
	if len(outer.Exprs) != 1 {
		t.Fatalf("want 1 nested statement, got %d", len(outer.Exprs))
	}
	if _, ok := outer.Exprs[0].(*ast.Block); !ok {
		t.Fatalf("want nested *ast.Block, got %T", outer.Exprs[0])
	}
}
