package parser

import (
	"testing"

	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/lexer"
)

func newTestParser(input string) *Parser {
	return New(lexer.New(input), input, "test.gem")
}

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := newTestParser(input)
	prog := p.ParseProgram()
	if p.Err() != nil {
		t.Fatalf("unexpected parse error: %v", p.Err())
	}
	return prog
}

func TestParseVarDecl(t *testing.T) {
	prog := parse(t, `var x: int = 1 + 2;`)
	if len(prog.Exprs) != 1 {
		t.Fatalf("want 1 top-level expr, got %d", len(prog.Exprs))
	}
	decl, ok := prog.Exprs[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("want *ast.VarDecl, got %T", prog.Exprs[0])
	}
	if decl.Name != "x" || decl.Constant {
		t.Fatalf("unexpected decl: %+v", decl)
	}
	bin, ok := decl.Value.(*ast.BinaryOp)
	if !ok || bin.Op != lexer.PLUS {
		t.Fatalf("want additive BinaryOp, got %+v", decl.Value)
	}
}

func TestParseConstDecl(t *testing.T) {
	prog := parse(t, `const pi: float = 3;`)
	decl := prog.Exprs[0].(*ast.VarDecl)
	if !decl.Constant {
		t.Fatalf("want Constant=true")
	}
}

// Precedence law (spec.md §8 invariant 5): `*`/`/` bind tighter than
// `+`/`-`, so `a + b * c` must parse as `a + (b * c)`.
func TestParsePrecedenceLaw(t *testing.T) {
	prog := parse(t, `var x: int = a + b * c;`)
	decl := prog.Exprs[0].(*ast.VarDecl)
	top := decl.Value.(*ast.BinaryOp)
	if top.Op != lexer.PLUS {
		t.Fatalf("want top-level +, got %s", top.Op)
	}
	rhs, ok := top.Right.(*ast.BinaryOp)
	if !ok || rhs.Op != lexer.STAR {
		t.Fatalf("want nested *, got %+v", top.Right)
	}
}

func TestParseFreeFunctionDecl(t *testing.T) {
	prog := parse(t, `function add(a: int, b: int) -> int { return a + b; }`)
	fd := prog.Exprs[0].(*ast.FuncDecl)
	if fd.Name != "add" || len(fd.Args) != 2 || fd.ReturnType.String() != "int" {
		t.Fatalf("unexpected func decl: %+v", fd)
	}
	block := fd.Body.(*ast.Block)
	if len(block.Exprs) != 1 {
		t.Fatalf("want 1 statement in body, got %d", len(block.Exprs))
	}
	ret, ok := block.Exprs[0].(*ast.Return)
	if !ok {
		t.Fatalf("want *ast.Return, got %T", block.Exprs[0])
	}
	if _, ok := ret.Value.(*ast.BinaryOp); !ok {
		t.Fatalf("want BinaryOp return value, got %T", ret.Value)
	}
}

func TestParseDeclarationOnlyFunctionBodyIsEmpty(t *testing.T) {
	prog := parse(t, `function stub(a: int) -> void;`)
	fd := prog.Exprs[0].(*ast.FuncDecl)
	if _, ok := fd.Body.(*ast.Empty); !ok {
		t.Fatalf("want Empty body for declaration-only function, got %T", fd.Body)
	}
}

func TestParseFreeCallStatement(t *testing.T) {
	prog := parse(t, `println("hi");`)
	call, ok := prog.Exprs[0].(*ast.InternalCallExpr)
	if !ok {
		t.Fatalf("want *ast.InternalCallExpr for builtin println, got %T", prog.Exprs[0])
	}
	if len(call.Args) != 1 {
		t.Fatalf("want 1 arg, got %d", len(call.Args))
	}
}

func TestParseUserCallIsCallExpr(t *testing.T) {
	prog := parse(t, `add(1, 2);`)
	call, ok := prog.Exprs[0].(*ast.CallExpr)
	if !ok {
		t.Fatalf("want *ast.CallExpr, got %T", prog.Exprs[0])
	}
	if call.Name != "add" || len(call.Args) != 2 {
		t.Fatalf("unexpected call: %+v", call)
	}
}

// Bug 4 (spec.md §9, preserved): a bare identifier statement followed by
// its terminating `;` produces two top-level expressions: the
// Identifier, then a stray Empty from the leftover semicolon.
func TestBareIdentifierStatementProducesStrayEmpty(t *testing.T) {
	prog := parse(t, `x;`)
	if len(prog.Exprs) != 2 {
		t.Fatalf("want 2 top-level exprs (Identifier, stray Empty), got %d: %+v", len(prog.Exprs), prog.Exprs)
	}
	if _, ok := prog.Exprs[0].(*ast.Identifier); !ok {
		t.Fatalf("want Identifier first, got %T", prog.Exprs[0])
	}
	if _, ok := prog.Exprs[1].(*ast.Empty); !ok {
		t.Fatalf("want stray Empty second, got %T", prog.Exprs[1])
	}
}

// A member-call statement has the same trailing-semicolon quirk as a
// bare identifier, since MemberCallExpr never consumes its own `;`
// (spec.md §9): the leftover `;` surfaces as a second top-level Empty.
func TestMemberCallStatementProducesStrayEmpty(t *testing.T) {
	prog := parse(t, `obj->run();`)
	if len(prog.Exprs) != 2 {
		t.Fatalf("want 2 top-level exprs, got %d: %+v", len(prog.Exprs), prog.Exprs)
	}
	if _, ok := prog.Exprs[0].(*ast.MemberCallExpr); !ok {
		t.Fatalf("want MemberCallExpr first, got %T", prog.Exprs[0])
	}
	if _, ok := prog.Exprs[1].(*ast.Empty); !ok {
		t.Fatalf("want stray Empty second, got %T", prog.Exprs[1])
	}
}

// A member call used as a return value does not leave a stray
// semicolon: Return's own grammar consumes the trailing `;`.
func TestReturnOfMemberCallConsumesOwnSemicolon(t *testing.T) {
	prog := parse(t, `function f() -> int { return obj->run(); }`)
	fd := prog.Exprs[0].(*ast.FuncDecl)
	block := fd.Body.(*ast.Block)
	if len(block.Exprs) != 1 {
		t.Fatalf("want exactly 1 statement, got %d: %+v", len(block.Exprs), block.Exprs)
	}
	ret := block.Exprs[0].(*ast.Return)
	if _, ok := ret.Value.(*ast.MemberCallExpr); !ok {
		t.Fatalf("want MemberCallExpr return value, got %T", ret.Value)
	}
}
