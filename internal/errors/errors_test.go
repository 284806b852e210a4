package errors

import (
	"strings"
	"testing"

	"github.com/cwbudde/gemc/internal/lexer"
)

func TestDiagnosticFormatIncludesCaret(t *testing.T) {
	src := "var x: int = 1;\nreturn y;"
	d := NewTypeError("mismatched types", src, "main.gem", lexer.Position{Line: 2, Column: 8})

	out := d.Format()
	if !strings.Contains(out, "TypeError in main.gem:2:8") {
		t.Fatalf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "return y;") {
		t.Fatalf("missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret, got:\n%s", out)
	}
}

func TestNewParseErrorMessage(t *testing.T) {
	expected := lexer.Token{Type: lexer.WORD}
	found := lexer.Token{Type: lexer.LARROW, Pos: lexer.Position{Line: 1, Column: 10}}
	before := lexer.Token{Type: lexer.LPAREN}

	d := NewParseError(expected, found, &before, nil, "function f( -> int {}", "main.gem")
	if d.Kind != KindParse {
		t.Fatalf("want KindParse, got %s", d.Kind)
	}
	if !strings.Contains(d.Message, "expected WORD, found LARROW") {
		t.Fatalf("unexpected message: %s", d.Message)
	}
	if !strings.Contains(d.Message, "before: LPAREN") {
		t.Fatalf("missing neighbor context: %s", d.Message)
	}
}

func TestHostErrorFormatting(t *testing.T) {
	err := NewHostCompileError("main.cpp", "main.cpp:3:1: error: expected ';'")
	if err.Kind != KindHostCompile {
		t.Fatalf("want KindHostCompile, got %s", err.Kind)
	}
	if !strings.Contains(err.Error(), "main.cpp") {
		t.Fatalf("unexpected error text: %s", err.Error())
	}
}
