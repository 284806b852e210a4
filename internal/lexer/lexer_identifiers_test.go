package lexer

import "testing"

func TestNextTokenWord(t *testing.T) {
	l := New("foo_bar Baz2 _leading")

	for _, want := range []string{"foo_bar", "Baz2"} {
		tok := l.NextToken()
		if tok.Type != WORD || tok.Literal != want {
			t.Fatalf("want Word(%q), got %v", want, tok)
		}
	}
}

func TestNextTokenUnderscoreContinuesWord(t *testing.T) {
	// Regression for spec.md §9 bug 1: underscores must be admitted
	// anywhere within the identifier body, not just at a boundary that a
	// mis-precedenced continuation test would happen to allow.
	l := New("my_long_var_name")
	tok := l.NextToken()
	if tok.Type != WORD || tok.Literal != "my_long_var_name" {
		t.Fatalf("want Word(my_long_var_name), got %v", tok)
	}
	if eof := l.NextToken(); eof.Type != EOF {
		t.Fatalf("want EOF after single word, got %v", eof)
	}
}

func TestReservedWordsAreWordTokens(t *testing.T) {
	for _, kw := range []string{"class", "function", "return", "var", "const", "new", "public", "private", "virtual", "override", "external", "int", "float", "string", "bool", "void", "char"} {
		if !IsReserved(kw) {
			t.Fatalf("%q should be reserved", kw)
		}
		l := New(kw)
		tok := l.NextToken()
		if tok.Type != WORD || tok.Literal != kw {
			t.Fatalf("reserved word %q should lex as Word, got %v", kw, tok)
		}
	}
}
