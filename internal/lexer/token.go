// Package lexer converts Gem source text into a flat token sequence.
package lexer

import "fmt"

// TokenType identifies the syntactic class of a Token.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	WORD   // identifier or reserved word, disambiguated by the parser
	INT    // integer literal
	FLOAT  // floating-point literal
	STRING // string literal

	LPAREN    // (
	RPAREN    // )
	LCURLY    // {
	RCURLY    // }
	LARROW    // ->
	SEMICOLON // ;
	COLON     // :
	COMMA     // ,
	EQUAL     // =
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	DOT       // .
)

var tokenNames = map[TokenType]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	WORD:      "WORD",
	INT:       "INT",
	FLOAT:     "FLOAT",
	STRING:    "STRING",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LCURLY:    "LCURLY",
	RCURLY:    "RCURLY",
	LARROW:    "LARROW",
	SEMICOLON: "SEMICOLON",
	COLON:     "COLON",
	COMMA:     "COMMA",
	EQUAL:     "EQUAL",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	STAR:      "STAR",
	SLASH:     "SLASH",
	DOT:       "DOT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Position is a 1-indexed line/column location within the source buffer.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexed unit: its type, its literal text (for WORD,
// STRING, INT, FLOAT and ILLEGAL), its numeric value (for INT and FLOAT),
// and its source position.
type Token struct {
	Type    TokenType
	Literal string
	IntVal  int32
	FltVal  float32
	Pos     Position
}

func (t Token) String() string {
	switch t.Type {
	case WORD:
		return fmt.Sprintf("Word(%q)", t.Literal)
	case INT:
		return fmt.Sprintf("Int(%d)", t.IntVal)
	case FLOAT:
		return fmt.Sprintf("Float(%g)", t.FltVal)
	case STRING:
		return fmt.Sprintf("String(%q)", t.Literal)
	default:
		return t.Type.String()
	}
}

// reserved is the set of reserved words; the lexer still emits them as
// WORD tokens (spec.md §4.1) and leaves disambiguation to the parser.
var reserved = map[string]bool{
	"class": true, "function": true, "return": true,
	"var": true, "const": true, "new": true,
	"public": true, "private": true,
	"virtual": true, "override": true, "external": true,
	"int": true, "float": true, "string": true,
	"bool": true, "void": true, "char": true,
}

// IsReserved reports whether word is one of Gem's reserved words.
func IsReserved(word string) bool {
	return reserved[word]
}
