// Package ast defines the Abstract Syntax Tree node types for Gem, the
// toy class-oriented language lowered to C++ by this compiler. This file
// holds the shared Node/Expr interfaces and the leaf expression nodes;
// classes.go, functions.go, declarations.go, and expressions.go hold the
// rest of the sum type described in spec.md §3.
package ast

import (
	"bytes"
	"strconv"

	"github.com/cwbudde/gemc/internal/lexer"
)

// Node is the base interface every AST node satisfies.
type Node interface {
	TokenLiteral() string
	String() string
}

// Expr is spec.md §3's single sum type: every Gem AST node is an Expr,
// including statement-shaped forms like Return and VarDecl (Gem has no
// separate statement/expression split).
type Expr interface {
	Node
	exprNode()
}

// Program is the parser's output: the ordered top-level Expr sequence
// described in spec.md §2 ("a sequence of top-level expressions").
type Program struct {
	Exprs []Expr
}

func (p *Program) TokenLiteral() string {
	if len(p.Exprs) > 0 {
		return p.Exprs[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, e := range p.Exprs {
		out.WriteString(e.String())
	}
	return out.String()
}

// Identifier is spec.md's Variable(name) node.
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) exprNode()            {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Name }

// IntLiteral is spec.md's Int(i32) node.
type IntLiteral struct {
	Token lexer.Token
	Value int32
}

func (il *IntLiteral) exprNode()            {}
func (il *IntLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntLiteral) String() string       { return strconv.Itoa(int(il.Value)) }

// StringLiteral is spec.md's String(literal) node.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) exprNode()            {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return `"` + sl.Value + `"` }

// Empty is spec.md's Empty node: the result of parsing a bare `;`, or the
// body of a declaration-only Function/ClassFunction.
type Empty struct {
	Token lexer.Token
}

func (e *Empty) exprNode()            {}
func (e *Empty) TokenLiteral() string { return e.Token.Literal }
func (e *Empty) String() string       { return "" }

// Block is spec.md's Block { exprs }.
type Block struct {
	Token lexer.Token // the '{' token
	Exprs []Expr
}

func (b *Block) exprNode()            {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, e := range b.Exprs {
		out.WriteString(e.String())
	}
	out.WriteString("}\n")
	return out.String()
}

// Return is spec.md's Return(inner).
type Return struct {
	Token lexer.Token // the 'return' token
	Value Expr
}

func (r *Return) exprNode()            {}
func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// BinaryOp is spec.md's BinaryOp(lhs, op, rhs), op one of
// {Plus, Minus, Star, Slash}.
type BinaryOp struct {
	Token lexer.Token // the operator token
	Left  Expr
	Op    lexer.TokenType
	Right Expr
}

func (b *BinaryOp) exprNode()            {}
func (b *BinaryOp) TokenLiteral() string { return b.Token.Literal }
func (b *BinaryOp) String() string {
	return b.Left.String() + " " + opSymbol(b.Op) + " " + b.Right.String()
}

func opSymbol(t lexer.TokenType) string {
	switch t {
	case lexer.PLUS:
		return "+"
	case lexer.MINUS:
		return "-"
	case lexer.STAR:
		return "*"
	case lexer.SLASH:
		return "/"
	default:
		return "?"
	}
}
