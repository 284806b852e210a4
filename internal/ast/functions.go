package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/gemc/internal/lexer"
	"github.com/cwbudde/gemc/internal/types"
)

// FuncDecl is spec.md's free-standing Function { name, args, return_type,
// body }.
type FuncDecl struct {
	Token      lexer.Token // the 'function' token
	Name       string
	Args       []Param
	ReturnType types.Type
	Body       Expr // *Block, or *Empty for a declaration-only function
}

func (f *FuncDecl) exprNode()            {}
func (f *FuncDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FuncDecl) String() string {
	var out bytes.Buffer
	out.WriteString("function ")
	out.WriteString(f.Name)
	out.WriteString(paramList(f.Args))
	out.WriteString(" -> ")
	out.WriteString(f.ReturnType.String())
	if _, ok := f.Body.(*Empty); ok {
		out.WriteString(";")
	} else {
		out.WriteString(" ")
		out.WriteString(f.Body.String())
	}
	return out.String()
}

// CallExpr is spec.md's free-function FunctionCall { name, args }.
type CallExpr struct {
	Token lexer.Token // the call's name token
	Name  string
	Args  []Expr
}

func (c *CallExpr) exprNode()            {}
func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) String() string {
	return c.Name + "(" + joinExprs(c.Args) + ")"
}

// InternalCallExpr is spec.md's InternalFunctionCall: a call to a
// built-in (print, println).
type InternalCallExpr struct {
	Token lexer.Token
	Name  string
	Args  []Expr
}

func (c *InternalCallExpr) exprNode()            {}
func (c *InternalCallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *InternalCallExpr) String() string {
	return c.Name + "(" + joinExprs(c.Args) + ")"
}

func joinExprs(exprs []Expr) string {
	var parts []string
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}
