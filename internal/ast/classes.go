package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/gemc/internal/lexer"
	"github.com/cwbudde/gemc/internal/types"
)

// AccessModifier is spec.md's Public | Private, defaulting to Private.
type AccessModifier int

const (
	Private AccessModifier = iota
	Public
)

func (a AccessModifier) String() string {
	if a == Public {
		return "public"
	}
	return "private"
}

// Param is a single (name, Type) function or method parameter.
type Param struct {
	Name string
	Type types.Type
}

// ClassDecl is spec.md's Class { name, base_class, methods }.
type ClassDecl struct {
	Token     lexer.Token // the 'class' token
	Name      string
	BaseClass string // empty when there is no base class
	Methods   []*ClassFunction
}

func (c *ClassDecl) exprNode()            {}
func (c *ClassDecl) TokenLiteral() string { return c.Token.Literal }
func (c *ClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(c.Name)
	if c.BaseClass != "" {
		out.WriteString(": ")
		out.WriteString(c.BaseClass)
	}
	out.WriteString(" {\n")
	for _, m := range c.Methods {
		out.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// ClassFunction is spec.md's ClassFunction: a method with access control
// and at most one of {is_virtual, is_override, is_external} set.
type ClassFunction struct {
	Token      lexer.Token // the 'function' token
	Name       string
	Args       []Param
	ReturnType types.Type
	Body       Expr // *Block, or *Empty for a declaration-only method
	IsVirtual  bool
	IsOverride bool
	IsExternal bool
	Access     AccessModifier
}

func (f *ClassFunction) exprNode()            {}
func (f *ClassFunction) TokenLiteral() string { return f.Token.Literal }
func (f *ClassFunction) String() string {
	var out bytes.Buffer
	out.WriteString(f.Access.String())
	out.WriteString(" ")
	if f.IsVirtual {
		out.WriteString("virtual ")
	}
	if f.IsOverride {
		out.WriteString("override ")
	}
	if f.IsExternal {
		out.WriteString("external ")
	}
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

func paramList(params []Param) string {
	var parts []string
	for _, p := range params {
		parts = append(parts, p.Name+": "+p.Type.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
