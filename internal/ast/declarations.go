package ast

import (
	"github.com/cwbudde/gemc/internal/lexer"
	"github.com/cwbudde/gemc/internal/types"
)

// VarDecl is spec.md's VariableDeclaration { name, value, var_type,
// constant }, produced by both `var` and `const` statements.
type VarDecl struct {
	Token    lexer.Token // the 'var' or 'const' token
	Name     string
	Value    Expr
	VarType  types.Type
	Constant bool
}

func (v *VarDecl) exprNode()            {}
func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) String() string {
	kw := "var"
	if v.Constant {
		kw = "const"
	}
	return kw + " " + v.Name + ": " + v.VarType.String() + " = " + v.Value.String() + ";"
}
