package ast

import "github.com/cwbudde/gemc/internal/lexer"

// NewExpr is spec.md's New { class_name, args }.
type NewExpr struct {
	Token     lexer.Token // the 'new' token
	ClassName string
	Args      []Expr
}

func (n *NewExpr) exprNode()            {}
func (n *NewExpr) TokenLiteral() string { return n.Token.Literal }
func (n *NewExpr) String() string {
	return "new " + n.ClassName + "(" + joinExprs(n.Args) + ")"
}

// MemberExpr is spec.md's Member(obj, field_name): dot-access on a value.
type MemberExpr struct {
	Token  lexer.Token // the '.' token
	Object Expr
	Field  string
}

func (m *MemberExpr) exprNode()            {}
func (m *MemberExpr) TokenLiteral() string { return m.Token.Literal }
func (m *MemberExpr) String() string {
	return m.Object.String() + "." + m.Field
}

// MemberCallExpr is spec.md's MemberFunctionCall(obj, call): arrow-call
// on a pointer receiver.
type MemberCallExpr struct {
	Token  lexer.Token // the '->' token
	Object Expr
	Call   *CallExpr
}

func (m *MemberCallExpr) exprNode()            {}
func (m *MemberCallExpr) TokenLiteral() string { return m.Token.Literal }
func (m *MemberCallExpr) String() string {
	return m.Object.String() + "->" + m.Call.String()
}
