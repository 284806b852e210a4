package emitter

import (
	"strconv"
	"strings"

	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/errors"
	"github.com/cwbudde/gemc/internal/lexer"
)

func opChar(t lexer.TokenType) string {
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

// emitExprText renders expr as a C++ expression string, per spec.md
// §4.4's statement/expression lowering table. InternalFunctionCall has
// no expression form (its lowering bakes in a trailing `;`), so it's
// intentionally absent here; it's only valid in statement position.
func (e *Emitter) emitExprText(expr ast.Expr) (string, *errors.Diagnostic) {
	switch v := expr.(type) {
	case *ast.IntLiteral:
		return strconv.Itoa(int(v.Value)), nil

	case *ast.StringLiteral:
		return `"` + v.Value + `"`, nil

	case *ast.Identifier:
		return v.Name, nil

	case *ast.BinaryOp:
		left, d := e.emitExprText(v.Left)
		if d != nil {
			return "", d
		}
		right, d := e.emitExprText(v.Right)
		if d != nil {
			return "", d
		}
		return left + " " + opChar(v.Op) + " " + right, nil

	case *ast.NewExpr:
		args, d := e.emitArgs(v.Args)
		if d != nil {
			return "", d
		}
		return "new " + v.ClassName + "(" + args + ")", nil

	case *ast.MemberExpr:
		obj, d := e.emitExprText(v.Object)
		if d != nil {
			return "", d
		}
		return obj + "." + v.Field, nil

	case *ast.MemberCallExpr:
		obj, d := e.emitExprText(v.Object)
		if d != nil {
			return "", d
		}
		args, d := e.emitArgs(v.Call.Args)
		if d != nil {
			return "", d
		}
		return obj + "->" + v.Call.Name + "(" + args + ")", nil

	case *ast.CallExpr:
		args, d := e.emitArgs(v.Args)
		if d != nil {
			return "", d
		}
		return v.Name + "(" + args + ")", nil

	default:
		return "", e.emitErrorf(nodeKindName(expr), expr, "not a valid expression")
	}
}

func (e *Emitter) emitArgs(args []ast.Expr) (string, *errors.Diagnostic) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		txt, d := e.emitExprText(a)
		if d != nil {
			return "", d
		}
		parts = append(parts, txt)
	}
	return strings.Join(parts, ", "), nil
}

func nodeKindName(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.ClassDecl:
		return "Class"
	case *ast.ClassFunction:
		return "ClassFunction"
	case *ast.FuncDecl:
		return "Function"
	case *ast.Block:
		return "Block"
	case *ast.Return:
		return "Return"
	case *ast.VarDecl:
		return "VariableDeclaration"
	case *ast.Empty:
		return "Empty"
	default:
		return "unknown"
	}
}
