// Package emitter lowers a Gem ast.Program into a single C++ translation
// unit (spec.md §4.4). Lowering is purely syntactic: the emitter never
// consults the Gemstone class or variable tables, only the AST shape.
package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/errors"
	"github.com/cwbudde/gemc/internal/lexer"
)

// Emitter accumulates emitted C++ text into a strings.Builder, the way
// the teacher's bytecode compiler accumulates emitted instructions, and
// aborts on the first EmitError.
type Emitter struct {
	sb     strings.Builder
	source string
	file   string
}

// New builds an Emitter for a single source file, used only to annotate
// diagnostics.
func New(source, file string) *Emitter {
	return &Emitter{source: source, file: file}
}

// Emit lowers prog to a complete translation unit, including the fixed
// preamble spec.md §4.4 requires.
func (e *Emitter) Emit(prog *ast.Program) (string, *errors.Diagnostic) {
	e.sb.Reset()
	e.sb.WriteString("#include <stdio.h>\n")
	e.sb.WriteString("#include <string>\n\n")

	for _, expr := range prog.Exprs {
		if d := e.emitStmt(expr); d != nil {
			return "", d
		}
	}
	return e.sb.String(), nil
}

func isEmptyBody(body ast.Expr) bool {
	_, ok := body.(*ast.Empty)
	return ok
}

// nodePos extracts the source position carried by expr's Token field,
// for EmitError diagnostics raised on a node kind the emitter doesn't
// otherwise unwrap.
func nodePos(expr ast.Expr) lexer.Position {
	switch e := expr.(type) {
	case *ast.ClassDecl:
		return e.Token.Pos
	case *ast.ClassFunction:
		return e.Token.Pos
	case *ast.FuncDecl:
		return e.Token.Pos
	case *ast.CallExpr:
		return e.Token.Pos
	case *ast.InternalCallExpr:
		return e.Token.Pos
	case *ast.Identifier:
		return e.Token.Pos
	case *ast.IntLiteral:
		return e.Token.Pos
	case *ast.StringLiteral:
		return e.Token.Pos
	case *ast.Empty:
		return e.Token.Pos
	case *ast.Block:
		return e.Token.Pos
	case *ast.Return:
		return e.Token.Pos
	case *ast.BinaryOp:
		return e.Token.Pos
	case *ast.VarDecl:
		return e.Token.Pos
	case *ast.NewExpr:
		return e.Token.Pos
	case *ast.MemberExpr:
		return e.Token.Pos
	case *ast.MemberCallExpr:
		return e.Token.Pos
	default:
		return lexer.Position{}
	}
}

func (e *Emitter) emitErrorf(kind string, expr ast.Expr, format string, args ...interface{}) *errors.Diagnostic {
	return errors.NewEmitError(kind, fmt.Sprintf(format, args...), e.source, e.file, nodePos(expr))
}
