package emitter

import (
	"strings"

	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/errors"
)

func paramsCpp(params []ast.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, lowerType(p.Type)+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// emitFreeFunction lowers a free `function` to `RetType Name(Args) {
// body }`. A free function must have a Block body: the parser accepts a
// semicolon-only declaration (Empty body), and it is rejected here with
// an EmitError.
func (e *Emitter) emitFreeFunction(f *ast.FuncDecl) *errors.Diagnostic {
	block, ok := f.Body.(*ast.Block)
	if !ok {
		return e.emitErrorf("Function", f, "free function %q must have a block body", f.Name)
	}

	e.sb.WriteString(lowerType(f.ReturnType))
	e.sb.WriteString(" ")
	e.sb.WriteString(f.Name)
	e.sb.WriteString("(")
	e.sb.WriteString(paramsCpp(f.Args))
	e.sb.WriteString(") ")
	return e.emitBlockInline(block)
}
