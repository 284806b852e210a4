package emitter

import (
	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/errors"
)

// emitStmt dispatches on expr's kind and writes its lowering directly
// into e.sb. It is shared by Emit (the top-level sequence) and
// emitBlockInline (a nested Block's sequence), matching spec.md §5's
// ordering guarantee that emission order equals parse order.
func (e *Emitter) emitStmt(expr ast.Expr) *errors.Diagnostic {
	switch v := expr.(type) {
	case *ast.ClassDecl:
		return e.emitClass(v)

	case *ast.FuncDecl:
		return e.emitFreeFunction(v)

	case *ast.VarDecl:
		return e.emitVarDeclStmt(v)

	case *ast.Return:
		return e.emitReturnStmt(v)

	case *ast.InternalCallExpr:
		return e.emitInternalCallStmt(v)

	case *ast.Empty:
		return nil

	case *ast.Block:
		return e.emitBlockInline(v)

	default:
		txt, d := e.emitExprText(expr)
		if d != nil {
			return d
		}
		e.sb.WriteString(txt)
		e.sb.WriteString(";\n")
		return nil
	}
}

func (e *Emitter) emitBlockInline(b *ast.Block) *errors.Diagnostic {
	e.sb.WriteString("{\n")
	for _, stmt := range b.Exprs {
		if d := e.emitStmt(stmt); d != nil {
			return d
		}
	}
	e.sb.WriteString("}\n")
	return nil
}

// emitVarDeclStmt lowers `Type [const ]Name = value;`, with the
// declarator quirks documented on declarator().
func (e *Emitter) emitVarDeclStmt(v *ast.VarDecl) *errors.Diagnostic {
	valueText, d := e.emitExprText(v.Value)
	if d != nil {
		return d
	}
	e.sb.WriteString(declarator(v.VarType, v.Constant, v.Name))
	e.sb.WriteString(" = ")
	e.sb.WriteString(valueText)
	e.sb.WriteString(";\n")
	return nil
}

// emitReturnStmt lowers `return <e>;`, including the bare `return ;`
// form (a space before the semicolon) for a value-less Return.
func (e *Emitter) emitReturnStmt(r *ast.Return) *errors.Diagnostic {
	e.sb.WriteString("return ")
	if r.Value != nil {
		txt, d := e.emitExprText(r.Value)
		if d != nil {
			return d
		}
		e.sb.WriteString(txt)
	}
	e.sb.WriteString(";\n")
	return nil
}

// emitInternalCallStmt lowers a built-in call by name: `print(x)` to
// `printf(<x>);`, `println(x)` to `printf(<x>+"\n");`. The `+` is left
// for the host C++ compiler to resolve (spec.md §4.4); it's valid only
// when x is a std::string, which is why println(someInt) fails during
// host compilation rather than emission (spec.md §9, bug 5).
func (e *Emitter) emitInternalCallStmt(c *ast.InternalCallExpr) *errors.Diagnostic {
	if len(c.Args) != 1 {
		return e.emitErrorf("InternalFunctionCall", c, "%s expects exactly 1 argument, got %d", c.Name, len(c.Args))
	}
	arg, d := e.emitExprText(c.Args[0])
	if d != nil {
		return d
	}

	switch c.Name {
	case "print":
		e.sb.WriteString("printf(" + arg + ");\n")
	case "println":
		e.sb.WriteString("printf(" + arg + "+\"\\n\");\n")
	default:
		return e.emitErrorf("InternalFunctionCall", c, "unknown built-in %q", c.Name)
	}
	return nil
}
