// Package semantic implements Gem's partial, advisory type checker
// (spec.md §4.3). It walks only Function, Block, and VariableDeclaration
// nodes and is disabled by default in the driver; any expression kind it
// doesn't have an inference rule for is reported as NotYetImplemented
// rather than skipped silently or panicking.
package semantic

import (
	"fmt"

	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/errors"
	"github.com/cwbudde/gemc/internal/gemstone"
	"github.com/cwbudde/gemc/internal/lexer"
	"github.com/cwbudde/gemc/internal/types"
)

// Checker walks a Program and reports the first structural type error or
// unimplemented-node diagnostic it finds.
type Checker struct {
	state  *gemstone.State
	source string
	file   string
}

// New builds a Checker over state, the Gemstone context built by the
// parser for the same file.
func New(state *gemstone.State, source, file string) *Checker {
	return &Checker{state: state, source: source, file: file}
}

// Check walks prog and returns the first diagnostic raised, or nil if the
// covered subset of the program type-checks cleanly. Per spec.md §7, the
// first error aborts the phase; there is no error recovery.
func (c *Checker) Check(prog *ast.Program) *errors.Diagnostic {
	for _, expr := range prog.Exprs {
		if d := c.checkNode(expr); d != nil {
			return d
		}
	}
	return nil
}

// checkNode recurses into the three covered node kinds, following them
// wherever they're nested (a Function inside the top level, a Block
// inside a Function, a VariableDeclaration inside a Block). Any other
// node kind is simply not visited: the checker's partiality is about
// scope, not about flagging everything it skips.
func (c *Checker) checkNode(expr ast.Expr) *errors.Diagnostic {
	switch e := expr.(type) {
	case *ast.ClassDecl:
		for _, m := range e.Methods {
			if d := c.checkNode(m); d != nil {
				return d
			}
		}
		return nil

	case *ast.ClassFunction:
		return c.checkBody(e.Body)

	case *ast.FuncDecl:
		return c.checkBody(e.Body)

	case *ast.Block:
		for _, inner := range e.Exprs {
			if d := c.checkNode(inner); d != nil {
				return d
			}
		}
		return nil

	case *ast.VarDecl:
		valueType, d := c.infer(e.Value)
		if d != nil {
			return d
		}
		if !compatible(e.VarType, valueType, c.state) {
			msg := fmt.Sprintf("cannot assign %s to variable %q of type %s", valueType, e.Name, e.VarType)
			return errors.NewTypeError(msg, c.source, c.file, e.Token.Pos)
		}
		return nil

	default:
		return nil
	}
}

func (c *Checker) checkBody(body ast.Expr) *errors.Diagnostic {
	if block, ok := body.(*ast.Block); ok {
		return c.checkNode(block)
	}
	return nil
}

// infer computes the type of an expression using spec.md §4.3's
// inference rules. Any expression kind without a rule raises
// NotYetImplemented, including MemberFunctionCall, which the spec calls
// out as deliberately unimplemented.
func (c *Checker) infer(expr ast.Expr) (types.Type, *errors.Diagnostic) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return types.IntType, nil
	case *ast.StringLiteral:
		return types.StringType, nil
	case *ast.NewExpr:
		return types.NewPointer(types.NewClass(e.ClassName)), nil
	case *ast.MemberCallExpr:
		return types.Type{}, errors.NewNotYetImplemented("MemberFunctionCall", c.source, c.file, e.Token.Pos)
	default:
		return types.Type{}, errors.NewNotYetImplemented(fmt.Sprintf("%T", expr), c.source, c.file, nodePos(expr))
	}
}

// nodePos extracts the source position carried by any ast.Expr's Token
// field, for diagnostics raised on node kinds infer doesn't otherwise
// unwrap.
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
