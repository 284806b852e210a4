package parser

import (
	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/gemstone"
	"github.com/cwbudde/gemc/internal/lexer"
)

// parseParams parses a parenthesized, comma-separated `name: Type` list,
// shared by free functions and class methods.
func (p *Parser) parseParams() []ast.Param {
	if _, errd := p.expect(lexer.LPAREN); errd != nil {
		return nil
	}

	var params []ast.Param
	for p.cur().Type != lexer.RPAREN {
		if p.err != nil {
			return params
		}
		nameTok, errd := p.expect(lexer.WORD)
		if errd != nil {
			return params
		}
		if _, errd := p.expect(lexer.COLON); errd != nil {
			return params
		}
		t := p.parseType()
		if p.err != nil {
			return params
		}
		params = append(params, ast.Param{Name: nameTok.Literal, Type: t})

		if p.cur().Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}

	if _, errd := p.expect(lexer.RPAREN); errd != nil {
		return params
	}
	return params
}

// parseArgs parses a parenthesized, comma-separated expression list. It
// never consumes a trailing ';': that belongs to whichever grammar rule
// calls it (spec.md §9's resolved semicolon rule).
func (p *Parser) parseArgs() []ast.Expr {
	if _, errd := p.expect(lexer.LPAREN); errd != nil {
		return nil
	}

	var args []ast.Expr
	for p.cur().Type != lexer.RPAREN {
		if p.err != nil {
			return args
		}
		args = append(args, p.parseAdditive())
		if p.err != nil {
			return args
		}
		if p.cur().Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}

	if _, errd := p.expect(lexer.RPAREN); errd != nil {
		return args
	}
	return args
}

// parseFuncDecl parses a free-standing `function Name(...) -> Type`
// definition, either with a Block body or a declaration-only `;`.
func (p *Parser) parseFuncDecl() ast.Expr {
	tok := p.advance() // 'function'

	nameTok, errd := p.expect(lexer.WORD)
	if errd != nil {
		return &ast.Empty{Token: tok}
	}

	params := p.parseParams()
	if p.err != nil {
		return &ast.Empty{Token: tok}
	}

	if _, errd := p.expect(lexer.LARROW); errd != nil {
		return &ast.Empty{Token: tok}
	}

	retType := p.parseType()
	if p.err != nil {
		return &ast.Empty{Token: tok}
	}

	fd := &ast.FuncDecl{Token: tok, Name: nameTok.Literal, Args: params, ReturnType: retType}

	if p.cur().Type == lexer.SEMICOLON {
		semi := p.advance()
		fd.Body = &ast.Empty{Token: semi}
		return fd
	}

	fd.Body = p.parseBlock()
	return fd
}

// parseCallStatement parses a free function call in statement position:
// `name(args);`. Only the statement-level production consumes the
// trailing semicolon; a member call reached through the expression
// grammar (parseMemcall) never does, since there is no expression-level
// production for a bare free call (spec.md §9's resolved open question).
func (p *Parser) parseCallStatement() ast.Expr {
	nameTok := p.advance() // the call's name

	args := p.parseArgs()
	if p.err != nil {
		return &ast.Empty{Token: nameTok}
	}

	if _, errd := p.expect(lexer.SEMICOLON); errd != nil {
		return &ast.Empty{Token: nameTok}
	}

	if gemstone.IsBuiltin(nameTok.Literal) {
		return &ast.InternalCallExpr{Token: nameTok, Name: nameTok.Literal, Args: args}
	}
	return &ast.CallExpr{Token: nameTok, Name: nameTok.Literal, Args: args}
}
