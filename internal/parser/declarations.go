package parser

import (
	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/lexer"
)

// parseVarDecl parses `var Name: Type = expr;` or, with constant set,
// `const Name: Type = expr;`. The declaration is recorded in the
// Gemstone variable table as it's parsed.
func (p *Parser) parseVarDecl(constant bool) ast.Expr {
	tok := p.advance() // 'var' or 'const'

	nameTok, errd := p.expect(lexer.WORD)
	if errd != nil {
		return &ast.Empty{Token: tok}
	}
	if _, errd := p.expect(lexer.COLON); errd != nil {
		return &ast.Empty{Token: tok}
	}

	varType := p.parseType()
	if p.err != nil {
		return &ast.Empty{Token: tok}
	}

	if _, errd := p.expect(lexer.EQUAL); errd != nil {
		return &ast.Empty{Token: tok}
	}

	value := p.parseAdditive()
	if p.err != nil {
		return &ast.Empty{Token: tok}
	}

	if _, errd := p.expect(lexer.SEMICOLON); errd != nil {
		return &ast.Empty{Token: tok}
	}

	decl := &ast.VarDecl{Token: tok, Name: nameTok.Literal, Value: value, VarType: varType, Constant: constant}
	p.State.DeclareVariable(decl)
	return decl
}
