package parser

import (
	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/lexer"
)

// parseClassDecl parses `class Name (: Base)? { ClassFunction* }` and
// registers the result in the Gemstone class table (spec.md §3:
// redeclaration overwrites).
func (p *Parser) parseClassDecl() ast.Expr {
	tok := p.advance() // 'class'

	nameTok, errd := p.expect(lexer.WORD)
	if errd != nil {
		return &ast.Empty{Token: tok}
	}

	decl := &ast.ClassDecl{Token: tok, Name: nameTok.Literal}

	if p.cur().Type == lexer.COLON {
		p.advance()
		baseTok, errd := p.expect(lexer.WORD)
		if errd != nil {
			return &ast.Empty{Token: tok}
		}
		decl.BaseClass = baseTok.Literal
	}

	if _, errd := p.expect(lexer.LCURLY); errd != nil {
		return &ast.Empty{Token: tok}
	}

	for p.cur().Type != lexer.RCURLY {
		if p.cur().Type == lexer.EOF {
			p.fail(lexer.RCURLY)
			return decl
		}
		m := p.parseClassFunction()
		if p.err != nil {
			return decl
		}
		decl.Methods = append(decl.Methods, m)
	}
	p.advance() // '}'

	p.State.DeclareClass(decl)
	return decl
}

// parseClassFunction parses a single method: an optional access
// modifier, at most one of virtual/override/external, then a function
// definition. The at-most-one-modifier rule is an invariant from
// spec.md §3; a second modifier is a parse error, not a later type
// error.
func (p *Parser) parseClassFunction() *ast.ClassFunction {
	access := ast.Private
	switch {
	case isWord(p.cur(), "public"):
		access = ast.Public
		p.advance()
	case isWord(p.cur(), "private"):
		access = ast.Private
		p.advance()
	}

	var isVirtual, isOverride, isExternal bool
	modifierCount := 0

modifiers:
	for {
		switch {
		case isWord(p.cur(), "virtual"):
			isVirtual = true
			modifierCount++
			p.advance()
		case isWord(p.cur(), "override"):
			isOverride = true
			modifierCount++
			p.advance()
		case isWord(p.cur(), "external"):
			isExternal = true
			modifierCount++
			p.advance()
		default:
			break modifiers
		}
	}

	if modifierCount > 1 {
		p.failMsg("a method may have at most one of virtual, override, external")
		return &ast.ClassFunction{}
	}

	funcTok, errd := p.expectWord("function")
	if errd != nil {
		return &ast.ClassFunction{}
	}

	nameTok, errd := p.expect(lexer.WORD)
	if errd != nil {
		return &ast.ClassFunction{}
	}

	params := p.parseParams()
	if p.err != nil {
		return &ast.ClassFunction{}
	}

	if _, errd := p.expect(lexer.LARROW); errd != nil {
		return &ast.ClassFunction{}
	}

	retType := p.parseType()
	if p.err != nil {
		return &ast.ClassFunction{}
	}

	cf := &ast.ClassFunction{
		Token:      funcTok,
		Name:       nameTok.Literal,
		Args:       params,
		ReturnType: retType,
		IsVirtual:  isVirtual,
		IsOverride: isOverride,
		IsExternal: isExternal,
		Access:     access,
	}

	if p.cur().Type == lexer.SEMICOLON {
		semi := p.advance()
		cf.Body = &ast.Empty{Token: semi}
		return cf
	}

	if isExternal {
		p.failMsg("an external method cannot have a body")
		return cf
	}

	cf.Body = p.parseBlock()
	return cf
}
