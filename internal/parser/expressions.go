package parser

import (
	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/lexer"
)

// parseAdditive is the lowest precedence level: left-associative + and -
// over parseMultiplicative (spec.md §4.2's additive -> multiplicative ->
// member -> memcall -> primary chain).
func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.err == nil && (p.cur().Type == lexer.PLUS || p.cur().Type == lexer.MINUS) {
		opTok := p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{Token: opTok, Left: left, Op: opTok.Type, Right: right}
	}
	return left
}

// parseMultiplicative is left-associative * and / over parseMember.
func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseMember()
	for p.err == nil && (p.cur().Type == lexer.STAR || p.cur().Type == lexer.SLASH) {
		opTok := p.advance()
		right := p.parseMember()
		left = &ast.BinaryOp{Token: opTok, Left: left, Op: opTok.Type, Right: right}
	}
	return left
}

// parseMember is left-associative `.field` access over parseMemcall.
func (p *Parser) parseMember() ast.Expr {
	left := p.parseMemcall()
	for p.err == nil && p.cur().Type == lexer.DOT {
		dotTok := p.advance()
		fieldTok, errd := p.expect(lexer.WORD)
		if errd != nil {
			return left
		}
		left = &ast.MemberExpr{Token: dotTok, Object: left, Field: fieldTok.Literal}
	}
	return left
}

// parseMemcall is left-associative `->name(args)` arrow-calls over
// parsePrimary. It never consumes a trailing semicolon: the enclosing
// statement always supplies it (spec.md §9).
func (p *Parser) parseMemcall() ast.Expr {
	left := p.parsePrimary()
	for p.err == nil && p.cur().Type == lexer.LARROW {
		arrowTok := p.advance()
		nameTok, errd := p.expect(lexer.WORD)
		if errd != nil {
			return left
		}
		args := p.parseArgs()
		if p.err != nil {
			return left
		}
		call := &ast.CallExpr{Token: nameTok, Name: nameTok.Literal, Args: args}
		left = &ast.MemberCallExpr{Token: arrowTok, Object: left, Call: call}
	}
	return left
}

// parsePrimary is the base of the expression grammar: literals, a bare
// identifier, a parenthesized sub-expression, a nested block, a bare `;`
// (Empty), or `new`.
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()

	switch tok.Type {
	case lexer.INT:
		p.advance()
		return &ast.IntLiteral{Token: tok, Value: tok.IntVal}

	case lexer.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}

	case lexer.SEMICOLON:
		p.advance()
		return &ast.Empty{Token: tok}

	case lexer.LPAREN:
		p.advance()
		inner := p.parseTopLevel()
		if p.err != nil {
			return inner
		}
		if _, errd := p.expect(lexer.RPAREN); errd != nil {
			return inner
		}
		return inner

	case lexer.LCURLY:
		return p.parseBlock()

	case lexer.WORD:
		if tok.Literal == "new" {
			return p.parseNew()
		}
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Literal}

	default:
		p.fail(lexer.WORD)
		return &ast.Empty{Token: tok}
	}
}

// parseNew parses `new ClassName(args)`. This fixes the original's bug
// of skipping exactly three tokens after the class name and so dropping
// constructor arguments (spec.md §9, bug 2): the full comma-separated
// argument list is parsed via parseArgs like any other call.
func (p *Parser) parseNew() ast.Expr {
	tok := p.advance() // 'new'

	nameTok, errd := p.expect(lexer.WORD)
	if errd != nil {
		return &ast.Empty{Token: tok}
	}

	args := p.parseArgs()
	if p.err != nil {
		return &ast.Empty{Token: tok}
	}

	return &ast.NewExpr{Token: tok, ClassName: nameTok.Literal, Args: args}
}

// parseBlock parses a `{ Expr* }` sequence, sharing parseTopLevel's
// dispatch for each statement it contains.
func (p *Parser) parseBlock() ast.Expr {
	tok, errd := p.expect(lexer.LCURLY)
	if errd != nil {
		return &ast.Empty{Token: tok}
	}

	block := &ast.Block{Token: tok}
	for p.cur().Type != lexer.RCURLY {
		if p.cur().Type == lexer.EOF {
			p.fail(lexer.RCURLY)
			return block
		}
		expr := p.parseTopLevel()
		if p.err != nil {
			return block
		}
		block.Exprs = append(block.Exprs, expr)
	}
	p.advance() // '}'
	return block
}

// parseReturn parses `return;` or `return expr;`.
func (p *Parser) parseReturn() ast.Expr {
	tok := p.advance() // 'return'

	if p.cur().Type == lexer.SEMICOLON {
		p.advance()
		return &ast.Return{Token: tok}
	}

	value := p.parseAdditive()
	if p.err != nil {
		return &ast.Return{Token: tok, Value: value}
	}
	if _, errd := p.expect(lexer.SEMICOLON); errd != nil {
		return &ast.Return{Token: tok, Value: value}
	}
	return &ast.Return{Token: tok, Value: value}
}
