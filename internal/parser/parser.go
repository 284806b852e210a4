// Package parser implements Gem's precedence-climbing recursive-descent
// parser (spec.md §4.2). It consumes a lexer.Token sequence and produces
// an ast.Program, threading a gemstone.State through so class and
// variable declarations can be looked up by later phases.
package parser

import (
	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/errors"
	"github.com/cwbudde/gemc/internal/gemstone"
	"github.com/cwbudde/gemc/internal/lexer"
	"github.com/cwbudde/gemc/internal/types"
)

// Parser holds the token stream and parse position. It does not recover
// from errors: the first ParseError aborts parsing entirely (spec.md §7).
type Parser struct {
	tokens []lexer.Token
	pos    int

	State *gemstone.State

	source string
	file   string
	err    *errors.Diagnostic
}

// New creates a Parser over l's full token stream for the given source
// text and file name (used only to annotate diagnostics).
func New(l *lexer.Lexer, source, file string) *Parser {
	tokens, _ := drain(l)
	return &Parser{
		tokens: tokens,
		State:  gemstone.New(),
		source: source,
		file:   file,
	}
}

func drain(l *lexer.Lexer) ([]lexer.Token, []*lexer.LexError) {
	var tokens []lexer.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return tokens, l.Errors()
}

// Err returns the first parse error encountered, or nil.
func (p *Parser) Err() *errors.Diagnostic {
	return p.err
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) peekBefore() *lexer.Token {
	if p.pos == 0 {
		return nil
	}
	t := p.tokens[p.pos-1]
	return &t
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

// fail records the first ParseError, if one hasn't already been recorded,
// and returns it.
func (p *Parser) fail(expectedType lexer.TokenType) *errors.Diagnostic {
	found := p.cur()
	var after *lexer.Token
	if p.pos+1 < len(p.tokens) {
		n := p.tokens[p.pos+1]
		after = &n
	}
	d := errors.NewParseError(lexer.Token{Type: expectedType}, found, p.peekBefore(), after, p.source, p.file)
	if p.err == nil {
		p.err = d
	}
	return d
}

// expect consumes the current token if it has type tt, else records and
// returns a ParseError.
func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, *errors.Diagnostic) {
	if p.cur().Type != tt {
		return lexer.Token{}, p.fail(tt)
	}
	return p.advance(), nil
}

func isWord(t lexer.Token, word string) bool {
	return t.Type == lexer.WORD && t.Literal == word
}

// failMsg records a ParseError carrying a free-form message, for
// invariant violations that don't reduce to a single expected/found
// token pair (e.g. more than one of virtual/override/external).
func (p *Parser) failMsg(msg string) *errors.Diagnostic {
	d := &errors.Diagnostic{Kind: errors.KindParse, Message: msg, Source: p.source, File: p.file, Pos: p.cur().Pos}
	if p.err == nil {
		p.err = d
	}
	return d
}

// expectWord consumes the current token if it is a WORD with the given
// literal, else records a ParseError.
func (p *Parser) expectWord(word string) (lexer.Token, *errors.Diagnostic) {
	if !isWord(p.cur(), word) {
		return lexer.Token{}, p.fail(lexer.WORD)
	}
	return p.advance(), nil
}

// ParseProgram parses the full token stream into an ast.Program. Parsing
// stops at the first error, per spec.md §7's no-recovery policy; callers
// should check Err() after calling this.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur().Type != lexer.EOF && p.err == nil {
		expr := p.parseTopLevel()
		if p.err != nil {
			return prog
		}
		prog.Exprs = append(prog.Exprs, expr)
	}
	return prog
}

// parseTopLevel dispatches on the current token, matching spec.md §4.2's
// "Top-level dispatch" table. It is also used for statements inside a
// Block, which share the same grammar.
func (p *Parser) parseTopLevel() ast.Expr {
	tok := p.cur()

	if tok.Type == lexer.WORD {
		switch tok.Literal {
		case "class":
			return p.parseClassDecl()
		case "function":
			return p.parseFuncDecl()
		case "return":
			return p.parseReturn()
		case "var":
			return p.parseVarDecl(false)
		case "const":
			return p.parseVarDecl(true)
		case "new":
			return p.parseNew()
		default:
			if p.peek().Type == lexer.LPAREN {
				return p.parseCallStatement()
			}
			return p.parseAdditive()
		}
	}

	if tok.Type == lexer.LCURLY {
		return p.parseBlock()
	}

	return p.parseAdditive()
}

// parseType parses spec.md §4.2's type grammar: a base type keyword or
// class name, followed by zero or more '*' suffixes.
func (p *Parser) parseType() types.Type {
	tok := p.cur()
	if tok.Type != lexer.WORD {
		p.fail(lexer.WORD)
		return types.VoidType
	}
	p.advance()
	t := types.FromWord(tok.Literal)

	for p.cur().Type == lexer.STAR {
		p.advance()
		t = types.NewPointer(t)
	}
	return t
}
