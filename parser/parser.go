/*
File    : loxgm/parser/parser.go
Package : parser
*/

// Package parser implements a recursive-descent, precedence-climbing
// parser over a token cursor, producing an ast.Program.
package parser

import (
	"github.com/loxgm/loxgm/ast"
	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/loxerr"
)

const maxArguments = 255

// Parser walks a fixed token slice with a single current-index
// cursor (match/check/advance/peek/previous), the same shape the
// teacher's parser and the pylox Source token cursor both use.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New creates a Parser over an already-tokenized source.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the whole token stream into a Program, or returns the
// first ParseError encountered. Parsing aborts at the first error
// without calling synchronize; ParseAll is the recovering variant
// that the "parse" CLI subcommand uses.
func Parse(tokens []lexer.Token) (*ast.Program, *loxerr.ParseError) {
	p := New(tokens)
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return &ast.Program{Statements: statements}, nil
}

// --- token cursor -----------------------------------------------------

// peek returns the current token, or a synthetic EOF token once the
// cursor runs past the end -- including over an empty token slice, so
// Parse(nil) falls straight through the statement loop instead of
// indexing out of range.
func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }
func (p *Parser) isAtEnd() bool         { return p.peek().Type == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) tokCtx(tok lexer.Token) loxerr.TokenContext {
	return loxerr.TokenContext{Lexeme: tok.Lexeme, Line: tok.Line}
}

func (p *Parser) consume(t lexer.TokenType, msg string) (lexer.Token, *loxerr.ParseError) {
	if p.check(t) {
		return p.advance(), nil
	}
	tok := p.peek()
	if tok.Type == lexer.EOF {
		return lexer.Token{}, loxerr.NewParseError(loxerr.ParseUnexpectedEOF, p.tokCtx(tok), msg)
	}
	return lexer.Token{}, loxerr.NewParseError(loxerr.ParseExpectedToken, p.tokCtx(tok), msg)
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so a caller that wants best-effort recovery after a
// ParseError (rather than aborting outright) has somewhere to resume.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.IF, lexer.FOR, lexer.WHILE, lexer.PRINT, lexer.VAR:
			return
		}
		p.advance()
	}
}
