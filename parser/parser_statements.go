package parser

import (
	"github.com/loxgm/loxgm/ast"
	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/loxerr"
)

// declaration -> varDecl | statement
func (p *Parser) declaration() (ast.Stmt, *loxerr.ParseError) {
	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, *loxerr.ParseError) {
	name, err := p.consume(lexer.IDENTIFIER, "expected a variable name")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name, Initializer: initializer}, nil
}

// statement -> exprStmt | printStmt | block | ifStmt | whileStmt | forStmt
func (p *Parser) statement() (ast.Stmt, *loxerr.ParseError) {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Statements: stmts}, nil
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (ast.Stmt, *loxerr.ParseError) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after value"); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: expr}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, *loxerr.ParseError) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: expr}, nil
}

func (p *Parser) block() ([]ast.Stmt, *loxerr.ParseError) {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "expected '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStatement() (ast.Stmt, *loxerr.ParseError) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after if condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, *loxerr.ParseError) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: cond, Body: body}, nil
}

// forStatement desugars "for (init; cond; incr) body" into
//
//	Block{init, WhileStmt{cond, Block{body, incrExprStmt}}}
//
// with cond defaulting to the literal `true` when omitted, matching
// the reference interpreter's desugaring exactly.
func (p *Parser) forStatement() (ast.Stmt, *loxerr.ParseError) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err *loxerr.ParseError
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer, err = p.varDeclaration()
		if err != nil {
			return nil, err
		}
	default:
		initializer, err = p.expressionStatement()
		if err != nil {
			return nil, err
		}
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExprStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}
	return body, nil
}

// ParseAll is a best-effort variant of Parse that keeps going past a
// ParseError by calling synchronize and collecting every error seen,
// used by the "parse" CLI subcommand so a user gets more than the
// first mistake in a file at once.
func ParseAll(tokens []lexer.Token) (*ast.Program, []*loxerr.ParseError) {
	p := New(tokens)
	var statements []ast.Stmt
	var errs []*loxerr.ParseError
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return &ast.Program{Statements: statements}, errs
}
