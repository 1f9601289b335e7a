package parser

import (
	"strconv"

	"github.com/loxgm/loxgm/ast"
	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/loxerr"
)

func (p *Parser) expression() (ast.Expr, *loxerr.ParseError) {
	return p.assignment()
}

// assignment -> IDENTIFIER "=" assignment | logic_or
func (p *Parser) assignment() (ast.Expr, *loxerr.ParseError) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if ident, ok := expr.(*ast.Identifier); ok {
			return &ast.Assignment{Name: ident.Name, Value: value}, nil
		}
		return nil, loxerr.NewParseError(loxerr.ParseUnexpectedToken, p.tokCtx(equals),
			"invalid assignment target")
	}
	return expr, nil
}

func (p *Parser) logicOr() (ast.Expr, *loxerr.ParseError) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR) {
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: ast.OpOr, Right: right}
	}
	return expr, nil
}

func (p *Parser) logicAnd() (ast.Expr, *loxerr.ParseError) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND) {
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: ast.OpAnd, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, *loxerr.ParseError) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		opTok := p.previous()
		op := ast.OpEqual
		if opTok.Type == lexer.BANG_EQUAL {
			op = ast.OpNotEqual
		}
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Token: opTok, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, *loxerr.ParseError) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		opTok := p.previous()
		var op ast.BinaryOp
		switch opTok.Type {
		case lexer.GREATER:
			op = ast.OpGreater
		case lexer.GREATER_EQUAL:
			op = ast.OpGreaterEqual
		case lexer.LESS:
			op = ast.OpLess
		case lexer.LESS_EQUAL:
			op = ast.OpLessEqual
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Token: opTok, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, *loxerr.ParseError) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.MINUS, lexer.PLUS) {
		opTok := p.previous()
		op := ast.OpAdd
		if opTok.Type == lexer.MINUS {
			op = ast.OpSub
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Token: opTok, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, *loxerr.ParseError) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.SLASH, lexer.STAR) {
		opTok := p.previous()
		op := ast.OpDiv
		if opTok.Type == lexer.STAR {
			op = ast.OpMul
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Token: opTok, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, *loxerr.ParseError) {
	if p.match(lexer.BANG, lexer.MINUS) {
		opTok := p.previous()
		op := ast.OpNeg
		if opTok.Type == lexer.BANG {
			op = ast.OpNot
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Token: opTok, Right: right}, nil
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" )*
func (p *Parser) call() (ast.Expr, *loxerr.ParseError) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.LEFT_PAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, *loxerr.ParseError) {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArguments {
				return nil, loxerr.NewParseError(loxerr.ParseTooManyArguments, p.tokCtx(p.peek()),
					"cannot pass more than %d arguments to a call", maxArguments)
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &ast.FuncCall{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expr, *loxerr.ParseError) {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: false}, nil
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: true}, nil
	case p.match(lexer.NIL):
		return &ast.Literal{Value: nil}, nil
	case p.match(lexer.NUMBER):
		tok := p.previous()
		f, convErr := strconv.ParseFloat(tok.Literal, 64)
		if convErr != nil {
			return nil, loxerr.NewParseError(loxerr.ParseUnreachable, p.tokCtx(tok),
				"lexer produced an unparsable number literal %q", tok.Literal)
		}
		return &ast.Literal{Value: f}, nil
	case p.match(lexer.STRING):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(lexer.IDENTIFIER):
		return &ast.Identifier{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	}
	tok := p.peek()
	if tok.Type == lexer.EOF {
		return nil, loxerr.NewParseError(loxerr.ParseUnexpectedEOF, p.tokCtx(tok), "expected an expression")
	}
	return nil, loxerr.NewParseError(loxerr.ParseUnexpectedToken, p.tokCtx(tok),
		"expected an expression, found %q", tok.Lexeme)
}
