package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxgm/loxgm/ast"
	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/parser"
)

func TestPrintRendersBinaryExpression(t *testing.T) {
	tokens, err := lexer.Tokenize("1 + 2 * 3;")
	assert.Nil(t, err)
	program, parseErr := parser.Parse(tokens)
	assert.Nil(t, parseErr)

	out := ast.Print(program)
	assert.Equal(t, "(expr (+ 1 (* 2 3)))\n", out)
}

func TestPrintRendersIfElse(t *testing.T) {
	tokens, err := lexer.Tokenize(`if (true) print 1; else print 2;`)
	assert.Nil(t, err)
	program, parseErr := parser.Parse(tokens)
	assert.Nil(t, parseErr)

	out := ast.Print(program)
	assert.Equal(t, "(if true (print 1) (print 2))\n", out)
}
