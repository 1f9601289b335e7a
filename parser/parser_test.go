package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxgm/loxgm/ast"
	"github.com/loxgm/loxgm/lexer"
)

func mustTokenize(t *testing.T, src string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	return tokens
}

func TestParse_BinaryPrecedence(t *testing.T) {
	program, err := Parse(mustTokenize(t, "1 + 2 * 3;"))
	assert.Nil(t, err)
	assert.Len(t, program.Statements, 1)

	exprStmt := program.Statements[0].(*ast.ExprStmt)
	binary := exprStmt.Expression.(*ast.Binary)
	assert.Equal(t, ast.OpAdd, binary.Operator)
	assert.IsType(t, &ast.Literal{}, binary.Left)
	mulRight := binary.Right.(*ast.Binary)
	assert.Equal(t, ast.OpMul, mulRight.Operator)
}

func TestParse_Assignment(t *testing.T) {
	program, err := Parse(mustTokenize(t, "x = 1;"))
	assert.Nil(t, err)
	exprStmt := program.Statements[0].(*ast.ExprStmt)
	assign := exprStmt.Expression.(*ast.Assignment)
	assert.Equal(t, "x", assign.Name.Lexeme)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	_, err := Parse(mustTokenize(t, "1 + 2 = 3;"))
	assert.NotNil(t, err)
	assert.Equal(t, "UNEXPECTED_TOKEN", string(err.Kind))
}

func TestParse_LogicalShortCircuitNodes(t *testing.T) {
	program, err := Parse(mustTokenize(t, "true and false or true;"))
	assert.Nil(t, err)
	exprStmt := program.Statements[0].(*ast.ExprStmt)
	or := exprStmt.Expression.(*ast.Logical)
	assert.Equal(t, ast.OpOr, or.Operator)
	assert.IsType(t, &ast.Logical{}, or.Left)
}

func TestParse_ForDesugarsToWhileInBlock(t *testing.T) {
	program, err := Parse(mustTokenize(t, "for (var i = 0; i < 3; i = i + 1) print i;"))
	assert.Nil(t, err)

	outer := program.Statements[0].(*ast.Block)
	assert.Len(t, outer.Statements, 2)
	assert.IsType(t, &ast.VarDecl{}, outer.Statements[0])

	while := outer.Statements[1].(*ast.WhileStmt)
	assert.NotNil(t, while.Condition)

	body := while.Body.(*ast.Block)
	assert.Len(t, body.Statements, 2)
	assert.IsType(t, &ast.PrintStmt{}, body.Statements[0])
	assert.IsType(t, &ast.ExprStmt{}, body.Statements[1])
}

func TestParse_ForWithoutConditionDefaultsToTrue(t *testing.T) {
	program, err := Parse(mustTokenize(t, "for (;;) print 1;"))
	assert.Nil(t, err)
	while := program.Statements[0].(*ast.WhileStmt)
	lit := while.Condition.(*ast.Literal)
	assert.Equal(t, true, lit.Value)
}

func TestParse_CallTooManyArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"
	_, err := Parse(mustTokenize(t, src))
	assert.NotNil(t, err)
	assert.Equal(t, "TOO_MANY_ARGUMENTS", string(err.Kind))
}

func TestParse_EmptyTokensIsEmptyProgram(t *testing.T) {
	program, err := Parse(nil)
	assert.Nil(t, err)
	assert.Empty(t, program.Statements)
}

func TestParseAll_RecoversViaSynchronize(t *testing.T) {
	program, errs := ParseAll(mustTokenize(t, "1 + ; print 1;"))
	assert.Len(t, errs, 1)
	assert.Len(t, program.Statements, 1)
}
