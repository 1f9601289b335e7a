/*
File    : loxgm/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenizeCase struct {
	Input    string
	Expected []Token
}

func TestTokenize(t *testing.T) {
	tests := []tokenizeCase{
		{
			Input: `1 + 2 * 3`,
			Expected: []Token{
				NewToken(NUMBER, "1", 1),
				NewToken(PLUS, "+", 1),
				NewToken(NUMBER, "2", 1),
				NewToken(STAR, "*", 1),
				NewToken(NUMBER, "3", 1),
				NewToken(EOF, "", 1),
			},
		},
		{
			Input: `var x = "hello"; print x;`,
			Expected: []Token{
				NewToken(VAR, "var", 1),
				NewToken(IDENTIFIER, "x", 1),
				NewToken(EQUAL, "=", 1),
				NewToken(STRING, `"hello"`, 1),
				NewToken(SEMICOLON, ";", 1),
				NewToken(PRINT, "print", 1),
				NewToken(IDENTIFIER, "x", 1),
				NewToken(SEMICOLON, ";", 1),
				NewToken(EOF, "", 1),
			},
		},
		{
			Input: `<= >= == != < > = ! { } ( )`,
			Expected: []Token{
				NewToken(LESS_EQUAL, "<=", 1),
				NewToken(GREATER_EQUAL, ">=", 1),
				NewToken(EQUAL_EQUAL, "==", 1),
				NewToken(BANG_EQUAL, "!=", 1),
				NewToken(LESS, "<", 1),
				NewToken(GREATER, ">", 1),
				NewToken(EQUAL, "=", 1),
				NewToken(BANG, "!", 1),
				NewToken(LEFT_BRACE, "{", 1),
				NewToken(RIGHT_BRACE, "}", 1),
				NewToken(LEFT_PAREN, "(", 1),
				NewToken(RIGHT_PAREN, ")", 1),
				NewToken(EOF, "", 1),
			},
		},
		{
			Input: "and or if else for while true false nil print var",
			Expected: []Token{
				NewToken(AND, "and", 1),
				NewToken(OR, "or", 1),
				NewToken(IF, "if", 1),
				NewToken(ELSE, "else", 1),
				NewToken(FOR, "for", 1),
				NewToken(WHILE, "while", 1),
				NewToken(TRUE, "true", 1),
				NewToken(FALSE, "false", 1),
				NewToken(NIL, "nil", 1),
				NewToken(PRINT, "print", 1),
				NewToken(VAR, "var", 1),
				NewToken(EOF, "", 1),
			},
		},
	}

	for _, test := range tests {
		tokens, err := Tokenize(test.Input)
		assert.Nil(t, err)
		assert.Equal(t, len(test.Expected), len(tokens))
		for i, expected := range test.Expected {
			assert.Equal(t, expected.Type, tokens[i].Type)
		}
	}
}

func TestTokenize_SkipsCommentsAndWhitespace(t *testing.T) {
	tokens, err := Tokenize("  // a comment\n  1 + 1 // trailing\n")
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{NUMBER, PLUS, NUMBER, EOF}, typesOf(tokens))
}

func TestTokenize_StringLiteralHasNoEscapeProcessing(t *testing.T) {
	tokens, err := Tokenize(`"a\nb"`)
	assert.Nil(t, err)
	assert.Equal(t, `a\nb`, tokens[0].Literal)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	assert.NotNil(t, err)
	assert.Equal(t, "UNTERMINATED_STRING_LITERAL", string(err.Kind))
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	_, err := Tokenize(`@`)
	assert.NotNil(t, err)
	assert.Equal(t, "UNEXPECTED_CHARACTER", string(err.Kind))
}

func TestTokenize_MalformedNumber(t *testing.T) {
	_, err := Tokenize(`1.2.3`)
	assert.NotNil(t, err)
	assert.Equal(t, "MALFORMED_NUMBER", string(err.Kind))
}

func TestTokenize_EmptySourceIsEmptySequence(t *testing.T) {
	tokens, err := Tokenize("")
	assert.Nil(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_WhitespaceOnlyIsEmptySequence(t *testing.T) {
	tokens, err := Tokenize("  \n\t  // just a comment\n")
	assert.Nil(t, err)
	assert.Empty(t, tokens)
}

func typesOf(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}
