/*
File    : eye/lexer/lexer_test.go
Project : Eye Language Interpreter
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// assertTokens compares the produced tokens against the expected tokens,
// ignoring line/column metadata.
func assertTokens(t *testing.T, expected []Token, got []Token) {
	t.Helper()
	// must: length match
	assert.Equal(t, len(expected), len(got))
	if len(expected) != len(got) {
		return
	}
	// must: token to token match
	for i, token := range expected {
		assert.Equal(t, token.Type, got[i].Type)
		assert.Equal(t, token.Literal, got[i].Literal)
		assert.Equal(t, token.Number, got[i].Number)
		assert.Equal(t, token.Value, got[i].Value)
		assert.Equal(t, token.Op, got[i].Op)
	}
}

// TestLexer_ConsumeTokens tests tokenization of well-formed source
func TestLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: `10 + 20 * 1;`,
			ExpectedTokens: []Token{
				NewNumberToken("10", 10),
				NewOperatorToken(ADD_OP),
				NewNumberToken("20", 20),
				NewOperatorToken(MUL_OP),
				NewNumberToken("1", 1),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			// a leading minus is a subtract operator; the parser folds it
			// back into a negative literal
			Input: `-1;`,
			ExpectedTokens: []Token{
				NewOperatorToken(SUB_OP),
				NewNumberToken("1", 1),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `define a to be {return false;}`,
			ExpectedTokens: []Token{
				NewToken(DEFINE_KEY, "define"),
				NewToken(SYMBOL_TOK, "a"),
				NewToken(TOBE_KEY, "to be"),
				NewToken(LBRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewBoolToken(false),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RBRACE, "}"),
			},
		},
		{
			Input: `throw do times run given return print if else`,
			ExpectedTokens: []Token{
				NewToken(THROW_KEY, "throw"),
				NewToken(DO_KEY, "do"),
				NewToken(TIMES_KEY, "times"),
				NewToken(RUN_KEY, "run"),
				NewToken(GIVEN_KEY, "given"),
				NewToken(RETURN_KEY, "return"),
				NewToken(PRINT_KEY, "print"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
			},
		},
		{
			// `with` aliases `to be`; `is` is the equality operator
			Input: `define x with 10 is true`,
			ExpectedTokens: []Token{
				NewToken(DEFINE_KEY, "define"),
				NewToken(SYMBOL_TOK, "x"),
				NewToken(TOBE_KEY, "with"),
				NewNumberToken("10", 10),
				NewOperatorToken(ISEQ_OP),
				NewBoolToken(true),
			},
		},
		{
			// keywords are only recognized as whole words
			Input: `ifthen island doit to tobe`,
			ExpectedTokens: []Token{
				NewToken(SYMBOL_TOK, "ifthen"),
				NewToken(SYMBOL_TOK, "island"),
				NewToken(SYMBOL_TOK, "doit"),
				NewToken(SYMBOL_TOK, "to"),
				NewToken(SYMBOL_TOK, "tobe"),
			},
		},
		{
			// `to` followed by `bear` is not the `to be` keyword
			Input: `to bear`,
			ExpectedTokens: []Token{
				NewToken(SYMBOL_TOK, "to"),
				NewToken(SYMBOL_TOK, "bear"),
			},
		},
		{
			Input: `// a comment line
print 1; // trailing comment`,
			ExpectedTokens: []Token{
				NewToken(PRINT_KEY, "print"),
				NewNumberToken("1", 1),
				NewToken(SEMICOLON_DELIM, ";"),
			},
		},
		{
			Input: `"This is a long string  " someSymbol_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STR_LIT, "This is a long string  "),
				NewToken(SYMBOL_TOK, "someSymbol_234"),
				NewToken(STR_LIT, "12"),
			},
		},
		{
			// the escaped quote passes through raw
			Input: `"escaped\"quote"`,
			ExpectedTokens: []Token{
				NewToken(STR_LIT, `escaped\"quote`),
			},
		},
		{
			Input: `count: int`,
			ExpectedTokens: []Token{
				NewToken(SYMBOL_TOK, "count"),
				NewToken(TYPE_TOK, "int"),
			},
		},
		{
			Input: `run fib given (10, n2) != =`,
			ExpectedTokens: []Token{
				NewToken(RUN_KEY, "run"),
				NewToken(SYMBOL_TOK, "fib"),
				NewToken(GIVEN_KEY, "given"),
				NewToken(LPAREN, "("),
				NewNumberToken("10", 10),
				NewToken(COMMA_DELIM, ","),
				NewToken(SYMBOL_TOK, "n2"),
				NewToken(RPAREN, ")"),
				NewOperatorToken(ISNEQ_OP),
				NewOperatorToken(ASSIGN_OP),
			},
		},
		{
			Input: `do 3 i { print i / 1 - 2; }`,
			ExpectedTokens: []Token{
				NewToken(DO_KEY, "do"),
				NewNumberToken("3", 3),
				NewToken(SYMBOL_TOK, "i"),
				NewToken(LBRACE, "{"),
				NewToken(PRINT_KEY, "print"),
				NewToken(SYMBOL_TOK, "i"),
				NewOperatorToken(DIV_OP),
				NewNumberToken("1", 1),
				NewOperatorToken(SUB_OP),
				NewNumberToken("2", 2),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RBRACE, "}"),
			},
		},
	}

	for _, test := range tests {
		tokens, err := Tokenize(test.Input)

		assert.NoError(t, err)
		assertTokens(t, test.ExpectedTokens, tokens)
	}
}

// TestLexer_Determinism verifies that tokenizing the same input twice
// yields the same token sequence.
func TestLexer_Determinism(t *testing.T) {
	input := `define fib to be { if n is 0 { return 0; } } given (n); print run fib given (10);`

	first, err1 := Tokenize(input)
	second, err2 := Tokenize(input)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, first, second)
}

// TestLexer_TokenErrors verifies that unconsumable input aborts lexing
// with an error naming the unconsumed prefix.
func TestLexer_TokenErrors(t *testing.T) {
	tests := []struct {
		Input  string
		Prefix string
	}{
		{`print @x;`, "@x;"},
		{`1 ! 2`, "! 2"},
		{`"unterminated`, `"unterminated`},
		{`x:int`, ":int"},
	}

	for _, test := range tests {
		_, err := Tokenize(test.Input)

		assert.Error(t, err)
		tokenErr, ok := err.(*TokenError)
		assert.True(t, ok)
		assert.Equal(t, test.Prefix, tokenErr.Prefix)
		assert.Equal(t, "Could not find token for "+test.Prefix, err.Error())
	}
}

// TestLexer_LineTracking verifies line metadata on tokens.
func TestLexer_LineTracking(t *testing.T) {
	input := "print 1;\nprint 2;"

	tokens, err := Tokenize(input)

	assert.NoError(t, err)
	assert.Equal(t, 6, len(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[3].Line)
}

// TestBinaryOperator_Precedence verifies the operator precedence table.
func TestBinaryOperator_Precedence(t *testing.T) {
	assert.Equal(t, ASSIGN_PRIORITY, ASSIGN_OP.Precedence())
	assert.Equal(t, EQUALITY_PRIORITY, ISEQ_OP.Precedence())
	assert.Equal(t, EQUALITY_PRIORITY, ISNEQ_OP.Precedence())
	assert.Equal(t, PLUS_PRIORITY, ADD_OP.Precedence())
	assert.Equal(t, PLUS_PRIORITY, SUB_OP.Precedence())
	assert.Equal(t, MUL_PRIORITY, MUL_OP.Precedence())
	assert.Equal(t, MUL_PRIORITY, DIV_OP.Precedence())

	assert.Greater(t, MUL_OP.Precedence(), ADD_OP.Precedence())
	assert.Greater(t, ADD_OP.Precedence(), ISEQ_OP.Precedence())
	assert.Greater(t, ISEQ_OP.Precedence(), ASSIGN_OP.Precedence())
}
