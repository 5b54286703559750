package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenTypes lexes the input and strips positions, for compact comparisons.
func tokenTypes(t *testing.T, input string) []TokenType {
	t.Helper()
	tokens, err := Tokenize(input)
	require.NoError(t, err)
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"+", TokenPlus},
		{"-", TokenMinus},
		{"*", TokenAsterisk},
		{"/", TokenSlash},
		{"%", TokenPercent},
		{"^", TokenCaret},
		{"!", TokenExclamation},
		{"=", TokenEqual},
		{"!=", TokenNotEqual},
		{">", TokenGreaterThan},
		{">=", TokenGreaterThanOrEqual},
		{"<", TokenLessThan},
		{"<=", TokenLessThanOrEqual},
		{"(", TokenLParen},
		{")", TokenRParen},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, []TokenType{test.expected, TokenEOF}, tokenTypes(t, test.input))
		})
	}
}

func TestTokenizeKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"TRUE", TokenTrue},
		{"TrUe", TokenTrue},
		{"false", TokenFalse},
		{"NULL", TokenNull},
		{"null", TokenNull},
		{"INFINITY", TokenInfinity},
		{"NaN", TokenNaN},
		{"AND", TokenAnd},
		{"and", TokenAnd},
		{"OR", TokenOr},
		{"NOT", TokenNot},
		{"IS", TokenIs},
		{"LIKE", TokenLike},
		{"like", TokenLike},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, []TokenType{test.expected, TokenEOF}, tokenTypes(t, test.input))
		})
	}
}

func TestTokenizeIdentifiers(t *testing.T) {
	tokens, err := Tokenize("temperature device_id _private x2")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	for _, tok := range tokens[:4] {
		assert.Equal(t, TokenIdent, tok.Type)
	}
	assert.Equal(t, "temperature", tokens[0].Value)
	assert.Equal(t, "device_id", tokens[1].Value)
	assert.Equal(t, "_private", tokens[2].Value)
	assert.Equal(t, "x2", tokens[3].Value)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string // number token texts, in order
	}{
		{"integer", "314", []string{"314"}},
		{"zero prefix", "03", []string{"03"}},
		{"float", "3.72", []string{"3.72"}},
		{"trailing dot", "3.", []string{"3."}},
		{"exponent", "3.14e3", []string{"3.14e3"}},
		{"negative exponent", "2.718E-2", []string{"2.718E-2"}},
		{"positive exponent", "1e+3", []string{"1e+3"}},
		{"two numbers", "1 2", []string{"1", "2"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens, err := Tokenize(test.input)
			require.NoError(t, err)
			var numbers []string
			for _, tok := range tokens {
				if tok.Type == TokenNumber {
					numbers = append(numbers, tok.Value)
				}
			}
			assert.Equal(t, test.expected, numbers)
		})
	}
}

func TestTokenizeExponentWithoutDigits(t *testing.T) {
	// "3e" is the number 3 followed by the identifier e, since no digit
	// follows the exponent marker.
	tokens, err := Tokenize("3e")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, "3", tokens[0].Value)
	assert.Equal(t, TokenIdent, tokens[1].Type)
	assert.Equal(t, "e", tokens[1].Value)
}

func TestTokenizeStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "'abc'", "abc"},
		{"empty", "''", ""},
		{"escaped quote", "'it''s'", "it's"},
		{"double quotes pass through", `'has "double" quotes'`, `has "double" quotes`},
		{"backslash passes through", `'a\nb'`, `a\nb`},
		{"unicode", "'Hi! 👋'", "Hi! 👋"},
		{"whitespace", "' a \n b '", " a \n b "},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens, err := Tokenize(test.input)
			require.NoError(t, err)
			require.Len(t, tokens, 2)
			assert.Equal(t, TokenString, tokens[0].Type)
			assert.Equal(t, test.expected, tokens[0].Value)
		})
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize("'abc")
	require.Error(t, err)
	assert.Equal(t, "Unterminated string literal", err.Error())
	assert.IsType(t, &LexError{}, err)
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("1 # 2")
	require.Error(t, err)
	assert.Equal(t, "Unexpected character '#'", err.Error())
}

func TestTokenizeWhitespace(t *testing.T) {
	assert.Equal(t,
		[]TokenType{TokenNumber, TokenPlus, TokenNumber, TokenEOF},
		tokenTypes(t, " \t1 +\n2\r\n"))
	assert.Equal(t, []TokenType{TokenEOF}, tokenTypes(t, "   "))
	assert.Equal(t, []TokenType{TokenEOF}, tokenTypes(t, ""))
}

func TestTokenizeExpression(t *testing.T) {
	assert.Equal(t,
		[]TokenType{
			TokenIdent, TokenGreaterThanOrEqual, TokenNumber,
			TokenAnd, TokenIdent, TokenIs, TokenNot, TokenNull, TokenEOF,
		},
		tokenTypes(t, "temperature >= 30 AND humidity IS NOT NULL"))
}

func TestTokenPositions(t *testing.T) {
	tokens, err := Tokenize("1 + foo")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, 0, tokens[0].Pos)
	assert.Equal(t, 2, tokens[1].Pos)
	assert.Equal(t, 4, tokens[2].Pos)
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "NULL", Token{Type: TokenNull, Value: "null"}.String())
	assert.Equal(t, ">=", Token{Type: TokenGreaterThanOrEqual, Value: ">="}.String())
	assert.Equal(t, "end of input", Token{Type: TokenEOF}.String())
	assert.Equal(t, "314", Token{Type: TokenNumber, Value: "314"}.String())
	assert.Equal(t, "foo", Token{Type: TokenIdent, Value: "foo"}.String())
}
