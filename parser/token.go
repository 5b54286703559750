package parser

import "strings"

// TokenType identifies a lexical unit.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenString
	TokenIdent

	// Keywords, matched case-insensitively.
	TokenTrue
	TokenFalse
	TokenNull
	TokenInfinity
	TokenNaN
	TokenAnd
	TokenOr
	TokenNot
	TokenIs
	TokenLike

	// Operators and punctuation, matched longest-first.
	TokenPlus
	TokenMinus
	TokenAsterisk
	TokenSlash
	TokenPercent
	TokenCaret
	TokenExclamation
	TokenEqual
	TokenNotEqual
	TokenGreaterThan
	TokenGreaterThanOrEqual
	TokenLessThan
	TokenLessThanOrEqual
	TokenLParen
	TokenRParen
)

// Token is a lexical unit: its type, the source text it covers, and its
// byte position in the input for error reporting.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// tokenNames maps fixed tokens to their canonical spelling, used when a
// token is named in an error message.
var tokenNames = map[TokenType]string{
	TokenEOF:                "end of input",
	TokenTrue:               "TRUE",
	TokenFalse:              "FALSE",
	TokenNull:               "NULL",
	TokenInfinity:           "INFINITY",
	TokenNaN:                "NAN",
	TokenAnd:                "AND",
	TokenOr:                 "OR",
	TokenNot:                "NOT",
	TokenIs:                 "IS",
	TokenLike:               "LIKE",
	TokenPlus:               "+",
	TokenMinus:              "-",
	TokenAsterisk:           "*",
	TokenSlash:              "/",
	TokenPercent:            "%",
	TokenCaret:              "^",
	TokenExclamation:        "!",
	TokenEqual:              "=",
	TokenNotEqual:           "!=",
	TokenGreaterThan:        ">",
	TokenGreaterThanOrEqual: ">=",
	TokenLessThan:           "<",
	TokenLessThanOrEqual:    "<=",
	TokenLParen:             "(",
	TokenRParen:             ")",
}

// String returns the canonical spelling for fixed tokens and the literal
// text for numbers, strings and identifiers.
func (t Token) String() string {
	if name, ok := tokenNames[t.Type]; ok {
		return name
	}
	return t.Value
}

// keywords maps upper-cased identifiers to their keyword token type.
var keywords = map[string]TokenType{
	"TRUE":     TokenTrue,
	"FALSE":    TokenFalse,
	"NULL":     TokenNull,
	"INFINITY": TokenInfinity,
	"NAN":      TokenNaN,
	"AND":      TokenAnd,
	"OR":       TokenOr,
	"NOT":      TokenNot,
	"IS":       TokenIs,
	"LIKE":     TokenLike,
}

// lookupIdent returns the keyword type for a reserved word, or TokenIdent.
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return TokenIdent
}
