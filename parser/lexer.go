package parser

import "strings"

// Lexer converts an expression string into a stream of tokens. It scans a
// single byte at a time with one byte of lookahead; multi-byte UTF-8
// sequences only appear inside string literals, where they are copied
// through untouched.
type Lexer struct {
	input   string
	pos     int  // position of the current character
	readPos int  // position of the next character to read
	ch      byte // current character, 0 at end of input
}

// NewLexer creates a lexer over the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize eagerly lexes the entire input. The returned sequence always
// ends with an EOF token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// NextToken scans and returns the next token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	pos := l.pos
	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Pos: pos}, nil
	case '(':
		l.readChar()
		return Token{Type: TokenLParen, Value: "(", Pos: pos}, nil
	case ')':
		l.readChar()
		return Token{Type: TokenRParen, Value: ")", Pos: pos}, nil
	case '+':
		l.readChar()
		return Token{Type: TokenPlus, Value: "+", Pos: pos}, nil
	case '-':
		l.readChar()
		return Token{Type: TokenMinus, Value: "-", Pos: pos}, nil
	case '*':
		l.readChar()
		return Token{Type: TokenAsterisk, Value: "*", Pos: pos}, nil
	case '/':
		l.readChar()
		return Token{Type: TokenSlash, Value: "/", Pos: pos}, nil
	case '%':
		l.readChar()
		return Token{Type: TokenPercent, Value: "%", Pos: pos}, nil
	case '^':
		l.readChar()
		return Token{Type: TokenCaret, Value: "^", Pos: pos}, nil
	case '=':
		l.readChar()
		return Token{Type: TokenEqual, Value: "=", Pos: pos}, nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenNotEqual, Value: "!=", Pos: pos}, nil
		}
		l.readChar()
		return Token{Type: TokenExclamation, Value: "!", Pos: pos}, nil
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenGreaterThanOrEqual, Value: ">=", Pos: pos}, nil
		}
		l.readChar()
		return Token{Type: TokenGreaterThan, Value: ">", Pos: pos}, nil
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenLessThanOrEqual, Value: "<=", Pos: pos}, nil
		}
		l.readChar()
		return Token{Type: TokenLessThan, Value: "<", Pos: pos}, nil
	case '\'':
		return l.readString()
	}

	if isDigit(l.ch) {
		return l.readNumber(), nil
	}
	if isLetter(l.ch) {
		ident := l.readIdentifier()
		return Token{Type: lookupIdent(ident), Value: ident, Pos: pos}, nil
	}

	return Token{}, lexErrorf(pos, "Unexpected character '%c'", l.ch)
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber scans a numeric literal: digits, an optional fraction (a
// trailing dot with no digits is legal), and an optional exponent. The
// exponent is consumed only when at least one digit follows it, so "3e"
// lexes as the number 3 and the identifier e. Whether the literal is an
// integer or a float is decided later from its text.
func (l *Lexer) readNumber() Token {
	pos := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.readPos
		if next < len(l.input) && (l.input[next] == '+' || l.input[next] == '-') {
			next++
		}
		if next < len(l.input) && isDigit(l.input[next]) {
			l.readChar() // e
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return Token{Type: TokenNumber, Value: l.input[pos:l.pos], Pos: pos}
}

// readString scans a single-quoted string literal. A doubled single quote
// is an escaped literal quote; no other escape sequences are interpreted,
// so backslashes pass through verbatim.
func (l *Lexer) readString() (Token, error) {
	pos := l.pos
	l.readChar() // opening quote
	var value strings.Builder
	for {
		switch l.ch {
		case 0:
			return Token{}, lexErrorf(pos, "Unterminated string literal")
		case '\'':
			if l.peekChar() == '\'' {
				value.WriteByte('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // closing quote
			return Token{Type: TokenString, Value: value.String(), Pos: pos}, nil
		default:
			value.WriteByte(l.ch)
			l.readChar()
		}
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isFloatLiteral reports whether a number token denotes a float: any literal
// containing a decimal point or an exponent.
func isFloatLiteral(literal string) bool {
	return strings.ContainsAny(literal, ".eE")
}
