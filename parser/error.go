package parser

import "fmt"

// LexError is a malformed token: an unknown character or an unterminated
// string literal. It carries the offending byte position and aborts parsing
// immediately.
type LexError struct {
	Message string
	Pos     int
}

func (e *LexError) Error() string {
	return e.Message
}

func lexErrorf(pos int, format string, args ...interface{}) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// ParseError is a grammar violation: an unexpected token, trailing input,
// an unmatched parenthesis, or a numeric literal out of range. No partial
// AST is ever returned alongside one.
type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return e.Message
}

func parseErrorf(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}
