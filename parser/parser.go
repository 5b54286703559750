package parser

import (
	"errors"
	"math"
	"strconv"

	"github.com/chao-huang/toydb/types"
)

// Parser builds an expression AST from a token stream, using precedence
// climbing: each tier parses operands of the next-tighter tier and loops
// consuming operators at its own level. All binary tiers are
// left-associative except exponentiation. Prefix and postfix operators are
// resolved entirely inside the unary level, so the operand handed to any
// binary operator is already fully prefix/postfix-reduced unless
// parenthesized.
type Parser struct {
	lexer *Lexer
	cur   Token
}

// NewParser creates a parser over the given expression text.
func NewParser(input string) *Parser {
	return &Parser{lexer: NewLexer(input)}
}

// Parse consumes the entire input and returns the expression tree. Trailing
// input after a complete expression is an error, and no partial tree is
// returned on failure.
func (p *Parser) Parse() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, parseErrorf(p.cur.Pos, "Unexpected token %s", p.cur)
	}
	return node, nil
}

func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parseExpression parses at the loosest tier. Parenthesized sub-expressions
// re-enter here.
func (p *Parser) parseExpression() (Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: OpAnd, Left: left, Right: right}
	}
	return left, nil
}

// parseEquality parses the =, != and LIKE tier.
func (p *Parser) parseEquality() (Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var op InfixOp
		switch p.cur.Type {
		case TokenEqual:
			op = OpEqual
		case TokenNotEqual:
			op = OpNotEqual
		case TokenLike:
			op = OpLike
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

// parseComparison parses the relational tier: >, >=, <, <=.
func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var op InfixOp
		switch p.cur.Type {
		case TokenGreaterThan:
			op = OpGreaterThan
		case TokenGreaterThanOrEqual:
			op = OpGreaterThanOrEqual
		case TokenLessThan:
			op = OpLessThan
		case TokenLessThanOrEqual:
			op = OpLessThanOrEqual
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op InfixOp
		switch p.cur.Type {
		case TokenPlus:
			op = OpAdd
		case TokenMinus:
			op = OpSubtract
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	for {
		var op InfixOp
		switch p.cur.Type {
		case TokenAsterisk:
			op = OpMultiply
		case TokenSlash:
			op = OpDivide
		case TokenPercent:
			op = OpModulo
		default:
			return left, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
}

// parseExponent parses ^, the only right-associative tier: 2^3^2 is
// 2^(3^2).
func (p *Parser) parseExponent() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == TokenCaret {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		return &Binary{Op: OpExponentiate, Left: left, Right: right}, nil
	}
	return left, nil
}

// parseUnary resolves the unary level: a run of prefix operators, a
// primary, then a run of postfix operators. Prefix operators apply to the
// primary from innermost outward, and postfix operators then apply to the
// already-prefixed result, left to right. This is why -3! is (-3)! and why
// 2^NULL IS NULL exponentiates by (NULL IS NULL).
func (p *Parser) parseUnary() (Node, error) {
	var prefixes []PrefixOp
prefix:
	for {
		switch p.cur.Type {
		case TokenNot:
			prefixes = append(prefixes, OpNot)
		case TokenMinus:
			prefixes = append(prefixes, OpNegate)
		case TokenPlus:
			prefixes = append(prefixes, OpAssert)
		default:
			break prefix
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for i := len(prefixes) - 1; i >= 0; i-- {
		node = &Unary{Op: prefixes[i], Operand: node}
	}

	for {
		switch p.cur.Type {
		case TokenExclamation:
			node = &Postfix{Op: OpFactorial, Operand: node}
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenIs:
			op, err := p.parseIsPredicate()
			if err != nil {
				return nil, err
			}
			node = &Postfix{Op: op, Operand: node}
		default:
			return node, nil
		}
	}
}

// parseIsPredicate consumes IS [NOT] NULL|TRUE|FALSE and returns the
// corresponding postfix operator.
func (p *Parser) parseIsPredicate() (PostfixOp, error) {
	if err := p.advance(); err != nil { // IS
		return 0, err
	}
	negated := false
	if p.cur.Type == TokenNot {
		negated = true
		if err := p.advance(); err != nil {
			return 0, err
		}
	}
	var op PostfixOp
	switch p.cur.Type {
	case TokenNull:
		op = OpIsNull
		if negated {
			op = OpIsNotNull
		}
	case TokenTrue:
		op = OpIsTrue
		if negated {
			op = OpIsNotTrue
		}
	case TokenFalse:
		op = OpIsFalse
		if negated {
			op = OpIsNotFalse
		}
	default:
		return 0, parseErrorf(p.cur.Pos, "Expected token NULL, found %s", p.cur)
	}
	if err := p.advance(); err != nil {
		return 0, err
	}
	return op, nil
}

// parsePrimary parses a literal, column reference, or parenthesized
// sub-expression.
func (p *Parser) parsePrimary() (Node, error) {
	switch p.cur.Type {
	case TokenNumber:
		value, err := parseNumberLiteral(p.cur)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: value}, nil
	case TokenString:
		node := &Literal{Value: types.NewString(p.cur.Value)}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil
	case TokenTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: types.True}, nil
	case TokenFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: types.False}, nil
	case TokenNull:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: types.Null}, nil
	case TokenInfinity:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: types.NewFloat(math.Inf(1))}, nil
	case TokenNaN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: types.NewFloat(math.NaN())}, nil
	case TokenIdent:
		node := &ColumnRef{Name: p.cur.Value}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil
	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != TokenRParen {
			return nil, parseErrorf(p.cur.Pos, "Expected token ), found %s", p.cur)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil
	case TokenEOF:
		return nil, parseErrorf(p.cur.Pos, "Unexpected end of input")
	}
	return nil, parseErrorf(p.cur.Pos, "Unexpected token %s", p.cur)
}

// parseNumberLiteral materializes a number token as a Value. A literal
// containing a decimal point or exponent is a float; out-of-range float
// magnitudes saturate to ±Infinity and sub-minimum magnitudes underflow to
// zero, both silently. Everything else is an integer whose magnitude must
// fit the positive half of the int64 range; the bound applies before any
// unary minus, so the single most negative integer is unreachable as a
// literal.
func parseNumberLiteral(tok Token) (types.Value, error) {
	if isFloatLiteral(tok.Value) {
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return types.Null, parseErrorf(tok.Pos, "Invalid number %q", tok.Value)
		}
		return types.NewFloat(f), nil
	}
	i, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return types.Null, parseErrorf(tok.Pos, "number too large to fit in target type")
		}
		return types.Null, parseErrorf(tok.Pos, "Invalid number %q", tok.Value)
	}
	return types.NewInteger(i), nil
}
