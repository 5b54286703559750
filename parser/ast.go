package parser

import (
	"fmt"
	"strings"

	"github.com/chao-huang/toydb/types"
)

// Node is an expression AST node. The tree is built once by the parser and
// never mutated, so a parsed expression can be shared across concurrent
// evaluations.
type Node interface {
	fmt.Stringer
	exprNode()
}

// Literal is a constant scalar value.
type Literal struct {
	Value types.Value
}

// ColumnRef references a column by name, resolved against a row at
// evaluation time.
type ColumnRef struct {
	Name string
}

// Unary applies a prefix operator to its operand.
type Unary struct {
	Op      PrefixOp
	Operand Node
}

// Binary applies an infix operator to two operands. Each node owns its
// children exclusively; there is no sharing between trees.
type Binary struct {
	Op    InfixOp
	Left  Node
	Right Node
}

// Postfix applies a postfix operator (factorial or an IS predicate) to its
// operand.
type Postfix struct {
	Op      PostfixOp
	Operand Node
}

func (*Literal) exprNode()   {}
func (*ColumnRef) exprNode() {}
func (*Unary) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Postfix) exprNode()   {}

// PrefixOp is a prefix operator.
type PrefixOp int

const (
	OpNot PrefixOp = iota
	OpNegate
	OpAssert // unary plus
)

func (op PrefixOp) String() string {
	switch op {
	case OpNot:
		return "NOT "
	case OpNegate:
		return "-"
	case OpAssert:
		return "+"
	default:
		return "?"
	}
}

// InfixOp is a binary operator.
type InfixOp int

const (
	OpOr InfixOp = iota
	OpAnd
	OpEqual
	OpNotEqual
	OpLike
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpExponentiate
)

func (op InfixOp) String() string {
	switch op {
	case OpOr:
		return "OR"
	case OpAnd:
		return "AND"
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLike:
		return "LIKE"
	case OpGreaterThan:
		return ">"
	case OpGreaterThanOrEqual:
		return ">="
	case OpLessThan:
		return "<"
	case OpLessThanOrEqual:
		return "<="
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	case OpExponentiate:
		return "^"
	default:
		return "?"
	}
}

// PostfixOp is a postfix operator.
type PostfixOp int

const (
	OpFactorial PostfixOp = iota
	OpIsNull
	OpIsNotNull
	OpIsTrue
	OpIsNotTrue
	OpIsFalse
	OpIsNotFalse
)

func (op PostfixOp) String() string {
	switch op {
	case OpFactorial:
		return "!"
	case OpIsNull:
		return " IS NULL"
	case OpIsNotNull:
		return " IS NOT NULL"
	case OpIsTrue:
		return " IS TRUE"
	case OpIsNotTrue:
		return " IS NOT TRUE"
	case OpIsFalse:
		return " IS FALSE"
	case OpIsNotFalse:
		return " IS NOT FALSE"
	default:
		return "?"
	}
}

// String renders the literal in its canonical source form. Strings are
// quoted with any embedded quote doubled, so the output re-lexes to the
// same value.
func (n *Literal) String() string {
	if n.Value.Kind() == types.KindString {
		return "'" + strings.ReplaceAll(n.Value.Str(), "'", "''") + "'"
	}
	return n.Value.String()
}

func (n *ColumnRef) String() string {
	return n.Name
}

func (n *Unary) String() string {
	return fmt.Sprintf("%s%s", n.Op, n.Operand)
}

// String renders the subtree fully parenthesized, which makes the parsed
// precedence visible in diagnostics.
func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right)
}

func (n *Postfix) String() string {
	return fmt.Sprintf("%s%s", n.Operand, n.Op)
}

// Walk visits every node of the tree in depth-first order.
func Walk(node Node, visit func(Node)) {
	if node == nil {
		return
	}
	visit(node)
	switch n := node.(type) {
	case *Unary:
		Walk(n.Operand, visit)
	case *Binary:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	case *Postfix:
		Walk(n.Operand, visit)
	}
}
