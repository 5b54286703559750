package expr

import (
	"github.com/chao-huang/toydb/parser"
	"github.com/chao-huang/toydb/types"
)

// Resolver supplies column values for one row. It is provided by the caller
// at evaluation time; resolution failures abort the evaluation.
type Resolver interface {
	Resolve(column string) (types.Value, error)
}

// Evaluate reduces an expression tree to a value against the given row.
// The walk is post-order: children are evaluated before the parent combines
// them, and the first error aborts the whole evaluation. The tree itself is
// never mutated, so the same tree may be evaluated concurrently against
// different rows. A nil resolver is legal for constant expressions.
func Evaluate(node parser.Node, row Resolver) (types.Value, error) {
	switch n := node.(type) {
	case *parser.Literal:
		return n.Value, nil

	case *parser.ColumnRef:
		if row == nil {
			return types.Null, types.NewValueError("Can't reference column %s without a row", n.Name)
		}
		return row.Resolve(n.Name)

	case *parser.Unary:
		operand, err := Evaluate(n.Operand, row)
		if err != nil {
			return types.Null, err
		}
		switch n.Op {
		case parser.OpNot:
			return types.Not(operand)
		case parser.OpNegate:
			return types.Negate(operand)
		case parser.OpAssert:
			return types.Assert(operand)
		}

	case *parser.Binary:
		lhs, err := Evaluate(n.Left, row)
		if err != nil {
			return types.Null, err
		}
		rhs, err := Evaluate(n.Right, row)
		if err != nil {
			return types.Null, err
		}
		return evaluateBinary(n.Op, lhs, rhs)

	case *parser.Postfix:
		operand, err := Evaluate(n.Operand, row)
		if err != nil {
			return types.Null, err
		}
		return evaluatePostfix(n.Op, operand)
	}
	return types.Null, types.NewValueError("Unknown expression node %T", node)
}

func evaluateBinary(op parser.InfixOp, lhs, rhs types.Value) (types.Value, error) {
	switch op {
	case parser.OpAnd:
		return types.And(lhs, rhs)
	case parser.OpOr:
		return types.Or(lhs, rhs)
	case parser.OpEqual:
		return types.Equal(lhs, rhs)
	case parser.OpNotEqual:
		return types.NotEqual(lhs, rhs)
	case parser.OpGreaterThan:
		return types.GreaterThan(lhs, rhs)
	case parser.OpGreaterThanOrEqual:
		return types.GreaterThanOrEqual(lhs, rhs)
	case parser.OpLessThan:
		return types.LessThan(lhs, rhs)
	case parser.OpLessThanOrEqual:
		return types.LessThanOrEqual(lhs, rhs)
	case parser.OpAdd:
		return types.Add(lhs, rhs)
	case parser.OpSubtract:
		return types.Subtract(lhs, rhs)
	case parser.OpMultiply:
		return types.Multiply(lhs, rhs)
	case parser.OpDivide:
		return types.Divide(lhs, rhs)
	case parser.OpModulo:
		return types.Modulo(lhs, rhs)
	case parser.OpExponentiate:
		return types.Exponentiate(lhs, rhs)
	case parser.OpLike:
		return evaluateLike(lhs, rhs)
	}
	return types.Null, types.NewValueError("Unknown operator %s", op)
}

// evaluateLike matches lhs against the rhs pattern. Both operands must be
// strings; NULL on either side yields NULL.
func evaluateLike(lhs, rhs types.Value) (types.Value, error) {
	if lhs.IsNull() || rhs.IsNull() {
		return types.Null, nil
	}
	if lhs.Kind() != types.KindString || rhs.Kind() != types.KindString {
		return types.Null, types.NewValueError("Can't LIKE %s and %s", lhs, rhs)
	}
	return types.NewBoolean(Like(lhs.Str(), rhs.Str())), nil
}

// evaluatePostfix applies factorial or an IS predicate. The IS predicates
// return a non-null boolean for every input, NULL included; they are the
// only operators that never propagate NULL.
func evaluatePostfix(op parser.PostfixOp, operand types.Value) (types.Value, error) {
	switch op {
	case parser.OpFactorial:
		return types.Factorial(operand)
	case parser.OpIsNull:
		return types.NewBoolean(operand.IsNull()), nil
	case parser.OpIsNotNull:
		return types.NewBoolean(!operand.IsNull()), nil
	case parser.OpIsTrue:
		return types.NewBoolean(operand == types.True), nil
	case parser.OpIsNotTrue:
		return types.NewBoolean(operand != types.True), nil
	case parser.OpIsFalse:
		return types.NewBoolean(operand == types.False), nil
	case parser.OpIsNotFalse:
		return types.NewBoolean(operand != types.False), nil
	}
	return types.Null, types.NewValueError("Unknown operator %s", op)
}
