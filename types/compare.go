package types

import "strings"

// Comparisons over values. NULL on either side yields NULL. Integers and
// floats inter-compare after widening the integer side; booleans compare
// only with booleans (FALSE < TRUE); strings compare lexicographically by
// Unicode scalar value, case-sensitively. NaN is unordered: every
// comparison involving it is false, so NaN != NaN is true.

// compare orders two non-null values. It returns the usual -1/0/1 ordering,
// unordered=true when NaN makes the pair incomparable, or an error when the
// values belong to incompatible families.
func compare(lhs, rhs Value) (ordering int, unordered bool, err error) {
	switch {
	case lhs.kind == KindBoolean && rhs.kind == KindBoolean:
		return boolOrd(lhs.b) - boolOrd(rhs.b), false, nil
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		switch {
		case lhs.i < rhs.i:
			return -1, false, nil
		case lhs.i > rhs.i:
			return 1, false, nil
		}
		return 0, false, nil
	case lhs.isNumeric() && rhs.isNumeric():
		lf, rf := lhs.asFloat(), rhs.asFloat()
		switch {
		case lf < rf:
			return -1, false, nil
		case lf > rf:
			return 1, false, nil
		case lf == rf:
			return 0, false, nil
		}
		return 0, true, nil // NaN on either side
	case lhs.kind == KindString && rhs.kind == KindString:
		return strings.Compare(lhs.s, rhs.s), false, nil
	}
	return 0, false, NewValueError("Can't compare %s and %s", lhs, rhs)
}

func boolOrd(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Equal returns lhs = rhs.
func Equal(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	ord, unordered, err := compare(lhs, rhs)
	if err != nil {
		return Null, err
	}
	return NewBoolean(!unordered && ord == 0), nil
}

// NotEqual returns lhs != rhs. NaN != NaN is true.
func NotEqual(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	ord, unordered, err := compare(lhs, rhs)
	if err != nil {
		return Null, err
	}
	return NewBoolean(unordered || ord != 0), nil
}

// GreaterThan returns lhs > rhs.
func GreaterThan(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	ord, unordered, err := compare(lhs, rhs)
	if err != nil {
		return Null, err
	}
	return NewBoolean(!unordered && ord > 0), nil
}

// GreaterThanOrEqual returns lhs >= rhs.
func GreaterThanOrEqual(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	ord, unordered, err := compare(lhs, rhs)
	if err != nil {
		return Null, err
	}
	return NewBoolean(!unordered && ord >= 0), nil
}

// LessThan returns lhs < rhs.
func LessThan(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	ord, unordered, err := compare(lhs, rhs)
	if err != nil {
		return Null, err
	}
	return NewBoolean(!unordered && ord < 0), nil
}

// LessThanOrEqual returns lhs <= rhs.
func LessThanOrEqual(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	ord, unordered, err := compare(lhs, rhs)
	if err != nil {
		return Null, err
	}
	return NewBoolean(!unordered && ord <= 0), nil
}
