package types

// Three-valued (Kleene) logic. Unlike arithmetic and comparisons, NULL does
// not blindly propagate here: FALSE AND NULL is FALSE and TRUE OR NULL is
// TRUE, because the unknown operand cannot change the outcome. Non-null
// operands must be booleans even when the other side is NULL.

// And returns lhs AND rhs.
func And(lhs, rhs Value) (Value, error) {
	switch {
	case lhs.kind == KindBoolean && rhs.kind == KindBoolean:
		return NewBoolean(lhs.b && rhs.b), nil
	case lhs.kind == KindBoolean && rhs.kind == KindNull:
		if !lhs.b {
			return False, nil
		}
		return Null, nil
	case lhs.kind == KindNull && rhs.kind == KindBoolean:
		if !rhs.b {
			return False, nil
		}
		return Null, nil
	case lhs.kind == KindNull && rhs.kind == KindNull:
		return Null, nil
	}
	return Null, NewValueError("Can't and %s and %s", lhs, rhs)
}

// Or returns lhs OR rhs.
func Or(lhs, rhs Value) (Value, error) {
	switch {
	case lhs.kind == KindBoolean && rhs.kind == KindBoolean:
		return NewBoolean(lhs.b || rhs.b), nil
	case lhs.kind == KindBoolean && rhs.kind == KindNull:
		if lhs.b {
			return True, nil
		}
		return Null, nil
	case lhs.kind == KindNull && rhs.kind == KindBoolean:
		if rhs.b {
			return True, nil
		}
		return Null, nil
	case lhs.kind == KindNull && rhs.kind == KindNull:
		return Null, nil
	}
	return Null, NewValueError("Can't or %s and %s", lhs, rhs)
}

// Not returns NOT v. NOT NULL is NULL.
func Not(v Value) (Value, error) {
	switch v.kind {
	case KindBoolean:
		return NewBoolean(!v.b), nil
	case KindNull:
		return Null, nil
	}
	return Null, NewValueError("Can't negate %s", v)
}
