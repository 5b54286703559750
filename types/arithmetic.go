package types

import (
	"math"
)

// Arithmetic over values. Every operator propagates NULL: if either operand
// is NULL the result is NULL and no type check is performed. Integer
// arithmetic is checked and reports "Integer overflow" instead of wrapping;
// float arithmetic follows IEEE-754, so NaN and ±Infinity propagate without
// error. Mixing an integer with a float widens the integer to a float.

var errIntegerOverflow = &ValueError{Message: "Integer overflow"}
var errDivideByZero = &ValueError{Message: "Can't divide by zero"}

// Add returns lhs + rhs.
func Add(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	switch {
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		sum := lhs.i + rhs.i
		if (lhs.i > 0 && rhs.i > 0 && sum < 0) || (lhs.i < 0 && rhs.i < 0 && sum >= 0) {
			return Null, errIntegerOverflow
		}
		return NewInteger(sum), nil
	case lhs.isNumeric() && rhs.isNumeric():
		return NewFloat(lhs.asFloat() + rhs.asFloat()), nil
	}
	return Null, NewValueError("Can't add %s and %s", lhs, rhs)
}

// Subtract returns lhs - rhs.
func Subtract(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	switch {
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		diff := lhs.i - rhs.i
		if (rhs.i < 0 && diff < lhs.i) || (rhs.i > 0 && diff > lhs.i) {
			return Null, errIntegerOverflow
		}
		return NewInteger(diff), nil
	case lhs.isNumeric() && rhs.isNumeric():
		return NewFloat(lhs.asFloat() - rhs.asFloat()), nil
	}
	return Null, NewValueError("Can't subtract %s and %s", lhs, rhs)
}

// Multiply returns lhs * rhs.
func Multiply(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	switch {
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		product, ok := mulInt64(lhs.i, rhs.i)
		if !ok {
			return Null, errIntegerOverflow
		}
		return NewInteger(product), nil
	case lhs.isNumeric() && rhs.isNumeric():
		return NewFloat(lhs.asFloat() * rhs.asFloat()), nil
	}
	return Null, NewValueError("Can't multiply %s and %s", lhs, rhs)
}

// Divide returns lhs / rhs. Integer division truncates toward zero and
// rejects a zero divisor; float division by zero yields ±Infinity or NaN.
func Divide(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	switch {
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		if rhs.i == 0 {
			return Null, errDivideByZero
		}
		// MinInt64 / -1 is the one quotient that wraps.
		if lhs.i == math.MinInt64 && rhs.i == -1 {
			return Null, errIntegerOverflow
		}
		return NewInteger(lhs.i / rhs.i), nil
	case lhs.isNumeric() && rhs.isNumeric():
		return NewFloat(lhs.asFloat() / rhs.asFloat()), nil
	}
	return Null, NewValueError("Can't divide %s and %s", lhs, rhs)
}

// Modulo returns the remainder of lhs / rhs. The sign of an integer
// remainder follows the dividend; float remainders follow IEEE-754.
func Modulo(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	switch {
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		if rhs.i == 0 {
			return Null, errDivideByZero
		}
		return NewInteger(lhs.i % rhs.i), nil
	case lhs.isNumeric() && rhs.isNumeric():
		return NewFloat(math.Mod(lhs.asFloat(), rhs.asFloat())), nil
	}
	return Null, NewValueError("Can't take modulo of %s and %s", lhs, rhs)
}

// Exponentiate returns lhs ^ rhs. Integer base and non-negative integer
// exponent use checked integer exponentiation; a negative integer exponent
// redirects to floating-point power, as does any float operand.
func Exponentiate(lhs, rhs Value) (Value, error) {
	if lhs.kind == KindNull || rhs.kind == KindNull {
		return Null, nil
	}
	switch {
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		if rhs.i < 0 {
			return NewFloat(math.Pow(float64(lhs.i), float64(rhs.i))), nil
		}
		result, ok := powInt64(lhs.i, rhs.i)
		if !ok {
			return Null, errIntegerOverflow
		}
		return NewInteger(result), nil
	case lhs.isNumeric() && rhs.isNumeric():
		return NewFloat(math.Pow(lhs.asFloat(), rhs.asFloat())), nil
	}
	return Null, NewValueError("Can't exponentiate %s and %s", lhs, rhs)
}

// Negate returns -v. Negating NULL yields NULL.
func Negate(v Value) (Value, error) {
	switch v.kind {
	case KindNull:
		return Null, nil
	case KindInteger:
		if v.i == math.MinInt64 {
			return Null, errIntegerOverflow
		}
		return NewInteger(-v.i), nil
	case KindFloat:
		return NewFloat(-v.f), nil
	}
	return Null, NewValueError("Can't negate %s", v)
}

// Assert is the unary plus: the identity on numbers and NULL.
func Assert(v Value) (Value, error) {
	switch v.kind {
	case KindNull, KindInteger, KindFloat:
		return v, nil
	}
	return Null, NewValueError("Can't take the positive of %s", v)
}

// Factorial returns v!, defined only for non-negative integers. NULL! is
// NULL.
func Factorial(v Value) (Value, error) {
	switch v.kind {
	case KindNull:
		return Null, nil
	case KindInteger:
		if v.i < 0 {
			return Null, NewValueError("Can't take factorial of negative number")
		}
		result := int64(1)
		for n := int64(2); n <= v.i; n++ {
			var ok bool
			if result, ok = mulInt64(result, n); !ok {
				return Null, errIntegerOverflow
			}
		}
		return NewInteger(result), nil
	}
	return Null, NewValueError("Can't take factorial of %s", v)
}

// mulInt64 multiplies with overflow detection.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

// powInt64 raises base to a non-negative exponent by squaring, with overflow
// detection. Exponents beyond the uint32 range are rejected outright, which
// matches the original engine's behavior even for bases 0 and 1.
func powInt64(base, exp int64) (int64, bool) {
	if exp > math.MaxUint32 {
		return 0, false
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			var ok bool
			if result, ok = mulInt64(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			var ok bool
			if base, ok = mulInt64(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}
