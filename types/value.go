package types

import (
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the SQL NULL, an unknown value.
	KindNull Kind = iota
	// KindBoolean holds true or false.
	KindBoolean
	// KindInteger holds a 64-bit signed integer.
	KindInteger
	// KindFloat holds a 64-bit IEEE-754 float, including NaN and ±Infinity.
	KindFloat
	// KindString holds UTF-8 text.
	KindString
)

// String returns the kind name, as used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindBoolean:
		return "BOOLEAN"
	case KindInteger:
		return "INTEGER"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// Value is a SQL scalar value: one of NULL, BOOLEAN, INTEGER, FLOAT or
// STRING. Values are immutable and passed by value. The zero Value is NULL.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null is the SQL NULL value.
var Null = Value{kind: KindNull}

// True and False are the two boolean values.
var (
	True  = Value{kind: KindBoolean, b: true}
	False = Value{kind: KindBoolean}
)

// NewBoolean returns a boolean value.
func NewBoolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// NewInteger returns an integer value.
func NewInteger(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// NewFloat returns a float value. NaN and ±Infinity are valid.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// NewString returns a string value. The text is kept byte-for-byte.
func NewString(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsNaN reports whether the value is a float NaN.
func (v Value) IsNaN() bool { return v.kind == KindFloat && math.IsNaN(v.f) }

// Bool returns the boolean payload. Only meaningful for KindBoolean.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload. Only meaningful for KindInteger.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload. Only meaningful for KindFloat.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload. Only meaningful for KindString.
func (v Value) Str() string { return v.s }

// String returns the canonical display form: NULL, TRUE/FALSE, integers in
// decimal, floats in shortest round-trip notation with INFINITY and NAN
// spelled as keywords, and strings unquoted. Error messages embed this
// form verbatim, so the exact formatting is part of the contract.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindBoolean:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	default:
		return "UNKNOWN"
	}
}

// formatFloat renders a float so that any displayed literal re-parses to the
// same value: infinities and NaN use their keyword spellings.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INFINITY"
	case math.IsInf(f, -1):
		return "-INFINITY"
	case math.IsNaN(f):
		return "NAN"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// isNumeric reports whether the value is an integer or float.
func (v Value) isNumeric() bool {
	return v.kind == KindInteger || v.kind == KindFloat
}

// asFloat widens the value to a float64. Only meaningful for numeric kinds;
// integers beyond 2^53 lose precision, as double conversion does.
func (v Value) asFloat() float64 {
	if v.kind == KindInteger {
		return float64(v.i)
	}
	return v.f
}
