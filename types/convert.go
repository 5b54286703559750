package types

import (
	"math"

	"github.com/spf13/cast"
)

// ToValue converts a native Go scalar into a Value. Row sources typically
// hand the evaluator plain Go data (JSON decoding, map rows), so every
// integer and unsigned width is accepted and widened to int64, and float32
// is widened to float64. nil converts to NULL.
func ToValue(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case Value:
		return x, nil
	case bool:
		return NewBoolean(x), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		n, err := cast.ToInt64E(x)
		if err != nil {
			return Null, NewValueError("Can't convert %v to an integer value", x)
		}
		return NewInteger(n), nil
	case uint64:
		if x > math.MaxInt64 {
			return Null, errIntegerOverflow
		}
		return NewInteger(int64(x)), nil
	case float32, float64:
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return Null, NewValueError("Can't convert %v to a float value", x)
		}
		return NewFloat(f), nil
	case string:
		return NewString(x), nil
	}
	return Null, NewValueError("Unsupported value type %T", v)
}
