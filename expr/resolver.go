package expr

import "github.com/chao-huang/toydb/types"

// MapResolver resolves column references against a plain map, converting Go
// values on the fly. It is the convenience resolver for callers holding row
// data as map[string]any; engines with typed rows implement Resolver
// directly.
type MapResolver map[string]interface{}

// Resolve returns the value for the given column. A key present with a nil
// value resolves to NULL; an absent key is an error.
func (m MapResolver) Resolve(column string) (types.Value, error) {
	raw, ok := m[column]
	if !ok {
		return types.Null, types.NewValueError("field %s not found in data", column)
	}
	return types.ToValue(raw)
}
