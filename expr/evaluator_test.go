package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chao-huang/toydb/parser"
	"github.com/chao-huang/toydb/types"
)

func mustParse(t *testing.T, input string) parser.Node {
	t.Helper()
	node, err := parser.NewParser(input).Parse()
	require.NoError(t, err)
	return node
}

func TestEvaluateConstant(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Value
	}{
		{"1 + 2 * 3", types.NewInteger(7)},
		{"2 ^ 10", types.NewInteger(1024)},
		{"NOT FALSE", types.True},
		{"TRUE AND NULL", types.Null},
		{"'abc' LIKE 'a%'", types.True},
		{"3! + 1", types.NewInteger(7)},
		{"NULL IS NULL", types.True},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, err := Evaluate(mustParse(t, test.input), nil)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestEvaluateColumnRef(t *testing.T) {
	row := MapResolver{
		"temperature": 25.5,
		"device":      "sensor1",
		"count":       3,
		"humidity":    nil,
	}

	tests := []struct {
		input    string
		expected types.Value
	}{
		{"temperature", types.NewFloat(25.5)},
		{"temperature > 20", types.True},
		{"device LIKE 'sensor%'", types.True},
		{"count * 2", types.NewInteger(6)},
		{"humidity", types.Null},
		{"humidity IS NULL", types.True},
		{"humidity IS NOT NULL", types.False},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, err := Evaluate(mustParse(t, test.input), row)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestEvaluateMissingColumn(t *testing.T) {
	row := MapResolver{"a": 1}
	_, err := Evaluate(mustParse(t, "a + b"), row)
	require.Error(t, err)
	assert.Equal(t, "field b not found in data", err.Error())
}

func TestEvaluateColumnWithoutRow(t *testing.T) {
	_, err := Evaluate(mustParse(t, "temperature > 20"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}

func TestEvaluateIsPredicates(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Value
	}{
		{"NULL IS NULL", types.True},
		{"NULL IS NOT NULL", types.False},
		{"TRUE IS NULL", types.False},
		{"TRUE IS NOT NULL", types.True},
		{"TRUE IS TRUE", types.True},
		{"FALSE IS TRUE", types.False},
		{"NULL IS TRUE", types.False},
		{"NULL IS NOT TRUE", types.True},
		{"FALSE IS FALSE", types.True},
		{"TRUE IS FALSE", types.False},
		{"NULL IS FALSE", types.False},
		{"1 IS TRUE", types.False},
		{"1 IS NOT FALSE", types.True},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, err := Evaluate(mustParse(t, test.input), nil)
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestEvaluateLikeTypeErrors(t *testing.T) {
	tests := []struct {
		input       string
		expectedErr string
	}{
		{"1 LIKE 'a'", "Can't LIKE 1 and a"},
		{"'a' LIKE 1", "Can't LIKE a and 1"},
		{"TRUE LIKE 'a'", "Can't LIKE TRUE and a"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Evaluate(mustParse(t, test.input), nil)
			require.Error(t, err)
			assert.Equal(t, test.expectedErr, err.Error())
		})
	}
}

func TestEvaluateLikeNull(t *testing.T) {
	for _, input := range []string{"'abc' LIKE NULL", "NULL LIKE 'abc'"} {
		result, err := Evaluate(mustParse(t, input), nil)
		require.NoError(t, err)
		assert.Equal(t, types.Null, result)
	}
}

func TestEvaluateErrorShortCircuits(t *testing.T) {
	// The first evaluation error aborts the walk; the right operand's
	// division by zero is never reached.
	_, err := Evaluate(mustParse(t, "(1 + TRUE) * (1 / 0)"), nil)
	require.Error(t, err)
	assert.Equal(t, "Can't add 1 and TRUE", err.Error())
}

func TestMapResolver(t *testing.T) {
	row := MapResolver{
		"b":   true,
		"i":   int32(7),
		"f":   float32(1.5),
		"s":   "text",
		"nil": nil,
	}

	v, err := row.Resolve("b")
	require.NoError(t, err)
	assert.Equal(t, types.True, v)

	v, err = row.Resolve("i")
	require.NoError(t, err)
	assert.Equal(t, types.NewInteger(7), v)

	v, err = row.Resolve("f")
	require.NoError(t, err)
	assert.Equal(t, types.NewFloat(1.5), v)

	v, err = row.Resolve("s")
	require.NoError(t, err)
	assert.Equal(t, types.NewString("text"), v)

	v, err = row.Resolve("nil")
	require.NoError(t, err)
	assert.Equal(t, types.Null, v)

	_, err = row.Resolve("missing")
	require.Error(t, err)
	assert.Equal(t, "field missing not found in data", err.Error())
}
