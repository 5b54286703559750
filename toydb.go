package toydb

import (
	"github.com/chao-huang/toydb/expr"
	"github.com/chao-huang/toydb/logger"
	"github.com/chao-huang/toydb/parser"
	"github.com/chao-huang/toydb/types"
)

// Row holds column values for one evaluation, keyed by column name. Values
// are converted on resolution; a nil value is NULL, a missing key is an
// error.
type Row = expr.MapResolver

// Expression is a parsed scalar expression. It is immutable once built, so
// a single Expression may be evaluated concurrently against different rows.
type Expression struct {
	root parser.Node
	text string
}

// NewExpression parses the given expression text.
//
// Example:
//
//	e, err := toydb.NewExpression("temperature > 30 AND humidity IS NOT NULL")
//	if err != nil {
//		return err
//	}
//	v, err := e.Evaluate(toydb.Row{"temperature": 32, "humidity": nil})
func NewExpression(input string, options ...Option) (*Expression, error) {
	e := &Expression{text: input}
	for _, option := range options {
		option(e)
	}

	root, err := parser.NewParser(input).Parse()
	if err != nil {
		logger.Error("parse failed for %q: %v", input, err)
		return nil, err
	}
	logger.Debug("parsed %q as %s", input, root)

	e.root = root
	return e, nil
}

// Evaluate reduces the expression to a value against the given row. The row
// may be nil for constant expressions.
func (e *Expression) Evaluate(row expr.Resolver) (types.Value, error) {
	return expr.Evaluate(e.root, row)
}

// Fields returns the distinct column names the expression references, in
// first-appearance order.
func (e *Expression) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	parser.Walk(e.root, func(node parser.Node) {
		if ref, ok := node.(*parser.ColumnRef); ok && !seen[ref.Name] {
			seen[ref.Name] = true
			fields = append(fields, ref.Name)
		}
	})
	return fields
}

// Root returns the root of the parsed tree, for callers that walk or
// inspect the expression structure.
func (e *Expression) Root() parser.Node {
	return e.root
}

// String renders the parsed tree in canonical form, with binary operations
// fully parenthesized.
func (e *Expression) String() string {
	return e.root.String()
}
