/*
Package toydb implements a SQL scalar expression engine: parsing expression
text into an immutable tree and evaluating that tree against rows.

The engine supports five scalar types (NULL, booleans, 64-bit integers,
64-bit floats, and strings), SQL three-valued logic, checked integer
arithmetic, comparisons, LIKE pattern matching, and IS predicates.

# Getting started

Parse once, evaluate many times:

	e, err := toydb.NewExpression("price * quantity > 100 AND status = 'active'")
	if err != nil {
		panic(err)
	}

	ok, err := e.Evaluate(toydb.Row{
		"price":    19.99,
		"quantity": 6,
		"status":   "active",
	})
	fmt.Println(ok) // TRUE

Constant expressions need no row:

	e, _ := toydb.NewExpression("2 ^ 10 - 1")
	result, _ := e.Evaluate(nil)
	fmt.Println(result) // 1023

A parsed expression is immutable and safe for concurrent evaluation.

# Semantics

NULL propagates through arithmetic and comparisons, and AND/OR follow
Kleene three-valued logic: FALSE AND NULL is FALSE, TRUE OR NULL is TRUE.
Integer arithmetic is checked and errors on overflow or division by zero;
mixed integer/float arithmetic promotes to float and follows IEEE 754.

Subpackages expose the individual stages: parser lexes and parses text into
an AST, expr evaluates trees and matches LIKE patterns, and types holds the
value union and its operator semantics.
*/
package toydb
