package types

import "fmt"

// ValueError is a runtime evaluation failure: a type mismatch, arithmetic
// overflow, division by zero, or factorial of a negative number. It is
// terminal; evaluation of the offending subtree stops and the error
// propagates to the caller unchanged.
type ValueError struct {
	Message string
}

// Error implements the error interface. The message text is part of the
// observable contract and carries no decoration.
func (e *ValueError) Error() string {
	return e.Message
}

// NewValueError creates a ValueError with a formatted message.
func NewValueError(format string, args ...interface{}) *ValueError {
	return &ValueError{Message: fmt.Sprintf(format, args...)}
}
