package toydb

import (
	"io"

	"github.com/chao-huang/toydb/logger"
)

// Option configures expression parsing behavior.
type Option func(*Expression)

// WithLogger sets a custom logger.
//
// Example:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	e, err := toydb.NewExpression("a + b", toydb.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(e *Expression) {
		logger.SetDefault(log)
	}
}

// WithLogLevel sets the log level on the default logger.
//
// Example:
//
//	e, err := toydb.NewExpression("a + b", toydb.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(e *Expression) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput directs log output to the given writer, such as a file or
// os.Stderr.
//
// Example:
//
//	logFile, _ := os.OpenFile("toydb.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
//	e, err := toydb.NewExpression("a + b", toydb.WithLogOutput(logFile, logger.INFO))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(e *Expression) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog disables all log output.
func WithDiscardLog() Option {
	return func(e *Expression) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}
