package cxt

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors wrapped by *ParseError.
var (
	ErrHeader    = errors.New("cxt: bad header")
	ErrSeparator = errors.New("cxt: missing blank separator line")
	ErrCount     = errors.New("cxt: bad object or attribute count")
	ErrLabels    = errors.New("cxt: too few label lines")
	ErrRow       = errors.New("cxt: bad cross-table row")
	ErrSymbol    = errors.New("cxt: unexpected symbol in row")
)

// ParseError locates a format violation.
type ParseError struct {
	Line int    // 1-based
	Msg  string // what was found
	Err  error  // one of the sentinels above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cxt: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// failf builds a *ParseError and attaches a user-facing hint.
func failf(line int, sentinel error, hint string, format string, args ...any) error {
	err := error(&ParseError{Line: line, Msg: fmt.Sprintf(format, args...), Err: sentinel})
	if hint != "" {
		err = errors.WithHint(err, hint)
	}

	return err
}
