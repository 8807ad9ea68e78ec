// ABOUTME: Error types returned by the time expression parser and interval validation.
// ABOUTME: ParseError echoes the offending input; ValidationError reports a start after the end.
package timeparse

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ErrOutOfRange is wrapped by a ParseError when a relative offset pushes the
// result outside the representable years 0001-9999.
var ErrOutOfRange = errors.New("result outside representable time range")

// ParseError reports an expression that matches none of the grammars, or one
// that matches a grammar but carries an invalid value.
type ParseError struct {
	// Field names the flag the expression came from ("start" or "end").
	// Empty when Parse is called directly.
	Field  string
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s time %q: %s", e.Field, e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid time expression %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a resolved interval whose start lies after its end.
type ValidationError struct {
	Start time.Time
	End   time.Time
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("start time %s is after end time %s",
		e.Start.Format(DateTimeLayout), e.End.Format(DateTimeLayout))
}

func newParseError(input, reason string) *ParseError {
	return &ParseError{Input: input, Reason: reason}
}
