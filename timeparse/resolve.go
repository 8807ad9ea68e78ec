// ABOUTME: Resolves start/end expressions into a validated Interval, inferring a start when none is given.
// ABOUTME: ClassifyEnd inspects only the end expression's shape; it never parses it.
package timeparse

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Shape classifies an end expression for start inference.
type Shape int

const (
	// ShapeTimeOnly covers relative expressions and anything carrying a clock time.
	ShapeTimeOnly Shape = iota
	// ShapeDateOnly covers bare calendar dates.
	ShapeDateOnly
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeTimeOnly:
		return "time"
	case ShapeDateOnly:
		return "date"
	default:
		return "unknown"
	}
}

// Interval is the tracked span between two resolved instants.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// ClassifyEnd decides how a missing start should be inferred for the given end
// expression.
func ClassifyEnd(expr string) Shape {
	if IsRelative(expr) || strings.Contains(expr, ":") {
		return ShapeTimeOnly
	}
	return ShapeDateOnly
}

// InferStart returns the implicit start for an end of the given shape: the
// current instant for time-like ends, or local midnight today for date ends.
func InferStart(shape Shape, now time.Time) time.Time {
	if shape == ShapeDateOnly {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	}
	return now.Truncate(time.Second)
}

// Validate fails when start lies after end. Equal instants are allowed.
func Validate(start, end time.Time) error {
	if start.After(end) {
		return &ValidationError{Start: start, End: end}
	}
	return nil
}

// Resolve turns the raw expressions into a validated Interval. An empty
// startExpr triggers start inference from endExpr's shape. A relative end is
// measured from the resolved start.
func Resolve(startExpr, endExpr string, now time.Time) (Interval, error) {
	var start time.Time
	if startExpr != "" {
		t, err := Parse(startExpr, now)
		if err != nil {
			return Interval{}, withField(err, "start")
		}
		start = t
	} else {
		start = InferStart(ClassifyEnd(endExpr), now)
	}

	end, err := Parse(endExpr, start)
	if err != nil {
		return Interval{}, withField(err, "end")
	}

	if err := Validate(start, end); err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

func withField(err error, field string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Field = field
		return pe
	}
	return errors.Wrapf(err, "parse %s time", field)
}
