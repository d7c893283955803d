package savel

import "fmt"

type (
	// NotationError is returned when a string fails the grammar of a notation
	// system, be it a pitch notation, an interval name or a chord symbol. It
	// carries the offending string and the name of the system that rejected
	// it, so the caller can report which grammar was violated.
	NotationError struct {
		Notation string
		System   string
	}

	// IntervalLengthError is returned when a structural parameter of a scale
	// or chord is outside its domain, e.g. an octave count that is not a
	// positive whole number or a scale degree below one.
	IntervalLengthError struct {
		Value    float64
		Interval string
	}

	// UnitMismatchError is returned when two intervals with different units
	// would have to be combined. Intervals of different units are never
	// comparable and are never silently coerced.
	UnitMismatchError struct {
		A string
		B string
	}
)

func (e NotationError) Error() string {
	return fmt.Sprintf("%q is not a valid notation in the %v notation system", e.Notation, e.System)
}

func (e IntervalLengthError) Error() string {
	return fmt.Sprintf("%v is not a valid value for %v intervals", e.Value, e.Interval)
}

func (e UnitMismatchError) Error() string {
	return fmt.Sprintf("cannot combine intervals with units %q and %q", e.A, e.B)
}
