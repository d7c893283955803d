package savel

import "fmt"

// UnitSemitones is the unit of all intervals produced by the international
// pitch notation and the quality-number interval notation: twelve semitones
// to an octave.
const UnitSemitones = "semitones"

// Interval is a relative pitch distance: a real-valued relation tagged with
// the unit the relation is expressed in. Intervals are immutable values; two
// intervals are equal only when both the unit and the relation are identical.
type Interval struct {
	Relation float64 `yaml:"relation"`
	Unit     string  `yaml:"unit"`
}

// SemitoneInterval returns an interval of n semitones. Negative n means a
// descending interval.
func SemitoneInterval(n float64) Interval {
	return Interval{Relation: n, Unit: UnitSemitones}
}

func (i Interval) String() string {
	return fmt.Sprintf("Interval{%v %v}", i.Relation, i.Unit)
}

// Add combines two intervals of the same unit. Combining intervals of
// different units fails with UnitMismatchError; there is no coercion between
// units.
func (i Interval) Add(other Interval) (Interval, error) {
	if i.Unit != other.Unit {
		return Interval{}, UnitMismatchError{A: i.Unit, B: other.Unit}
	}
	return Interval{Relation: i.Relation + other.Relation, Unit: i.Unit}, nil
}

// Mul stretches the interval by a whole number of repetitions, e.g. a perfect
// fifth times two is a major ninth.
func (i Interval) Mul(times int) Interval {
	return Interval{Relation: i.Relation * float64(times), Unit: i.Unit}
}
