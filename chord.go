package savel

import "sort"

// Chord is a list of intervals from an implied tonic, sorted ascending by
// relation, with the tonic itself excluded. A duplicate relation is allowed
// only when it explicitly represents a compound such as an octave-doubled
// root. All intervals of a chord share the same unit.
type Chord struct {
	Intervals []Interval `yaml:",flow"`
}

// chordShapes are the semitone offsets of the named chord qualities, tonic
// excluded.
var chordShapes = map[string][]float64{
	"major":      {4, 7},
	"minor":      {3, 7},
	"diminished": {3, 6},
	"augmented":  {4, 8},
	"sus2":       {2, 7},
	"sus4":       {5, 7},
	"major7":     {4, 7, 11},
	"minor7":     {3, 7, 10},
	"dominant7":  {4, 7, 10},
}

// NewChord builds a chord from the given intervals, sorting them ascending by
// relation. Mixing intervals of different units fails with an
// UnitMismatchError.
func NewChord(intervals ...Interval) (Chord, error) {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	for _, iv := range sorted {
		if iv.Unit != sorted[0].Unit {
			return Chord{}, UnitMismatchError{A: sorted[0].Unit, B: iv.Unit}
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Relation < sorted[j].Relation
	})
	return Chord{Intervals: sorted}, nil
}

// NamedChord builds a chord from a quality name in the chordShapes table,
// e.g. "minor7". An unknown name fails with a NotationError.
func NamedChord(name string) (Chord, error) {
	shape, ok := chordShapes[name]
	if !ok {
		return Chord{}, NotationError{Notation: name, System: "chord"}
	}
	return semitoneChord(shape), nil
}

// MajorTriad returns the major triad: a major third and a perfect fifth.
func MajorTriad() Chord { return semitoneChord(chordShapes["major"]) }

// MinorTriad returns the minor triad: a minor third and a perfect fifth.
func MinorTriad() Chord { return semitoneChord(chordShapes["minor"]) }

func semitoneChord(offsets []float64) Chord {
	intervals := make([]Interval, len(offsets))
	for i, o := range offsets {
		intervals[i] = SemitoneInterval(o)
	}
	return Chord{Intervals: intervals}
}
