package savel

import "sort"

// Scale is an ordered list of relative step sizes: one full pass across
// Octaves octaves, stored as a flat concatenation of the per-octave step
// pattern. The scale carries no tonic; a MusicalSystem instantiates it from
// any starting note.
type Scale struct {
	Increments []float64 `yaml:",flow"`
	Unit       string    `yaml:",omitempty"`
	Octaves    int       `yaml:",omitempty"`
}

// Modes maps mode names to their per-octave step patterns in semitones.
// Adding a mode is a data change, not a type change.
var Modes = map[string][]float64{
	"ionian":         {2, 2, 1, 2, 2, 2, 1},
	"major":          {2, 2, 1, 2, 2, 2, 1},
	"dorian":         {2, 1, 2, 2, 2, 1, 2},
	"phrygian":       {1, 2, 2, 2, 1, 2, 2},
	"lydian":         {2, 2, 2, 1, 2, 2, 1},
	"mixolydian":     {2, 2, 1, 2, 2, 1, 2},
	"aeolian":        {2, 1, 2, 2, 1, 2, 2},
	"minor":          {2, 1, 2, 2, 1, 2, 2},
	"locrian":        {1, 2, 2, 1, 2, 2, 2},
	"harmonic minor": {2, 1, 2, 2, 1, 3, 1},
	"chromatic":      {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// NewScale builds a scale from a per-octave step pattern, repeated octaves
// times. The octave count must be at least one; anything else fails with an
// IntervalLengthError.
func NewScale(pattern []float64, octaves int) (Scale, error) {
	if octaves < 1 {
		return Scale{}, IntervalLengthError{Value: float64(octaves), Interval: "octave"}
	}
	increments := make([]float64, 0, len(pattern)*octaves)
	for i := 0; i < octaves; i++ {
		increments = append(increments, pattern...)
	}
	return Scale{Increments: increments, Unit: UnitSemitones, Octaves: octaves}, nil
}

// ModalScale builds a scale from a mode name in the Modes table. An unknown
// mode name fails with a NotationError.
func ModalScale(mode string, octaves int) (Scale, error) {
	pattern, ok := Modes[mode]
	if !ok {
		return Scale{}, NotationError{Notation: mode, System: "mode"}
	}
	return NewScale(pattern, octaves)
}

// Arpeggiate converts the scale into a chord consisting of the intervals at
// the given scale degrees, repeated for every octave of the scale. Without
// arguments the 1st, 3rd and 5th degrees are used. A unison arising from the
// first degree is replaced by the closing octave, so the chord spans the
// whole scale.
func (s Scale) Arpeggiate(degrees ...int) (Chord, error) {
	if s.Octaves < 1 {
		return Chord{}, IntervalLengthError{Value: float64(s.Octaves), Interval: "octave"}
	}
	if len(degrees) == 0 {
		degrees = []int{1, 3, 5}
	}
	perOctave := len(s.Increments) / s.Octaves
	intervals := make([]Interval, 0, len(degrees)*s.Octaves)
	for octave := 0; octave < s.Octaves; octave++ {
		for _, degree := range degrees {
			if degree < 1 || degree > perOctave+1 {
				return Chord{}, IntervalLengthError{Value: float64(degree), Interval: "scale degree"}
			}
			relation := 12 * float64(octave)
			for _, step := range s.Increments[:degree-1] {
				relation += step
			}
			intervals = append(intervals, Interval{Relation: relation, Unit: s.Unit})
		}
	}
	for i, iv := range intervals {
		if iv.Relation == 0 {
			intervals = append(intervals[:i], intervals[i+1:]...)
			intervals = append(intervals, Interval{Relation: 12 * float64(s.Octaves), Unit: s.Unit})
			break
		}
	}
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Relation < intervals[j].Relation
	})
	return Chord{Intervals: intervals}, nil
}
