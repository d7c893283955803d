package savel

import "fmt"

type (
	// PitchStandard anchors a notation to an absolute frequency, e.g. A4 =
	// 440 Hz. Every absolute frequency a MusicalSystem produces is computed
	// relative to this anchor.
	PitchStandard struct {
		Notation  string
		Frequency float64
	}

	// MusicalSystem composes a note notation system, an interval notation
	// system, a tuning and a pitch standard into the operations that turn
	// symbolic descriptions into notes. A MusicalSystem is built once and is
	// read-only afterwards, so concurrent use needs no coordination.
	MusicalSystem struct {
		notes     *PitchNotation
		intervals *IntervalNotation
		tuning    Tuning
		standard  PitchStandard
	}
)

// NewMusicalSystem composes international pitch notation and the
// quality-number interval notation with the given tuning and pitch standard.
// The standard notation must be valid in the notation system.
func NewMusicalSystem(tuning Tuning, standard PitchStandard) (*MusicalSystem, error) {
	m := &MusicalSystem{
		notes:     InternationalPitchNotation(),
		intervals: QualityNumberSystem(),
		tuning:    tuning,
		standard:  standard,
	}
	if !m.notes.Validate(standard.Notation) {
		return nil, NotationError{Notation: standard.Notation, System: m.notes.String()}
	}
	if standard.Frequency <= 0 {
		return nil, fmt.Errorf("pitch standard frequency should be > 0, got %v", standard.Frequency)
	}
	return m, nil
}

// WesternClassical returns the standard Western classical system:
// international pitch notation, 12-tone equal temperament, A4 = 440 Hz.
func WesternClassical() *MusicalSystem {
	m, _ := NewMusicalSystem(EqualTemperament(12), PitchStandard{Notation: "A4", Frequency: 440})
	return m
}

// Ptolemaic returns a justly tuned system: international pitch notation,
// 5-limit just intonation, A4 = 440 Hz.
func Ptolemaic() *MusicalSystem {
	m, _ := NewMusicalSystem(JustIntonation(), PitchStandard{Notation: "A4", Frequency: 440})
	return m
}

// Tuning returns the tuning the system was built with.
func (m *MusicalSystem) Tuning() Tuning { return m.tuning }

// Standard returns the pitch standard the system was built with.
func (m *MusicalSystem) Standard() PitchStandard { return m.standard }

// Notation returns the note notation system.
func (m *MusicalSystem) Notation() *PitchNotation { return m.notes }

// Note creates a note from its notation: the distance from the pitch
// standard, run through the tuning, applied to the standard frequency. An
// invalid notation fails with a NotationError.
func (m *MusicalSystem) Note(notation string) (Note, error) {
	distance, err := m.notes.Distance(m.standard.Notation, notation)
	if err != nil {
		return Note{}, err
	}
	return Note{Frequency: m.standard.Frequency * m.tuning.Ratio(distance.Relation)}, nil
}

// Scale instantiates a scale from a starting notation, returning
// len(scale.Increments)+1 notes: the starting note followed by one note per
// increment, each the previous note transposed by the tuning ratio of the
// increment.
func (m *MusicalSystem) Scale(start string, scale Scale) ([]Note, error) {
	note, err := m.Note(start)
	if err != nil {
		return nil, err
	}
	return m.ScaleFrom(note, scale)
}

// ScaleFrom instantiates a scale from an already created starting note.
func (m *MusicalSystem) ScaleFrom(start Note, scale Scale) ([]Note, error) {
	if scale.Unit != UnitSemitones {
		return nil, UnitMismatchError{A: scale.Unit, B: UnitSemitones}
	}
	notes := make([]Note, 0, len(scale.Increments)+1)
	notes = append(notes, start)
	for _, step := range scale.Increments {
		prev := notes[len(notes)-1]
		notes = append(notes, prev.Transpose(m.tuning.Ratio(step)))
	}
	return notes, nil
}

// Interval parses an interval name into a bare, unanchored interval.
func (m *MusicalSystem) Interval(name string) (Interval, error) {
	return m.intervals.Interval(name)
}

// IntervalOn parses an interval name and anchors it on a tonic notation,
// returning two singleton groups: the tonic, and the tonic transposed by the
// interval.
func (m *MusicalSystem) IntervalOn(name, tonic string) ([]Group, error) {
	iv, err := m.intervals.Interval(name)
	if err != nil {
		return nil, err
	}
	note, err := m.Note(tonic)
	if err != nil {
		return nil, err
	}
	return m.AnchorInterval(iv, note)
}

// AnchorInterval realizes a bare interval on a tonic note.
func (m *MusicalSystem) AnchorInterval(iv Interval, tonic Note) ([]Group, error) {
	if iv.Unit != UnitSemitones {
		return nil, UnitMismatchError{A: iv.Unit, B: UnitSemitones}
	}
	return []Group{{tonic}, {tonic.Transpose(m.tuning.Ratio(iv.Relation))}}, nil
}

// AnchorChord realizes a chord on a tonic note: the tonic as the first
// singleton group, followed by one singleton group per chord interval,
// ascending.
func (m *MusicalSystem) AnchorChord(c Chord, tonic Note) ([]Group, error) {
	groups := make([]Group, 0, len(c.Intervals)+1)
	groups = append(groups, Group{tonic})
	for _, iv := range c.Intervals {
		if iv.Unit != UnitSemitones {
			return nil, UnitMismatchError{A: iv.Unit, B: UnitSemitones}
		}
		groups = append(groups, Group{tonic.Transpose(m.tuning.Ratio(iv.Relation))})
	}
	return groups, nil
}

// ChordOn parses a chord symbol and anchors it on a tonic notation. An empty
// tonic anchors the chord on its own root in octave 4. A slash bass is
// prepended as an extra group one octave below the tonic's octave.
func (m *MusicalSystem) ChordOn(symbol, tonic string) ([]Group, error) {
	cs, err := ParseChordSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if tonic == "" {
		tonic = cs.Root + "4"
	}
	note, err := m.Note(tonic)
	if err != nil {
		return nil, err
	}
	groups, err := m.AnchorChord(cs.Chord, note)
	if err != nil {
		return nil, err
	}
	if cs.Bass != "" {
		_, _, octave, err := m.notes.parts(tonic)
		if err != nil {
			return nil, err
		}
		bass, err := m.Note(fmt.Sprintf("%v%v", cs.Bass, octave-1))
		if err != nil {
			return nil, err
		}
		groups = append([]Group{{bass}}, groups...)
	}
	return groups, nil
}
