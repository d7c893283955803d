package savel

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// PitchNotation parses absolute pitches written in international pitch
// notation: a pitch letter A-G, an accidental, and a signed octave number,
// e.g. "C#4", "Bb-1" or "Adouble_sharp2". All symbol tables and the compiled
// pattern are built once by InternationalPitchNotation and never mutated, so
// a single PitchNotation can be shared freely between goroutines.
type PitchNotation struct {
	pitchOffsets      map[string]int
	accidentalOffsets map[string]int
	pattern           *regexp.Regexp
}

// InternationalPitchNotation builds the standard pitch notation grammar. Each
// accidental can be spelled as a unicode symbol, an ASCII symbol, a full word
// or an abbreviation; the alternation is ordered longest spelling first so
// that the most specific form present in the input wins (e.g. "bb" is a
// double flat, not two flats, and "flat" is never read as "f" + "lat").
func InternationalPitchNotation() *PitchNotation {
	p := &PitchNotation{
		pitchOffsets: map[string]int{
			"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
		},
		accidentalOffsets: map[string]int{
			"𝄫": -2, "bb": -2, "double_flat": -2, "df": -2,
			"♭": -1, "b": -1, "flat": -1, "f": -1,
			"♮": 0, "": 0, "natural": 0, "n": 0,
			"♯": 1, "#": 1, "sharp": 1, "s": 1,
			"𝄪": 2, "x": 2, "double_sharp": 2, "ds": 2,
		},
	}
	spellings := make([]string, 0, len(p.accidentalOffsets))
	for s := range p.accidentalOffsets {
		spellings = append(spellings, s)
	}
	sort.Slice(spellings, func(i, j int) bool {
		if len(spellings[i]) != len(spellings[j]) {
			return len(spellings[i]) > len(spellings[j])
		}
		return spellings[i] < spellings[j]
	})
	for i, s := range spellings {
		spellings[i] = regexp.QuoteMeta(s)
	}
	p.pattern = regexp.MustCompile("^([A-G])(" + strings.Join(spellings, "|") + ")([+-]?[0-9]+)$")
	return p
}

func (p *PitchNotation) String() string { return "IPN" }

// Validate reports whether the notation fully matches pitch letter +
// accidental + signed octave, with no leftover characters.
func (p *PitchNotation) Validate(notation string) bool {
	if len(notation) < 2 {
		return false
	}
	return p.pattern.MatchString(notation)
}

// Accidentals returns the accidental spellings and their semitone offsets.
// The returned map is a copy; the grammar itself cannot be mutated.
func (p *PitchNotation) Accidentals() map[string]int {
	ret := make(map[string]int, len(p.accidentalOffsets))
	for k, v := range p.accidentalOffsets {
		ret[k] = v
	}
	return ret
}

// parts splits a valid notation into pitch letter, accidental and octave.
func (p *PitchNotation) parts(notation string) (pitch, accidental string, octave int, err error) {
	if len(notation) < 2 {
		return "", "", 0, NotationError{Notation: notation, System: p.String()}
	}
	m := p.pattern.FindStringSubmatch(notation)
	if m == nil {
		return "", "", 0, NotationError{Notation: notation, System: p.String()}
	}
	octave, err = strconv.Atoi(m[3])
	if err != nil {
		return "", "", 0, NotationError{Notation: notation, System: p.String()}
	}
	return m[1], m[2], octave, nil
}

// absoluteStep returns the absolute number of semitones of the notation, with
// zero defined as C0. Octaves below zero give negative steps.
func (p *PitchNotation) absoluteStep(notation string) (int, error) {
	pitch, accidental, octave, err := p.parts(notation)
	if err != nil {
		return 0, err
	}
	return octave*12 + p.pitchOffsets[pitch] + p.accidentalOffsets[accidental], nil
}

// Distance returns the interval, in semitones, from one notation to another.
// A negative relation means the target is lower than the source. Either
// notation failing Validate returns a NotationError.
func (p *PitchNotation) Distance(from, to string) (Interval, error) {
	a, err := p.absoluteStep(from)
	if err != nil {
		return Interval{}, err
	}
	b, err := p.absoluteStep(to)
	if err != nil {
		return Interval{}, err
	}
	return SemitoneInterval(float64(b - a)), nil
}
