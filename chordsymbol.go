package savel

import "strings"

// ChordSymbol is a parsed chord symbol such as "Am7" or "Cmaj7/G": a root
// pitch class, an optional slash bass pitch class, and the chord shape as
// intervals from the root.
type ChordSymbol struct {
	Root  string
	Bass  string
	Chord Chord
}

const chordSymbolSystem = "chord-symbol"

// chord symbol extensions, as semitone offsets from the root. Following
// common lead-sheet practice the bare numbers 9/11/13 are read as added
// tones; they do not imply the seventh.
var extensionOffsets = map[string]float64{
	"6": 9, "7": 10, "maj7": 11,
	"9": 14, "add9": 14,
	"11": 17, "add11": 17,
	"13": 21, "add13": 21,
}

// extensionTokens in matching order, longest first, so that "add11" is never
// read as "add1" + "1" and "13" never as "1" + "3".
var extensionTokens = []string{"add13", "add11", "add9", "maj7", "13", "11", "9", "7", "6"}

// ParseChordSymbol parses a chord symbol of the closed grammar
// <root><quality><extensions>[/<bass>]: a root A-G with optional # or b, a
// quality of m/min/maj/dim/aug/sus2/sus4 defaulting to major, extensions from
// the extension table, and an optional slash bass. Anything outside the
// grammar fails with a NotationError carrying the whole symbol.
func ParseChordSymbol(symbol string) (ChordSymbol, error) {
	base, bass := symbol, ""
	if i := strings.IndexByte(symbol, '/'); i >= 0 {
		base, bass = symbol[:i], symbol[i+1:]
		if bass == "" {
			return ChordSymbol{}, NotationError{Notation: symbol, System: chordSymbolSystem}
		}
	}
	root, rest, err := splitPitchClass(base, symbol)
	if err != nil {
		return ChordSymbol{}, err
	}
	if bass != "" {
		if _, leftover, err := splitPitchClass(bass, symbol); err != nil || leftover != "" {
			return ChordSymbol{}, NotationError{Notation: symbol, System: chordSymbolSystem}
		}
	}
	quality, rest := splitQuality(rest)
	offsets := make([]float64, 0, 6)
	offsets = append(offsets, chordShapes[quality]...)
	for rest != "" {
		matched := false
		for _, token := range extensionTokens {
			if strings.HasPrefix(rest, token) {
				offsets = append(offsets, extensionOffsets[token])
				rest = rest[len(token):]
				matched = true
				break
			}
		}
		if !matched {
			return ChordSymbol{}, NotationError{Notation: symbol, System: chordSymbolSystem}
		}
	}
	chord, err := NewChord(semitoneChord(offsets).Intervals...)
	if err != nil {
		return ChordSymbol{}, err
	}
	return ChordSymbol{Root: root, Bass: bass, Chord: chord}, nil
}

// splitPitchClass peels a pitch class (letter plus optional # or b) off the
// front of s. The full symbol is only used for error reporting.
func splitPitchClass(s, symbol string) (pitchClass, rest string, err error) {
	if len(s) == 0 || s[0] < 'A' || s[0] > 'G' {
		return "", "", NotationError{Notation: symbol, System: chordSymbolSystem}
	}
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		return s[:2], s[2:], nil
	}
	return s[:1], s[1:], nil
}

// splitQuality peels the chord quality off the front of s, defaulting to
// major. "m" alone is minor; "maj" belongs to the "maj7" extension and is
// left in place.
func splitQuality(s string) (quality, rest string) {
	switch {
	case strings.HasPrefix(s, "min"):
		return "minor", s[3:]
	case strings.HasPrefix(s, "dim"):
		return "diminished", s[3:]
	case strings.HasPrefix(s, "aug"):
		return "augmented", s[3:]
	case strings.HasPrefix(s, "sus2"):
		return "sus2", s[4:]
	case strings.HasPrefix(s, "sus4"):
		return "sus4", s[4:]
	case strings.HasPrefix(s, "m") && !strings.HasPrefix(s, "maj"):
		return "minor", s[1:]
	}
	return "major", s
}
