package savel

import "strings"

// IntervalNotation parses relative intervals named in the quality-number
// system: a quality (diminished, minor, major, perfect or augmented) combined
// with a number (unison through octave), e.g. "P5", "minor third" or
// "Augmented Sixth", plus a closed set of alternative names such as
// "tritone". The full combination table is built once by QualityNumberSystem
// and looked up with exact string matching; no substring or pattern search.
type IntervalNotation struct {
	table map[string]Interval
}

// quality abbreviations are case-sensitive: m is minor, M is major.
var (
	qualityWords = map[string]string{
		"d": "diminished", "m": "minor", "M": "major", "P": "perfect", "A": "augmented",
	}
	numberWords = [9]string{"", "unison", "second", "third", "fourth", "fifth", "sixth", "seventh", "octave"}

	// semitone bases within one octave; perfect-class numbers list their
	// perfect size, imperfect-class numbers their minor size
	perfectBases = map[int]float64{1: 0, 4: 5, 5: 7, 8: 12}
	minorBases   = map[int]float64{2: 1, 3: 3, 6: 8, 7: 10}

	// alternative interval names; tone means a whole tone of two semitones
	intervalAliases = map[string]float64{
		"semitone": 1, "half step": 1, "half tone": 1,
		"tone": 2, "whole step": 2, "whole tone": 2,
		"trisemitone": 3,
		"tritone":     6,
	}
)

// QualityNumberSystem builds the closed lookup from every supported interval
// name to its semitone offset. Perfect-class numbers (unison, fourth, fifth,
// octave) pair only with diminished, perfect and augmented; imperfect-class
// numbers (second, third, sixth, seventh) pair only with diminished, minor,
// major and augmented. Every entry resolves to a whole number of semitones.
func QualityNumberSystem() *IntervalNotation {
	n := &IntervalNotation{table: make(map[string]Interval)}
	for number := 1; number <= 8; number++ {
		if base, ok := perfectBases[number]; ok {
			n.addCombination("P", number, base)
			n.addCombination("d", number, base-1)
			n.addCombination("A", number, base+1)
		} else {
			minor := minorBases[number]
			n.addCombination("m", number, minor)
			n.addCombination("M", number, minor+1)
			n.addCombination("d", number, minor-1)
			n.addCombination("A", number, minor+2)
		}
	}
	for name, semitones := range intervalAliases {
		n.table[name] = SemitoneInterval(semitones)
	}
	return n
}

// addCombination registers every accepted spelling of one (quality, number)
// pair: the abbreviation glued to the digit ("P5"), and the word forms joined
// by a space in lower and title case ("perfect fifth", "Perfect Fifth" and
// the mixed-case forms).
func (n *IntervalNotation) addCombination(quality string, number int, semitones float64) {
	iv := SemitoneInterval(semitones)
	digit := string(rune('0' + number))
	n.table[quality+digit] = iv
	qWord := qualityWords[quality]
	nWord := numberWords[number]
	for _, q := range []string{qWord, titleCase(qWord)} {
		for _, num := range []string{nWord, titleCase(nWord)} {
			n.table[q+" "+num] = iv
		}
	}
}

func titleCase(word string) string {
	return strings.ToUpper(word[:1]) + word[1:]
}

func (n *IntervalNotation) String() string { return "quality-number" }

// Validate reports whether the name is an exact key of the combination table.
func (n *IntervalNotation) Validate(name string) bool {
	_, ok := n.table[name]
	return ok
}

// Interval returns the interval named by an exact key of the combination
// table, or a NotationError when the name is not a key.
func (n *IntervalNotation) Interval(name string) (Interval, error) {
	iv, ok := n.table[name]
	if !ok {
		return Interval{}, NotationError{Notation: name, System: n.String()}
	}
	return iv, nil
}
