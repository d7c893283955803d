package savel

import "math"

// TuningKind enumerates the supported tuning models. The set is closed on
// purpose: every switch over it can be checked for exhaustiveness, which an
// open interface could not guarantee.
type TuningKind int

const (
	// KindEqualTemperament divides the octave into Divisions geometrically
	// equal steps.
	KindEqualTemperament TuningKind = iota

	// KindJustIntonation uses the fixed 5-limit table of small-integer
	// frequency ratios for the twelve chromatic steps within an octave.
	KindJustIntonation
)

// Tuning is a pure function from a signed step distance to a frequency ratio
// (ratio = target frequency / source frequency). The zero value is not
// useful; construct tunings with EqualTemperament or JustIntonation.
type Tuning struct {
	Kind      TuningKind
	Divisions int // steps per octave; only meaningful for equal temperament
}

// EqualTemperament returns an equal temperament tuning with the given number
// of divisions per octave. The standard Western tuning is
// EqualTemperament(12).
func EqualTemperament(divisions int) Tuning {
	return Tuning{Kind: KindEqualTemperament, Divisions: divisions}
}

// JustIntonation returns the 5-limit just intonation tuning.
func JustIntonation() Tuning {
	return Tuning{Kind: KindJustIntonation}
}

// fiveLimitRatios are the ascending frequency ratios of the twelve chromatic
// steps within one octave in 5-limit tuning, starting from the unison.
var fiveLimitRatios = [12]float64{
	1, 25. / 24, 9. / 8, 6. / 5, 5. / 4, 4. / 3, 45. / 32, 3. / 2, 8. / 5, 5. / 3, 9. / 5, 15. / 8,
}

func (t Tuning) String() string {
	switch t.Kind {
	case KindJustIntonation:
		return "FiveLimitTuning"
	default:
		return "EqualTemperament"
	}
}

// Ratio returns the frequency ratio corresponding to moving delta steps up
// (or down, when delta is negative). For equal temperament the ratio is
// (2^(1/n))^delta; for just intonation the distance is split into octaves and
// a within-octave step, and descending distances use the reciprocal of the
// ascending ratio, as the ratio table is not symmetric around the unison.
func (t Tuning) Ratio(delta float64) float64 {
	switch t.Kind {
	case KindJustIntonation:
		// the table is only defined for whole semitone steps
		steps := int(math.Round(math.Abs(delta)))
		octaves, within := steps/12, steps%12
		ratio := math.Pow(2, float64(octaves)) * fiveLimitRatios[within]
		if delta < 0 {
			return 1 / ratio
		}
		return ratio
	default:
		return math.Pow(2, delta/float64(t.Divisions))
	}
}
