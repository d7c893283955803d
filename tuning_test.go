package savel_test

import (
	"math"
	"testing"

	"github.com/vsariola/savel"
)

const tolerance = 1e-9

func TestEqualTemperamentRatios(t *testing.T) {
	et := savel.EqualTemperament(12)
	if got := et.Ratio(0); got != 1 {
		t.Errorf("Ratio(0) = %v, expected 1", got)
	}
	if got := et.Ratio(12); math.Abs(got-2) > tolerance {
		t.Errorf("Ratio(12) = %v, expected 2", got)
	}
	if got := et.Ratio(1); math.Abs(got-math.Pow(2, 1./12)) > tolerance {
		t.Errorf("Ratio(1) = %v, expected the twelfth root of two", got)
	}
	for d := -25; d <= 25; d++ {
		product := et.Ratio(float64(d)) * et.Ratio(float64(-d))
		if math.Abs(product-1) > tolerance {
			t.Errorf("Ratio(%v)*Ratio(%v) = %v, expected 1", d, -d, product)
		}
	}
}

func TestEqualTemperamentDivisions(t *testing.T) {
	for _, n := range []int{5, 19, 24, 31} {
		et := savel.EqualTemperament(n)
		if got := et.Ratio(float64(n)); math.Abs(got-2) > tolerance {
			t.Errorf("%v divisions: Ratio(%v) = %v, expected 2", n, n, got)
		}
	}
}

func TestJustIntonationRatios(t *testing.T) {
	ji := savel.JustIntonation()
	if got := ji.Ratio(0); got != 1 {
		t.Errorf("Ratio(0) = %v, expected exactly 1", got)
	}
	if got := ji.Ratio(12); got != 2 {
		t.Errorf("Ratio(12) = %v, expected exactly 2", got)
	}
	expected := []float64{1, 25. / 24, 9. / 8, 6. / 5, 5. / 4, 4. / 3, 45. / 32, 3. / 2, 8. / 5, 5. / 3, 9. / 5, 15. / 8}
	for d, want := range expected {
		if got := ji.Ratio(float64(d)); math.Abs(got-want) > tolerance {
			t.Errorf("Ratio(%v) = %v, expected %v", d, got, want)
		}
	}
	// two octaves up a fifth: 4 * 3/2
	if got, want := ji.Ratio(31), 6.0; math.Abs(got-want) > tolerance {
		t.Errorf("Ratio(31) = %v, expected %v", got, want)
	}
}

func TestJustIntonationDescendingIsReciprocal(t *testing.T) {
	ji := savel.JustIntonation()
	for d := 1; d <= 30; d++ {
		up := ji.Ratio(float64(d))
		down := ji.Ratio(float64(-d))
		if math.Abs(up*down-1) > tolerance {
			t.Errorf("Ratio(%v) = %v but Ratio(%v) = %v; expected reciprocals", d, up, -d, down)
		}
	}
	// the table is not symmetric around the unison, so the reciprocal is not
	// the ratio of the negated index: -1 steps must be 24/25, not 15/16
	if got, want := ji.Ratio(-1), 24./25; math.Abs(got-want) > tolerance {
		t.Errorf("Ratio(-1) = %v, expected %v", got, want)
	}
}

func TestTuningString(t *testing.T) {
	if got := savel.EqualTemperament(12).String(); got != "EqualTemperament" {
		t.Errorf("got %q", got)
	}
	if got := savel.JustIntonation().String(); got != "FiveLimitTuning" {
		t.Errorf("got %q", got)
	}
}
