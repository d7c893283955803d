package savel_test

import (
	"math"
	"testing"

	"github.com/vsariola/savel"
)

func expectFrequency(t *testing.T, got savel.Note, expected float64) {
	t.Helper()
	if math.Abs(got.Frequency-expected) > 1e-9 {
		t.Errorf("got %v Hz, expected %v Hz", got.Frequency, expected)
	}
}

func TestWesternClassicalNotes(t *testing.T) {
	system := savel.WesternClassical()
	tests := []struct {
		notation  string
		frequency float64
	}{
		{"A4", 440},
		{"A5", 880},
		{"A3", 220},
		{"C4", 440 * math.Pow(2, -9.0/12)},
		{"C#4", 440 * math.Pow(2, -8.0/12)},
		{"Db4", 440 * math.Pow(2, -8.0/12)},
		{"E5", 440 * math.Pow(2, 7.0/12)},
		{"A-1", 440 * math.Pow(2, -5)},
	}
	for _, test := range tests {
		note, err := system.Note(test.notation)
		if err != nil {
			t.Fatalf("Note(%q) failed: %v", test.notation, err)
		}
		expectFrequency(t, note, test.frequency)
	}
}

func TestPtolemaicNotes(t *testing.T) {
	system := savel.Ptolemaic()
	a4, err := system.Note("A4")
	if err != nil {
		t.Fatalf("Note(A4) failed: %v", err)
	}
	expectFrequency(t, a4, 440)
	e5, err := system.Note("E5")
	if err != nil {
		t.Fatalf("Note(E5) failed: %v", err)
	}
	expectFrequency(t, e5, 440*3/2)
	a5, err := system.Note("A5")
	if err != nil {
		t.Fatalf("Note(A5) failed: %v", err)
	}
	expectFrequency(t, a5, 880)
	d4, err := system.Note("D4")
	if err != nil {
		t.Fatalf("Note(D4) failed: %v", err)
	}
	expectFrequency(t, d4, 440*2.0/3)
}

func TestSystemsDiverge(t *testing.T) {
	// the equally tempered and justly tuned major third differ by about 14
	// cents
	etNote, err := savel.WesternClassical().Note("C#5")
	if err != nil {
		t.Fatalf("Note failed: %v", err)
	}
	jiNote, err := savel.Ptolemaic().Note("C#5")
	if err != nil {
		t.Fatalf("Note failed: %v", err)
	}
	expectFrequency(t, etNote, 440*math.Pow(2, 4.0/12))
	expectFrequency(t, jiNote, 440*5/4)
	if etNote.Frequency <= jiNote.Frequency {
		t.Errorf("the tempered major third should be wider than the just one")
	}
}

func TestNoteInvalidNotation(t *testing.T) {
	system := savel.WesternClassical()
	for _, notation := range []string{"", "A", "H4", "A#", "A4.5", "4A"} {
		_, err := system.Note(notation)
		if err == nil {
			t.Fatalf("Note(%q) should have failed", notation)
		}
		if _, ok := err.(savel.NotationError); !ok {
			t.Errorf("Note(%q): expected a NotationError, got %T", notation, err)
		}
	}
}

func TestSystemScale(t *testing.T) {
	system := savel.WesternClassical()
	scale, err := savel.ModalScale("major", 1)
	if err != nil {
		t.Fatalf("ModalScale failed: %v", err)
	}
	notes, err := system.Scale("C4", scale)
	if err != nil {
		t.Fatalf("Scale failed: %v", err)
	}
	if len(notes) != len(scale.Increments)+1 {
		t.Fatalf("got %v notes, expected %v", len(notes), len(scale.Increments)+1)
	}
	c4, _ := system.Note("C4")
	expectFrequency(t, notes[0], c4.Frequency)
	expectFrequency(t, notes[len(notes)-1], 2*c4.Frequency)
	g4, _ := system.Note("G4")
	expectFrequency(t, notes[4], g4.Frequency)
}

func TestSystemScaleUnitMismatch(t *testing.T) {
	scale := savel.Scale{Increments: []float64{100, 100}, Unit: "cents", Octaves: 1}
	_, err := savel.WesternClassical().Scale("C4", scale)
	if err == nil {
		t.Fatalf("expected a cents scale to fail")
	}
	if _, ok := err.(savel.UnitMismatchError); !ok {
		t.Errorf("expected an UnitMismatchError, got %T", err)
	}
}

func TestIntervalOn(t *testing.T) {
	system := savel.WesternClassical()
	groups, err := system.IntervalOn("P5", "A4")
	if err != nil {
		t.Fatalf("IntervalOn failed: %v", err)
	}
	if len(groups) != 2 || len(groups[0]) != 1 || len(groups[1]) != 1 {
		t.Fatalf("expected two singleton groups, got %v", groups)
	}
	expectFrequency(t, groups[0][0], 440)
	expectFrequency(t, groups[1][0], 440*math.Pow(2, 7.0/12))
	if _, err := system.IntervalOn("Q5", "A4"); err == nil {
		t.Errorf("unknown interval name should have failed")
	}
	if _, err := system.IntervalOn("P5", "A"); err == nil {
		t.Errorf("invalid tonic should have failed")
	}
}

func TestChordOn(t *testing.T) {
	system := savel.WesternClassical()
	groups, err := system.ChordOn("Am", "")
	if err != nil {
		t.Fatalf("ChordOn failed: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups for a triad, got %v", len(groups))
	}
	expectFrequency(t, groups[0][0], 440)
	expectFrequency(t, groups[1][0], 440*math.Pow(2, 3.0/12))
	expectFrequency(t, groups[2][0], 440*math.Pow(2, 7.0/12))
}

func TestChordOnSlashBass(t *testing.T) {
	system := savel.WesternClassical()
	groups, err := system.ChordOn("C/G", "C5")
	if err != nil {
		t.Fatalf("ChordOn failed: %v", err)
	}
	if len(groups) != 4 {
		t.Fatalf("expected bass + 3 chord groups, got %v", len(groups))
	}
	g4, _ := system.Note("G4")
	c5, _ := system.Note("C5")
	expectFrequency(t, groups[0][0], g4.Frequency)
	expectFrequency(t, groups[1][0], c5.Frequency)
}

func TestNewMusicalSystemValidation(t *testing.T) {
	if _, err := savel.NewMusicalSystem(savel.EqualTemperament(12), savel.PitchStandard{Notation: "A", Frequency: 440}); err == nil {
		t.Errorf("invalid standard notation should have failed")
	}
	if _, err := savel.NewMusicalSystem(savel.EqualTemperament(12), savel.PitchStandard{Notation: "A4", Frequency: 0}); err == nil {
		t.Errorf("zero standard frequency should have failed")
	}
}
