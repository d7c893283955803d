package midi_test

import (
	"bytes"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/vsariola/savel"
	"github.com/vsariola/savel/midi"
)

func TestKey(t *testing.T) {
	tests := []struct {
		frequency float64
		key       uint8
	}{
		{440, 69},
		{880, 81},
		{220, 57},
		{261.6255653, 60},
		{446, 69}, // close enough to A4 to round there
		{1, 0},
		{1e6, 127},
	}
	for _, test := range tests {
		if key := midi.Key(test.frequency); key != test.key {
			t.Errorf("Key(%v) = %v, expected %v", test.frequency, key, test.key)
		}
	}
}

func TestWriteSMF(t *testing.T) {
	timeline := []savel.TimedGroup{
		{Group: savel.Group{{Frequency: 440}}, Beats: 1},
		{Group: savel.Group{{Frequency: 440}, {Frequency: 554.37}, {Frequency: 659.26}}, Beats: 2},
		{Group: savel.Group{}, Beats: 1}, // rest
		{Group: savel.Group{{Frequency: 880}}, Beats: 1},
	}
	var buf bytes.Buffer
	if err := midi.WriteSMF(&buf, timeline, 120); err != nil {
		t.Fatalf("WriteSMF failed: %v", err)
	}
	parsed, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("the written file could not be read back: %v", err)
	}
	if len(parsed.Tracks) != 1 {
		t.Fatalf("got %v tracks, expected 1", len(parsed.Tracks))
	}
	noteOns, noteOffs := 0, 0
	for _, ev := range parsed.Tracks[0] {
		var channel, key, velocity uint8
		if ev.Message.GetNoteOn(&channel, &key, &velocity) {
			noteOns++
		}
		if ev.Message.GetNoteOff(&channel, &key, &velocity) {
			noteOffs++
		}
	}
	if noteOns != 5 {
		t.Errorf("got %v note ons, expected 5", noteOns)
	}
	if noteOffs != 5 {
		t.Errorf("got %v note offs, expected 5", noteOffs)
	}
}

func TestWriteSMFRejectsBadTempo(t *testing.T) {
	var buf bytes.Buffer
	if err := midi.WriteSMF(&buf, nil, 0); err == nil {
		t.Errorf("zero BPM should have failed")
	}
}
