// Package midi exports realized note groups as standard MIDI files, so that
// anything the engine produces can be fed to an external sequencer or DAW.
package midi

import (
	"fmt"
	"io"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/vsariola/savel"
)

const (
	channel  = 0
	velocity = 100
)

// Key returns the nearest 12-tone equal temperament MIDI key number for a
// frequency, with A4 = 440 Hz = key 69, clamped to the 0..127 key range.
func Key(frequency float64) uint8 {
	key := math.Round(69 + 12*math.Log2(frequency/440))
	if key < 0 {
		key = 0
	}
	if key > 127 {
		key = 127
	}
	return uint8(key)
}

// WriteSMF writes the timeline as a single-track SMF: the members of each
// group start together and hold for the group's duration in beats.
func WriteSMF(w io.Writer, timeline []savel.TimedGroup, bpm float64) error {
	if bpm <= 0 {
		return fmt.Errorf("BPM should be > 0, got %v", bpm)
	}
	ticks := smf.MetricTicks(960)
	s := smf.New()
	s.TimeFormat = ticks
	var track smf.Track
	track.Add(0, smf.MetaTempo(bpm))
	for _, tg := range timeline {
		duration := uint32(math.Round(tg.Beats * float64(ticks.Ticks4th())))
		for _, note := range tg.Group {
			track.Add(0, midi.NoteOn(channel, Key(note.Frequency), velocity))
		}
		for i, note := range tg.Group {
			delta := uint32(0)
			if i == 0 {
				delta = duration
			}
			track.Add(delta, midi.NoteOff(channel, Key(note.Frequency)))
		}
		if len(tg.Group) == 0 {
			// a rest: just advance time
			track.Add(duration, smf.MetaText(""))
		}
	}
	track.Close(0)
	if err := s.Add(track); err != nil {
		return fmt.Errorf("cannot add track: %v", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write SMF: %v", err)
	}
	return nil
}
