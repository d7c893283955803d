package savel

import "fmt"

type (
	// Note is an absolute pitch, identified solely by its frequency, in Hz.
	// Notes are immutable values; two notes are equal when their frequencies
	// are equal. Notes are created by a MusicalSystem or derived from other
	// notes with Transpose and Invert.
	Note struct {
		Frequency float64
	}

	// Group is a set of notes sounding simultaneously. A realized interval or
	// chord is a slice of singleton groups, leaving it to the rendering layer
	// to decide whether the groups are played sequentially, together, or as
	// an ascending/descending arpeggio.
	Group []Note
)

func (n Note) String() string {
	return fmt.Sprintf("Note{%v Hz}", n.Frequency)
}

// Transpose returns a new note whose frequency is the current frequency
// multiplied by ratio. The ratio is target frequency over source frequency,
// so ratios below 1 transpose downwards.
func (n Note) Transpose(ratio float64) Note {
	return Note{Frequency: n.Frequency * ratio}
}

// Invert reflects the note about another note: the returned note is as far
// below `about` as this note is above it, in frequency ratio terms.
func (n Note) Invert(about Note) Note {
	return about.Transpose(about.Frequency / n.Frequency)
}
