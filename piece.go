package savel

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	// Piece is a small declarative description of what to play: a musical
	// system, a tempo and a list of events. Pieces are the yaml file format
	// consumed by the player command.
	Piece struct {
		System string  `yaml:",omitempty"` // "western" (default) or "ptolemaic"
		BPM    float64 `yaml:",omitempty"`
		Events []PieceEvent
	}

	// PieceEvent names exactly one of a note, an interval on a tonic, a
	// chord symbol on a tonic, or a scale mode from a starting note, plus a
	// duration in beats (per resulting group, default one beat).
	PieceEvent struct {
		Note     string  `yaml:",omitempty"`
		Interval string  `yaml:",omitempty"`
		Chord    string  `yaml:",omitempty"`
		Scale    string  `yaml:",omitempty"`
		Octaves  int     `yaml:",omitempty"` // scale events only; default 1
		On       string  `yaml:",omitempty"` // tonic/starting notation
		Beats    float64 `yaml:",omitempty"`
	}

	// TimedGroup is one note group with its duration in beats; a resolved
	// piece is just a slice of these.
	TimedGroup struct {
		Group Group
		Beats float64
	}
)

// ParsePiece parses a yaml piece and fills in the defaults: the Western
// classical system and 120 BPM.
func ParsePiece(data []byte) (Piece, error) {
	var piece Piece
	if err := yaml.Unmarshal(data, &piece); err != nil {
		return Piece{}, fmt.Errorf("the piece could not be parsed as yaml: %v", err)
	}
	if piece.BPM == 0 {
		piece.BPM = 120
	}
	if piece.BPM < 0 {
		return Piece{}, fmt.Errorf("piece BPM should be > 0, got %v", piece.BPM)
	}
	if _, err := piece.MusicalSystem(); err != nil {
		return Piece{}, err
	}
	return piece, nil
}

// MusicalSystem returns the musical system the piece names; the system names
// form a closed set.
func (p Piece) MusicalSystem() (*MusicalSystem, error) {
	switch p.System {
	case "", "western":
		return WesternClassical(), nil
	case "ptolemaic":
		return Ptolemaic(), nil
	}
	return nil, fmt.Errorf("unknown musical system %q", p.System)
}

// Timeline resolves every event of the piece into timed note groups. Note
// and scale events produce singleton groups in playing order; interval
// events produce the tonic group followed by the transposed group; chord
// events merge the anchored chord into one simultaneous group.
func (p Piece) Timeline() ([]TimedGroup, error) {
	m, err := p.MusicalSystem()
	if err != nil {
		return nil, err
	}
	var timeline []TimedGroup
	for i, ev := range p.Events {
		beats := ev.Beats
		if beats == 0 {
			beats = 1
		}
		if beats < 0 {
			return nil, fmt.Errorf("event %v: beats should be > 0, got %v", i, beats)
		}
		groups, err := ev.groups(m)
		if err != nil {
			return nil, fmt.Errorf("event %v: %w", i, err)
		}
		for _, g := range groups {
			timeline = append(timeline, TimedGroup{Group: g, Beats: beats})
		}
	}
	return timeline, nil
}

func (ev PieceEvent) groups(m *MusicalSystem) ([]Group, error) {
	switch {
	case ev.Note != "":
		note, err := m.Note(ev.Note)
		if err != nil {
			return nil, err
		}
		return []Group{{note}}, nil
	case ev.Interval != "":
		return m.IntervalOn(ev.Interval, ev.On)
	case ev.Chord != "":
		groups, err := m.ChordOn(ev.Chord, ev.On)
		if err != nil {
			return nil, err
		}
		var merged Group
		for _, g := range groups {
			merged = append(merged, g...)
		}
		return []Group{merged}, nil
	case ev.Scale != "":
		octaves := ev.Octaves
		if octaves == 0 {
			octaves = 1
		}
		scale, err := ModalScale(ev.Scale, octaves)
		if err != nil {
			return nil, err
		}
		notes, err := m.Scale(ev.On, scale)
		if err != nil {
			return nil, err
		}
		groups := make([]Group, len(notes))
		for i, n := range notes {
			groups[i] = Group{n}
		}
		return groups, nil
	}
	return nil, fmt.Errorf("event names none of note, interval, chord or scale")
}
