package savel_test

import (
	"testing"

	"github.com/vsariola/savel"
)

func TestRenderGroupLength(t *testing.T) {
	synth := savel.NewSynth()
	tests := []struct {
		seconds float64
		samples int
	}{
		{1, 2 * 44100},
		{0.5, 44100},
		{0.01, 2 * 441},
		{0, 0},
	}
	for _, test := range tests {
		buffer := synth.RenderGroup(savel.Group{{Frequency: 440}}, test.seconds)
		if len(buffer) != test.samples {
			t.Errorf("RenderGroup for %v s returned %v samples, expected %v", test.seconds, len(buffer), test.samples)
		}
	}
}

func TestRenderGroupProducesSound(t *testing.T) {
	synth := savel.NewSynth()
	buffer := synth.RenderGroup(savel.Group{{Frequency: 440}, {Frequency: 550}}, 0.1)
	var peak float32
	for _, v := range buffer {
		if v > peak {
			peak = v
		}
		if v > 1 || v < -1 {
			t.Fatalf("sample %v outside [-1, 1]", v)
		}
	}
	if peak < 0.01 {
		t.Errorf("peak %v, expected audible output", peak)
	}
}

func TestRenderGroupSilence(t *testing.T) {
	buffer := savel.NewSynth().RenderGroup(savel.Group{}, 0.1)
	for i, v := range buffer {
		if v != 0 {
			t.Fatalf("empty group rendered nonzero sample %v at %v", v, i)
		}
	}
}

func TestRenderGroupIsStereoInterleaved(t *testing.T) {
	buffer := savel.NewSynth().RenderGroup(savel.Group{{Frequency: 440}}, 0.05)
	for i := 0; i < len(buffer); i += 2 {
		if buffer[i] != buffer[i+1] {
			t.Fatalf("left and right differ at frame %v", i/2)
		}
	}
}

func TestRenderTimeline(t *testing.T) {
	synth := savel.NewSynth()
	timeline := []savel.TimedGroup{
		{Group: savel.Group{{Frequency: 440}}, Beats: 1},
		{Group: savel.Group{{Frequency: 330}}, Beats: 2},
	}
	buffer := synth.RenderTimeline(timeline, 120)
	// 0.5 s + 1 s at 120 BPM
	if expected := 2 * (22050 + 44100); len(buffer) != expected {
		t.Errorf("timeline rendered %v samples, expected %v", len(buffer), expected)
	}
}
