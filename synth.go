package savel

import (
	"math"

	"github.com/viterin/vek/vek32"
)

// Synth renders note groups into a stereo float32 buffer with plain additive
// sine voices and an exponential decay envelope. It is the narrow rendering
// collaborator of the engine: it only ever consumes frequencies and
// durations, never notation.
type Synth struct {
	SampleRate int
	Gain       float32
}

// NewSynth returns a synth at 44100 Hz with a headroom-safe gain.
func NewSynth() Synth {
	return Synth{SampleRate: 44100, Gain: 0.5}
}

// RenderGroup renders all notes of one group simultaneously for the given
// duration, returning an interleaved stereo buffer of exactly
// 2*round(rate*seconds) samples.
func (s Synth) RenderGroup(group Group, seconds float64) []float32 {
	frames := int(math.Round(float64(s.SampleRate) * seconds))
	if frames < 0 {
		frames = 0
	}
	mono := make([]float32, frames)
	voice := make([]float32, frames)
	for _, note := range group {
		step := 2 * math.Pi * note.Frequency / float64(s.SampleRate)
		for i := range voice {
			voice[i] = float32(math.Sin(float64(i) * step))
		}
		vek32.Add_Inplace(mono, voice)
	}
	if len(group) > 0 {
		vek32.MulNumber_Inplace(mono, s.Gain/float32(len(group)))
	}
	vek32.Mul_Inplace(mono, s.envelope(frames))
	stereo := make([]float32, 2*frames)
	for i, v := range mono {
		stereo[2*i] = v
		stereo[2*i+1] = v
	}
	return stereo
}

// Render renders the groups sequentially, each for the same duration.
func (s Synth) Render(groups []Group, secondsPerGroup float64) []float32 {
	var buffer []float32
	for _, g := range groups {
		buffer = append(buffer, s.RenderGroup(g, secondsPerGroup)...)
	}
	return buffer
}

// RenderTimeline renders timed groups back to back, converting beats to
// seconds at the given tempo.
func (s Synth) RenderTimeline(timeline []TimedGroup, bpm float64) []float32 {
	var buffer []float32
	for _, tg := range timeline {
		buffer = append(buffer, s.RenderGroup(tg.Group, tg.Beats*60/bpm)...)
	}
	return buffer
}

// envelope is a short linear attack against clicks followed by an
// exponential decay; the decay time constant scales with the note length so
// short notes still speak.
func (s Synth) envelope(frames int) []float32 {
	env := make([]float32, frames)
	attack := s.SampleRate / 200 // 5 ms
	if attack > frames {
		attack = frames
	}
	tau := float64(frames) / 3
	for i := range env {
		env[i] = float32(math.Exp(-float64(i) / tau))
	}
	for i := 0; i < attack; i++ {
		env[i] *= float32(i) / float32(attack)
	}
	return env
}
