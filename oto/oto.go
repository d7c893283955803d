// Package oto wraps ebitengine/oto/v3 as a savel.AudioContext, outputting
// interleaved stereo float32 at 44100 Hz.
package oto

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/vsariola/savel"
)

type (
	OtoContext struct {
		context *oto.Context
	}

	OtoOutput struct {
		player *oto.Player
		writer *io.PipeWriter
	}
)

// NewContext creates an audio context and waits until the backend is ready
// to play.
func NewContext() (*OtoContext, error) {
	options := &oto.NewContextOptions{
		SampleRate:   44100,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	}
	context, ready, err := oto.NewContext(options)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoContext{context: context}, nil
}

func (c *OtoContext) Close() error {
	// oto v3 contexts have no Close; suspending releases the audio device as
	// far as the OS is concerned
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

// Output starts a player reading from an internal pipe; WriteAudio pushes
// buffers into the pipe and Close drains the player before releasing it.
func (c *OtoContext) Output() savel.AudioSink {
	reader, writer := io.Pipe()
	player := c.context.NewPlayer(reader)
	player.Play()
	return &OtoOutput{player: player, writer: writer}
}

func (o *OtoOutput) WriteAudio(buffer []float32) error {
	if err := binary.Write(o.writer, binary.LittleEndian, buffer); err != nil {
		return fmt.Errorf("cannot write to player: %w", err)
	}
	return nil
}

func (o *OtoOutput) Close() error {
	o.writer.Close()
	for o.player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}
