package savel

// AudioSink is the destination of rendered audio: interleaved stereo float32
// at 44100 Hz. Close flushes and releases the sink.
type AudioSink interface {
	WriteAudio(buffer []float32) error
	Close() error
}

// AudioContext is a factory of audio sinks, wrapping whatever audio backend
// is in use.
type AudioContext interface {
	Output() AudioSink
	Close() error
}

// PlayBuffer writes the whole buffer into a fresh sink of the context and
// closes the sink, blocking until the backend has consumed the audio.
func PlayBuffer(ctx AudioContext, buffer []float32) error {
	output := ctx.Output()
	if err := output.WriteAudio(buffer); err != nil {
		output.Close()
		return err
	}
	return output.Close()
}
