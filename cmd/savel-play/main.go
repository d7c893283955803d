package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsariola/savel"
	"github.com/vsariola/savel/midi"
	"github.com/vsariola/savel/oto"
	"github.com/vsariola/savel/version"
)

func main() {
	play := flag.Bool("p", false, "Play the input pieces (default behaviour when no other output is defined).")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, everything is placed in the same directory where the original piece file is.")
	rawOut := flag.Bool("r", false, "Output the rendered piece as .raw file. By default, saves stereo float32 buffer to disk.")
	wavOut := flag.Bool("w", false, "Output the rendered piece as .wav file. By default, saves stereo float32 buffer to disk.")
	midOut := flag.Bool("m", false, "Output the piece as a .mid file.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting.")
	note := flag.String("note", "", "Play a single note, e.g. C#4, instead of reading piece files.")
	chord := flag.String("chord", "", "Play a chord symbol, e.g. Am7, instead of reading piece files.")
	scale := flag.String("scale", "", "Play a scale mode, e.g. major, instead of reading piece files.")
	on := flag.String("on", "C4", "Tonic/starting notation for -chord and -scale.")
	octaves := flag.Int("octaves", 1, "Octave count for -scale.")
	system := flag.String("system", "western", "Musical system: western or ptolemaic.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	adhoc := *note != "" || *chord != "" || *scale != ""
	if flag.NArg() == 0 && !adhoc {
		flag.Usage()
		os.Exit(0)
	}
	if !*rawOut && !*wavOut && !*midOut {
		*play = true // if the user gives nothing to output, then the default behaviour is just to play
	}
	var audioContext savel.AudioContext
	if *play {
		var err error
		audioContext, err = oto.NewContext()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not acquire oto AudioContext: %v\n", err)
			os.Exit(1)
		}
	}
	process := func(name string, piece savel.Piece) error {
		timeline, err := piece.Timeline()
		if err != nil {
			return fmt.Errorf("could not resolve piece: %w", err)
		}
		output := func(extension string, contents []byte) error {
			dir := *directory
			if dir == "" {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("could not get working directory, specify the output directory explicitly: %v", err)
				}
			}
			base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)) + extension
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return fmt.Errorf("could not create output directory %v: %v", dir, err)
			}
			f := filepath.Join(dir, base)
			if err := os.WriteFile(f, contents, 0644); err != nil {
				return fmt.Errorf("could not write file %v: %v", f, err)
			}
			return nil
		}
		if *midOut {
			var buf bytes.Buffer
			if err := midi.WriteSMF(&buf, timeline, piece.BPM); err != nil {
				return fmt.Errorf("could not generate .mid file: %v", err)
			}
			if err := output(".mid", buf.Bytes()); err != nil {
				return fmt.Errorf("error outputting .mid file: %v", err)
			}
		}
		if !*play && !*rawOut && !*wavOut {
			return nil
		}
		buffer := savel.NewSynth().RenderTimeline(timeline, piece.BPM)
		if *play {
			if err := savel.PlayBuffer(audioContext, buffer); err != nil {
				return fmt.Errorf("could not play: %v", err)
			}
		}
		if *rawOut {
			raw, err := savel.Raw(buffer, *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .raw file: %v", err)
			}
			if err := output(".raw", raw); err != nil {
				return fmt.Errorf("error outputting .raw file: %v", err)
			}
		}
		if *wavOut {
			wav, err := savel.Wav(buffer, *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .wav file: %v", err)
			}
			if err := output(".wav", wav); err != nil {
				return fmt.Errorf("error outputting .wav file: %v", err)
			}
		}
		return nil
	}
	retCode := 0
	if adhoc {
		piece := savel.Piece{System: *system, BPM: 120, Events: adhocEvents(*note, *chord, *scale, *on, *octaves)}
		if err := process("savel", piece); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			retCode = 1
		}
	}
	for _, name := range flag.Args() {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not read file %v: %v\n", name, err)
			retCode = 1
			continue
		}
		piece, err := savel.ParsePiece(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", name, err)
			retCode = 1
			continue
		}
		if err := process(name, piece); err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", name, err)
			retCode = 1
		}
	}
	if audioContext != nil {
		audioContext.Close()
	}
	os.Exit(retCode)
}

func adhocEvents(note, chord, scale, on string, octaves int) []savel.PieceEvent {
	var events []savel.PieceEvent
	if note != "" {
		events = append(events, savel.PieceEvent{Note: note})
	}
	if chord != "" {
		events = append(events, savel.PieceEvent{Chord: chord, On: on, Beats: 2})
	}
	if scale != "" {
		events = append(events, savel.PieceEvent{Scale: scale, On: on, Octaves: octaves, Beats: 0.5})
	}
	return events
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Savel is a pitch notation & tuning toy: it turns notes, scales and chords into sound.\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [piece.yml ...]\n", os.Args[0])
	flag.PrintDefaults()
}
