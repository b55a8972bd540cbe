// SPDX-License-Identifier: EPL-2.0

// Command exteread prints the structure of an audio file.
//
// MP3 input is walked frame by frame; WAV, AIFF and Ogg Vorbis input is
// decoded and summarized, and can be written back out as PCM WAV.
//
//	exteread [flags] <file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/exteread"
	"github.com/ik5/exteread/audio"
	"github.com/ik5/exteread/formats/mp3"
	"github.com/ik5/exteread/formats/wav"
)

// errEmptyOutput rejects writing a set without frames; the 44 byte WAV
// wav.Encode produces for it does not decode again.
var errEmptyOutput = errors.New("no samples to write")

type config struct {
	path    string
	format  string
	out     string
	bits    int
	rate    int
	mono    bool
	crcMode mp3.CRCMode
	resync  bool
	logger  *slog.Logger
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("exteread: ")

	format := flag.String("format", "", "input format (wav, aiff, aif, ogg, mp3); taken from the extension when empty")
	out := flag.String("out", "", "write the decoded PCM as WAV to this path")
	bits := flag.Int("bits", 16, "bit depth of the -out file (8, 16, 24 or 32)")
	rate := flag.Int("rate", 0, "resample the -out file to this rate in Hz; 0 keeps the input rate")
	mono := flag.Bool("mono", false, "downmix to mono before writing -out")
	crc := flag.String("crc", "legacy", "MP3 CRC mode: legacy or standard")
	resync := flag.Bool("resync", false, "skip MP3 sync candidates that do not decode")
	verbose := flag.Bool("v", false, "log every MP3 frame and skipped candidate to stderr")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	crcMode, err := mp3.ParseCRCMode(*crc)
	if err != nil {
		log.Fatal(err)
	}

	cfg := config{
		path:    flag.Arg(0),
		format:  *format,
		out:     *out,
		bits:    *bits,
		rate:    *rate,
		mono:    *mono,
		crcMode: crcMode,
		resync:  *resync,
	}

	if *verbose {
		cfg.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, stdout io.Writer) error {
	format := strings.ToLower(cfg.format)
	if format == "" {
		format = strings.ToLower(strings.TrimPrefix(filepath.Ext(cfg.path), "."))
	}

	if format == "mp3" {
		if cfg.out != "" {
			return errors.New("-out needs PCM input; MP3 frames are not decoded")
		}
		return walkMP3(cfg, stdout)
	}

	dec, ok := exteread.NewRegistry().Get(format)
	if !ok {
		return fmt.Errorf("%w: %q", exteread.ErrUnsupportedFormat, format)
	}

	buf, err := os.ReadFile(cfg.path)
	if err != nil {
		return err
	}

	set, err := dec.Decode(buf)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", cfg.path, err)
	}

	printPCM(stdout, filepath.Base(cfg.path), set)

	if cfg.out == "" {
		return nil
	}

	return writeWAV(cfg, set, stdout)
}

func walkMP3(cfg config, stdout io.Writer) error {
	buf, err := os.ReadFile(cfg.path)
	if err != nil {
		return err
	}

	opts := []mp3.Option{mp3.WithCRCMode(cfg.crcMode), mp3.WithResync(cfg.resync)}
	if cfg.logger != nil {
		opts = append(opts, mp3.WithLogger(cfg.logger))
	}

	w := mp3.NewWalker(buf, opts...)
	if n := w.ID3v2Size(); n > 0 {
		fmt.Fprintf(stdout, "ID3v2 tag: %d bytes\n", n)
	}

	stream := mp3.Stream{ID3v2Size: w.ID3v2Size()}
	badCRC := 0

	var walkErr error
	for frame, err := range w.All() {
		if err != nil {
			walkErr = err
			break
		}

		stream.Frames = append(stream.Frames, frame)
		if !frame.CRCValid {
			badCRC++
		}

		line := fmt.Sprintf("%10d  %5d  %s", frame.Offset, frame.Size, frame.Header)
		if frame.Header.HasCRC() {
			line += fmt.Sprintf("  crc=%t", frame.CRCValid)
		}
		if tag := frame.VBRTag(buf); tag != "" {
			line += "  [" + tag + "]"
		}
		fmt.Fprintln(stdout, line)
	}

	fmt.Fprintf(stdout, "%d frames, %d samples at %d Hz, %v",
		len(stream.Frames), stream.SampleCount(), stream.SampleRate(), stream.Duration())
	if badCRC > 0 {
		fmt.Fprintf(stdout, ", %d CRC mismatches", badCRC)
	}
	fmt.Fprintln(stdout)

	if walkErr != nil {
		return fmt.Errorf("walking %s: %w", cfg.path, walkErr)
	}

	return nil
}

func printPCM(stdout io.Writer, name string, set *audio.SampleSet) {
	depth := "float"
	if set.BitDepth > 0 {
		depth = fmt.Sprintf("%d-bit", set.BitDepth)
	}

	fmt.Fprintf(stdout, "%s: %d Hz, %d channels, %s, %d frames, %v\n",
		name, set.SampleRate, set.Channels, depth, set.Frames(), set.Duration())
}

func writeWAV(cfg config, set *audio.SampleSet, stdout io.Writer) error {
	if cfg.rate != 0 && cfg.rate != set.SampleRate {
		resampled, err := set.Resample(cfg.rate)
		if err != nil {
			return err
		}
		set = resampled
	}

	if cfg.mono {
		mixed, err := set.Mono()
		if err != nil {
			return err
		}
		set = mixed
	}

	if set.Frames() == 0 {
		return fmt.Errorf("%w: %s", errEmptyOutput, cfg.out)
	}

	f, err := os.Create(cfg.out)
	if err != nil {
		return err
	}

	if err := wav.Encode(f, set, cfg.bits); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", cfg.out, err)
	}

	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s: %d Hz, %d channels, %d-bit\n", cfg.out, set.SampleRate, set.Channels, cfg.bits)

	return nil
}
