// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/exteread/audio"
	"github.com/jfreymuth/oggvorbis"
	"github.com/jfreymuth/vorbis"
)

// readChunk is the number of frames requested per Read.
const readChunk = 4096

// maxPrealloc caps the capacity taken from the stream's declared length.
const maxPrealloc = 1 << 26

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

// Decode reads a complete Ogg Vorbis stream held in buf.
//
// Vorbis is decoded straight to float, so the returned set has a BitDepth
// of 0.
func Decode(buf []byte) (*audio.SampleSet, error) {
	dec, err := oggvorbis.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return decodeFrom(dec)
}

func decodeFrom(r oggReader) (*audio.SampleSet, error) {
	channels := r.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}

	var samples []float32
	if n := r.Length() * int64(channels); n > 0 && n <= maxPrealloc {
		samples = make([]float32, 0, n)
	}

	// Read returns interleaved values, whole frames at a time
	chunk := make([]float32, readChunk*channels)
	for {
		n, err := r.Read(chunk)
		samples = append(samples, chunk[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading vorbis samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return &audio.SampleSet{
		Samples:    samples,
		SampleRate: r.SampleRate(),
		Channels:   channels,
	}, nil
}

// Info is the stream description found in the Vorbis headers.
type Info struct {
	SampleRate int
	Channels   int
	// Length in frames, 0 when unknown.
	Length   int64
	Bitrate  vorbis.Bitrate
	Comments vorbis.CommentHeader
}

// ReadInfo parses the headers of the stream in buf without decoding audio.
func ReadInfo(buf []byte) (*Info, error) {
	dec, err := oggvorbis.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return &Info{
		SampleRate: dec.SampleRate(),
		Channels:   dec.Channels(),
		Length:     dec.Length(),
		Bitrate:    dec.Bitrate(),
		Comments:   dec.CommentHeader(),
	}, nil
}

// Decoder adapts Decode to audio.Decoder.
type Decoder struct{}

func (Decoder) Decode(buf []byte) (*audio.SampleSet, error) {
	return Decode(buf)
}
