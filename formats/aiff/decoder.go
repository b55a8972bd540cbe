// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/exteread/audio"
	"github.com/ik5/exteread/utils"
)

// readChunk is the number of samples pulled from the decoder per call.
const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decode reads a complete AIFF file held in buf. Samples are normalized by
// the full scale of the file's bit depth.
func Decode(buf []byte) (*audio.SampleSet, error) {
	dec := aiff.NewDecoder(bytes.NewReader(buf))
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	bitDepth := int(dec.BitDepth)
	samples, err := readAll(dec, bitDepth)
	if err != nil {
		return nil, err
	}

	return &audio.SampleSet{
		Samples:    samples,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   bitDepth,
	}, nil
}

// readAll drains r and converts every sample to float32.
func readAll(r aiffReader, bitDepth int) ([]float32, error) {
	scale, ok := utils.FullScale(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	intBuf := &goaudio.IntBuffer{
		Data:           make([]int, readChunk),
		Format:         r.Format(),
		SourceBitDepth: bitDepth,
	}

	var out []float32
	for {
		n, err := r.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:min(n, len(intBuf.Data))] {
			out = append(out, float32(float64(v)/scale))
		}

		switch {
		case errors.Is(err, io.EOF):
			return out, nil
		case err != nil:
			return nil, fmt.Errorf("reading AIFF samples: %w", err)
		case n == 0:
			return out, nil
		}
	}
}

// Decoder adapts Decode to audio.Decoder.
type Decoder struct{}

func (Decoder) Decode(buf []byte) (*audio.SampleSet, error) {
	return Decode(buf)
}
