// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/exteread/audio"
	"github.com/ik5/exteread/utils"
)

// HeaderSize is the size of a canonical PCM WAV header.
const HeaderSize = 44

// Canonical fmt chunk field offsets. The fmt chunk is assumed to start at
// byte 12; other layouts are not walked.
const (
	offsetChannels   = 22
	offsetSampleRate = 24
	offsetBitDepth   = 34
)

// dataScanStart is the first offset searched for the data tag, just past
// the RIFF/WAVE preamble.
const dataScanStart = 12

// FindDataChunk returns the offset of the "data" tag. The scan starts at
// byte 12 and moves in 2 byte steps, stopping 8 bytes before the end.
func FindDataChunk(buf []byte) (int, bool) {
	for i := dataScanStart; i < len(buf)-8; i += 2 {
		if buf[i] == 'd' && buf[i+1] == 'a' && buf[i+2] == 't' && buf[i+3] == 'a' {
			return i, true
		}
	}

	return 0, false
}

// Decode reads linear PCM from a complete WAV file held in buf.
//
// Sample rate, channel count and bit depth are read from their canonical
// offsets. Samples are normalized by the full scale of their bit depth and
// returned interleaved.
func Decode(buf []byte) (*audio.SampleSet, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooShort, len(buf))
	}

	sampleRate := int(int32(binary.LittleEndian.Uint32(buf[offsetSampleRate:])))
	channels := int(int16(binary.LittleEndian.Uint16(buf[offsetChannels:])))
	bitDepth := int(int16(binary.LittleEndian.Uint16(buf[offsetBitDepth:])))

	dataIndex, ok := FindDataChunk(buf)
	if !ok {
		return nil, ErrDataChunkNotFound
	}

	scale, ok := utils.FullScale(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if channels < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, channels)
	}

	width := bitDepth / 8
	dataSize := int(binary.LittleEndian.Uint32(buf[dataIndex+4:]))
	numSamples := dataSize / width

	start := dataIndex + 8
	if numSamples > (len(buf)-start)/width {
		return nil, fmt.Errorf("%w: %d samples at offset %d, buffer has %d bytes",
			ErrIndexOutOfRange, numSamples, start, len(buf))
	}

	samples := make([]float32, numSamples)
	data := buf[start : start+numSamples*width]

	switch bitDepth {
	case 8:
		for i := range samples {
			samples[i] = float32(int8(data[i])) / float32(scale)
		}
	case 16:
		for i := range samples {
			v := int16(binary.LittleEndian.Uint16(data[2*i:]))
			samples[i] = float32(v) / float32(scale)
		}
	case 24:
		for i := range samples {
			b := data[3*i : 3*i+3]
			// sign-extend from bit 23
			v := int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8
			samples[i] = float32(v) / float32(scale)
		}
	case 32:
		for i := range samples {
			v := int32(binary.LittleEndian.Uint32(data[4*i:]))
			samples[i] = float32(float64(v) / scale)
		}
	}

	return &audio.SampleSet{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
	}, nil
}

// Decoder adapts Decode to the audio.Decoder interface.
type Decoder struct{}

func (Decoder) Decode(buf []byte) (*audio.SampleSet, error) {
	return Decode(buf)
}
