// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds in-memory audio fixtures for tests.
package audiotest

import (
	"encoding/binary"
	"math"
)

// Chunk is a raw RIFF chunk placed between the fmt and data chunks.
type Chunk struct {
	ID      string
	Payload []byte
}

// WAV describes a canonical PCM WAV file.
type WAV struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// Data is the raw sample payload.
	Data []byte
	// Extra chunks written after fmt and before data.
	Extra []Chunk
	// DataSize overrides the data chunk size field when non-zero.
	DataSize uint32
}

// Bytes renders the file. The fmt chunk is always 16 bytes at offset 12.
func (w WAV) Bytes() []byte {
	blockAlign := w.Channels * w.BitDepth / 8
	dataSize := uint32(len(w.Data))
	if w.DataSize != 0 {
		dataSize = w.DataSize
	}

	out := make([]byte, 0, 44+len(w.Data))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, 36+uint32(len(w.Data)))
	out = append(out, "WAVE"...)

	out = append(out, "fmt "...)
	out = binary.LittleEndian.AppendUint32(out, 16)
	out = binary.LittleEndian.AppendUint16(out, 1)
	out = binary.LittleEndian.AppendUint16(out, uint16(w.Channels))
	out = binary.LittleEndian.AppendUint32(out, uint32(w.SampleRate))
	out = binary.LittleEndian.AppendUint32(out, uint32(w.SampleRate*blockAlign))
	out = binary.LittleEndian.AppendUint16(out, uint16(blockAlign))
	out = binary.LittleEndian.AppendUint16(out, uint16(w.BitDepth))

	for _, c := range w.Extra {
		out = append(out, c.ID...)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(c.Payload)))
		out = append(out, c.Payload...)
		if len(c.Payload)%2 == 1 {
			out = append(out, 0)
		}
	}

	out = append(out, "data"...)
	out = binary.LittleEndian.AppendUint32(out, dataSize)
	out = append(out, w.Data...)

	return out
}

// PCM encodes signed integer samples little-endian at bitDepth bits.
func PCM(samples []int, bitDepth int) []byte {
	width := bitDepth / 8
	out := make([]byte, 0, len(samples)*width)
	for _, s := range samples {
		for b := range width {
			out = append(out, byte(s>>(8*b)))
		}
	}

	return out
}

// Sine returns frames*channels interleaved samples of a sine wave with the
// given amplitude. Every channel carries the same signal.
func Sine(frames, channels, sampleRate int, frequency float64, amplitude float32) []float32 {
	out := make([]float32, frames*channels)
	for f := range frames {
		v := amplitude * float32(math.Sin(2*math.Pi*frequency*float64(f)/float64(sampleRate)))
		for ch := range channels {
			out[f*channels+ch] = v
		}
	}

	return out
}

// Frame returns an MPEG audio frame of size bytes: the 4 header bytes
// followed by zeros. Zeroed side information decodes as silence.
func Frame(header [4]byte, size int) []byte {
	out := make([]byte, size)
	copy(out, header[:])

	return out
}

// ID3v2 returns an ID3v2.4 tag with a body of bodySize bytes. The body is
// filled with 0xFF 0xF0 pairs so a naive sync scan would stop inside it.
func ID3v2(bodySize int) []byte {
	out := []byte{'I', 'D', '3', 4, 0, 0,
		byte(bodySize>>21) & 0x7F,
		byte(bodySize>>14) & 0x7F,
		byte(bodySize>>7) & 0x7F,
		byte(bodySize) & 0x7F,
	}
	for i := range bodySize {
		if i%2 == 0 {
			out = append(out, 0xFF)
		} else {
			out = append(out, 0xF0)
		}
	}

	return out
}
