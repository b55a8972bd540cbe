// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes linear PCM WAV files.
//
// Decoding works on a complete file held in memory. The header is read at
// its canonical offsets and the sample payload is located by scanning for
// the "data" tag, so files carrying LIST or fact chunks ahead of the data
// still decode.
//
// # Supported Formats
//
//   - PCM 8-bit (treated as signed)
//   - PCM 16-bit
//   - PCM 24-bit (sign-extended from bit 23)
//   - PCM 32-bit
//   - Any channel count and sample rate
//
// # Decoding WAV Files
//
//	raw, _ := os.ReadFile("audio.wav")
//	set, err := wav.Decode(raw)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(set.SampleRate, set.Channels, set.Duration())
//
// Samples are interleaved float32 values in [-1.0, 1.0), normalized by the
// full scale of the bit depth: 128, 32768, 8388608 or 2147483648.
//
// # Writing WAV Files
//
// Encode quantizes a SampleSet and writes it through
// github.com/go-audio/wav:
//
//	f, _ := os.Create("output.wav")
//	defer f.Close()
//	err := wav.Encode(f, set, 16)
//
// Encoding an empty set yields a bare 44 byte file whose data tag sits at
// offset 36. The data scan stops 8 bytes before the end, so Decode rejects
// that file with ErrDataChunkNotFound.
//
// # File Format
//
// Decode assumes the canonical layout:
//   - RIFF header (12 bytes)
//   - fmt chunk at offset 12: channels at 22, sample rate at 24, bit depth at 34
//   - data chunk anywhere after offset 12, aligned to 2 bytes
//
// The data size field decides how many samples are read. A trailing
// partial sample is dropped; a size reaching past the buffer is an
// ErrIndexOutOfRange.
//
// # Error Handling
//
//   - ErrHeaderTooShort: fewer than 44 bytes
//   - ErrDataChunkNotFound: no "data" tag in the scan window
//   - ErrUnsupportedBitDepth: depth other than 8, 16, 24 or 32
//   - ErrInvalidChannelCount: channel field below one
//   - ErrIndexOutOfRange: data size larger than the buffer
//
// All of them are wrapped with context, so compare with errors.Is.
package wav
