// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container and
// unpack big-endian PCM. AIFF is Apple's uncompressed counterpart to WAV.
//
// # Decoding AIFF Files
//
// Decode takes the complete file contents:
//
//	data, _ := os.ReadFile("audio.aif")
//	set, err := aiff.Decode(data)
//	if err != nil {
//	    // Handle error
//	}
//
// The result is an audio.SampleSet of interleaved float32 samples. Integer
// samples are divided by the full scale of the file's bit depth, so 16-bit
// values land in [-1.0, 1.0).
//
// Decoder{} wraps Decode for use in an audio.Registry.
//
// # Supported Formats
//
//   - PCM at 8, 16, 24 and 32 bits
//   - Any channel count and sample rate
//
// AIFF-C (compressed) files are not decoded.
//
// # Error Handling
//
//   - ErrNotAiffFile: the buffer is not a FORM/AIFF container
//   - ErrUnsupportedBitDepth: the bit depth has no known full scale
//   - ErrUnsupportedAiffLayout: the COMM chunk describes no channels
//
// Read errors from the underlying decoder are wrapped and can be matched
// with errors.Is.
package aiff
