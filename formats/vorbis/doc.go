// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// Vorbis is a free, open-source lossy audio compression format.
//
// # Decoding Vorbis Files
//
// Decode takes the complete stream:
//
//	data, _ := os.ReadFile("audio.ogg")
//	set, err := vorbis.Decode(data)
//	if err != nil {
//	    // Handle error
//	}
//
// The samples in the returned audio.SampleSet are the decoder's float
// output, clamped to [-1.0, 1.0]. Vorbis has no integer sample width, so
// BitDepth is left at 0; pick one when encoding to WAV.
//
// # Channel Layout
//
// For stereo files, samples are interleaved:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// To convert to mono:
//
//	mono, err := set.Mono()
//
// # Stream Information
//
// ReadInfo parses only the three Vorbis headers and reports the sample
// rate, channel count, length in frames when it can be determined, the
// bitrate hints and the comment header:
//
//	info, _ := vorbis.ReadInfo(data)
//	fmt.Println(info.Comments.Vendor, info.Bitrate.Nominal)
//
// Vorbis encoding is not supported.
package vorbis
