// SPDX-License-Identifier: EPL-2.0

// Package audio holds the decoded-PCM types shared by all format packages.
//
// This package contains:
//   - SampleSet, the result of decoding a whole file into normalized floats
//   - Source interface for streaming consumers
//   - MonoMixer for channel mixing
//   - SampleSet.Resample for rate conversion
//   - Registry of format decoders
//
// # Sample Sets
//
// Every format decoder returns a *SampleSet. Samples are interleaved, so a
// stereo set stores left, right, left, right and so on:
//
//	set, _ := wav.Decode(buf)
//	fmt.Println(set.SampleRate, set.Channels, set.BitDepth, set.Frames())
//
// Splitting channels is left to the caller:
//
//	left, _ := set.Channel(0)
//	all := set.Deinterleave()
//	mono, _ := set.Mono()
//
// Resample converts the rate with Catmull-Rom interpolation, low-pass
// filtering first when the rate goes down:
//
//	narrow, _ := set.Resample(8000)
//
// # Source Interface
//
// A SampleSet can be streamed through the Source interface, which is what
// MonoMixer and other processors consume:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples on a SampleSet source only hands out whole frames, so dst
// must hold a multiple of Channels values.
//
// # Format Registry
//
// The registry maps a format key, usually a file extension, to a decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("WAV")
//
// Keys are matched case-insensitively.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
