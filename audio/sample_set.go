// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// SampleSet is a fully decoded block of interleaved PCM, normalized to
// float32 values in roughly [-1, 1].
//
// len(Samples) is the sample count across all channels. For well formed
// input it is a multiple of Channels; a trailing partial frame is kept as is
// and ignored by the frame based helpers.
type SampleSet struct {
	Samples    []float32
	SampleRate int
	Channels   int
	// BitDepth of the encoded source the samples were decoded from.
	BitDepth int
}

// Frames returns the number of complete interleaved frames.
func (s *SampleSet) Frames() int {
	if s.Channels < 1 {
		return 0
	}

	return len(s.Samples) / s.Channels
}

// Duration of the complete frames at SampleRate.
func (s *SampleSet) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}

	return time.Duration(s.Frames()) * time.Second / time.Duration(s.SampleRate)
}

// Channel copies out the samples of a single channel.
func (s *SampleSet) Channel(ch int) ([]float32, error) {
	if ch < 0 || ch >= s.Channels {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, ch, s.Channels)
	}

	frames := s.Frames()
	out := make([]float32, frames)
	for f := range frames {
		out[f] = s.Samples[f*s.Channels+ch]
	}

	return out, nil
}

// Deinterleave splits the samples into one slice per channel.
func (s *SampleSet) Deinterleave() [][]float32 {
	out := make([][]float32, max(s.Channels, 0))
	frames := s.Frames()
	for ch := range out {
		out[ch] = make([]float32, frames)
	}

	for f := range frames {
		base := f * s.Channels
		for ch := range out {
			out[ch][f] = s.Samples[base+ch]
		}
	}

	return out
}

// Mono returns a single channel copy, averaging all channels of each frame.
// A mono set is copied unchanged.
func (s *SampleSet) Mono() (*SampleSet, error) {
	mixer := NewMonoMixer(s.Source())
	defer mixer.Close()

	out := make([]float32, s.Frames())
	read := 0
	for read < len(out) {
		n, err := mixer.ReadSamples(out[read:])
		read += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return &SampleSet{
		Samples:    out[:read],
		SampleRate: s.SampleRate,
		Channels:   1,
		BitDepth:   s.BitDepth,
	}, nil
}

// Source streams the set through the Source interface.
func (s *SampleSet) Source() Source {
	return &setSource{set: s}
}

// setSource reads a SampleSet frame by frame.
type setSource struct {
	set *SampleSet
	pos int
}

func (s *setSource) SampleRate() int { return s.set.SampleRate }
func (s *setSource) Channels() int   { return s.set.Channels }
func (s *setSource) BufSize() int    { return len(s.set.Samples) }
func (s *setSource) Close() error    { return nil }

func (s *setSource) ReadSamples(dst []float32) (int, error) {
	channels := s.set.Channels
	if channels < 1 || len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	// only whole frames are handed out
	end := s.set.Frames() * channels
	if s.pos >= end {
		return 0, io.EOF
	}

	n := copy(dst, s.set.Samples[s.pos:end])
	s.pos += n

	if s.pos >= end {
		return n, io.EOF
	}

	return n, nil
}
