// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"slices"

	"github.com/ik5/exteread/utils"
)

// lowPassAlpha is the coefficient of the one-pole filter applied before
// downsampling: y[n] = alpha*x[n] + (1-alpha)*y[n-1].
const lowPassAlpha = 0.5

// Resample returns a copy of the set at rate, interpolating every channel
// with a Catmull-Rom spline. Downsampling runs the source through a one-pole
// low-pass filter first. The result holds frames*rate/SampleRate frames,
// rounded down. Resampling to the current rate returns a plain copy.
func (s *SampleSet) Resample(rate int) (*SampleSet, error) {
	if rate <= 0 || s.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz to %d Hz", ErrInvalidSampleRate, s.SampleRate, rate)
	}

	if s.Channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidChannel, s.Channels)
	}

	channels := s.Channels
	frames := s.Frames()
	src := s.Samples[:frames*channels]

	out := &SampleSet{
		SampleRate: rate,
		Channels:   channels,
		BitDepth:   s.BitDepth,
	}

	if rate == s.SampleRate {
		out.Samples = slices.Clone(src)
		return out, nil
	}

	ratio := float64(s.SampleRate) / float64(rate)
	if ratio > 1 {
		src = lowPass(src, channels)
	}

	// edge frames repeat past either end
	at := func(frame, ch int) float32 {
		frame = min(max(frame, 0), frames-1)
		return src[frame*channels+ch]
	}

	n := int(int64(frames) * int64(rate) / int64(s.SampleRate))
	out.Samples = make([]float32, n*channels)

	for j := range n {
		pos := float64(j) * ratio
		i := int(pos)
		x := float32(pos - float64(i))

		for ch := range channels {
			out.Samples[j*channels+ch] = utils.CubicInterpolate(
				at(i-1, ch), at(i, ch), at(i+1, ch), at(i+2, ch), x)
		}
	}

	return out, nil
}

// lowPass filters interleaved samples per channel. The filter state starts
// at the first frame so a constant signal passes unchanged.
func lowPass(samples []float32, channels int) []float32 {
	out := make([]float32, len(samples))
	if len(samples) < channels {
		return out
	}

	state := slices.Clone(samples[:channels])
	for i, v := range samples {
		ch := i % channels
		state[ch] = lowPassAlpha*v + (1-lowPassAlpha)*state[ch]
		out[i] = state[ch]
	}

	return out
}
