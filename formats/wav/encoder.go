// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/exteread/audio"
	"github.com/ik5/exteread/utils"
)

// pcmFormat is the WAVE_FORMAT_PCM format tag.
const pcmFormat = 1

// Encode writes set as a canonical linear PCM WAV file of bitDepth bits.
// Samples outside [-1, 1] are clamped. w must be seekable because the chunk
// sizes are patched once all samples are written.
//
// An empty set produces a 44 byte file that Decode does not accept.
func Encode(w io.WriteSeeker, set *audio.SampleSet, bitDepth int) error {
	if _, ok := utils.FullScale(bitDepth); !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if set.Channels < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChannelCount, set.Channels)
	}

	data := make([]int, set.Frames()*set.Channels)
	for i := range data {
		data[i] = utils.FloatToPCM(set.Samples[i], bitDepth)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: set.Channels,
			SampleRate:  set.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(w, set.SampleRate, bitDepth, set.Channels, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
