// SPDX-License-Identifier: EPL-2.0

package exteread

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/exteread/audio"
	"github.com/ik5/exteread/formats/aiff"
	"github.com/ik5/exteread/formats/mp3"
	"github.com/ik5/exteread/formats/vorbis"
	"github.com/ik5/exteread/formats/wav"
)

// ErrUnsupportedFormat is returned by Load for extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Clip is a decoded PCM file together with its display name.
type Clip struct {
	// Name is the base name of the file the clip was read from.
	Name string
	*audio.SampleSet
}

// DecodeWAV decodes a complete WAV file held in buf.
func DecodeWAV(buf []byte) (*audio.SampleSet, error) {
	return wav.Decode(buf)
}

// WalkMP3 walks every MPEG audio frame in buf.
func WalkMP3(buf []byte, opts ...mp3.Option) (*mp3.Stream, error) {
	return mp3.Scan(buf, opts...)
}

// WAVFromPath reads and decodes the WAV file at path.
func WAVFromPath(path string) (*Clip, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	set, err := wav.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &Clip{Name: filepath.Base(path), SampleSet: set}, nil
}

// MP3FromPath reads the file at path and walks its frames. On a walk error
// the frames found before it are returned along with the error.
func MP3FromPath(path string, opts ...mp3.Option) (*mp3.Stream, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	stream, err := mp3.Scan(buf, opts...)
	if err != nil {
		return stream, fmt.Errorf("walking %s: %w", path, err)
	}

	return stream, nil
}

// NewRegistry returns a registry holding every PCM decoder, keyed by file
// extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

var defaultRegistry = NewRegistry()

// Load decodes the PCM file at path, choosing the decoder by extension.
func Load(path string) (*Clip, error) {
	return LoadWith(defaultRegistry, path)
}

// LoadWith is Load with a caller supplied registry.
func LoadWith(reg *audio.Registry, path string) (*Clip, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	set, err := dec.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &Clip{Name: filepath.Base(path), SampleSet: set}, nil
}
