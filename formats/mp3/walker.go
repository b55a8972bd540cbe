// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"time"
)

// Option configures a Walker.
type Option func(*Walker)

// WithLogger sets the logger used for skipped sync candidates and frames.
// Records are emitted at debug level. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.log = logger
		}
	}
}

// WithResync makes the walker skip sync candidates that do not decode
// instead of stopping with an error.
func WithResync(resync bool) Option {
	return func(w *Walker) { w.resync = resync }
}

// WithCRCMode selects how protected frames are checked. The default is
// CRCLegacy.
func WithCRCMode(mode CRCMode) Option {
	return func(w *Walker) { w.crcMode = mode }
}

// WithSkipID3 controls whether an ID3v2 tag at the start of the buffer is
// jumped over. It is on by default.
func WithSkipID3(skip bool) Option {
	return func(w *Walker) { w.skipID3 = skip }
}

// Walker steps through the frames of an MPEG audio stream held in memory.
// Every sync offset is visited at most once, so a walk always ends.
//
// A Walker is not safe for concurrent use.
type Walker struct {
	buf     []byte
	log     *slog.Logger
	resync  bool
	crcMode CRCMode
	skipID3 bool

	id3Size int
	// cursor is the offset the next sync search starts after.
	cursor int
	seen   map[int]struct{}
	err    error
}

func NewWalker(buf []byte, opts ...Option) *Walker {
	w := &Walker{
		buf:     buf,
		log:     slog.New(slog.DiscardHandler),
		skipID3: true,
		cursor:  -1,
		seen:    make(map[int]struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.skipID3 {
		if size, ok := ID3v2Size(buf); ok {
			w.id3Size = min(size, len(buf))
			w.cursor = w.id3Size - 1
			w.log.Debug("skipping ID3v2 tag", "size", size)
		}
	}

	return w
}

// ID3v2Size is the length of the leading ID3v2 tag that was skipped, or 0.
func (w *Walker) ID3v2Size() int { return w.id3Size }

// Next returns the next frame. It returns io.EOF once no further sync
// pattern exists or a sync offset repeats. Any other error is a
// *FrameError, and the walker keeps returning it.
func (w *Walker) Next() (Frame, error) {
	if w.err != nil {
		return Frame{}, w.err
	}

	for {
		index, ok := FindFrameSync(w.buf, w.cursor)
		if !ok {
			w.err = io.EOF
			return Frame{}, w.err
		}

		if _, dup := w.seen[index]; dup {
			w.log.Debug("sync offset repeated", "offset", index)
			w.err = io.EOF
			return Frame{}, w.err
		}
		w.seen[index] = struct{}{}

		frame, err := w.frameAt(index)
		if err != nil {
			if w.resync {
				w.log.Debug("skipping sync candidate", "offset", index, "error", err)
				w.cursor = index
				continue
			}

			w.err = &FrameError{Offset: index, Err: err}
			return Frame{}, w.err
		}

		w.cursor = frame.End() - 1
		w.log.Debug("frame",
			"offset", frame.Offset,
			"size", frame.Size,
			"header", frame.Header.String(),
			"crc_valid", frame.CRCValid,
		)

		return frame, nil
	}
}

func (w *Walker) frameAt(index int) (Frame, error) {
	h, err := DecodeHeader(w.buf, index)
	if err != nil {
		return Frame{}, err
	}

	size, err := FrameSize(h)
	if err != nil {
		return Frame{}, err
	}

	if index+size > len(w.buf) {
		return Frame{}, fmt.Errorf("%w: %d bytes at offset %d, buffer has %d bytes",
			ErrInvalidFrameSize, size, index, len(w.buf))
	}

	valid, err := CRCCheckMode(w.crcMode, h, w.buf, index)
	if errors.Is(err, ErrUnsupportedLayer) {
		// standard coverage is only defined for Layer III here
		w.log.Debug("CRC not checked", "offset", index, "error", err)
		err = nil
	}
	if err != nil {
		return Frame{}, err
	}

	return Frame{Offset: index, Header: h, Size: size, CRCValid: valid}, nil
}

// All yields every remaining frame. A walk error is yielded once as the
// last pair; io.EOF ends the sequence silently.
func (w *Walker) All() iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		for {
			frame, err := w.Next()
			if err == io.EOF {
				return
			}

			if !yield(frame, err) || err != nil {
				return
			}
		}
	}
}

// Frames walks buf from the start each time the sequence is ranged over.
func Frames(buf []byte, opts ...Option) iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		NewWalker(buf, opts...).All()(yield)
	}
}

// Stream is the result of walking a whole buffer.
type Stream struct {
	ID3v2Size int
	Frames    []Frame
}

// Scan walks buf to the end. On error the frames found so far are
// returned along with it.
func Scan(buf []byte, opts ...Option) (*Stream, error) {
	w := NewWalker(buf, opts...)
	s := &Stream{ID3v2Size: w.ID3v2Size()}

	for frame, err := range w.All() {
		if err != nil {
			return s, err
		}
		s.Frames = append(s.Frames, frame)
	}

	return s, nil
}

// SampleRate is the sample rate of the first frame, or 0 for an empty
// stream.
func (s *Stream) SampleRate() int {
	if len(s.Frames) == 0 {
		return 0
	}

	return s.Frames[0].Header.SampleRateHz
}

// SampleCount is the number of PCM samples per channel the stream
// decodes to.
func (s *Stream) SampleCount() int {
	total := 0
	for _, f := range s.Frames {
		total += f.Header.SamplesPerFrame()
	}

	return total
}

// Duration sums the playing time of every frame.
func (s *Stream) Duration() time.Duration {
	var total time.Duration
	for _, f := range s.Frames {
		total += f.Header.Duration()
	}

	return total
}
