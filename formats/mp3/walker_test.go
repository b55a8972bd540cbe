// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/ik5/exteread/internal/audiotest"
)

var (
	// MPEG-1 Layer III, 128 kbps, 44100 Hz, 417 bytes
	silentHeader = [4]byte{0xFF, 0xFB, 0x90, 0x00}
	// same with the padding bit, 418 bytes
	paddedHeader = [4]byte{0xFF, 0xFB, 0x92, 0x00}
)

// silentStream concatenates n zero-filled MPEG-1 Layer III frames.
func silentStream(n int) []byte {
	var buf []byte
	for range n {
		buf = append(buf, audiotest.Frame(silentHeader, 417)...)
	}

	return buf
}

func TestScan_SilentStream(t *testing.T) {
	t.Parallel()

	stream, err := Scan(silentStream(10))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(stream.Frames) != 10 {
		t.Fatalf("Scan() found %d frames, want 10", len(stream.Frames))
	}

	for i, f := range stream.Frames {
		if f.Offset != i*417 {
			t.Errorf("Frames[%d].Offset = %d, want %d", i, f.Offset, i*417)
		}
		if f.Size != 417 {
			t.Errorf("Frames[%d].Size = %d, want 417", i, f.Size)
		}
		if !f.CRCValid {
			t.Errorf("Frames[%d].CRCValid = false, want true for unprotected frames", i)
		}
	}

	if got := stream.SampleCount(); got != 10*1152 {
		t.Errorf("SampleCount() = %d, want %d", got, 10*1152)
	}

	if got := stream.SampleRate(); got != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got)
	}

	if got, want := stream.Duration(), 10*(1152*time.Second/44100); got != want {
		t.Errorf("Duration() = %v, want %v", got, want)
	}
}

func TestScan_SingleSyncTerminates(t *testing.T) {
	t.Parallel()

	buf := append([]byte{0x00, 0x00, 0x00}, audiotest.Frame(silentHeader, 417)...)

	stream, err := Scan(buf)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(stream.Frames) != 1 || stream.Frames[0].Offset != 3 {
		t.Errorf("Scan() = %+v, want exactly one frame at offset 3", stream.Frames)
	}
}

func TestScan_Empty(t *testing.T) {
	t.Parallel()

	for _, buf := range [][]byte{nil, {0x00}, make([]byte, 100)} {
		stream, err := Scan(buf)
		if err != nil {
			t.Errorf("Scan(%d bytes) error = %v", len(buf), err)
		}

		if len(stream.Frames) != 0 || stream.SampleRate() != 0 || stream.Duration() != 0 {
			t.Errorf("Scan(%d bytes) = %+v, want an empty stream", len(buf), stream)
		}
	}
}

func TestScan_MixedPadding(t *testing.T) {
	t.Parallel()

	var buf []byte
	var wantOffsets []int
	for i := range 6 {
		wantOffsets = append(wantOffsets, len(buf))
		if i%2 == 0 {
			buf = append(buf, audiotest.Frame(paddedHeader, 418)...)
		} else {
			buf = append(buf, audiotest.Frame(silentHeader, 417)...)
		}
	}

	stream, err := Scan(buf)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	var offsets []int
	for _, f := range stream.Frames {
		offsets = append(offsets, f.Offset)
	}

	if !slices.Equal(offsets, wantOffsets) {
		t.Errorf("offsets = %v, want %v", offsets, wantOffsets)
	}
}

func TestScan_SkipsID3v2(t *testing.T) {
	t.Parallel()

	tag := audiotest.ID3v2(64)
	buf := append(tag, silentStream(3)...)

	stream, err := Scan(buf)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if stream.ID3v2Size != len(tag) {
		t.Errorf("ID3v2Size = %d, want %d", stream.ID3v2Size, len(tag))
	}

	if len(stream.Frames) != 3 {
		t.Fatalf("Scan() found %d frames, want 3", len(stream.Frames))
	}

	if stream.Frames[0].Offset != len(tag) {
		t.Errorf("Frames[0].Offset = %d, want %d", stream.Frames[0].Offset, len(tag))
	}
}

func TestScan_ID3v2NotSkipped(t *testing.T) {
	t.Parallel()

	buf := append(audiotest.ID3v2(64), silentStream(3)...)

	_, err := Scan(buf, WithSkipID3(false))

	var frameErr *FrameError
	if !errors.As(err, &frameErr) {
		t.Fatalf("Scan() error = %v, want *FrameError", err)
	}

	// the tag body is 0xFF 0xF0 pairs, which decode as a reserved layer
	if frameErr.Offset != 10 || !errors.Is(err, ErrUnsupportedLayer) {
		t.Errorf("Scan() error = %v, want ErrUnsupportedLayer at offset 10", err)
	}
}

func TestScan_TruncatedLastFrame(t *testing.T) {
	t.Parallel()

	buf := silentStream(3)
	buf = buf[:len(buf)-100]

	stream, err := Scan(buf)
	if !errors.Is(err, ErrInvalidFrameSize) {
		t.Fatalf("Scan() error = %v, want ErrInvalidFrameSize", err)
	}

	var frameErr *FrameError
	if !errors.As(err, &frameErr) || frameErr.Offset != 2*417 {
		t.Errorf("Scan() error = %v, want a *FrameError at offset %d", err, 2*417)
	}

	if len(stream.Frames) != 2 {
		t.Errorf("Scan() kept %d frames, want 2", len(stream.Frames))
	}
}

func TestWalker_ErrorIsSticky(t *testing.T) {
	t.Parallel()

	buf := silentStream(1)
	buf = buf[:200]

	w := NewWalker(buf)

	_, first := w.Next()
	if !errors.Is(first, ErrInvalidFrameSize) {
		t.Fatalf("Next() error = %v, want ErrInvalidFrameSize", first)
	}

	_, second := w.Next()
	if second != first {
		t.Errorf("second Next() error = %v, want the same %v", second, first)
	}
}

func TestWalker_EOFRepeats(t *testing.T) {
	t.Parallel()

	w := NewWalker(silentStream(1))

	if _, err := w.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	for range 3 {
		if _, err := w.Next(); err != io.EOF {
			t.Errorf("Next() error = %v, want io.EOF", err)
		}
	}

	for range w.All() {
		t.Error("All() yielded after io.EOF")
	}
}

func TestWalker_ResyncPastGarbage(t *testing.T) {
	t.Parallel()

	// syncs, but the layer bits are reserved
	junk := []byte{0xFF, 0xF9, 0x00, 0x00, 0x00, 0x00}
	buf := audiotest.Frame(silentHeader, 417)
	buf = append(buf, junk...)
	buf = append(buf, silentStream(2)...)

	_, err := Scan(buf)
	if !errors.Is(err, ErrUnsupportedLayer) {
		t.Fatalf("strict Scan() error = %v, want ErrUnsupportedLayer", err)
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	stream, err := Scan(buf, WithResync(true), WithLogger(logger))
	if err != nil {
		t.Fatalf("resync Scan() error = %v", err)
	}

	var offsets []int
	for _, f := range stream.Frames {
		offsets = append(offsets, f.Offset)
	}

	want := []int{0, 417 + len(junk), 2*417 + len(junk)}
	if !slices.Equal(offsets, want) {
		t.Errorf("resync offsets = %v, want %v", offsets, want)
	}

	if !strings.Contains(logs.String(), "skipping sync candidate") || !strings.Contains(logs.String(), "offset=417") {
		t.Errorf("logs = %q, want the skipped candidate at 417", logs.String())
	}
}

func TestWalker_StandardCRC(t *testing.T) {
	t.Parallel()

	good := protectedFrame(t)
	bad := protectedFrame(t)
	bad[10] ^= 0xFF

	buf := append(append(good, bad...), silentStream(1)...)

	stream, err := Scan(buf, WithCRCMode(CRCStandard))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	var valid []bool
	for _, f := range stream.Frames {
		valid = append(valid, f.CRCValid)
	}

	if !slices.Equal(valid, []bool{true, false, true}) {
		t.Errorf("CRCValid = %v, want [true false true]", valid)
	}
}

func TestWalker_StandardCRCOtherLayers(t *testing.T) {
	t.Parallel()

	// protected Layer II frames are walked but their CRC is not checked
	buf := audiotest.Frame([4]byte{0xFF, 0xFC, 0xA0, 0x00}, 626)

	stream, err := Scan(buf, WithCRCMode(CRCStandard))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(stream.Frames) != 1 || stream.Frames[0].CRCValid {
		t.Errorf("Scan() = %+v, want one frame with CRCValid false", stream.Frames)
	}
}

func TestWalker_BadCRCMode(t *testing.T) {
	t.Parallel()

	_, err := Scan(silentStream(1), WithCRCMode(CRCMode(9)))
	if !errors.Is(err, ErrUnsupportedCRCMode) {
		t.Errorf("Scan() error = %v, want ErrUnsupportedCRCMode", err)
	}
}

func TestFrames_Restartable(t *testing.T) {
	t.Parallel()

	seq := Frames(silentStream(4))

	for pass := range 2 {
		count := 0
		for _, err := range seq {
			if err != nil {
				t.Fatalf("pass %d: error = %v", pass, err)
			}
			count++
		}

		if count != 4 {
			t.Errorf("pass %d: %d frames, want 4", pass, count)
		}
	}
}

func TestFrames_EarlyBreak(t *testing.T) {
	t.Parallel()

	count := 0
	for range Frames(silentStream(10)) {
		count++
		if count == 3 {
			break
		}
	}

	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestFrameError(t *testing.T) {
	t.Parallel()

	err := &FrameError{Offset: 42, Err: ErrReservedVersion}

	if !errors.Is(err, ErrReservedVersion) {
		t.Error("errors.Is(FrameError, ErrReservedVersion) = false, want true")
	}

	if got := err.Error(); got != "frame at offset 42: reserved MPEG version" {
		t.Errorf("Error() = %q", got)
	}
}

func BenchmarkScan(b *testing.B) {
	buf := silentStream(1000)

	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = Scan(buf)
	}
}
