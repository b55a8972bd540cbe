// SPDX-License-Identifier: EPL-2.0

// Package mp3 walks the frame structure of MPEG audio streams.
//
// It locates frame sync points, decodes 4-byte frame headers, computes
// frame lengths and checks frame CRCs. It does not decode audio samples.
//
// # Walking a Stream
//
//	raw, _ := os.ReadFile("song.mp3")
//	for frame, err := range mp3.Frames(raw) {
//	    if err != nil {
//	        // *mp3.FrameError with the failing offset
//	        break
//	    }
//	    fmt.Println(frame.Offset, frame.Header, frame.Size)
//	}
//
// Scan collects the same walk into a Stream, which also reports the total
// sample count and duration.
//
// A leading ID3v2 tag is skipped by default. After a frame at offset i of
// n bytes, the next sync search starts at i+n. Each sync offset is visited
// once, so a walk always terminates.
//
// # Strict and Resync Walks
//
// By default the first sync candidate that fails to decode ends the walk
// with a *FrameError. WithResync(true) logs the candidate through the
// walker's slog.Logger and keeps scanning from the next byte, which is
// useful for files with junk between frames.
//
// # Frame Sizes
//
// Sizes include the header and use the bitrate in bits per second:
//   - Layer I: (12 * bitrate / sampleRate + padding) * 4
//   - Layer II: 144 * bitrate / sampleRate + padding
//   - Layer III: 144 * bitrate / sampleRate + padding for MPEG-1,
//     72 * bitrate / sampleRate + padding for MPEG-2 and 2.5
//
// Free format frames (bitrate index 0) have no computable size and fail
// with ErrInvalidFrameSize.
//
// # CRC Checking
//
// Frames with the protection bit clear carry a big-endian CRC after the
// header. Two coverages are available:
//   - CRCLegacy: CRC-16/CCITT-FALSE over the first header byte
//   - CRCStandard: CRC-16 poly 0x8005 over header bytes 2-3 and the
//     Layer III side information
//
// # Error Handling
//
//   - ErrIndexOutOfRange: a read past the end of the buffer
//   - ErrReservedVersion: version bits 01
//   - ErrUnsupportedLayer: layer bits 00
//   - ErrInvalidFrameSize: bad bitrate or sample rate, or a truncated frame
//   - ErrUnsupportedCRCMode: unknown CRCMode
package mp3
