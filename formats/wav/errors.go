// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/exteread/crc16"
)

var (
	// ErrHeaderTooShort indicates a buffer smaller than the 44 byte canonical header
	ErrHeaderTooShort = errors.New("WAV header too short")

	// ErrDataChunkNotFound indicates no "data" tag was found
	ErrDataChunkNotFound = errors.New("WAV data chunk not found")

	// ErrUnsupportedBitDepth indicates a depth other than 8, 16, 24 or 32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrInvalidChannelCount indicates a channel count below one
	ErrInvalidChannelCount = errors.New("invalid WAV channel count")

	// ErrIndexOutOfRange indicates sample data reaching past the buffer end.
	// It is the same value as crc16.ErrIndexOutOfRange and mp3.ErrIndexOutOfRange.
	ErrIndexOutOfRange = crc16.ErrIndexOutOfRange
)
