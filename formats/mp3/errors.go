// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"

	"github.com/ik5/exteread/crc16"
)

var (
	// ErrUnsupportedLayer indicates the reserved layer, or a layer the
	// requested operation does not handle
	ErrUnsupportedLayer = errors.New("unsupported MPEG audio layer")

	// ErrReservedVersion indicates the reserved version bits 01
	ErrReservedVersion = errors.New("reserved MPEG version")

	// ErrIndexOutOfRange indicates a read past the end of the buffer
	ErrIndexOutOfRange = crc16.ErrIndexOutOfRange

	// ErrInvalidFrameSize indicates a non-positive frame size or a frame
	// reaching past the end of the buffer
	ErrInvalidFrameSize = errors.New("invalid MPEG frame size")

	// ErrUnsupportedCRCMode indicates an unknown CRCMode value
	ErrUnsupportedCRCMode = errors.New("unsupported CRC mode")
)

// FrameError reports the sync offset at which walking a stream failed.
type FrameError struct {
	Offset int
	Err    error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame at offset %d: %v", e.Offset, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }
