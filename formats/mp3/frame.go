// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/exteread/crc16"
)

// crcSize is the length of the optional CRC following the header.
const crcSize = 2

// FrameSize returns the length in bytes of the frame described by h,
// header included.
func FrameSize(h Header) (int, error) {
	if h.Layer == LayerReserved {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedLayer, h.Layer)
	}

	if h.BitrateKbps <= 0 || h.SampleRateHz <= 0 {
		return 0, fmt.Errorf("%w: bitrate %d kbps, sample rate %d Hz",
			ErrInvalidFrameSize, h.BitrateKbps, h.SampleRateHz)
	}

	bitrate := h.BitrateKbps * 1000
	padding := 0
	if h.Padding {
		padding = 1
	}

	var size int
	switch {
	case h.Layer == LayerI:
		// 4 byte slots
		size = (12*bitrate/h.SampleRateHz + padding) * 4
	case h.Layer == LayerIII && h.Version != MPEG1:
		size = 72*bitrate/h.SampleRateHz + padding
	default:
		size = 144*bitrate/h.SampleRateHz + padding
	}

	if size <= HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidFrameSize, size)
	}

	return size, nil
}

// CRCMode selects the bytes a frame CRC is computed over.
type CRCMode int

const (
	// CRCLegacy runs CRC-16/CCITT-FALSE over the first header byte only.
	// Real encoders never produce a matching value; it exists for parity
	// with tools that report CRC status this way.
	CRCLegacy CRCMode = iota

	// CRCStandard runs the MPEG CRC-16 (poly 0x8005) over header bytes 2
	// and 3 followed by the Layer III side information.
	CRCStandard
)

func (m CRCMode) String() string {
	switch m {
	case CRCLegacy:
		return "legacy"
	case CRCStandard:
		return "standard"
	}

	return fmt.Sprintf("CRCMode(%d)", int(m))
}

// ParseCRCMode maps "legacy" and "standard" to their CRCMode.
func ParseCRCMode(s string) (CRCMode, error) {
	switch s {
	case "legacy":
		return CRCLegacy, nil
	case "standard":
		return CRCStandard, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCRCMode, s)
}

// CRCCheck validates the frame CRC at index in legacy mode.
func CRCCheck(h Header, buf []byte, index int) (bool, error) {
	return CRCCheckMode(CRCLegacy, h, buf, index)
}

// CRCCheckMode validates the CRC of the frame whose header starts at index.
// Frames without CRC protection always pass. The stored CRC is the
// big-endian value right after the header.
func CRCCheckMode(mode CRCMode, h Header, buf []byte, index int) (bool, error) {
	if mode != CRCLegacy && mode != CRCStandard {
		return false, fmt.Errorf("%w: %s", ErrUnsupportedCRCMode, mode)
	}

	if h.ProtectBit {
		return true, nil
	}

	covered := HeaderSize + crcSize
	if mode == CRCStandard {
		if h.Layer != LayerIII {
			return false, fmt.Errorf("%w: standard CRC over %s", ErrUnsupportedLayer, h.Layer)
		}
		covered += h.SideInfoSize()
	}

	if index < 0 || index+covered > len(buf) {
		return false, fmt.Errorf("%w: CRC region %d+%d, buffer has %d bytes",
			ErrIndexOutOfRange, index, covered, len(buf))
	}

	stored := binary.BigEndian.Uint16(buf[index+HeaderSize:])

	if mode == CRCLegacy {
		computed, err := crc16.CalcCCITTFalse(buf[index:], 1)
		if err != nil {
			return false, err
		}
		return computed == stored, nil
	}

	d := crc16.New(crc16.MPEGTable)
	_, _ = d.Write(buf[index+2 : index+HeaderSize])
	_, _ = d.Write(buf[index+HeaderSize+crcSize : index+covered])

	return d.Sum16() == stored, nil
}

// Frame is one step of a frame walk.
type Frame struct {
	// Offset of the sync byte.
	Offset   int
	Header   Header
	Size     int
	CRCValid bool
}

// End is the offset just past the frame.
func (f Frame) End() int { return f.Offset + f.Size }

// Bytes returns the frame's bytes within buf, or nil if buf is too short.
func (f Frame) Bytes(buf []byte) []byte {
	if f.Offset < 0 || f.Size <= 0 || f.End() > len(buf) {
		return nil
	}

	return buf[f.Offset:f.End():f.End()]
}

// SideInfo returns the Layer III side information of the frame, which
// follows the header and the CRC when present.
func (f Frame) SideInfo(buf []byte) ([]byte, error) {
	if f.Header.Layer != LayerIII {
		return nil, fmt.Errorf("%w: no side information in %s", ErrUnsupportedLayer, f.Header.Layer)
	}

	raw := f.Bytes(buf)
	if raw == nil {
		return nil, fmt.Errorf("%w: %d bytes at offset %d, buffer has %d bytes",
			ErrInvalidFrameSize, f.Size, f.Offset, len(buf))
	}

	start := HeaderSize
	if f.Header.HasCRC() {
		start += crcSize
	}

	end := start + f.Header.SideInfoSize()
	if end > len(raw) {
		return nil, fmt.Errorf("%w: side information ends at %d, frame is %d bytes",
			ErrInvalidFrameSize, end, len(raw))
	}

	return raw[start:end], nil
}

// VBRTag returns "Xing", "Info" or "VBRI" when the frame carries one of
// those encoder headers in place of audio, or "" otherwise.
func (f Frame) VBRTag(buf []byte) string {
	raw := f.Bytes(buf)
	if raw == nil {
		return ""
	}

	// Xing and Info sit right after the side information.
	if f.Header.Layer == LayerIII {
		at := HeaderSize + f.Header.SideInfoSize()
		if f.Header.HasCRC() {
			at += crcSize
		}
		if len(raw) >= at+4 {
			if tag := raw[at : at+4]; bytes.Equal(tag, []byte("Xing")) || bytes.Equal(tag, []byte("Info")) {
				return string(tag)
			}
		}
	}

	// VBRI is at a fixed 32 bytes past the header.
	if at := HeaderSize + 32; len(raw) >= at+4 && bytes.Equal(raw[at:at+4], []byte("VBRI")) {
		return "VBRI"
	}

	return ""
}
