// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"time"
)

// HeaderSize is the length of an MPEG audio frame header.
const HeaderSize = 4

// Version is the MPEG audio version. Values match the 2-bit header field.
type Version uint8

const (
	MPEG25 Version = iota
	VersionReserved
	MPEG2
	MPEG1
)

func (v Version) String() string {
	switch v {
	case MPEG1:
		return "MPEG-1"
	case MPEG2:
		return "MPEG-2"
	case MPEG25:
		return "MPEG-2.5"
	}

	return "reserved"
}

// Layer is the MPEG audio layer. Values match the 2-bit header field, so
// Layer I is 3 and Layer III is 1.
type Layer uint8

const (
	LayerReserved Layer = iota
	LayerIII
	LayerII
	LayerI
)

func (l Layer) String() string {
	switch l {
	case LayerI:
		return "Layer I"
	case LayerII:
		return "Layer II"
	case LayerIII:
		return "Layer III"
	}

	return "reserved"
}

type ChannelMode uint8

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

func (m ChannelMode) String() string {
	switch m {
	case Stereo:
		return "stereo"
	case JointStereo:
		return "joint stereo"
	case DualChannel:
		return "dual channel"
	}

	return "mono"
}

type Emphasis uint8

const (
	EmphasisNone Emphasis = iota
	Emphasis50_15
	EmphasisReserved
	EmphasisCCITTJ17
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisNone:
		return "none"
	case Emphasis50_15:
		return "50/15 ms"
	case EmphasisCCITTJ17:
		return "CCITT J.17"
	}

	return "reserved"
}

// Header is a decoded 4-byte MPEG audio frame header. Every field is a
// pure function of the header bytes.
type Header struct {
	Version Version
	Layer   Layer
	// ProtectBit set means the frame carries no CRC.
	ProtectBit   bool
	BitrateIndex int
	// BitrateKbps is 0 for free format and -1 for an invalid index or the
	// reserved layer.
	BitrateKbps     int
	SampleRateIndex int
	// SampleRateHz is -1 for the reserved index.
	SampleRateHz  int
	Padding       bool
	Private       bool
	ChannelMode   ChannelMode
	ModeExtension uint8
	Copyright     bool
	Original      bool
	Emphasis      Emphasis
}

// DecodeHeader parses the 4 header bytes starting at index. It does not
// check the sync bits; FindFrameSync is expected to have located them.
func DecodeHeader(buf []byte, index int) (Header, error) {
	if index < 0 || index+3 >= len(buf) {
		return Header{}, fmt.Errorf("%w: header at %d, buffer has %d bytes",
			ErrIndexOutOfRange, index, len(buf))
	}

	b1, b2, b3 := buf[index+1], buf[index+2], buf[index+3]

	h := Header{
		Version:         Version(b1 >> 3 & 0x3),
		Layer:           Layer(b1 >> 1 & 0x3),
		ProtectBit:      b1&0x1 == 1,
		BitrateIndex:    int(b2 >> 4 & 0xF),
		SampleRateIndex: int(b2 >> 2 & 0x3),
		Padding:         b2>>1&0x1 == 1,
		Private:         b2&0x1 == 1,
		ChannelMode:     ChannelMode(b3 >> 6 & 0x3),
		ModeExtension:   b3 >> 4 & 0x3,
		Copyright:       b3>>3&0x1 == 1,
		Original:        b3>>2&0x1 == 1,
		Emphasis:        Emphasis(b3 & 0x3),
	}

	if h.Version == VersionReserved {
		return Header{}, fmt.Errorf("%w: at offset %d", ErrReservedVersion, index)
	}

	h.BitrateKbps = -1
	if tab := bitrateTable(h.Version, h.Layer); tab != nil {
		h.BitrateKbps = tab[h.BitrateIndex]
	}

	h.SampleRateHz = sampleRateTable(h.Version)[h.SampleRateIndex]

	return h, nil
}

// HasCRC reports whether a 16-bit CRC follows the header.
func (h Header) HasCRC() bool { return !h.ProtectBit }

func (h Header) Channels() int {
	if h.ChannelMode == Mono {
		return 1
	}

	return 2
}

// SamplesPerFrame is the number of PCM samples per channel a frame
// decodes to.
func (h Header) SamplesPerFrame() int {
	switch h.Layer {
	case LayerI:
		return 384
	case LayerII:
		return 1152
	case LayerIII:
		if h.Version == MPEG1 {
			return 1152
		}
		return 576
	}

	return 0
}

// SideInfoSize is the length of the Layer III side information that
// follows the header and optional CRC. It is 0 for the other layers.
func (h Header) SideInfoSize() int {
	if h.Layer != LayerIII {
		return 0
	}

	switch {
	case h.Version == MPEG1 && h.ChannelMode == Mono:
		return 17
	case h.Version == MPEG1:
		return 32
	case h.ChannelMode == Mono:
		return 9
	}

	return 17
}

// Duration is the playing time of one frame.
func (h Header) Duration() time.Duration {
	if h.SampleRateHz <= 0 {
		return 0
	}

	return time.Duration(h.SamplesPerFrame()) * time.Second / time.Duration(h.SampleRateHz)
}

// IntensityStereo reports whether intensity stereo coding is on. Layers I
// and II use it for every joint stereo frame.
func (h Header) IntensityStereo() bool {
	if h.ChannelMode != JointStereo {
		return false
	}

	if h.Layer == LayerIII {
		return h.ModeExtension&0x1 != 0
	}

	return true
}

// MSStereo reports whether Layer III mid/side stereo coding is on.
func (h Header) MSStereo() bool {
	return h.ChannelMode == JointStereo && h.Layer == LayerIII && h.ModeExtension&0x2 != 0
}

func (h Header) String() string {
	bitrate := "free"
	if h.BitrateKbps > 0 {
		bitrate = fmt.Sprintf("%d kbps", h.BitrateKbps)
	} else if h.BitrateKbps < 0 {
		bitrate = "invalid bitrate"
	}

	return fmt.Sprintf("%s %s, %s, %d Hz, %s", h.Version, h.Layer, bitrate, h.SampleRateHz, h.ChannelMode)
}
