// SPDX-License-Identifier: EPL-2.0

package mp3

// Bitrates in kbps by bitrate index. Index 0 is free format, 15 is invalid.
var (
	bitratesV1L1 = [16]int{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, -1}
	bitratesV1L2 = [16]int{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, -1}
	bitratesV1L3 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, -1}
	bitratesV2L1 = [16]int{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, -1}

	// shared by MPEG-2 and MPEG-2.5 layers II and III
	bitratesV2L23 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1}
)

// Sample rates in Hz by sample rate index. Index 3 is reserved.
var (
	sampleRatesV1  = [4]int{44100, 48000, 32000, -1}
	sampleRatesV2  = [4]int{22050, 24000, 16000, -1}
	sampleRatesV25 = [4]int{11025, 12000, 8000, -1}
)

// bitrateTable returns the bitrate column for v and l, or nil for the
// reserved version or layer.
func bitrateTable(v Version, l Layer) *[16]int {
	switch v {
	case MPEG1:
		switch l {
		case LayerI:
			return &bitratesV1L1
		case LayerII:
			return &bitratesV1L2
		case LayerIII:
			return &bitratesV1L3
		}
	case MPEG2, MPEG25:
		switch l {
		case LayerI:
			return &bitratesV2L1
		case LayerII, LayerIII:
			return &bitratesV2L23
		}
	}

	return nil
}

func sampleRateTable(v Version) *[4]int {
	switch v {
	case MPEG1:
		return &sampleRatesV1
	case MPEG2:
		return &sampleRatesV2
	case MPEG25:
		return &sampleRatesV25
	}

	return nil
}
