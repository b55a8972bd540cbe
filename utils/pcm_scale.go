// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale returns the divisor that maps a signed integer sample of
// bitDepth bits into [-1, 1]. ok is false for depths other than 8, 16, 24
// and 32.
func FullScale(bitDepth int) (scale float64, ok bool) {
	switch bitDepth {
	case 8:
		return 128.0, true
	case 16:
		return 32768.0, true
	case 24:
		return 8388608.0, true
	case 32:
		return 2147483648.0, true
	}

	return 0, false
}

// FloatToPCM quantizes x to a signed integer sample of bitDepth bits.
// Values outside [-1, 1] are clamped. Unsupported depths return 0.
func FloatToPCM(x float32, bitDepth int) int {
	scale, ok := FullScale(bitDepth)
	if !ok {
		return 0
	}

	v := math.Round(float64(x) * scale)
	// positive full scale is one step short of scale
	if v > scale-1 {
		v = scale - 1
	} else if v < -scale {
		v = -scale
	}

	return int(v)
}
