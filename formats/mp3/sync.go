// SPDX-License-Identifier: EPL-2.0

package mp3

import "bytes"

// FindFrameSync returns the first index after start where buf holds 0xFF
// followed by a byte with its top 4 bits set. Pass -1 to scan from the
// beginning. ok is false when no sync pattern remains.
func FindFrameSync(buf []byte, start int) (index int, ok bool) {
	if start >= len(buf)-1 {
		return -1, false
	}

	i := max(start+1, 0)

	for i < len(buf)-1 {
		n := bytes.IndexByte(buf[i:len(buf)-1], 0xFF)
		if n < 0 {
			break
		}

		i += n
		if buf[i+1]&0xF0 == 0xF0 {
			return i, true
		}
		i++
	}

	return -1, false
}
