// SPDX-License-Identifier: EPL-2.0

package mp3

const (
	id3v2HeaderSize = 10
	id3v2FlagFooter = 0x10
)

// ID3v2Size returns the full length of an ID3v2 tag at the start of buf,
// header and footer included. ok is false when buf does not start with a
// well formed tag header.
func ID3v2Size(buf []byte) (size int, ok bool) {
	if len(buf) < id3v2HeaderSize || string(buf[:3]) != "ID3" {
		return 0, false
	}

	// version bytes are never 0xFF
	if buf[3] == 0xFF || buf[4] == 0xFF {
		return 0, false
	}

	sizeBytes := buf[6:10]
	for _, b := range sizeBytes {
		if b&0x80 != 0 {
			return 0, false
		}
	}

	size = id3v2HeaderSize + syncSafe(sizeBytes)
	if buf[5]&id3v2FlagFooter != 0 {
		size += id3v2HeaderSize
	}

	return size, true
}

// syncSafe decodes a 28-bit integer stored 7 bits per byte.
func syncSafe(b []byte) int {
	return int(b[0]&0x7F)<<21 |
		int(b[1]&0x7F)<<14 |
		int(b[2]&0x7F)<<7 |
		int(b[3]&0x7F)
}
