// SPDX-License-Identifier: EPL-2.0

// Package crc16 implements table driven, non-reflected 16-bit cyclic
// redundancy checks.
//
// Two tables are provided:
//   - CCITTFalseTable: polynomial 0x1021, the CRC-16/CCITT-FALSE variant
//   - MPEGTable: polynomial 0x8005, used by MPEG audio frame protection
//
// Both are used with the InitialValue preset of 0xFFFF and no final XOR.
//
// # One-shot Checksums
//
//	crc, err := crc16.CalcCCITTFalse(data, len(data))
//
// The length argument selects a prefix of data. Asking for more bytes than
// data holds returns ErrIndexOutOfRange instead of truncating.
//
// # Streaming
//
// New returns a hash.Hash, so the checksum can be accumulated over several
// non-contiguous regions:
//
//	h := crc16.New(crc16.MPEGTable)
//	h.Write(header[2:4])
//	h.Write(sideInfo)
//	crc := h.Sum16()
package crc16
