// SPDX-License-Identifier: EPL-2.0

package crc16

import (
	"errors"
	"testing"
)

func TestCalcCCITTFalse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   []byte
		length int
		want   uint16
	}{
		{
			name:   "empty input returns preset",
			data:   []byte{},
			length: 0,
			want:   0xFFFF,
		},
		{
			name:   "single zero byte",
			data:   []byte{0x00, 0x00},
			length: 1,
			want:   0xE1F0,
		},
		{
			name:   "single 0xFF byte",
			data:   []byte{0xFF},
			length: 1,
			want:   0xFF00,
		},
		{
			name:   "check value",
			data:   []byte("123456789"),
			length: 9,
			want:   0x29B1,
		},
		{
			name:   "prefix only",
			data:   []byte("123456789XYZ"),
			length: 9,
			want:   0x29B1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CalcCCITTFalse(tt.data, tt.length)
			if err != nil {
				t.Fatalf("CalcCCITTFalse() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("CalcCCITTFalse() = 0x%04X, want 0x%04X", got, tt.want)
			}
		})
	}
}

func TestCalcCCITTFalse_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, length := range []int{-1, 3, 100} {
		_, err := CalcCCITTFalse([]byte{1, 2}, length)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("CalcCCITTFalse(len=%d) error = %v, want ErrIndexOutOfRange", length, err)
		}
	}
}

func TestMakeTable_MatchesCCITTFalseTable(t *testing.T) {
	t.Parallel()

	got := MakeTable(0x1021)
	for i := range got {
		if got[i] != CCITTFalseTable[i] {
			t.Fatalf("MakeTable(0x1021)[%d] = 0x%04X, want 0x%04X", i, got[i], CCITTFalseTable[i])
		}
	}
}

func TestMPEGTable_CheckValue(t *testing.T) {
	t.Parallel()

	// CRC-16/CMS: poly 0x8005, init 0xFFFF, no reflection
	got, err := Checksum([]byte("123456789"), 9, MPEGTable)
	if err != nil {
		t.Fatalf("Checksum() error = %v", err)
	}

	if got != 0xAEE7 {
		t.Errorf("Checksum() = 0x%04X, want 0xAEE7", got)
	}
}

func TestDigest_MatchesOneShot(t *testing.T) {
	t.Parallel()

	data := []byte("the quick brown fox jumps over the lazy dog")
	want, _ := CalcCCITTFalse(data, len(data))

	h := New(CCITTFalseTable)
	h.Write(data[:10])
	h.Write(data[10:])

	if h.Sum16() != want {
		t.Errorf("Sum16() = 0x%04X, want 0x%04X", h.Sum16(), want)
	}

	sum := h.Sum(nil)
	if len(sum) != Size {
		t.Fatalf("len(Sum()) = %d, want %d", len(sum), Size)
	}
	if uint16(sum[0])<<8|uint16(sum[1]) != want {
		t.Errorf("Sum() = %x, want big-endian 0x%04X", sum, want)
	}

	h.Reset()
	if h.Sum16() != InitialValue {
		t.Errorf("Sum16() after Reset = 0x%04X, want 0x%04X", h.Sum16(), InitialValue)
	}
}

func TestDigest_HashInterface(t *testing.T) {
	t.Parallel()

	h := New(MPEGTable)
	if h.Size() != 2 {
		t.Errorf("Size() = %d, want 2", h.Size())
	}
	if h.BlockSize() != 1 {
		t.Errorf("BlockSize() = %d, want 1", h.BlockSize())
	}
}

func BenchmarkCalcCCITTFalse(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = CalcCCITTFalse(data, len(data))
	}
}

func TestUpdate_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	data := []byte("123456789")
	allocs := testing.AllocsPerRun(1000, func() {
		_ = Update(InitialValue, CCITTFalseTable, data)
	})

	if allocs > 0 {
		t.Errorf("Update allocated %v times, want 0", allocs)
	}
}
