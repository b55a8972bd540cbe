// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"testing"

	"github.com/ik5/exteread/crc16"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	allErrors := map[string]error{
		"ErrUnsupportedLayer":   ErrUnsupportedLayer,
		"ErrReservedVersion":    ErrReservedVersion,
		"ErrIndexOutOfRange":    ErrIndexOutOfRange,
		"ErrInvalidFrameSize":   ErrInvalidFrameSize,
		"ErrUnsupportedCRCMode": ErrUnsupportedCRCMode,
	}

	messages := make(map[string]string)
	for name, err := range allErrors {
		if existing, found := messages[err.Error()]; found {
			t.Errorf("%s has same message as %s: %q", name, existing, err.Error())
		}
		messages[err.Error()] = name
	}
}

func TestErrIndexOutOfRange_SharedWithCRC(t *testing.T) {
	t.Parallel()

	_, err := crc16.CalcCCITTFalse([]byte{0x00}, 2)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("crc16 error = %v, want it to match mp3.ErrIndexOutOfRange", err)
	}
}
