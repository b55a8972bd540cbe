// SPDX-License-Identifier: EPL-2.0

package crc16

import "errors"

var (
	// ErrIndexOutOfRange indicates a length that reaches past the input.
	ErrIndexOutOfRange = errors.New("index out of range")
)
