// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile indicates the headers could not be read as Ogg Vorbis
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis stream")

	// ErrInvalidChannelCount indicates a stream declaring no channels
	ErrInvalidChannelCount = errors.New("invalid vorbis channel count")
)
