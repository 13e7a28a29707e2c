// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrBufferTooShort is wrapped by every SizeError.
	ErrBufferTooShort = errors.New("buffer is too short")

	// ErrNegativeGeometry is returned when channels or frames is negative.
	ErrNegativeGeometry = errors.New("channels and frames must not be negative")

	// ErrGeometryOverflow is returned when channels*frames samples cannot be
	// addressed with an int.
	ErrGeometryOverflow = errors.New("channels times frames overflows int")

	// ErrUnknownFormat is returned by Registry.Decode for unregistered formats.
	ErrUnknownFormat = errors.New("no decoder registered for format")
)

// SizeErrorKind tells which dimension of a buffer is too short.
type SizeErrorKind int

const (
	// SizeTotal is a flat buffer shorter than channels*frames samples.
	SizeTotal SizeErrorKind = iota
	// SizeChannel is a per-channel vector shorter than the frame count,
	// or an outer frame list shorter than the frame count.
	SizeChannel
	// SizeFrame is a per-frame vector shorter than the channel count,
	// or an outer channel list shorter than the channel count.
	SizeFrame
)

// SizeError is returned by wrapper constructors when the storage cannot hold
// the requested geometry.
type SizeError struct {
	Kind SizeErrorKind
	// Index is the channel or frame that is too short. Unused for SizeTotal.
	Index    int
	Actual   int
	Required int
}

func (e *SizeError) Error() string {
	switch e.Kind {
	case SizeChannel:
		return fmt.Sprintf("Buffer for channel %d is too short, got: %d, required: %d", e.Index, e.Actual, e.Required)
	case SizeFrame:
		return fmt.Sprintf("Buffer for frame %d is too short, got: %d, required: %d", e.Index, e.Actual, e.Required)
	default:
		return fmt.Sprintf("Buffer is too short, got: %d, required: %d", e.Actual, e.Required)
	}
}

func (e *SizeError) Unwrap() error { return ErrBufferTooShort }

// checkLength validates a flat buffer of length elements holding
// channels*frames samples of width elements each.
func checkLength(channels, frames, length, width int) error {
	required, err := storageSize(channels, frames, width)
	if err != nil {
		return err
	}
	if length < required {
		return &SizeError{Kind: SizeTotal, Actual: length, Required: required}
	}
	return nil
}

// storageSize returns channels*frames*width, or an error when the geometry
// is negative or the product does not fit an int.
func storageSize(channels, frames, width int) (int, error) {
	if channels < 0 || frames < 0 {
		return 0, ErrNegativeGeometry
	}
	hi, n := bits.Mul64(uint64(channels), uint64(frames))
	if hi == 0 {
		hi, n = bits.Mul64(n, uint64(width))
	}
	if hi != 0 || n > math.MaxInt {
		return 0, ErrGeometryOverflow
	}
	return int(n), nil
}
