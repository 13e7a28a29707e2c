// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audadapt/layout"

// Owned is a Slice that owns its storage. TakeData hands the storage back to
// the caller and leaves an empty buffer behind.
type Owned[T any, L layout.Layout] struct {
	*Slice[T, L]
}

type (
	InterleavedOwned[T any] = Owned[T, layout.Interleaved]
	SequentialOwned[T any]  = Owned[T, layout.Sequential]
)

// NewOwned allocates channels*frames samples set to value.
func NewOwned[T any, L layout.Layout](value T, channels, frames int) (*Owned[T, L], error) {
	n, err := storageSize(channels, frames, 1)
	if err != nil {
		return nil, err
	}
	buf := make([]T, n)
	fill(buf, value)
	return NewOwnedFrom[T, L](buf, channels, frames)
}

// NewOwnedFrom takes ownership of buf. The caller must not use buf afterwards.
func NewOwnedFrom[T any, L layout.Layout](buf []T, channels, frames int) (*Owned[T, L], error) {
	s, err := NewSlice[T, L](buf, channels, frames)
	if err != nil {
		return nil, err
	}
	return &Owned[T, L]{Slice: s}, nil
}

func NewInterleavedOwned[T any](value T, channels, frames int) (*InterleavedOwned[T], error) {
	return NewOwned[T, layout.Interleaved](value, channels, frames)
}

func NewSequentialOwned[T any](value T, channels, frames int) (*SequentialOwned[T], error) {
	return NewOwned[T, layout.Sequential](value, channels, frames)
}

func NewInterleavedOwnedFrom[T any](buf []T, channels, frames int) (*InterleavedOwned[T], error) {
	return NewOwnedFrom[T, layout.Interleaved](buf, channels, frames)
}

func NewSequentialOwnedFrom[T any](buf []T, channels, frames int) (*SequentialOwned[T], error) {
	return NewOwnedFrom[T, layout.Sequential](buf, channels, frames)
}

// TakeData returns the storage, including any tail beyond channels*frames.
// The buffer reports zero channels and zero frames afterwards.
func (o *Owned[T, L]) TakeData() []T {
	buf := o.buf
	o.buf, o.channels, o.frames = nil, 0, 0
	return buf
}
