// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audadapt/layout"
	"github.com/ik5/audadapt/sample"
)

// Numbers exposes a slice of native numbers N as scaled floats F, for
// example int16 PCM as float32 in [-1, 1).
type Numbers[F sample.Float, N sample.Number, L layout.Layout] struct {
	mutDefaults[F]

	buf      []N
	channels int
	frames   int
}

type (
	InterleavedNumbers[F sample.Float, N sample.Number] = Numbers[F, N, layout.Interleaved]
	SequentialNumbers[F sample.Float, N sample.Number]  = Numbers[F, N, layout.Sequential]
)

func NewNumbers[F sample.Float, N sample.Number, L layout.Layout](buf []N, channels, frames int) (*Numbers[F, N, L], error) {
	if err := checkLength(channels, frames, len(buf), 1); err != nil {
		return nil, err
	}
	n := &Numbers[F, N, L]{buf: buf, channels: channels, frames: frames}
	n.mutDefaults = newMutDefaults[F](n)
	return n, nil
}

func NewInterleavedNumbers[F sample.Float, N sample.Number](buf []N, channels, frames int) (*InterleavedNumbers[F, N], error) {
	return NewNumbers[F, N, layout.Interleaved](buf, channels, frames)
}

func NewSequentialNumbers[F sample.Float, N sample.Number](buf []N, channels, frames int) (*SequentialNumbers[F, N], error) {
	return NewNumbers[F, N, layout.Sequential](buf, channels, frames)
}

func (n *Numbers[F, N, L]) Channels() int { return n.channels }
func (n *Numbers[F, N, L]) Frames() int   { return n.frames }

func (n *Numbers[F, N, L]) ReadUnchecked(channel, frame int) F {
	var l L
	return sample.ToScaledFloat[F](n.buf[l.Index(channel, frame, n.channels, n.frames)])
}

func (n *Numbers[F, N, L]) WriteUnchecked(channel, frame int, value F) bool {
	var l L
	c := sample.FromScaledFloat[N](value)
	n.buf[l.Index(channel, frame, n.channels, n.frames)] = c.Value
	return c.Clipped
}
