// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"iter"

	"github.com/ik5/audadapt/layout"
	"github.com/ik5/audadapt/utils"
)

// Nested wraps a slice of vectors. With layout.Sequential the outer slice is
// indexed by channel and each vector holds that channel's frames. With
// layout.Interleaved the outer slice is indexed by frame and each vector holds
// that frame's channels.
type Nested[T any, L layout.Layout] struct {
	mutDefaults[T]

	buf      [][]T
	channels int
	frames   int
}

type (
	InterleavedNested[T any] = Nested[T, layout.Interleaved]
	SequentialNested[T any]  = Nested[T, layout.Sequential]
)

// NewNested validates that buf holds enough vectors, each long enough.
func NewNested[T any, L layout.Layout](buf [][]T, channels, frames int) (*Nested[T, L], error) {
	if channels < 0 || frames < 0 {
		return nil, ErrNegativeGeometry
	}

	var l L
	outer, inner := channels, frames
	outerKind, innerKind := SizeFrame, SizeChannel
	if l.FrameContiguous() {
		outer, inner = frames, channels
		outerKind, innerKind = SizeChannel, SizeFrame
	}

	if len(buf) < outer {
		return nil, &SizeError{Kind: outerKind, Index: 0, Actual: len(buf), Required: outer}
	}
	for i, v := range buf[:outer] {
		if len(v) < inner {
			return nil, &SizeError{Kind: innerKind, Index: i, Actual: len(v), Required: inner}
		}
	}

	n := &Nested[T, L]{buf: buf, channels: channels, frames: frames}
	n.mutDefaults = newMutDefaults[T](n)
	return n, nil
}

// NewInterleavedNested wraps one vector per frame.
func NewInterleavedNested[T any](buf [][]T, channels, frames int) (*InterleavedNested[T], error) {
	return NewNested[T, layout.Interleaved](buf, channels, frames)
}

// NewSequentialNested wraps one vector per channel.
func NewSequentialNested[T any](buf [][]T, channels, frames int) (*SequentialNested[T], error) {
	return NewNested[T, layout.Sequential](buf, channels, frames)
}

func (n *Nested[T, L]) Channels() int { return n.channels }
func (n *Nested[T, L]) Frames() int   { return n.frames }

func (n *Nested[T, L]) GetUnchecked(channel, frame int) *T {
	var l L
	if l.FrameContiguous() {
		return &n.buf[frame][channel]
	}
	return &n.buf[channel][frame]
}

func (n *Nested[T, L]) Get(channel, frame int) *T {
	if !inRange(channel, n.channels) || !inRange(frame, n.frames) {
		return nil
	}
	return n.GetUnchecked(channel, frame)
}

func (n *Nested[T, L]) ReadUnchecked(channel, frame int) T {
	return *n.GetUnchecked(channel, frame)
}

func (n *Nested[T, L]) WriteUnchecked(channel, frame int, value T) bool {
	*n.GetUnchecked(channel, frame) = value
	return false
}

// vector returns the inner vector for outer index i trimmed to the
// accessible length.
func (n *Nested[T, L]) vector(i int) []T {
	var l L
	if l.FrameContiguous() {
		return n.buf[i][:n.channels]
	}
	return n.buf[i][:n.frames]
}

func (n *Nested[T, L]) WriteFromChannelToSlice(channel, skip int, dst []T) int {
	var l L
	if l.FrameContiguous() || !inRange(channel, n.channels) || !inRange(skip, n.frames) {
		return n.mutDefaults.WriteFromChannelToSlice(channel, skip, dst)
	}
	return copy(dst, n.vector(channel)[skip:])
}

func (n *Nested[T, L]) WriteFromFrameToSlice(frame, skip int, dst []T) int {
	var l L
	if !l.FrameContiguous() || !inRange(frame, n.frames) || !inRange(skip, n.channels) {
		return n.mutDefaults.WriteFromFrameToSlice(frame, skip, dst)
	}
	return copy(dst, n.vector(frame)[skip:])
}

func (n *Nested[T, L]) WriteFromSliceToChannel(channel, skip int, src []T) (int, int) {
	var l L
	if l.FrameContiguous() || !inRange(channel, n.channels) || !inRange(skip, n.frames) {
		return n.mutDefaults.WriteFromSliceToChannel(channel, skip, src)
	}
	return copy(n.vector(channel)[skip:], src), 0
}

func (n *Nested[T, L]) WriteFromSliceToFrame(frame, skip int, src []T) (int, int) {
	var l L
	if !l.FrameContiguous() || !inRange(frame, n.frames) || !inRange(skip, n.channels) {
		return n.mutDefaults.WriteFromSliceToFrame(frame, skip, src)
	}
	return copy(n.vector(frame)[skip:], src), 0
}

func (n *Nested[T, L]) CopyFramesWithin(src, dest, count int) (int, bool) {
	if count < 0 || !fits(src, count, n.frames) || !fits(dest, count, n.frames) {
		return 0, false
	}
	var l L
	if l.FrameContiguous() {
		shift(src, dest, count, func(from, to int) {
			copy(n.vector(to), n.vector(from))
		})
		return count, true
	}
	for channel := range n.channels {
		utils.CopyWithinSlice(n.buf[channel], src, dest, count)
	}
	return count, true
}

func (n *Nested[T, L]) CopyWithinChannel(channel, src, dest, count int) (int, bool) {
	var l L
	if l.FrameContiguous() {
		return n.mutDefaults.CopyWithinChannel(channel, src, dest, count)
	}
	if !inRange(channel, n.channels) || count < 0 || !fits(src, count, n.frames) || !fits(dest, count, n.frames) {
		return 0, false
	}
	utils.CopyWithinSlice(n.buf[channel], src, dest, count)
	return count, true
}

func (n *Nested[T, L]) CopyWithinFrame(frame, src, dest, count int) (int, bool) {
	var l L
	if !l.FrameContiguous() {
		return n.mutDefaults.CopyWithinFrame(frame, src, dest, count)
	}
	if !inRange(frame, n.frames) || count < 0 || !fits(src, count, n.channels) || !fits(dest, count, n.channels) {
		return 0, false
	}
	utils.CopyWithinSlice(n.buf[frame], src, dest, count)
	return count, true
}

func (n *Nested[T, L]) ChannelPtrs(channel int) (iter.Seq[*T], bool) {
	if !inRange(channel, n.channels) {
		return nil, false
	}
	return func(yield func(*T) bool) {
		for frame := range n.frames {
			if !yield(n.GetUnchecked(channel, frame)) {
				return
			}
		}
	}, true
}

func (n *Nested[T, L]) FramePtrs(frame int) (iter.Seq[*T], bool) {
	if !inRange(frame, n.frames) {
		return nil, false
	}
	return func(yield func(*T) bool) {
		for channel := range n.channels {
			if !yield(n.GetUnchecked(channel, frame)) {
				return
			}
		}
	}, true
}
