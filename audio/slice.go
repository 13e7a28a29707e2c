// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"iter"

	"github.com/ik5/audadapt/layout"
	"github.com/ik5/audadapt/utils"
)

// Slice wraps a flat slice of samples stored in layout L. It does not copy:
// reads and writes go straight to buf.
//
// buf may be longer than channels*frames; the tail is never touched.
type Slice[T any, L layout.Layout] struct {
	mutDefaults[T]

	buf      []T
	channels int
	frames   int
}

type (
	InterleavedSlice[T any] = Slice[T, layout.Interleaved]
	SequentialSlice[T any]  = Slice[T, layout.Sequential]
)

// NewSlice wraps buf. It fails when buf holds fewer than channels*frames
// samples.
func NewSlice[T any, L layout.Layout](buf []T, channels, frames int) (*Slice[T, L], error) {
	if err := checkLength(channels, frames, len(buf), 1); err != nil {
		return nil, err
	}
	s := &Slice[T, L]{buf: buf, channels: channels, frames: frames}
	s.mutDefaults = newMutDefaults[T](s)
	return s, nil
}

// NewInterleavedSlice wraps buf holding frame after frame.
func NewInterleavedSlice[T any](buf []T, channels, frames int) (*InterleavedSlice[T], error) {
	return NewSlice[T, layout.Interleaved](buf, channels, frames)
}

// NewSequentialSlice wraps buf holding channel after channel.
func NewSequentialSlice[T any](buf []T, channels, frames int) (*SequentialSlice[T], error) {
	return NewSlice[T, layout.Sequential](buf, channels, frames)
}

func (s *Slice[T, L]) Channels() int { return s.channels }
func (s *Slice[T, L]) Frames() int   { return s.frames }

func (s *Slice[T, L]) index(channel, frame int) int {
	var l L
	return l.Index(channel, frame, s.channels, s.frames)
}

func (s *Slice[T, L]) ReadUnchecked(channel, frame int) T {
	return s.buf[s.index(channel, frame)]
}

func (s *Slice[T, L]) WriteUnchecked(channel, frame int, value T) bool {
	s.buf[s.index(channel, frame)] = value
	return false
}

func (s *Slice[T, L]) GetUnchecked(channel, frame int) *T {
	return &s.buf[s.index(channel, frame)]
}

func (s *Slice[T, L]) Get(channel, frame int) *T {
	if !inRange(channel, s.channels) || !inRange(frame, s.frames) {
		return nil
	}
	return s.GetUnchecked(channel, frame)
}

func (s *Slice[T, L]) WriteFromChannelToSlice(channel, skip int, dst []T) int {
	if !inRange(channel, s.channels) || !inRange(skip, s.frames) {
		return 0
	}
	n := min(s.frames-skip, len(dst))
	start, stride := layout.Span[L](false, channel, s.channels, s.frames)
	gather(dst[:n], s.buf, start+skip*stride, stride)
	return n
}

func (s *Slice[T, L]) WriteFromFrameToSlice(frame, skip int, dst []T) int {
	if !inRange(frame, s.frames) || !inRange(skip, s.channels) {
		return 0
	}
	n := min(s.channels-skip, len(dst))
	start, stride := layout.Span[L](true, frame, s.channels, s.frames)
	gather(dst[:n], s.buf, start+skip*stride, stride)
	return n
}

func (s *Slice[T, L]) WriteFromSliceToChannel(channel, skip int, src []T) (int, int) {
	if !inRange(channel, s.channels) || !inRange(skip, s.frames) {
		return 0, 0
	}
	n := min(s.frames-skip, len(src))
	start, stride := layout.Span[L](false, channel, s.channels, s.frames)
	scatter(s.buf, src[:n], start+skip*stride, stride)
	return n, 0
}

func (s *Slice[T, L]) WriteFromSliceToFrame(frame, skip int, src []T) (int, int) {
	if !inRange(frame, s.frames) || !inRange(skip, s.channels) {
		return 0, 0
	}
	n := min(s.channels-skip, len(src))
	start, stride := layout.Span[L](true, frame, s.channels, s.frames)
	scatter(s.buf, src[:n], start+skip*stride, stride)
	return n, 0
}

func (s *Slice[T, L]) FillWith(value T) {
	fill(s.buf[:s.channels*s.frames], value)
}

func (s *Slice[T, L]) CopyFramesWithin(src, dest, count int) (int, bool) {
	if count < 0 || !fits(src, count, s.frames) || !fits(dest, count, s.frames) {
		return 0, false
	}
	var l L
	if l.FrameContiguous() {
		c := s.channels
		utils.CopyWithinSlice(s.buf, src*c, dest*c, count*c)
		return count, true
	}
	for channel := range s.channels {
		base := channel * s.frames
		utils.CopyWithinSlice(s.buf, base+src, base+dest, count)
	}
	return count, true
}

func (s *Slice[T, L]) CopyWithinChannel(channel, src, dest, count int) (int, bool) {
	var l L
	if l.FrameContiguous() {
		return s.mutDefaults.CopyWithinChannel(channel, src, dest, count)
	}
	if !inRange(channel, s.channels) || count < 0 || !fits(src, count, s.frames) || !fits(dest, count, s.frames) {
		return 0, false
	}
	base := channel * s.frames
	utils.CopyWithinSlice(s.buf, base+src, base+dest, count)
	return count, true
}

func (s *Slice[T, L]) CopyWithinFrame(frame, src, dest, count int) (int, bool) {
	var l L
	if !l.FrameContiguous() {
		return s.mutDefaults.CopyWithinFrame(frame, src, dest, count)
	}
	if !inRange(frame, s.frames) || count < 0 || !fits(src, count, s.channels) || !fits(dest, count, s.channels) {
		return 0, false
	}
	base := frame * s.channels
	utils.CopyWithinSlice(s.buf, base+src, base+dest, count)
	return count, true
}

func (s *Slice[T, L]) ChannelPtrs(channel int) (iter.Seq[*T], bool) {
	if !inRange(channel, s.channels) {
		return nil, false
	}
	start, stride := layout.Span[L](false, channel, s.channels, s.frames)
	return pointers(s.buf, start, stride, s.frames), true
}

func (s *Slice[T, L]) FramePtrs(frame int) (iter.Seq[*T], bool) {
	if !inRange(frame, s.frames) {
		return nil, false
	}
	start, stride := layout.Span[L](true, frame, s.channels, s.frames)
	return pointers(s.buf, start, stride, s.channels), true
}
