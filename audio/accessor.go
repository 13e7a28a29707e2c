// SPDX-License-Identifier: EPL-2.0

package audio

import "iter"

// Reader is the minimal read contract of a buffer. Channels and Frames never
// change during the life of a wrapper.
type Reader[T any] interface {
	Channels() int
	Frames() int
	// ReadUnchecked returns the sample at (channel, frame) without validating
	// the indices. The caller guarantees channel < Channels() and
	// frame < Frames(); anything else may panic or return an unrelated
	// sample.
	ReadUnchecked(channel, frame int) T
}

// Writer is the minimal read-write contract of a buffer.
type Writer[T any] interface {
	Reader[T]
	// WriteUnchecked stores value at (channel, frame) and reports whether it
	// was clipped by a conversion. Same precondition as ReadUnchecked.
	WriteUnchecked(channel, frame int, value T) (clipped bool)
}

// Indirect is read access that returns samples by value, possibly converting
// them from the stored representation.
type Indirect[T any] interface {
	Reader[T]

	// Read is the bounds checked form of ReadUnchecked.
	Read(channel, frame int) (T, bool)

	// WriteFromChannelToSlice copies samples of channel, starting at frame
	// skip, into dst. It copies min(Frames()-skip, len(dst)) samples and
	// returns that count. An invalid channel or skip copies nothing.
	WriteFromChannelToSlice(channel, skip int, dst []T) int
	// WriteFromFrameToSlice is WriteFromChannelToSlice along a frame.
	WriteFromFrameToSlice(frame, skip int, dst []T) int

	// ChannelSamples iterates one channel in frame order. It reports false
	// for an invalid channel.
	ChannelSamples(channel int) (iter.Seq[T], bool)
	// FrameSamples iterates one frame in channel order.
	FrameSamples(frame int) (iter.Seq[T], bool)
	// IterChannels yields every channel index with its sample sequence.
	IterChannels() iter.Seq2[int, iter.Seq[T]]
	// IterFrames yields every frame index with its sample sequence.
	IterFrames() iter.Seq2[int, iter.Seq[T]]
}

// IndirectMut adds writes to Indirect. Every write reports clipping; wrappers
// that do not convert never clip.
type IndirectMut[T any] interface {
	Indirect[T]
	Writer[T]

	// Write is the bounds checked form of WriteUnchecked. ok is false when
	// nothing was written.
	Write(channel, frame int, value T) (clipped, ok bool)

	// WriteFromSliceToChannel copies src into channel starting at frame skip.
	// It returns the number of samples written and how many of them clipped.
	WriteFromSliceToChannel(channel, skip int, src []T) (n, clipped int)
	// WriteFromSliceToFrame is WriteFromSliceToChannel along a frame.
	WriteFromSliceToFrame(frame, skip int, src []T) (n, clipped int)

	// WriteFromOtherToChannel copies take samples from otherChannel of other,
	// starting at otherSkip, into selfChannel starting at selfSkip. Nothing
	// is copied, and ok is false, unless both ranges are fully valid. other
	// may be the receiver itself, even with overlapping ranges.
	WriteFromOtherToChannel(other Reader[T], otherChannel, selfChannel, otherSkip, selfSkip, take int) (clipped int, ok bool)

	FillChannelWith(channel int, value T) bool
	FillFrameWith(frame int, value T) bool
	// FillFramesWith sets frames [start, start+count) of every channel.
	FillFramesWith(start, count int, value T) (int, bool)
	FillWith(value T)

	// CopyFramesWithin moves count frames of every channel from src to dest.
	// Overlapping ranges are handled as if copied through scratch space.
	CopyFramesWithin(src, dest, count int) (int, bool)
	// CopyWithinChannel moves count samples of one channel from frame src to
	// frame dest.
	CopyWithinChannel(channel, src, dest, count int) (int, bool)
	// CopyWithinFrame moves count samples of one frame from channel src to
	// channel dest.
	CopyWithinFrame(frame, src, dest, count int) (int, bool)
}

// Direct is read access to samples stored natively, so a pointer to the
// stored value can be handed out.
//
// Go has no read-only pointers: writing through a pointer from a Direct
// buffer modifies the underlying storage.
type Direct[T any] interface {
	Indirect[T]
	// Get returns a pointer to the sample, or nil when out of range.
	Get(channel, frame int) *T
	// GetUnchecked has the precondition of ReadUnchecked.
	GetUnchecked(channel, frame int) *T
}

// DirectMut is a writable Direct buffer.
type DirectMut[T any] interface {
	Direct[T]
	IndirectMut[T]
	// ChannelPtrs iterates pointers to the samples of one channel.
	ChannelPtrs(channel int) (iter.Seq[*T], bool)
	// FramePtrs iterates pointers to the samples of one frame.
	FramePtrs(frame int) (iter.Seq[*T], bool)
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
