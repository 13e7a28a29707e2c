// SPDX-License-Identifier: EPL-2.0

// Package layout maps a (channel, frame) position to an offset in linear
// storage.
//
// Interleaved storage keeps all channels of a frame next to each other:
//
//	L0 R0 L1 R1 L2 R2
//
// Sequential (planar) storage keeps all frames of a channel next to each other:
//
//	L0 L1 L2 R0 R1 R2
//
// None of the functions check bounds. Callers validate channel < channels and
// frame < frames first.
package layout

// InterleavedIndex returns frame*channels + channel.
func InterleavedIndex(channel, frame, channels, frames int) int {
	return frame*channels + channel
}

// SequentialIndex returns channel*frames + frame.
func SequentialIndex(channel, frame, channels, frames int) int {
	return channel*frames + frame
}

// Layout is implemented by the Interleaved and Sequential marker types so a
// storage wrapper can pick its layout as a type parameter.
type Layout interface {
	Interleaved | Sequential

	Index(channel, frame, channels, frames int) int
	// FrameContiguous reports whether the channels of one frame are adjacent.
	FrameContiguous() bool
	Name() string
}

type Interleaved struct{}

func (Interleaved) Index(channel, frame, channels, frames int) int {
	return InterleavedIndex(channel, frame, channels, frames)
}

func (Interleaved) FrameContiguous() bool { return true }
func (Interleaved) Name() string          { return "interleaved" }

type Sequential struct{}

func (Sequential) Index(channel, frame, channels, frames int) int {
	return SequentialIndex(channel, frame, channels, frames)
}

func (Sequential) FrameContiguous() bool { return false }
func (Sequential) Name() string          { return "sequential" }

// Span returns the offset of the first element of a run together with the
// stride between consecutive elements. A frame run advances the channel,
// a channel run advances the frame.
func Span[L Layout](frameRun bool, index, channels, frames int) (start, stride int) {
	var l L
	if frameRun {
		start = l.Index(0, index, channels, frames)
		stride = l.Index(1, index, channels, frames) - start
		if channels < 2 {
			stride = 1
		}
		return start, stride
	}
	start = l.Index(index, 0, channels, frames)
	stride = l.Index(index, 1, channels, frames) - start
	if frames < 2 {
		stride = 1
	}
	return start, stride
}
