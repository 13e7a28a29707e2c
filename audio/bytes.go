// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audadapt/layout"
	"github.com/ik5/audadapt/sample"
)

// Bytes reads and writes samples stored as raw bytes in encoding E, exposing
// them as scaled floats of type F.
//
// Every access converts: use a Slice when the storage already holds F.
type Bytes[F sample.Float, E sample.Encoding, L layout.Layout] struct {
	mutDefaults[F]

	buf      []byte
	channels int
	frames   int
}

type (
	InterleavedBytes[F sample.Float, E sample.Encoding] = Bytes[F, E, layout.Interleaved]
	SequentialBytes[F sample.Float, E sample.Encoding]  = Bytes[F, E, layout.Sequential]
)

// NewBytes wraps buf, which must hold at least channels*frames samples of
// E.BytesPerSample() bytes each.
func NewBytes[F sample.Float, E sample.Encoding, L layout.Layout](buf []byte, channels, frames int) (*Bytes[F, E, L], error) {
	var e E
	if err := checkLength(channels, frames, len(buf), e.BytesPerSample()); err != nil {
		return nil, err
	}
	b := &Bytes[F, E, L]{buf: buf, channels: channels, frames: frames}
	b.mutDefaults = newMutDefaults[F](b)
	return b, nil
}

// NewInterleavedBytes wraps interleaved byte encoded samples, for example
// 16-bit little endian PCM:
//
//	buf, err := audio.NewInterleavedBytes[float32, sample.I16LE](pcm, 2, len(pcm)/4)
func NewInterleavedBytes[F sample.Float, E sample.Encoding](buf []byte, channels, frames int) (*InterleavedBytes[F, E], error) {
	return NewBytes[F, E, layout.Interleaved](buf, channels, frames)
}

func NewSequentialBytes[F sample.Float, E sample.Encoding](buf []byte, channels, frames int) (*SequentialBytes[F, E], error) {
	return NewBytes[F, E, layout.Sequential](buf, channels, frames)
}

func (b *Bytes[F, E, L]) Channels() int { return b.channels }
func (b *Bytes[F, E, L]) Frames() int   { return b.frames }

// chunk returns the bytes of the sample at linear position i.
func (b *Bytes[F, E, L]) chunk(i int) []byte {
	var e E
	w := e.BytesPerSample()
	return b.buf[i*w : i*w+w]
}

func (b *Bytes[F, E, L]) ReadUnchecked(channel, frame int) F {
	var e E
	var l L
	return sample.ToScaledFloat[F](e.DecodeScaled(b.chunk(l.Index(channel, frame, b.channels, b.frames))))
}

func (b *Bytes[F, E, L]) WriteUnchecked(channel, frame int, value F) bool {
	var e E
	var l L
	return e.EncodeScaled(b.chunk(l.Index(channel, frame, b.channels, b.frames)), float64(value))
}

func (b *Bytes[F, E, L]) WriteFromChannelToSlice(channel, skip int, dst []F) int {
	if !inRange(channel, b.channels) || !inRange(skip, b.frames) {
		return 0
	}
	start, stride := layout.Span[L](false, channel, b.channels, b.frames)
	return b.decodeRun(dst[:min(b.frames-skip, len(dst))], start+skip*stride, stride)
}

func (b *Bytes[F, E, L]) WriteFromFrameToSlice(frame, skip int, dst []F) int {
	if !inRange(frame, b.frames) || !inRange(skip, b.channels) {
		return 0
	}
	start, stride := layout.Span[L](true, frame, b.channels, b.frames)
	return b.decodeRun(dst[:min(b.channels-skip, len(dst))], start+skip*stride, stride)
}

func (b *Bytes[F, E, L]) WriteFromSliceToChannel(channel, skip int, src []F) (int, int) {
	if !inRange(channel, b.channels) || !inRange(skip, b.frames) {
		return 0, 0
	}
	start, stride := layout.Span[L](false, channel, b.channels, b.frames)
	return b.encodeRun(src[:min(b.frames-skip, len(src))], start+skip*stride, stride)
}

func (b *Bytes[F, E, L]) WriteFromSliceToFrame(frame, skip int, src []F) (int, int) {
	if !inRange(frame, b.frames) || !inRange(skip, b.channels) {
		return 0, 0
	}
	start, stride := layout.Span[L](true, frame, b.channels, b.frames)
	return b.encodeRun(src[:min(b.channels-skip, len(src))], start+skip*stride, stride)
}

func (b *Bytes[F, E, L]) decodeRun(dst []F, start, stride int) int {
	var e E
	for i := range dst {
		dst[i] = sample.ToScaledFloat[F](e.DecodeScaled(b.chunk(start + i*stride)))
	}
	return len(dst)
}

func (b *Bytes[F, E, L]) encodeRun(src []F, start, stride int) (n, clipped int) {
	var e E
	for i, v := range src {
		if e.EncodeScaled(b.chunk(start+i*stride), float64(v)) {
			clipped++
		}
	}
	return len(src), clipped
}
