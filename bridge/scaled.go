// SPDX-License-Identifier: EPL-2.0

package bridge

import (
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/layout"
	"github.com/ik5/audadapt/sample"
)

// IntScaled reads and writes integer PCM values of a fixed bit depth as
// scaled float32. Values are aligned to 32 bits and run through the int32
// codec, so a 24-bit value behaves exactly like sample.I24LE3 does.
type IntScaled struct {
	data     []int
	channels int
	frames   int
	shift    uint
	offset   int
}

// NewIntScaled returns a float32 view of buf. buf.SourceBitDepth gives the
// scale; values are signed two's complement.
func NewIntScaled(buf *goaudio.IntBuffer) (*audio.AdapterMut[float32], error) {
	return newIntScaled(buf, false)
}

// NewUnsignedIntScaled is NewIntScaled for offset binary values, such as
// 8-bit WAV where silence is 128.
func NewUnsignedIntScaled(buf *goaudio.IntBuffer) (*audio.AdapterMut[float32], error) {
	return newIntScaled(buf, true)
}

func newIntScaled(buf *goaudio.IntBuffer, unsigned bool) (*audio.AdapterMut[float32], error) {
	bits := buf.SourceBitDepth
	if bits < 1 || bits > 32 {
		return nil, ErrBitDepth
	}
	channels, frames, err := geometry(buf.Format, len(buf.Data))
	if err != nil {
		return nil, err
	}

	s := &IntScaled{
		data:     buf.Data,
		channels: channels,
		frames:   frames,
		shift:    uint(32 - bits),
	}
	if unsigned {
		s.offset = 1 << (bits - 1)
	}
	return audio.WrapMut[float32](s), nil
}

func (s *IntScaled) Channels() int { return s.channels }
func (s *IntScaled) Frames() int   { return s.frames }

func (s *IntScaled) index(channel, frame int) int {
	return layout.InterleavedIndex(channel, frame, s.channels, s.frames)
}

func (s *IntScaled) ReadUnchecked(channel, frame int) float32 {
	v := s.data[s.index(channel, frame)] - s.offset
	return sample.ToScaledFloat[float32](int32(v) << s.shift)
}

func (s *IntScaled) WriteUnchecked(channel, frame int, value float32) bool {
	c := sample.FromScaledFloat[int32](value)
	s.data[s.index(channel, frame)] = int(c.Value>>s.shift) + s.offset
	return c.Clipped
}
