// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audadapt/sample"

// Convert reads any buffer of numbers N as scaled floats F. The source is
// held as an interface so it can be any wrapper, including another converter.
type Convert[F sample.Float, N sample.Number] struct {
	defaults[F]
	src Reader[N]
}

// NewConvert wraps src. It never fails: src already validated its geometry.
func NewConvert[F sample.Float, N sample.Number](src Reader[N]) *Convert[F, N] {
	c := &Convert[F, N]{src: src}
	c.defaults = defaults[F]{r: c}
	return c
}

func (c *Convert[F, N]) Channels() int { return c.src.Channels() }
func (c *Convert[F, N]) Frames() int   { return c.src.Frames() }

func (c *Convert[F, N]) ReadUnchecked(channel, frame int) F {
	return sample.ToScaledFloat[F](c.src.ReadUnchecked(channel, frame))
}

// ConvertMut is the writable form of Convert. Writes are converted back to N
// and report clipping.
type ConvertMut[F sample.Float, N sample.Number] struct {
	mutDefaults[F]
	dst Writer[N]
}

func NewConvertMut[F sample.Float, N sample.Number](dst Writer[N]) *ConvertMut[F, N] {
	c := &ConvertMut[F, N]{dst: dst}
	c.mutDefaults = newMutDefaults[F](c)
	return c
}

func (c *ConvertMut[F, N]) Channels() int { return c.dst.Channels() }
func (c *ConvertMut[F, N]) Frames() int   { return c.dst.Frames() }

func (c *ConvertMut[F, N]) ReadUnchecked(channel, frame int) F {
	return sample.ToScaledFloat[F](c.dst.ReadUnchecked(channel, frame))
}

func (c *ConvertMut[F, N]) WriteUnchecked(channel, frame int, value F) bool {
	conv := sample.FromScaledFloat[N](value)
	// a clipping inner buffer counts as clipping too
	inner := c.dst.WriteUnchecked(channel, frame, conv.Value)
	return conv.Clipped || inner
}
