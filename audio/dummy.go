// SPDX-License-Identifier: EPL-2.0

package audio

// Dummy is a buffer without storage. Every read returns the same value and
// writes are discarded. Checked reads and writes still validate indices.
type Dummy[T any] struct {
	mutDefaults[T]

	value    T
	channels int
	frames   int
}

func NewDummy[T any](value T, channels, frames int) *Dummy[T] {
	d := &Dummy[T]{value: value, channels: channels, frames: frames}
	d.mutDefaults = newMutDefaults[T](d)
	return d
}

func (d *Dummy[T]) Channels() int                     { return d.channels }
func (d *Dummy[T]) Frames() int                       { return d.frames }
func (d *Dummy[T]) ReadUnchecked(_, _ int) T          { return d.value }
func (d *Dummy[T]) WriteUnchecked(_, _ int, _ T) bool { return false }
