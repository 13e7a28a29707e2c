// SPDX-License-Identifier: EPL-2.0

package audio

import "iter"

// defaults implements the Indirect operations on top of a Reader. Wrappers
// embed it and override what their layout can do faster.
type defaults[T any] struct {
	r Reader[T]
}

func (d defaults[T]) Read(channel, frame int) (T, bool) {
	if !inRange(channel, d.r.Channels()) || !inRange(frame, d.r.Frames()) {
		var zero T
		return zero, false
	}
	return d.r.ReadUnchecked(channel, frame), true
}

func (d defaults[T]) WriteFromChannelToSlice(channel, skip int, dst []T) int {
	frames := d.r.Frames()
	if !inRange(channel, d.r.Channels()) || !inRange(skip, frames) {
		return 0
	}
	n := min(frames-skip, len(dst))
	for i := range n {
		dst[i] = d.r.ReadUnchecked(channel, skip+i)
	}
	return n
}

func (d defaults[T]) WriteFromFrameToSlice(frame, skip int, dst []T) int {
	channels := d.r.Channels()
	if !inRange(frame, d.r.Frames()) || !inRange(skip, channels) {
		return 0
	}
	n := min(channels-skip, len(dst))
	for i := range n {
		dst[i] = d.r.ReadUnchecked(skip+i, frame)
	}
	return n
}

func (d defaults[T]) ChannelSamples(channel int) (iter.Seq[T], bool) {
	if !inRange(channel, d.r.Channels()) {
		return nil, false
	}
	return func(yield func(T) bool) {
		for frame := range d.r.Frames() {
			if !yield(d.r.ReadUnchecked(channel, frame)) {
				return
			}
		}
	}, true
}

func (d defaults[T]) FrameSamples(frame int) (iter.Seq[T], bool) {
	if !inRange(frame, d.r.Frames()) {
		return nil, false
	}
	return func(yield func(T) bool) {
		for channel := range d.r.Channels() {
			if !yield(d.r.ReadUnchecked(channel, frame)) {
				return
			}
		}
	}, true
}

func (d defaults[T]) IterChannels() iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for channel := range d.r.Channels() {
			seq, _ := d.ChannelSamples(channel)
			if !yield(channel, seq) {
				return
			}
		}
	}
}

func (d defaults[T]) IterFrames() iter.Seq2[int, iter.Seq[T]] {
	return func(yield func(int, iter.Seq[T]) bool) {
		for frame := range d.r.Frames() {
			seq, _ := d.FrameSamples(frame)
			if !yield(frame, seq) {
				return
			}
		}
	}
}

// mutDefaults implements the IndirectMut operations on top of a Writer.
type mutDefaults[T any] struct {
	defaults[T]
	w Writer[T]
}

func newMutDefaults[T any](w Writer[T]) mutDefaults[T] {
	return mutDefaults[T]{defaults: defaults[T]{r: w}, w: w}
}

func (d mutDefaults[T]) Write(channel, frame int, value T) (clipped, ok bool) {
	if !inRange(channel, d.w.Channels()) || !inRange(frame, d.w.Frames()) {
		return false, false
	}
	return d.w.WriteUnchecked(channel, frame, value), true
}

func (d mutDefaults[T]) WriteFromSliceToChannel(channel, skip int, src []T) (n, clipped int) {
	frames := d.w.Frames()
	if !inRange(channel, d.w.Channels()) || !inRange(skip, frames) {
		return 0, 0
	}
	n = min(frames-skip, len(src))
	for i := range n {
		if d.w.WriteUnchecked(channel, skip+i, src[i]) {
			clipped++
		}
	}
	return n, clipped
}

func (d mutDefaults[T]) WriteFromSliceToFrame(frame, skip int, src []T) (n, clipped int) {
	channels := d.w.Channels()
	if !inRange(frame, d.w.Frames()) || !inRange(skip, channels) {
		return 0, 0
	}
	n = min(channels-skip, len(src))
	for i := range n {
		if d.w.WriteUnchecked(skip+i, frame, src[i]) {
			clipped++
		}
	}
	return n, clipped
}

func (d mutDefaults[T]) WriteFromOtherToChannel(other Reader[T], otherChannel, selfChannel, otherSkip, selfSkip, take int) (clipped int, ok bool) {
	if !inRange(selfChannel, d.w.Channels()) || !inRange(otherChannel, other.Channels()) {
		return 0, false
	}
	if take < 0 || !fits(selfSkip, take, d.w.Frames()) || !fits(otherSkip, take, other.Frames()) {
		return 0, false
	}
	move := func(i int) {
		v := other.ReadUnchecked(otherChannel, otherSkip+i)
		if d.w.WriteUnchecked(selfChannel, selfSkip+i, v) {
			clipped++
		}
	}
	// other may be this buffer: copying backwards when the destination is
	// ahead reads an overlapping run before overwriting it.
	if selfSkip > otherSkip {
		for i := take - 1; i >= 0; i-- {
			move(i)
		}
		return clipped, true
	}
	for i := range take {
		move(i)
	}
	return clipped, true
}

func (d mutDefaults[T]) FillChannelWith(channel int, value T) bool {
	if !inRange(channel, d.w.Channels()) {
		return false
	}
	for frame := range d.w.Frames() {
		d.w.WriteUnchecked(channel, frame, value)
	}
	return true
}

func (d mutDefaults[T]) FillFrameWith(frame int, value T) bool {
	if !inRange(frame, d.w.Frames()) {
		return false
	}
	for channel := range d.w.Channels() {
		d.w.WriteUnchecked(channel, frame, value)
	}
	return true
}

func (d mutDefaults[T]) FillFramesWith(start, count int, value T) (int, bool) {
	if count < 0 || !fits(start, count, d.w.Frames()) {
		return 0, false
	}
	for channel := range d.w.Channels() {
		for i := range count {
			d.w.WriteUnchecked(channel, start+i, value)
		}
	}
	return count, true
}

func (d mutDefaults[T]) FillWith(value T) {
	for channel := range d.w.Channels() {
		d.FillChannelWith(channel, value)
	}
}

func (d mutDefaults[T]) CopyFramesWithin(src, dest, count int) (int, bool) {
	frames := d.w.Frames()
	if count < 0 || !fits(src, count, frames) || !fits(dest, count, frames) {
		return 0, false
	}
	for channel := range d.w.Channels() {
		shift(src, dest, count, func(from, to int) {
			d.w.WriteUnchecked(channel, to, d.w.ReadUnchecked(channel, from))
		})
	}
	return count, true
}

func (d mutDefaults[T]) CopyWithinChannel(channel, src, dest, count int) (int, bool) {
	frames := d.w.Frames()
	if !inRange(channel, d.w.Channels()) || count < 0 || !fits(src, count, frames) || !fits(dest, count, frames) {
		return 0, false
	}
	shift(src, dest, count, func(from, to int) {
		d.w.WriteUnchecked(channel, to, d.w.ReadUnchecked(channel, from))
	})
	return count, true
}

func (d mutDefaults[T]) CopyWithinFrame(frame, src, dest, count int) (int, bool) {
	channels := d.w.Channels()
	if !inRange(frame, d.w.Frames()) || count < 0 || !fits(src, count, channels) || !fits(dest, count, channels) {
		return 0, false
	}
	shift(src, dest, count, func(from, to int) {
		d.w.WriteUnchecked(to, frame, d.w.ReadUnchecked(from, frame))
	})
	return count, true
}

// fits reports whether [start, start+count) lies within [0, n). It never
// computes start+count, so huge arguments cannot wrap around.
func fits(start, count, n int) bool {
	return start >= 0 && count >= 0 && start <= n && count <= n-start
}

// shift calls move for count positions in an order that never reads a
// position already written: ascending when dest < src, descending otherwise.
func shift(src, dest, count int, move func(from, to int)) {
	if count == 0 || src == dest {
		return
	}
	if dest < src {
		for i := 0; i < count; i++ {
			move(src+i, dest+i)
		}
		return
	}
	for i := count - 1; i >= 0; i-- {
		move(src+i, dest+i)
	}
}

// Adapter gives a minimal Reader the full Indirect API. Use it for custom
// storage that only implements Channels, Frames and ReadUnchecked.
type Adapter[T any] struct {
	Reader[T]
	defaults[T]
}

// Wrap returns an Adapter over r.
func Wrap[T any](r Reader[T]) *Adapter[T] {
	return &Adapter[T]{Reader: r, defaults: defaults[T]{r: r}}
}

// AdapterMut gives a minimal Writer the full IndirectMut API.
type AdapterMut[T any] struct {
	Writer[T]
	mutDefaults[T]
}

// WrapMut returns an AdapterMut over w.
func WrapMut[T any](w Writer[T]) *AdapterMut[T] {
	return &AdapterMut[T]{Writer: w, mutDefaults: newMutDefaults(w)}
}
