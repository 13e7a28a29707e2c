// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"slices"
	"testing"

	"github.com/ik5/audadapt/layout"
	"github.com/ik5/audadapt/sample"
)

const (
	testChannels = 3
	testFrames   = 5
)

// mapWriter is a minimal Writer backed by a map, used to exercise the
// default implementations through WrapMut.
type mapWriter struct {
	channels, frames int
	data             map[[2]int]float64
}

func (m *mapWriter) Channels() int { return m.channels }
func (m *mapWriter) Frames() int   { return m.frames }

func (m *mapWriter) ReadUnchecked(channel, frame int) float64 {
	return m.data[[2]int{channel, frame}]
}

func (m *mapWriter) WriteUnchecked(channel, frame int, value float64) bool {
	m.data[[2]int{channel, frame}] = value
	return false
}

type factory struct {
	name string
	make func(channels, frames int) IndirectMut[float64]
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func nestedVectors(outer, inner int) [][]float64 {
	buf := make([][]float64, outer)
	for i := range buf {
		buf[i] = make([]float64, inner)
	}
	return buf
}

// factories returns every wrapper that can store float64 values of the form
// k/64 without loss.
func factories() []factory {
	return []factory{
		{"interleaved slice", func(c, f int) IndirectMut[float64] {
			return must(NewInterleavedSlice(make([]float64, c*f), c, f))
		}},
		{"sequential slice", func(c, f int) IndirectMut[float64] {
			return must(NewSequentialSlice(make([]float64, c*f), c, f))
		}},
		{"interleaved owned", func(c, f int) IndirectMut[float64] {
			return must(NewInterleavedOwned(0.0, c, f))
		}},
		{"sequential owned", func(c, f int) IndirectMut[float64] {
			return must(NewSequentialOwned(0.0, c, f))
		}},
		{"interleaved nested", func(c, f int) IndirectMut[float64] {
			return must(NewInterleavedNested(nestedVectors(f, c), c, f))
		}},
		{"sequential nested", func(c, f int) IndirectMut[float64] {
			return must(NewSequentialNested(nestedVectors(c, f), c, f))
		}},
		{"interleaved numbers int16", func(c, f int) IndirectMut[float64] {
			return must(NewInterleavedNumbers[float64](make([]int16, c*f), c, f))
		}},
		{"sequential numbers uint8", func(c, f int) IndirectMut[float64] {
			return must(NewSequentialNumbers[float64](make([]uint8, c*f), c, f))
		}},
		{"interleaved bytes I16LE", func(c, f int) IndirectMut[float64] {
			return must(NewInterleavedBytes[float64, sample.I16LE](make([]byte, 2*c*f), c, f))
		}},
		{"sequential bytes I24BE3", func(c, f int) IndirectMut[float64] {
			return must(NewSequentialBytes[float64, sample.I24BE3](make([]byte, 3*c*f), c, f))
		}},
		{"interleaved bytes F32LE", func(c, f int) IndirectMut[float64] {
			return must(NewBytes[float64, sample.F32LE, layout.Interleaved](make([]byte, 4*c*f), c, f))
		}},
		{"convert int32 slice", func(c, f int) IndirectMut[float64] {
			return NewConvertMut[float64, int32](must(NewSequentialSlice(make([]int32, c*f), c, f)))
		}},
		{"wrapped map", func(c, f int) IndirectMut[float64] {
			return WrapMut[float64](&mapWriter{channels: c, frames: f, data: map[[2]int]float64{}})
		}},
	}
}

// value is the test value stored at (channel, frame); distinct and exactly
// representable by every factory.
func value(channel, frame int) float64 {
	return float64(channel*testFrames+frame+1) / 64
}

// model is the expected content of a buffer, indexed [channel][frame].
type model [][]float64

func newModel(channels, frames int) model {
	m := make(model, channels)
	for ch := range m {
		m[ch] = make([]float64, frames)
	}
	return m
}

func populate(t *testing.T, buf IndirectMut[float64]) model {
	t.Helper()

	m := newModel(buf.Channels(), buf.Frames())
	for ch := range buf.Channels() {
		for fr := range buf.Frames() {
			m[ch][fr] = value(ch, fr)
			if clipped, ok := buf.Write(ch, fr, m[ch][fr]); clipped || !ok {
				t.Fatalf("Write(%d, %d) = (%v, %v), want (false, true)", ch, fr, clipped, ok)
			}
		}
	}
	return m
}

func assertModel(t *testing.T, buf Indirect[float64], want model) {
	t.Helper()

	for ch := range want {
		for fr := range want[ch] {
			got, ok := buf.Read(ch, fr)
			if !ok || got != want[ch][fr] {
				t.Fatalf("Read(%d, %d) = (%v, %v), want (%v, true)", ch, fr, got, ok, want[ch][fr])
			}
		}
	}
}

func TestAccessor_ReadWrite(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(testChannels, testFrames)
			if buf.Channels() != testChannels || buf.Frames() != testFrames {
				t.Fatalf("geometry = %dx%d, want %dx%d", buf.Channels(), buf.Frames(), testChannels, testFrames)
			}
			want := populate(t, buf)
			assertModel(t, buf, want)

			for ch := range testChannels {
				for fr := range testFrames {
					if got := buf.ReadUnchecked(ch, fr); got != want[ch][fr] {
						t.Errorf("ReadUnchecked(%d, %d) = %v, want %v", ch, fr, got, want[ch][fr])
					}
				}
			}
		})
	}
}

func TestAccessor_BoundsSymmetry(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(testChannels, testFrames)
			populate(t, buf)

			for ch := -1; ch <= testChannels+1; ch++ {
				for fr := -1; fr <= testFrames+1; fr++ {
					valid := ch >= 0 && ch < testChannels && fr >= 0 && fr < testFrames
					if _, ok := buf.Read(ch, fr); ok != valid {
						t.Errorf("Read(%d, %d) ok = %v, want %v", ch, fr, ok, valid)
					}
					if _, ok := buf.Write(ch, fr, 0.5); ok != valid {
						t.Errorf("Write(%d, %d) ok = %v, want %v", ch, fr, ok, valid)
					}
				}
			}
		})
	}
}

func TestAccessor_ChannelToSlice(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(testChannels, testFrames)
			want := populate(t, buf)

			tests := []struct {
				channel, skip, size int
				wantN               int
			}{
				{1, 0, testFrames, testFrames},
				{1, 0, testFrames + 3, testFrames},
				{2, 2, testFrames, testFrames - 2},
				{0, 1, 2, 2},
				{0, testFrames - 1, 4, 1},
				{0, testFrames, 4, 0},
				{testChannels, 0, 4, 0},
				{-1, 0, 4, 0},
				{0, -1, 4, 0},
			}

			for _, tt := range tests {
				dst := make([]float64, tt.size)
				n := buf.WriteFromChannelToSlice(tt.channel, tt.skip, dst)
				if n != tt.wantN {
					t.Errorf("WriteFromChannelToSlice(%d, %d, [%d]) = %d, want %d", tt.channel, tt.skip, tt.size, n, tt.wantN)
					continue
				}
				for i := range n {
					if dst[i] != want[tt.channel][tt.skip+i] {
						t.Errorf("channel %d skip %d: dst[%d] = %v, want %v", tt.channel, tt.skip, i, dst[i], want[tt.channel][tt.skip+i])
					}
				}
				for i := n; i < len(dst); i++ {
					if dst[i] != 0 {
						t.Errorf("dst[%d] = %v beyond transfer, want untouched", i, dst[i])
					}
				}
			}
		})
	}
}

func TestAccessor_FrameToSlice(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(testChannels, testFrames)
			want := populate(t, buf)

			tests := []struct {
				frame, skip, size int
				wantN             int
			}{
				{3, 0, testChannels, testChannels},
				{3, 1, testChannels, testChannels - 1},
				{0, 0, 1, 1},
				{4, 2, 8, 1},
				{4, testChannels, 8, 0},
				{testFrames, 0, 8, 0},
			}

			for _, tt := range tests {
				dst := make([]float64, tt.size)
				n := buf.WriteFromFrameToSlice(tt.frame, tt.skip, dst)
				if n != tt.wantN {
					t.Errorf("WriteFromFrameToSlice(%d, %d, [%d]) = %d, want %d", tt.frame, tt.skip, tt.size, n, tt.wantN)
					continue
				}
				for i := range n {
					if dst[i] != want[tt.skip+i][tt.frame] {
						t.Errorf("frame %d skip %d: dst[%d] = %v, want %v", tt.frame, tt.skip, i, dst[i], want[tt.skip+i][tt.frame])
					}
				}
			}
		})
	}
}

func TestAccessor_SliceToChannelAndFrame(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(testChannels, testFrames)
			want := populate(t, buf)

			src := []float64{-0.5, -0.25, -0.125, -0.0625, -0.75, -1}

			n, clipped := buf.WriteFromSliceToChannel(1, 2, src)
			if n != testFrames-2 || clipped != 0 {
				t.Fatalf("WriteFromSliceToChannel() = (%d, %d), want (%d, 0)", n, clipped, testFrames-2)
			}
			copy(want[1][2:], src)
			assertModel(t, buf, want)

			n, clipped = buf.WriteFromSliceToFrame(4, 1, src[:1])
			if n != 1 || clipped != 0 {
				t.Fatalf("WriteFromSliceToFrame() = (%d, %d), want (1, 0)", n, clipped)
			}
			want[1][4] = src[0]
			assertModel(t, buf, want)

			if n, _ := buf.WriteFromSliceToChannel(testChannels, 0, src); n != 0 {
				t.Errorf("WriteFromSliceToChannel(invalid) = %d, want 0", n)
			}
			if n, _ := buf.WriteFromSliceToFrame(0, testChannels, src); n != 0 {
				t.Errorf("WriteFromSliceToFrame(skip beyond) = %d, want 0", n)
			}
			if n, _ := buf.WriteFromSliceToChannel(0, 0, nil); n != 0 {
				t.Errorf("WriteFromSliceToChannel(nil) = %d, want 0", n)
			}
			assertModel(t, buf, want)
		})
	}
}

func TestAccessor_Fill(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(testChannels, testFrames)
			want := populate(t, buf)

			for range 2 {
				if !buf.FillChannelWith(2, 0.5) {
					t.Fatal("FillChannelWith(2) = false")
				}
			}
			for fr := range testFrames {
				want[2][fr] = 0.5
			}
			assertModel(t, buf, want)

			if !buf.FillFrameWith(0, -0.5) {
				t.Fatal("FillFrameWith(0) = false")
			}
			for ch := range testChannels {
				want[ch][0] = -0.5
			}
			assertModel(t, buf, want)

			if n, ok := buf.FillFramesWith(3, 2, 0.25); !ok || n != 2 {
				t.Fatalf("FillFramesWith(3, 2) = (%d, %v), want (2, true)", n, ok)
			}
			for ch := range testChannels {
				want[ch][3], want[ch][4] = 0.25, 0.25
			}
			assertModel(t, buf, want)

			if buf.FillChannelWith(testChannels, 0) || buf.FillFrameWith(testFrames, 0) {
				t.Error("fill of an invalid channel or frame reported success")
			}
			if _, ok := buf.FillFramesWith(4, 2, 0); ok {
				t.Error("FillFramesWith past the end reported success")
			}
			assertModel(t, buf, want)

			buf.FillWith(0.125)
			buf.FillWith(0.125)
			for ch := range testChannels {
				for fr := range testFrames {
					want[ch][fr] = 0.125
				}
			}
			assertModel(t, buf, want)
		})
	}
}

func TestAccessor_CopyFramesWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		src, dest, count int
		wantOK           bool
	}{
		{"forward overlap", 0, 1, 3, true},
		{"backward overlap", 2, 0, 3, true},
		{"disjoint", 0, 3, 2, true},
		{"same place", 1, 1, 3, true},
		{"empty", 4, 0, 0, true},
		{"source past end", 3, 0, 3, false},
		{"dest past end", 0, 3, 3, false},
		{"negative", -1, 0, 1, false},
		{"source near max int", math.MaxInt, 0, 1, false},
		{"dest near max int", 0, math.MaxInt, 1, false},
		{"count near max int", 1, 0, math.MaxInt, false},
	}

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			for _, tt := range tests {
				buf := f.make(testChannels, testFrames)
				want := populate(t, buf)

				n, ok := buf.CopyFramesWithin(tt.src, tt.dest, tt.count)
				if ok != tt.wantOK {
					t.Fatalf("%s: CopyFramesWithin() ok = %v, want %v", tt.name, ok, tt.wantOK)
				}
				if ok {
					if n != tt.count {
						t.Errorf("%s: CopyFramesWithin() = %d, want %d", tt.name, n, tt.count)
					}
					for ch := range want {
						scratch := slices.Clone(want[ch][tt.src : tt.src+tt.count])
						copy(want[ch][tt.dest:], scratch)
					}
				}
				assertModel(t, buf, want)
			}
		})
	}
}

func TestAccessor_CopyWithinChannelAndFrame(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(testChannels, testFrames)
			want := populate(t, buf)

			if n, ok := buf.CopyWithinChannel(1, 0, 2, 3); !ok || n != 3 {
				t.Fatalf("CopyWithinChannel() = (%d, %v), want (3, true)", n, ok)
			}
			scratch := slices.Clone(want[1][0:3])
			copy(want[1][2:], scratch)
			assertModel(t, buf, want)

			if n, ok := buf.CopyWithinFrame(4, 1, 0, 2); !ok || n != 2 {
				t.Fatalf("CopyWithinFrame() = (%d, %v), want (2, true)", n, ok)
			}
			want[0][4], want[1][4] = want[1][4], want[2][4]
			assertModel(t, buf, want)

			if _, ok := buf.CopyWithinChannel(testChannels, 0, 1, 1); ok {
				t.Error("CopyWithinChannel(invalid channel) reported success")
			}
			if _, ok := buf.CopyWithinFrame(0, 0, 2, 2); ok {
				t.Error("CopyWithinFrame(past last channel) reported success")
			}
			if _, ok := buf.CopyWithinChannel(0, math.MaxInt, 0, 1); ok {
				t.Error("CopyWithinChannel(src near max int) reported success")
			}
			if _, ok := buf.CopyWithinChannel(0, 0, math.MaxInt, 1); ok {
				t.Error("CopyWithinChannel(dest near max int) reported success")
			}
			if _, ok := buf.CopyWithinFrame(0, math.MaxInt, 0, 1); ok {
				t.Error("CopyWithinFrame(src near max int) reported success")
			}
			if _, ok := buf.FillFramesWith(math.MaxInt, 1, 1); ok {
				t.Error("FillFramesWith(start near max int) reported success")
			}
			assertModel(t, buf, want)
		})
	}
}

func TestAccessor_WriteFromOtherToChannel(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			other := must(NewInterleavedSlice([]float64{
				0.5, -0.5,
				0.25, -0.25,
				0.125, -0.125,
			}, 2, 3))

			buf := f.make(testChannels, testFrames)
			want := populate(t, buf)

			clipped, ok := buf.WriteFromOtherToChannel(other, 1, 2, 1, 3, 2)
			if !ok || clipped != 0 {
				t.Fatalf("WriteFromOtherToChannel() = (%d, %v), want (0, true)", clipped, ok)
			}
			want[2][3], want[2][4] = -0.25, -0.125
			assertModel(t, buf, want)

			invalid := []struct {
				name                                                   string
				otherChannel, selfChannel, otherSkip, selfSkip, take int
			}{
				{"other channel", 2, 0, 0, 0, 1},
				{"self channel", 0, testChannels, 0, 0, 1},
				{"other range", 0, 0, 2, 0, 2},
				{"self range", 0, 0, 0, 4, 2},
			}
			for _, tt := range invalid {
				if _, ok := buf.WriteFromOtherToChannel(other, tt.otherChannel, tt.selfChannel, tt.otherSkip, tt.selfSkip, tt.take); ok {
					t.Errorf("%s: WriteFromOtherToChannel() ok = true, want false", tt.name)
				}
			}
			assertModel(t, buf, want)
		})
	}
}

func TestAccessor_Iteration(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(testChannels, testFrames)
			want := populate(t, buf)

			seq, ok := buf.ChannelSamples(1)
			if !ok {
				t.Fatal("ChannelSamples(1) ok = false")
			}
			// iterating twice must give the same sequence
			for range 2 {
				if got := slices.Collect(seq); !slices.Equal(got, want[1]) {
					t.Errorf("ChannelSamples(1) = %v, want %v", got, want[1])
				}
			}

			frame, ok := buf.FrameSamples(2)
			if !ok {
				t.Fatal("FrameSamples(2) ok = false")
			}
			wantFrame := []float64{want[0][2], want[1][2], want[2][2]}
			if got := slices.Collect(frame); !slices.Equal(got, wantFrame) {
				t.Errorf("FrameSamples(2) = %v, want %v", got, wantFrame)
			}

			if _, ok := buf.ChannelSamples(testChannels); ok {
				t.Error("ChannelSamples(invalid) ok = true")
			}
			if _, ok := buf.FrameSamples(-1); ok {
				t.Error("FrameSamples(-1) ok = true")
			}

			channels := 0
			for ch, samples := range buf.IterChannels() {
				if ch != channels {
					t.Errorf("IterChannels() index %d, want %d", ch, channels)
				}
				if got := slices.Collect(samples); !slices.Equal(got, want[ch]) {
					t.Errorf("IterChannels() channel %d = %v, want %v", ch, got, want[ch])
				}
				channels++
			}
			if channels != testChannels {
				t.Errorf("IterChannels() visited %d channels, want %d", channels, testChannels)
			}

			frames := 0
			for fr, samples := range buf.IterFrames() {
				n := 0
				for v := range samples {
					if v != want[n][fr] {
						t.Errorf("IterFrames() frame %d channel %d = %v, want %v", fr, n, v, want[n][fr])
					}
					n++
				}
				frames++
			}
			if frames != testFrames {
				t.Errorf("IterFrames() visited %d frames, want %d", frames, testFrames)
			}

			// early break
			for range buf.IterFrames() {
				break
			}
		})
	}
}

func TestAccessor_EmptyBuffer(t *testing.T) {
	t.Parallel()

	for _, f := range factories() {
		t.Run(f.name, func(t *testing.T) {
			t.Parallel()

			buf := f.make(0, 0)
			if _, ok := buf.Read(0, 0); ok {
				t.Error("Read(0, 0) on empty buffer ok = true")
			}
			if n := buf.WriteFromChannelToSlice(0, 0, make([]float64, 4)); n != 0 {
				t.Errorf("WriteFromChannelToSlice() on empty buffer = %d", n)
			}
			buf.FillWith(1)
			for range buf.IterChannels() {
				t.Error("IterChannels() yielded on empty buffer")
			}
			if _, ok := buf.CopyFramesWithin(0, 0, 0); !ok {
				t.Error("CopyFramesWithin(0, 0, 0) on empty buffer ok = false")
			}
		})
	}
}
