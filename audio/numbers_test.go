// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"slices"
	"testing"
)

func TestNumbers_Read(t *testing.T) {
	t.Parallel()

	raw := []int16{0, -32768, 16384, -16384, 8192, -8192}
	n := must(NewInterleavedNumbers[float32](raw, 2, 3))

	ch1, _ := n.ChannelSamples(1)
	if got, want := slices.Collect(ch1), []float32{-1, -0.5, -0.25}; !slices.Equal(got, want) {
		t.Errorf("channel 1 = %v, want %v", got, want)
	}
}

func TestNumbers_Unsigned(t *testing.T) {
	t.Parallel()

	raw := []uint8{128, 0, 192, 255}
	n := must(NewSequentialNumbers[float64](raw, 1, 4))

	got := make([]float64, 4)
	n.WriteFromChannelToSlice(0, 0, got)
	if want := []float64{0, -1, 0.5, 127.0 / 128}; !slices.Equal(got, want) {
		t.Errorf("samples = %v, want %v", got, want)
	}
}

func TestNumbers_WriteClips(t *testing.T) {
	t.Parallel()

	raw := make([]int8, 2)
	n := must(NewInterleavedNumbers[float32](raw, 2, 1))

	if clipped, _ := n.Write(0, 0, 1); !clipped {
		t.Error("Write(1) clipped = false")
	}
	if clipped, _ := n.Write(1, 0, -1); clipped {
		t.Error("Write(-1) clipped = true")
	}
	if !slices.Equal(raw, []int8{127, -128}) {
		t.Errorf("raw = %v, want [127 -128]", raw)
	}
}
