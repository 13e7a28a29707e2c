// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"slices"
	"testing"
)

func TestGatherScatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		start  int
		stride int
		want   []int
	}{
		{"contiguous", 2, 1, []int{2, 3, 4}},
		{"interleaved stereo", 1, 2, []int{1, 3, 5}},
		{"every third", 0, 3, []int{0, 3, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
			got := make([]int, len(tt.want))
			gather(got, src, tt.start, tt.stride)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("gather() = %v, want %v", got, tt.want)
			}

			dst := make([]int, len(src))
			scatter(dst, got, tt.start, tt.stride)
			for i, v := range tt.want {
				if dst[tt.start+i*tt.stride] != v {
					t.Errorf("scatter() dst[%d] = %d, want %d", tt.start+i*tt.stride, dst[tt.start+i*tt.stride], v)
				}
			}
		})
	}
}

func TestPointers_StopsEarly(t *testing.T) {
	t.Parallel()

	buf := []float32{0, 1, 2, 3, 4, 5}
	var seen int
	for p := range pointers(buf, 0, 2, 3) {
		*p = -1
		seen++
		if seen == 2 {
			break
		}
	}

	want := []float32{-1, 1, -1, 3, 4, 5}
	if !slices.Equal(buf, want) {
		t.Errorf("buf = %v, want %v", buf, want)
	}
}
