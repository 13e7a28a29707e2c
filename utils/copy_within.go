// SPDX-License-Identifier: EPL-2.0

package utils

// CopyWithinSlice copies count elements of s from offset src to offset dest.
// Overlapping ranges produce the same result as copying through a scratch
// buffer.
//
// The move is done in non-overlapping chunks of |dest-src| elements. When
// dest < src chunks are taken front to back, otherwise back to front, so no
// chunk reads a slot that an earlier chunk already wrote.
//
// Parameters:
//   - s: the slice to modify in place
//   - src: offset of the first element to move
//   - dest: offset the first element is moved to
//   - count: number of elements to move
//
// It panics if either range falls outside s, like a slice expression would.
func CopyWithinSlice[T any](s []T, src, dest, count int) {
	if count <= 0 || src == dest {
		return
	}
	_ = s[src : src+count]
	_ = s[dest : dest+count]

	if dest < src {
		gap := src - dest
		for done := 0; done < count; done += gap {
			n := min(gap, count-done)
			copy(s[dest+done:dest+done+n], s[src+done:src+done+n])
		}
		return
	}

	gap := dest - src
	for left := count; left > 0; left -= gap {
		n := min(gap, left)
		copy(s[dest+left-n:dest+left], s[src+left-n:src+left])
	}
}
