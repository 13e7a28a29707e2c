// SPDX-License-Identifier: EPL-2.0

package audio

import "iter"

// gather copies len(dst) elements of src, stride apart, starting at start.
func gather[T any](dst, src []T, start, stride int) {
	if stride == 1 {
		copy(dst, src[start:start+len(dst)])
		return
	}
	for i := range dst {
		dst[i] = src[start+i*stride]
	}
}

// scatter is the inverse of gather.
func scatter[T any](dst, src []T, start, stride int) {
	if stride == 1 {
		copy(dst[start:start+len(src)], src)
		return
	}
	for i, v := range src {
		dst[start+i*stride] = v
	}
}

func fill[T any](dst []T, value T) {
	for i := range dst {
		dst[i] = value
	}
}

func pointers[T any](buf []T, start, stride, n int) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range n {
			if !yield(&buf[start+i*stride]) {
				return
			}
		}
	}
}
