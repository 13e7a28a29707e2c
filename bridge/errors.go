// SPDX-License-Identifier: EPL-2.0

package bridge

import "errors"

var (
	// ErrNoFormat indicates a go-audio buffer without a Format
	ErrNoFormat = errors.New("buffer has no format")

	// ErrBitDepth indicates a source bit depth outside 1..32
	ErrBitDepth = errors.New("unsupported source bit depth")
)
