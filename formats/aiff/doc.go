// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the container. The
// decoded integers stay in the go-audio buffer and the returned audio.Clip
// exposes them as float32 in [-1.0, 1.0):
//
//	clip, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	level := stats.ChannelLevel[float32](clip.Samples, 0)
//
// 8, 16, 24 and 32-bit PCM are supported. AIFF stores samples big-endian
// and signed, including 8-bit ones.
//
// Streams that are not an io.ReadSeeker are read into memory first, since
// the container must be seeked.
//
// # Error Handling
//
//   - ErrNotAiffFile: no FORM/AIFF header
//   - ErrUnsupportedBitDepth: a sample size the decoder cannot scale
//   - ErrUnsupportedAiffLayout: no channels in the COMM chunk
//
// AIFF-C compressed files (.aifc) are not supported.
package aiff
