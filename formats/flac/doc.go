// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to parse and decode frames. Each
// channel is collected into its own int32 vector, and the returned
// audio.Clip reads those vectors as float32 in [-1.0, 1.0):
//
//	clip, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(clip.BitDepth, clip.Duration())
//
// All bit depths FLAC allows, 4 to 32, are supported. The reader passed to
// Decode is not closed.
package flac
