// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. Vorbis decodes to floating point, so the clip owns a plain
// interleaved float32 buffer:
//
//	clip, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	for frame, samples := range clip.Samples.IterFrames() {
//	    // samples yields one value per channel
//	}
//
// Clip.BitDepth is 32 for Vorbis streams. Vorbis encoding is not
// supported.
package vorbis
