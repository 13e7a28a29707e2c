// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files. The
// whole stream is decoded into one buffer of 16-bit little-endian stereo
// PCM, and the returned audio.Clip reads that buffer in place:
//
//	clip, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	right := make([]float32, clip.Frames())
//	clip.Samples.WriteFromChannelToSlice(1, 0, right)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0)
//   - Channels: always 2, mono files are duplicated by go-mp3
//   - Sample rate: that of the MP3 stream
//
// MP3 writing is not supported.
package mp3
