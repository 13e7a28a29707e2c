// SPDX-License-Identifier: EPL-2.0

// Package bridge exposes github.com/go-audio/audio buffers through the
// accessors of package audio, and copies accessors back into go-audio
// buffers.
//
// go-audio buffers are interleaved slices plus a Format, so the float
// buffers map straight onto audio.InterleavedSlice without copying:
//
//	buf, err := bridge.NewFloat32Buffer(pcm)
//	left, _ := buf.ChannelSamples(0)
//
// Integer buffers hold unscaled PCM values of some source bit depth.
// NewIntBuffer gives access to the raw values; NewIntScaled scales them to
// float32 in [-1.0, 1.0) using the buffer's SourceBitDepth.
package bridge
