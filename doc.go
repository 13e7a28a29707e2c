// SPDX-License-Identifier: EPL-2.0

// Package audadapt gives uniform, zero-copy access to audio samples held in
// any storage layout.
//
// The building blocks live in subpackages:
//
//   - sample: byte codecs for integer and float samples, and the scaled
//     float conversions between them
//   - layout: index math for interleaved and sequential storage
//   - audio: the accessor interfaces (Reader through DirectMut) and the
//     wrappers that implement them over slices, nested slices, owned
//     buffers, raw bytes and numeric buffers
//   - stats: RMS, min/max and peak-to-peak per channel or per frame
//   - sampleio: reading and writing samples from io.Reader and io.Writer
//   - bridge: views over github.com/go-audio/audio buffers
//   - formats/...: WAV, AIFF, MP3, Ogg Vorbis and FLAC decoders that return
//     an accessor over the decoded data
//
// This package ties the decoders together:
//
//	clip, err := audadapt.DecodeFile("input.flac")
//	if err != nil {
//	    // Handle error
//	}
//	for ch, level := range audadapt.Levels[float32](clip.Samples) {
//	    fmt.Printf("channel %d: rms %.3f peak-to-peak %.3f\n", ch, level.RMS, level.PeakToPeak)
//	}
//
// # Accessors
//
// Every wrapper answers the same questions regardless of layout: how many
// channels and frames it has, and what the sample at (channel, frame) is.
// Bulk transfers copy a channel or a frame to or from a plain slice and
// return how many samples moved; an index out of range moves nothing:
//
//	buf := []int16{1, 4, 2, 5, 3, 6}
//	s, _ := audio.NewInterleavedSlice(buf, 2, 3)
//	ch1 := make([]int16, 3)
//	s.WriteFromChannelToSlice(1, 0, ch1) // [4 5 6]
//
// Converting wrappers expose integer or byte storage as scaled floats in
// [-1.0, 1.0). Writes clamp to the storage range and report clipping:
//
//	pcm := make([]byte, 4)
//	b, _ := audio.NewInterleavedBytes[float32, sample.I16LE](pcm, 1, 2)
//	clipped, ok := b.Write(0, 0, 1.5) // true, true
//
// # Writing WAV Files
//
// wav.Encoder writes any float32 accessor:
//
//	clipped, err := wav.Encoder{BitDepth: 24}.Encode(out, clip.Samples, clip.SampleRate)
package audadapt
