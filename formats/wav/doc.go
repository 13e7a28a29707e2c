// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files.
//
// Decoding is done by github.com/go-audio/wav. The decoded integers stay in
// the go-audio buffer; the returned audio.Clip reads and writes them as
// float32 in [-1.0, 1.0) without a second copy:
//
//	clip, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	left := make([]float32, clip.Frames())
//	clip.Samples.WriteFromChannelToSlice(0, 0, left)
//
// 8, 16, 24 and 32-bit PCM are supported. 8-bit samples are unsigned, as
// the format requires.
//
// Encoder writes any audio.Indirect[float32] as a canonical 44-byte header
// followed by interleaved samples:
//
//	clipped, err := wav.Encoder{BitDepth: 24}.Encode(out, clip.Samples, clip.SampleRate)
//
// Samples outside [-1.0, 1.0) are clamped and counted in clipped.
//
// # Errors
//
//   - ErrNotWavFile: no RIFF/WAVE header
//   - ErrUnsupportedWavLayout: not integer PCM, or no channels
//   - ErrUnsupportedBitDepth: a depth other than 8, 16, 24 or 32
//   - ErrUnsupportedWavChunks: the data chunk is missing or unreadable
//   - ErrDataTooLarge: the clip does not fit in a RIFF file
package wav
