// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds signals and encoded fixtures for tests.
package audiotest

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// Waveform gives the value of a channel at a frame.
type Waveform func(frame, channel int) float32

// Silence is zero everywhere.
func Silence(_, _ int) float32 { return 0 }

// Constant returns a waveform that is value everywhere.
func Constant(value float32) Waveform {
	return func(_, _ int) float32 { return value }
}

// Sine returns a sine of frequency Hz at sampleRate, equal on all channels.
func Sine(sampleRate int, frequency float64) Waveform {
	return func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

// Ramp returns distinct small values that encode exactly in 16 bits:
// (channel*frames + frame + 1) / 256.
func Ramp(frames int) Waveform {
	return func(frame, channel int) float32 {
		return float32(channel*frames+frame+1) / 256
	}
}

// Interleaved renders w into a frame-after-frame slice.
func Interleaved(channels, frames int, w Waveform) []float32 {
	out := make([]float32, 0, channels*frames)
	for frame := range frames {
		for channel := range channels {
			out = append(out, w(frame, channel))
		}
	}
	return out
}

// PCM16 encodes values as little-endian 16-bit PCM, clamping to range.
func PCM16(values []float32) []byte {
	out := make([]byte, 2*len(values))
	for i, v := range values {
		s := math.Round(float64(v) * 32768)
		s = max(-32768, min(32767, s))
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(s)))
	}
	return out
}

// WAV wraps data in a canonical 44-byte RIFF header. format is the
// WAVE format tag, 1 for integer PCM.
func WAV(format, sampleRate, channels, bitDepth int, data []byte) []byte {
	blockAlign := channels * bitDepth / 8

	out := make([]byte, 44, 44+len(data))
	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+len(data)))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], uint16(format))
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(sampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], uint16(bitDepth))
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(len(data)))
	return append(out, data...)
}

// AIFF builds a FORM/AIFF file with COMM and SSND chunks around big-endian
// data.
func AIFF(sampleRate, channels, bitDepth int, data []byte) []byte {
	frames := 0
	if width := channels * ((bitDepth + 7) / 8); width > 0 {
		frames = len(data) / width
	}

	out := make([]byte, 0, 54+len(data))
	out = append(out, "FORM"...)
	out = binary.BigEndian.AppendUint32(out, uint32(46+len(data)))
	out = append(out, "AIFF"...)

	out = append(out, "COMM"...)
	out = binary.BigEndian.AppendUint32(out, 18)
	out = binary.BigEndian.AppendUint16(out, uint16(channels))
	out = binary.BigEndian.AppendUint32(out, uint32(frames))
	out = binary.BigEndian.AppendUint16(out, uint16(bitDepth))
	out = appendExtended(out, uint64(sampleRate))

	out = append(out, "SSND"...)
	out = binary.BigEndian.AppendUint32(out, uint32(8+len(data)))
	out = binary.BigEndian.AppendUint32(out, 0)
	out = binary.BigEndian.AppendUint32(out, 0)
	return append(out, data...)
}

// appendExtended appends v as an 80-bit IEEE 754 extended float.
func appendExtended(b []byte, v uint64) []byte {
	if v == 0 {
		return append(b, make([]byte, 10)...)
	}
	exp := 63 - bits.LeadingZeros64(v)
	b = binary.BigEndian.AppendUint16(b, uint16(16383+exp))
	return binary.BigEndian.AppendUint64(b, v<<(63-exp))
}
