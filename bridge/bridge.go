// SPDX-License-Identifier: EPL-2.0

package bridge

import (
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audadapt/audio"
)

// geometry returns the channel and frame counts of an interleaved go-audio
// buffer holding n values.
func geometry(format *goaudio.Format, n int) (channels, frames int, err error) {
	if format == nil {
		return 0, 0, ErrNoFormat
	}
	channels = format.NumChannels
	if channels <= 0 {
		return 0, 0, ErrNoFormat
	}
	return channels, n / channels, nil
}

// NewIntBuffer wraps the raw values of buf. A trailing partial frame is
// not accessible.
func NewIntBuffer(buf *goaudio.IntBuffer) (*audio.InterleavedSlice[int], error) {
	channels, frames, err := geometry(buf.Format, len(buf.Data))
	if err != nil {
		return nil, err
	}
	return audio.NewInterleavedSlice(buf.Data, channels, frames)
}

// NewFloat32Buffer wraps buf.
func NewFloat32Buffer(buf *goaudio.Float32Buffer) (*audio.InterleavedSlice[float32], error) {
	channels, frames, err := geometry(buf.Format, len(buf.Data))
	if err != nil {
		return nil, err
	}
	return audio.NewInterleavedSlice(buf.Data, channels, frames)
}

// NewFloatBuffer wraps buf.
func NewFloatBuffer(buf *goaudio.FloatBuffer) (*audio.InterleavedSlice[float64], error) {
	channels, frames, err := geometry(buf.Format, len(buf.Data))
	if err != nil {
		return nil, err
	}
	return audio.NewInterleavedSlice(buf.Data, channels, frames)
}

// ToFloat32Buffer copies a into a new interleaved go-audio buffer.
func ToFloat32Buffer(a audio.Indirect[float32], sampleRate int) *goaudio.Float32Buffer {
	channels, frames := a.Channels(), a.Frames()
	out := &goaudio.Float32Buffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           make([]float32, channels*frames),
		SourceBitDepth: 32,
	}
	dst, _ := audio.NewInterleavedSlice(out.Data, channels, frames)
	for ch := range channels {
		dst.WriteFromOtherToChannel(a, ch, ch, 0, 0, frames)
	}
	return out
}
