// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/ik5/audadapt/internal/audiotest"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	packet     int // samples per Read, as a decoded packet would give
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.offset >= len(m.samples) {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}

	if m.packet > 0 && len(buf) > m.packet {
		buf = buf[:m.packet]
	}
	n := copy(buf, m.samples[m.offset:])
	m.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not Ogg Vorbis data")},
		{"empty", nil},
		{"wav", audiotest.WAV(1, 8000, 1, 16, []byte{0, 0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestDecodeSamples(t *testing.T) {
	t.Parallel()

	const frames = 3000
	values := audiotest.Interleaved(2, frames, audiotest.Sine(48000, 1000))

	tests := []struct {
		name   string
		packet int
	}{
		{"one read", 0},
		{"short packets", 700},
		{"single samples", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dec := &mockOggVorbisReader{sampleRate: 48000, channels: 2, samples: values, packet: tt.packet}
			clip, err := decodeSamples(dec, logrus.StandardLogger())
			if err != nil {
				t.Fatalf("decodeSamples() error = %v", err)
			}
			if clip.SampleRate != 48000 || clip.Channels() != 2 || clip.Frames() != frames {
				t.Fatalf("clip = %d Hz %dx%d, want 48000 Hz 2x%d", clip.SampleRate, clip.Channels(), clip.Frames(), frames)
			}

			frame := make([]float32, 2)
			for _, fr := range []int{0, 1, frames / 2, frames - 1} {
				clip.Samples.WriteFromFrameToSlice(fr, 0, frame)
				if frame[0] != values[2*fr] || frame[1] != values[2*fr+1] {
					t.Errorf("frame %d = %v, want %v", fr, frame, values[2*fr:2*fr+2])
				}
			}
		})
	}
}

func TestDecodeSamples_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dec  *mockOggVorbisReader
		want error
	}{
		{"no channels", &mockOggVorbisReader{channels: 0}, ErrNoChannels},
		{"read error", &mockOggVorbisReader{channels: 1, samples: []float32{0.1}, err: io.ErrUnexpectedEOF}, io.ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := decodeSamples(tt.dec, logrus.StandardLogger()); !errors.Is(err, tt.want) {
				t.Errorf("decodeSamples() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeSamples_PartialFrame(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	dec := &mockOggVorbisReader{channels: 2, samples: []float32{0.1, 0.2, 0.3}}

	clip, err := decodeSamples(dec, logger)
	if err != nil {
		t.Fatalf("decodeSamples() error = %v", err)
	}
	if clip.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", clip.Frames())
	}
	if e := hook.LastEntry(); e == nil || e.Level != logrus.WarnLevel {
		t.Errorf("last entry = %+v, want partial frame warning", e)
	}
}

func BenchmarkDecodeSamples(b *testing.B) {
	values := make([]float32, 2*44100)

	b.ReportAllocs()

	for b.Loop() {
		dec := &mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: values, packet: 2048}
		if _, err := decodeSamples(dec, logrus.StandardLogger()); err != nil {
			b.Fatal(err)
		}
	}
}
