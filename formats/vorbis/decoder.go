// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"slices"

	"github.com/jfreymuth/oggvorbis"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/internal/decoding"
)

const readChunk = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved samples and returns how many it wrote.
	Read(p []float32) (int, error)
}

// Decoder reads Ogg Vorbis streams.
type Decoder struct {
	// Log receives decode diagnostics. Nil means the logrus standard logger.
	Log logrus.FieldLogger
}

func (d Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg stream: %w", err)
	}
	return decodeSamples(dec, decoding.Logger(d.Log).WithField("function", "vorbis.Decoder.Decode"))
}

// decodeSamples drains dec into one interleaved buffer owned by the clip.
func decodeSamples(dec oggReader, log logrus.FieldLogger) (*audio.Clip, error) {
	channels := dec.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	buf := make([]float32, 0, readChunk)
	for {
		if len(buf) == cap(buf) {
			buf = slices.Grow(buf, readChunk)
		}
		n, err := dec.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding ogg stream: %w", err)
		}
	}

	if extra := len(buf) % channels; extra != 0 {
		log.WithField("samples", extra).Warn("Dropping trailing partial frame")
	}

	samples, err := audio.NewInterleavedOwnedFrom(buf, channels, len(buf)/channels)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"sample_rate": dec.SampleRate(),
		"channels":    channels,
		"frames":      samples.Frames(),
	}).Debug("Decoded Vorbis stream")

	return &audio.Clip{
		SampleRate: dec.SampleRate(),
		BitDepth:   32,
		Samples:    samples,
	}, nil
}
