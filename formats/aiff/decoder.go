// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/bridge"
	"github.com/ik5/audadapt/internal/decoding"
)

// pcmReader is the part of aiff.Decoder used after the header is parsed.
type pcmReader interface {
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

// Decoder reads uncompressed AIFF streams.
type Decoder struct {
	// Log receives decode diagnostics. Nil means the logrus standard logger.
	Log logrus.FieldLogger
}

func (d Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	log := decoding.Logger(d.Log).WithField("function", "aiff.Decoder.Decode")

	// go-audio requires io.ReadSeeker
	rs, err := decoding.ReadSeeker(r)
	if err != nil {
		return nil, fmt.Errorf("reading aiff data: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		log.Debug("Rejecting stream without a FORM/AIFF header")
		return nil, ErrNotAiffFile
	}

	return decodePCM(dec, int(dec.BitDepth), log)
}

func decodePCM(dec pcmReader, bitDepth int, log logrus.FieldLogger) (*audio.Clip, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading aiff samples: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}
	buf.SourceBitDepth = bitDepth
	if bitDepth == 8 {
		signed8(buf.Data)
	}

	samples, err := bridge.NewIntScaled(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	log.WithFields(logrus.Fields{
		"sample_rate": buf.Format.SampleRate,
		"channels":    samples.Channels(),
		"frames":      samples.Frames(),
		"bit_depth":   bitDepth,
	}).Debug("Decoded AIFF stream")

	return &audio.Clip{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   bitDepth,
		Samples:    samples,
	}, nil
}

// signed8 reinterprets 8-bit values as two's complement. AIFF stores them
// signed, but the byte may arrive as 0..255.
func signed8(data []int) {
	for i, v := range data {
		data[i] = int(int8(uint8(v)))
	}
}
