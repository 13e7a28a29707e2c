// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/bridge"
	"github.com/ik5/audadapt/internal/decoding"
)

const formatPCM = 1

// Decoder reads integer PCM WAV streams of 8, 16, 24 or 32 bits.
type Decoder struct {
	// Log receives decode diagnostics. Nil means the logrus standard logger.
	Log logrus.FieldLogger
}

// Decode reads the whole stream. The clip reads and writes the decoded
// integers in place as scaled float32 values.
func (d Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	log := decoding.Logger(d.Log).WithField("function", "wav.Decoder.Decode")

	rs, err := decoding.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		log.WithField("error", dec.Err()).Debug("Rejecting stream without a WAVE header")
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM {
		log.WithField("format_tag", dec.WavAudioFormat).Debug("Rejecting non PCM stream")
		return nil, ErrUnsupportedWavLayout
	}
	if !supported(int(dec.BitDepth)) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	return newClip(buf, log)
}

func supported(bitDepth int) bool {
	switch bitDepth {
	case 8, 16, 24, 32:
		return true
	}
	return false
}

// newClip wraps a decoded buffer. 8-bit WAV is offset binary, every other
// depth is two's complement.
func newClip(buf *goaudio.IntBuffer, log logrus.FieldLogger) (*audio.Clip, error) {
	var (
		samples *audio.AdapterMut[float32]
		err     error
	)
	if buf.SourceBitDepth == 8 {
		samples, err = bridge.NewUnsignedIntScaled(buf)
	} else {
		samples, err = bridge.NewIntScaled(buf)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	if extra := len(buf.Data) % samples.Channels(); extra != 0 {
		log.WithField("samples", extra).Warn("Dropping trailing partial frame")
	}
	log.WithFields(logrus.Fields{
		"sample_rate": buf.Format.SampleRate,
		"channels":    samples.Channels(),
		"frames":      samples.Frames(),
		"bit_depth":   buf.SourceBitDepth,
	}).Debug("Decoded WAV stream")

	return &audio.Clip{
		SampleRate: buf.Format.SampleRate,
		BitDepth:   buf.SourceBitDepth,
		Samples:    samples,
	}, nil
}
