// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/internal/decoding"
	"github.com/ik5/audadapt/sample"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct {
	// Log receives decode diagnostics. Nil means the logrus standard logger.
	Log logrus.FieldLogger
}

// Decode reads the whole stream. The clip reads and writes the decoded PCM
// bytes directly; nothing is converted up front.
func (d Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}
	return decodePCM(dec, decoding.Logger(d.Log).WithField("function", "mp3.Decoder.Decode"))
}

func decodePCM(dec mp3Reader, log logrus.FieldLogger) (*audio.Clip, error) {
	var pcm bytes.Buffer
	if l, ok := dec.(interface{ Length() int64 }); ok && l.Length() > 0 {
		pcm.Grow(int(l.Length()))
	}
	if _, err := pcm.ReadFrom(dec); err != nil {
		return nil, fmt.Errorf("decoding mp3 stream: %w", err)
	}

	data := pcm.Bytes()
	if extra := len(data) % bytesPerFrame; extra != 0 {
		log.WithField("bytes", extra).Warn("Dropping trailing partial frame")
	}

	samples, err := audio.NewInterleavedBytes[float32, sample.I16LE](data, channels, len(data)/bytesPerFrame)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"sample_rate": dec.SampleRate(),
		"frames":      samples.Frames(),
	}).Debug("Decoded MP3 stream")

	return &audio.Clip{
		SampleRate: dec.SampleRate(),
		BitDepth:   16,
		Samples:    samples,
	}, nil
}
