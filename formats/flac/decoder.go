// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/internal/decoding"
)

// frameParser is the part of flac.Stream used after STREAMINFO is read.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

// Decoder reads FLAC streams.
type Decoder struct {
	// Log receives decode diagnostics. Nil means the logrus standard logger.
	Log logrus.FieldLogger
}

// streamInfo is the subset of STREAMINFO the decoder needs.
type streamInfo struct {
	sampleRate int
	channels   int
	bitDepth   int
	// frames is a capacity hint; zero when the encoder did not record it.
	frames uint64
}

// Decode reads every frame of the stream. r is not closed.
func (d Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("opening flac stream: %w", err)
	}

	info := streamInfo{
		sampleRate: int(stream.Info.SampleRate),
		channels:   int(stream.Info.NChannels),
		bitDepth:   int(stream.Info.BitsPerSample),
		frames:     stream.Info.NSamples,
	}
	return decodeFrames(stream, info, decoding.Logger(d.Log).WithField("function", "flac.Decoder.Decode"))
}

// decodeFrames collects one vector per channel. Samples are stored shifted
// to the top of an int32 so the scaled view does not depend on bit depth.
func decodeFrames(p frameParser, info streamInfo, log logrus.FieldLogger) (*audio.Clip, error) {
	if info.channels < 1 {
		return nil, ErrNoChannels
	}
	if info.bitDepth < 4 || info.bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.bitDepth)
	}
	shift := uint(32 - info.bitDepth)

	vectors := make([][]int32, info.channels)
	if info.frames > 0 && info.frames <= 1<<28 {
		for ch := range vectors {
			vectors[ch] = make([]int32, 0, info.frames)
		}
	}

	for {
		f, err := p.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding flac frame: %w", err)
		}
		if len(f.Subframes) != info.channels {
			return nil, fmt.Errorf("%w: %d subframes, %d channels", ErrChannelMismatch, len(f.Subframes), info.channels)
		}

		n := int(f.BlockSize)
		for ch, sub := range f.Subframes {
			for _, s := range sub.Samples[:min(n, len(sub.Samples))] {
				vectors[ch] = append(vectors[ch], s<<shift)
			}
		}
	}

	frames := len(vectors[0])
	for _, v := range vectors[1:] {
		frames = min(frames, len(v))
	}
	nested, err := audio.NewSequentialNested(vectors, info.channels, frames)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"sample_rate": info.sampleRate,
		"channels":    info.channels,
		"frames":      frames,
		"bit_depth":   info.bitDepth,
	}).Debug("Decoded FLAC stream")

	return &audio.Clip{
		SampleRate: info.sampleRate,
		BitDepth:   info.bitDepth,
		Samples:    audio.NewConvertMut[float32, int32](nested),
	}, nil
}
