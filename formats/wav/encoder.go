// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audadapt/audio"
	"github.com/ik5/audadapt/internal/decoding"
	"github.com/ik5/audadapt/sample"
	"github.com/ik5/audadapt/sampleio"
)

const (
	headerSize     = 44
	framesPerChunk = 2048
)

// Encoder writes integer PCM WAV streams.
type Encoder struct {
	// BitDepth is 8, 16, 24 or 32. Zero means 16.
	BitDepth int
	// Log receives encode diagnostics. Nil means the logrus standard logger.
	Log logrus.FieldLogger
}

// Encode writes a as a canonical 44-byte header followed by interleaved
// PCM. Values outside [-1, 1) are clamped; the count of clamped samples is
// returned.
func (e Encoder) Encode(w io.Writer, a audio.Indirect[float32], sampleRate int) (clipped int, err error) {
	bitDepth := e.BitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	if !supported(bitDepth) {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	channels := a.Channels()
	if channels < 1 || channels > math.MaxUint16 || sampleRate < 1 {
		return 0, ErrUnsupportedWavLayout
	}

	dataSize := uint64(a.Frames()) * uint64(channels) * uint64(bitDepth/8)
	if dataSize > math.MaxUint32-headerSize+8 {
		return 0, ErrDataTooLarge
	}

	if _, err := w.Write(header(sampleRate, channels, bitDepth, uint32(dataSize))); err != nil {
		return 0, fmt.Errorf("writing WAV header: %w", err)
	}

	switch bitDepth {
	case 8:
		clipped, err = encodeFrames[sample.U8](w, a)
	case 24:
		clipped, err = encodeFrames[sample.I24LE3](w, a)
	case 32:
		clipped, err = encodeFrames[sample.I32LE](w, a)
	default:
		clipped, err = encodeFrames[sample.I16LE](w, a)
	}
	if err != nil {
		return clipped, fmt.Errorf("writing WAV data: %w", err)
	}

	if clipped > 0 {
		decoding.Logger(e.Log).WithFields(logrus.Fields{
			"function":  "wav.Encoder.Encode",
			"clipped":   clipped,
			"bit_depth": bitDepth,
		}).Warn("Samples clipped while encoding")
	}
	return clipped, nil
}

func header(sampleRate, channels, bitDepth int, dataSize uint32) []byte {
	blockAlign := uint16(channels * bitDepth / 8)

	h := make([]byte, headerSize)

	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], headerSize-8+dataSize)
	copy(h[8:12], "WAVE")

	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], formatPCM)
	binary.LittleEndian.PutUint16(h[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(sampleRate)*uint32(blockAlign))
	binary.LittleEndian.PutUint16(h[32:34], blockAlign)
	binary.LittleEndian.PutUint16(h[34:36], uint16(bitDepth))

	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], dataSize)
	return h
}

// encodeFrames interleaves a chunk of frames at a time and hands it to the
// sample writer.
func encodeFrames[E sample.Encoding](w io.Writer, a audio.Indirect[float32]) (clipped int, err error) {
	channels, frames := a.Channels(), a.Frames()
	if frames == 0 {
		return 0, nil
	}

	buf := make([]float32, min(frames, framesPerChunk)*channels)
	for start := 0; start < frames; start += framesPerChunk {
		n := min(frames-start, framesPerChunk)
		chunk := buf[:n*channels]
		for i := range n {
			a.WriteFromFrameToSlice(start+i, 0, chunk[i*channels:(i+1)*channels])
		}

		c, err := sampleio.WriteConvertedAll[E](w, chunk)
		clipped += c
		if err != nil {
			return clipped, err
		}
	}
	return clipped, nil
}
