// SPDX-License-Identifier: EPL-2.0

package sampleio

import (
	"errors"
	"io"

	"github.com/ik5/audadapt/sample"
)

// chunkSize is the scratch size, in bytes, of the bulk functions.
const chunkSize = 4096

// ReadNumber reads one sample encoded as C.
func ReadNumber[C sample.Codec[N], N sample.Number](r io.Reader) (N, error) {
	var c C
	var buf [8]byte
	b := buf[:c.BytesPerSample()]
	if _, err := io.ReadFull(r, b); err != nil {
		var zero N
		return zero, err
	}
	return c.Decode(b), nil
}

// ReadConverted reads one sample encoded as E and scales it to F.
func ReadConverted[E sample.Encoding, F sample.Float](r io.Reader) (F, error) {
	var e E
	var buf [8]byte
	b := buf[:e.BytesPerSample()]
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, err
	}
	return sample.ToScaledFloat[F](e.DecodeScaled(b)), nil
}

// ReadNumbersExact fills dst. It fails unless len(dst) samples are read.
func ReadNumbersExact[C sample.Codec[N], N sample.Number](r io.Reader, dst []N) error {
	var c C
	return readExact(r, c.BytesPerSample(), len(dst), func(b []byte, i int) {
		dst[i] = c.Decode(b)
	})
}

// ReadConvertedExact fills dst with scaled samples.
func ReadConvertedExact[E sample.Encoding, F sample.Float](r io.Reader, dst []F) error {
	var e E
	return readExact(r, e.BytesPerSample(), len(dst), func(b []byte, i int) {
		dst[i] = sample.ToScaledFloat[F](e.DecodeScaled(b))
	})
}

// ReadNumbersToEnd appends samples to dst until the stream ends and returns
// the extended slice.
func ReadNumbersToEnd[C sample.Codec[N], N sample.Number](r io.Reader, dst []N) ([]N, error) {
	var c C
	err := readToEnd(r, c.BytesPerSample(), func(b []byte) {
		dst = append(dst, c.Decode(b))
	})
	return dst, err
}

// ReadConvertedToEnd appends scaled samples to dst until the stream ends.
func ReadConvertedToEnd[E sample.Encoding, F sample.Float](r io.Reader, dst []F) ([]F, error) {
	var e E
	err := readToEnd(r, e.BytesPerSample(), func(b []byte) {
		dst = append(dst, sample.ToScaledFloat[F](e.DecodeScaled(b)))
	})
	return dst, err
}

// readExact reads n samples of width bytes and hands each to decode. Samples
// are decoded as soon as their chunk is complete, so on error dst holds every
// sample before the failing chunk.
func readExact(r io.Reader, width, n int, decode func(b []byte, i int)) error {
	if n == 0 {
		return nil
	}

	per := max(chunkSize/width, 1)
	buf := make([]byte, min(n, per)*width)
	for done := 0; done < n; {
		k := min(n-done, per)
		chunk := buf[:k*width]
		read, err := io.ReadFull(r, chunk)
		whole := read / width
		for i := range whole {
			decode(chunk[i*width:(i+1)*width], done+i)
		}
		if err != nil {
			if errors.Is(err, io.EOF) && done > 0 {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		done += k
	}
	return nil
}

// readToEnd decodes samples until r is exhausted.
func readToEnd(r io.Reader, width int, decode func(b []byte)) error {
	buf := make([]byte, max(chunkSize/width, 1)*width)
	for {
		read, err := io.ReadFull(r, buf)
		whole := read / width
		for i := range whole {
			decode(buf[i*width : (i+1)*width])
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			if read%width != 0 {
				return io.ErrUnexpectedEOF
			}
			return nil
		default:
			return err
		}
	}
}
