// SPDX-License-Identifier: EPL-2.0

package sampleio

import (
	"io"

	"github.com/ik5/audadapt/sample"
)

// WriteNumber writes one sample encoded as C.
func WriteNumber[C sample.Codec[N], N sample.Number](w io.Writer, value N) error {
	var c C
	var buf [8]byte
	b := buf[:c.BytesPerSample()]
	c.Encode(b, value)
	_, err := w.Write(b)
	return err
}

// WriteConverted scales value into encoding E and writes it. The sample is
// written even when it clipped.
func WriteConverted[E sample.Encoding, F sample.Float](w io.Writer, value F) (clipped bool, err error) {
	var e E
	var buf [8]byte
	b := buf[:e.BytesPerSample()]
	clipped = e.EncodeScaled(b, float64(value))
	_, err = w.Write(b)
	return clipped, err
}

// WriteNumbers writes every value of values.
func WriteNumbers[C sample.Codec[N], N sample.Number](w io.Writer, values []N) error {
	var c C
	_, err := writeAll(w, c.BytesPerSample(), len(values), func(b []byte, i int) bool {
		c.Encode(b, values[i])
		return false
	})
	return err
}

// WriteConvertedAll scales and writes every value and returns how many of
// them clipped.
func WriteConvertedAll[E sample.Encoding, F sample.Float](w io.Writer, values []F) (clipped int, err error) {
	var e E
	return writeAll(w, e.BytesPerSample(), len(values), func(b []byte, i int) bool {
		return e.EncodeScaled(b, float64(values[i]))
	})
}

func writeAll(w io.Writer, width, n int, encode func(b []byte, i int) bool) (clipped int, err error) {
	if n == 0 {
		return 0, nil
	}

	per := max(chunkSize/width, 1)
	buf := make([]byte, min(n, per)*width)
	for done := 0; done < n; {
		k := min(n-done, per)
		chunk := buf[:k*width]
		for i := range k {
			if encode(chunk[i*width:(i+1)*width], done+i) {
				clipped++
			}
		}
		if _, err := w.Write(chunk); err != nil {
			return clipped, err
		}
		done += k
	}
	return clipped, nil
}
