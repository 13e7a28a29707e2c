// SPDX-License-Identifier: EPL-2.0

// Package sampleio reads and writes fixed width encoded samples on byte
// streams.
//
// The encoding is a type parameter, one of the zero size types from package
// sample:
//
//	v, err := sampleio.ReadNumber[sample.I16LE, int16](r)
//	f, err := sampleio.ReadConverted[sample.I24LE3, float32](r)
//
// The Number functions move raw values, the Converted functions scale them
// to and from floats in [-1.0, 1.0).
//
// # End of stream
//
// Single and exact reads fail with io.EOF when the stream ends before the
// first byte of a sample, and with io.ErrUnexpectedEOF when it ends inside a
// sample. The ToEnd readers treat a stream ending on a sample boundary as
// success; a trailing partial sample is still io.ErrUnexpectedEOF. Any other
// error of the underlying reader or writer is returned unchanged.
//
// Bulk functions move data through a small internal buffer, so wrapping the
// stream in a bufio.Reader or bufio.Writer is only needed for the single
// sample functions.
package sampleio
