// SPDX-License-Identifier: EPL-2.0

// Package sample converts between stored sample representations and scaled
// floating point values.
//
// Scaled floats live in the range [-1.0, 1.0). Signed integers of N bits are
// divided by 2^(N-1); unsigned integers use 2^(N-1) as their zero point.
//
// # Numbers
//
//	f := sample.ToScaledFloat[float32](int16(-16384)) // -0.5
//	c := sample.FromScaledFloat[int16](1.1)           // {Value: 32767, Clipped: true}
//
// # Byte Encodings
//
// Byte encodings are zero-size types used as type parameters. Each one knows
// its width and byte order:
//
//	var enc sample.I16LE
//	v := enc.DecodeScaled([]byte{0x00, 0x40}) // 0.5
//
// 24-bit encodings come in a packed 3 byte form and a padded 4 byte form. They
// decode to an int32 (or uint32) holding the sample in its upper 24 bits, so
// scaling is the same as for 32-bit samples.
//
// # Clipping
//
// Conversion to an integer never fails. NaN becomes zero, values above the
// range saturate to the maximum and values below to the minimum; in all three
// cases Clipped is set.
package sample
