// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"math"
	"unsafe"

	goaudio "github.com/go-audio/audio"
)

// Encoding is a fixed-width byte representation of one sample. Implementations
// are zero-size types so they can be used as type parameters.
type Encoding interface {
	BytesPerSample() int
	// DecodeScaled reads one sample from the start of b as a scaled float.
	DecodeScaled(b []byte) float64
	// EncodeScaled stores value at the start of b and reports clipping.
	EncodeScaled(b []byte, value float64) (clipped bool)
}

// Codec is an Encoding that also exposes its raw numeric value.
type Codec[N Number] interface {
	Encoding
	Decode(b []byte) N
	Encode(b []byte, value N)
}

// ByteOrder selects the byte order of an encoding. The set is closed:
// LittleEndian and BigEndian.
type ByteOrder interface {
	Order() binary.ByteOrder
	big() bool
}

type LittleEndian struct{}

func (LittleEndian) Order() binary.ByteOrder { return binary.LittleEndian }
func (LittleEndian) big() bool               { return false }

type BigEndian struct{}

func (BigEndian) Order() binary.ByteOrder { return binary.BigEndian }
func (BigEndian) big() bool               { return true }

// Fixed encodes N in its natural width using byte order O.
type Fixed[N Number, O ByteOrder] struct{}

func (Fixed[N, O]) BytesPerSample() int {
	var v N
	return int(unsafe.Sizeof(v))
}

func (Fixed[N, O]) Decode(b []byte) N {
	var o O
	order := o.Order()

	var v N
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(b[0])
	case *uint8:
		*p = b[0]
	case *int16:
		*p = int16(order.Uint16(b))
	case *uint16:
		*p = order.Uint16(b)
	case *int32:
		*p = int32(order.Uint32(b))
	case *uint32:
		*p = order.Uint32(b)
	case *int64:
		*p = int64(order.Uint64(b))
	case *uint64:
		*p = order.Uint64(b)
	case *float32:
		*p = math.Float32frombits(order.Uint32(b))
	case *float64:
		*p = math.Float64frombits(order.Uint64(b))
	}
	return v
}

func (Fixed[N, O]) Encode(b []byte, value N) {
	var o O
	order := o.Order()

	switch v := any(value).(type) {
	case int8:
		b[0] = byte(v)
	case uint8:
		b[0] = v
	case int16:
		order.PutUint16(b, uint16(v))
	case uint16:
		order.PutUint16(b, v)
	case int32:
		order.PutUint32(b, uint32(v))
	case uint32:
		order.PutUint32(b, v)
	case int64:
		order.PutUint64(b, uint64(v))
	case uint64:
		order.PutUint64(b, v)
	case float32:
		order.PutUint32(b, math.Float32bits(v))
	case float64:
		order.PutUint64(b, math.Float64bits(v))
	}
}

func (f Fixed[N, O]) DecodeScaled(b []byte) float64 {
	return ToScaledFloat[float64](f.Decode(b))
}

func (f Fixed[N, O]) EncodeScaled(b []byte, value float64) bool {
	c := FromScaledFloat[N](value)
	f.Encode(b, c.Value)
	return c.Clipped
}

// Packing selects how a 24-bit sample is laid out: Packed (3 bytes) or
// Padded (4 bytes, one unused byte on the most significant side).
type Packing interface {
	Width() int
}

type Packed struct{}

func (Packed) Width() int { return 3 }

type Padded struct{}

func (Padded) Width() int { return 4 }

// Int24 encodes a 24-bit sample. The numeric value is left aligned in N: the
// lowest stored byte lands in bits 8..15 and bits 0..7 are always zero. Encode
// drops those low 8 bits.
type Int24[N int32 | uint32, O ByteOrder, P Packing] struct{}

func (Int24[N, O, P]) BytesPerSample() int {
	var p P
	return p.Width()
}

// payload returns the three significant bytes of b.
func (Int24[N, O, P]) payload(b []byte) []byte {
	var o O
	var p P
	if o.big() && p.Width() == 4 {
		return b[1:4]
	}
	return b[:3]
}

func (e Int24[N, O, P]) Decode(b []byte) N {
	var o O
	s := e.payload(b)

	var v N
	switch p := any(&v).(type) {
	case *int32:
		if o.big() {
			*p = goaudio.Int24BETo32(s) << 8
		} else {
			*p = goaudio.Int24LETo32(s) << 8
		}
	case *uint32:
		if o.big() {
			*p = goaudio.Uint24to32(s) << 8
		} else {
			*p = uint32(s[0])<<8 | uint32(s[1])<<16 | uint32(s[2])<<24
		}
	}
	return v
}

func (e Int24[N, O, P]) Encode(b []byte, value N) {
	var o O
	var p P

	u := uint32(value)
	if p.Width() == 4 {
		// the padding byte is always written as zero
		if o.big() {
			b[0] = 0
		} else {
			b[3] = 0
		}
	}
	s := e.payload(b)
	if o.big() {
		s[0], s[1], s[2] = byte(u>>24), byte(u>>16), byte(u>>8)
	} else {
		s[0], s[1], s[2] = byte(u>>8), byte(u>>16), byte(u>>24)
	}
}

func (e Int24[N, O, P]) DecodeScaled(b []byte) float64 {
	return ToScaledFloat[float64](e.Decode(b))
}

func (e Int24[N, O, P]) EncodeScaled(b []byte, value float64) bool {
	c := FromScaledFloat[N](value)
	e.Encode(b, c.Value)
	return c.Clipped
}

// Single byte encodings. Byte order is irrelevant for them.
type (
	I8 = Fixed[int8, LittleEndian]
	U8 = Fixed[uint8, LittleEndian]
)

type (
	I16LE = Fixed[int16, LittleEndian]
	I16BE = Fixed[int16, BigEndian]
	U16LE = Fixed[uint16, LittleEndian]
	U16BE = Fixed[uint16, BigEndian]

	I32LE = Fixed[int32, LittleEndian]
	I32BE = Fixed[int32, BigEndian]
	U32LE = Fixed[uint32, LittleEndian]
	U32BE = Fixed[uint32, BigEndian]

	I64LE = Fixed[int64, LittleEndian]
	I64BE = Fixed[int64, BigEndian]
	U64LE = Fixed[uint64, LittleEndian]
	U64BE = Fixed[uint64, BigEndian]

	F32LE = Fixed[float32, LittleEndian]
	F32BE = Fixed[float32, BigEndian]
	F64LE = Fixed[float64, LittleEndian]
	F64BE = Fixed[float64, BigEndian]
)

// 24-bit encodings; the 3 suffix is packed, the 4 suffix padded.
type (
	I24LE3 = Int24[int32, LittleEndian, Packed]
	I24LE4 = Int24[int32, LittleEndian, Padded]
	I24BE3 = Int24[int32, BigEndian, Packed]
	I24BE4 = Int24[int32, BigEndian, Padded]
	U24LE3 = Int24[uint32, LittleEndian, Packed]
	U24LE4 = Int24[uint32, LittleEndian, Padded]
	U24BE3 = Int24[uint32, BigEndian, Packed]
	U24BE4 = Int24[uint32, BigEndian, Padded]
)
