// SPDX-License-Identifier: EPL-2.0

package sample

import "math"

// Signed is the set of signed integer sample types.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned is the set of unsigned integer sample types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	float32 | float64
}

// Number is every numeric type a sample can be stored as.
type Number interface {
	Integer | Float
}

// Conversion is the result of converting a scaled float into a stored
// representation.
type Conversion[N Number] struct {
	Value N
	// Clipped reports that the input did not fit and Value was saturated.
	Clipped bool
}

// ToScaledFloat converts a stored sample to a float in [-1.0, 1.0).
//
// Integers are scaled in float64 and rounded to F once at the end, the same
// arithmetic the byte encodings use. Float inputs are cast to F. Non-finite
// values, and values that do not fit into F, become 0.
func ToScaledFloat[F Float, N Number](raw N) F {
	switch v := any(raw).(type) {
	case int8:
		return F(float64(v) / (1 << 7))
	case int16:
		return F(float64(v) / (1 << 15))
	case int32:
		return F(float64(v) / (1 << 31))
	case int64:
		return F(float64(v) / (1 << 63))
	// Flipping the top bit moves the zero point of an unsigned value onto
	// the signed zero.
	case uint8:
		return F(float64(int8(v^(1<<7))) / (1 << 7))
	case uint16:
		return F(float64(int16(v^(1<<15))) / (1 << 15))
	case uint32:
		return F(float64(int32(v^(1<<31))) / (1 << 31))
	case uint64:
		return F(float64(int64(v^(1<<63))) / (1 << 63))
	case float32:
		return castFloat[F](float64(v))
	case float64:
		return castFloat[F](v)
	}
	return 0
}

// FromScaledFloat converts a scaled float to N, truncating toward zero and
// saturating values that do not fit. value is widened to float64 before
// scaling, so a float32 and a float64 holding the same number always store
// the same integer.
//
// TODO: float targets never report clipping, decide whether out of range
// values should saturate to ±1.0 and set Clipped.
func FromScaledFloat[N Number, F Float](value F) Conversion[N] {
	var out Conversion[N]
	switch p := any(&out.Value).(type) {
	case *int8:
		*p, out.Clipped = clamp[int8](float64(value)*(1<<7), math.MinInt8, math.MaxInt8, 1<<7)
	case *int16:
		*p, out.Clipped = clamp[int16](float64(value)*(1<<15), math.MinInt16, math.MaxInt16, 1<<15)
	case *int32:
		*p, out.Clipped = clamp[int32](float64(value)*(1<<31), math.MinInt32, math.MaxInt32, 1<<31)
	case *int64:
		*p, out.Clipped = clamp[int64](float64(value)*(1<<63), math.MinInt64, math.MaxInt64, 1<<63)
	case *uint8:
		*p, out.Clipped = clamp[uint8](float64(value)*(1<<7)+(1<<7), 0, math.MaxUint8, 1<<8)
	case *uint16:
		*p, out.Clipped = clamp[uint16](float64(value)*(1<<15)+(1<<15), 0, math.MaxUint16, 1<<16)
	case *uint32:
		*p, out.Clipped = clamp[uint32](float64(value)*(1<<31)+(1<<31), 0, math.MaxUint32, 1<<32)
	case *uint64:
		*p, out.Clipped = clamp[uint64](float64(value)*(1<<63)+(1<<63), 0, math.MaxUint64, 1<<64)
	case *float32:
		*p = castFloat[float32](float64(value))
	case *float64:
		*p = castFloat[float64](float64(value))
	}
	return out
}

// clamp truncates v and saturates it to [lo, hi]. limit is hi+1 as an exact
// power of two, since hi itself may not be representable as a float64.
func clamp[I Integer](v float64, lo, hi I, limit float64) (I, bool) {
	if math.IsNaN(v) {
		return 0, true
	}
	t := math.Trunc(v)
	if t >= limit {
		return hi, true
	}
	if t < float64(lo) {
		return lo, true
	}
	return I(t), false
}

func castFloat[F Float](v float64) F {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	var zero F
	if _, narrow := any(zero).(float32); narrow && math.Abs(v) > math.MaxFloat32 {
		return 0
	}
	return F(v)
}
