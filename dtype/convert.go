// SPDX-License-Identifier: MIT

// Package dtype - value coercion used by the element codecs.
//
// Conversion rules:
//   - Integer targets: floats are truncated toward zero, NaN/±Inf become 0, and
//     the result wraps modulo 2^32 before narrowing (typed-array semantics).
//   - Uint8Clamped: saturate to [0, 255]; floats round half to even.
//   - Floating targets: any real Go number converts; precision may be lost.
//   - Complex targets: complex values, real numbers (imaginary part 0), and
//     [2]float64 / [2]float32 (re, im) pairs.
//   - bool, string and every other type are rejected for numeric targets.
package dtype

import (
	"math"

	"github.com/x448/float16"
)

const _two32 = 1 << 32

// asFloat64 widens any real Go number to float64.
func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case float16.Float16:
		return float64(x.Float32()), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	}

	return 0, false
}

// asWrappedInt converts a real Go number to an integer reduced modulo 2^32,
// ready to be narrowed to any integer element type of 32 bits or less.
func asWrappedInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x) % _two32, true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x % _two32, true
	case uint:
		return int64(uint64(x) % _two32), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x % _two32), true
	}

	f, ok := asFloat64(v)
	if !ok {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true
	}

	return int64(math.Mod(math.Trunc(f), _two32)), true
}

// asClampedUint8 saturates a real Go number into [0, 255].
func asClampedUint8(v any) (uint8, bool) {
	f, ok := asFloat64(v)
	if !ok {
		return 0, false
	}
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0, true
	case f >= math.MaxUint8:
		return math.MaxUint8, true
	}

	return uint8(math.RoundToEven(f)), true
}

// asComplex128 accepts complex values, real numbers and (re, im) pairs.
func asComplex128(v any) (complex128, bool) {
	switch x := v.(type) {
	case complex128:
		return x, true
	case complex64:
		return complex128(x), true
	case [2]float64:
		return complex(x[0], x[1]), true
	case [2]float32:
		return complex(float64(x[0]), float64(x[1])), true
	}

	f, ok := asFloat64(v)
	if !ok {
		return 0, false
	}

	return complex(f, 0), true
}
