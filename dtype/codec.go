// SPDX-License-Identifier: MIT

// Package dtype - element codecs.
//
// Purpose:
//   - One Codec per DType translating between a buffer position and a Go value.
//   - Dispatch happens once, in CodecFor, through a switch on the tag.
//
// Decoded value types:
//
//	Int8 → int8, Uint8/Uint8Clamped → uint8, Int16 → int16, Uint16 → uint16,
//	Int32 → int32, Uint32 → uint32, Float16/Float32 → float32, Float64 → float64,
//	Complex64 → complex64, Complex128 → complex128, Generic → the stored value.
//
// AI-Hints:
//   - Callers must pair a codec with a buffer of the same DType (see Check) and
//     an in-range position; codecs do not re-validate either.
package dtype

import (
	"fmt"

	"github.com/x448/float16"
)

// Codec reads and writes one logical element at a buffer position.
type Codec interface {
	// Decode returns the element at pos.
	Decode(buf Buffer, pos int) any
	// Encode writes v at pos, or returns ErrValueType without writing.
	Encode(buf Buffer, pos int, v any) error
}

// CodecFor returns the codec for dt.
//
// Errors:
//   - ErrUnknownDType.
func CodecFor(dt DType) (Codec, error) {
	switch dt {
	case Int8:
		return int8Codec{}, nil
	case Uint8:
		return uint8Codec{}, nil
	case Uint8Clamped:
		return uint8ClampedCodec{}, nil
	case Int16:
		return int16Codec{}, nil
	case Uint16:
		return uint16Codec{}, nil
	case Int32:
		return int32Codec{}, nil
	case Uint32:
		return uint32Codec{}, nil
	case Float16:
		return float16Codec{}, nil
	case Float32:
		return float32Codec{}, nil
	case Float64:
		return float64Codec{}, nil
	case Complex64:
		return complex64Codec{}, nil
	case Complex128:
		return complex128Codec{}, nil
	case Generic:
		return genericCodec{}, nil
	}

	return nil, fmt.Errorf("CodecFor(%s): %w", dt, ErrUnknownDType)
}

// valueErrorf reports an unencodable value with its dynamic type.
func valueErrorf(dt DType, v any) error {
	return fmt.Errorf("encode %T into %s: %w", v, dt, ErrValueType)
}

type (
	int8Codec         struct{}
	uint8Codec        struct{}
	uint8ClampedCodec struct{}
	int16Codec        struct{}
	uint16Codec       struct{}
	int32Codec        struct{}
	uint32Codec       struct{}
	float16Codec      struct{}
	float32Codec      struct{}
	float64Codec      struct{}
	complex64Codec    struct{}
	complex128Codec   struct{}
	genericCodec      struct{}
)

func (int8Codec) Decode(buf Buffer, pos int) any { return buf.(Int8Buffer)[pos] }
func (int8Codec) Encode(buf Buffer, pos int, v any) error {
	x, ok := asWrappedInt(v)
	if !ok {
		return valueErrorf(Int8, v)
	}
	buf.(Int8Buffer)[pos] = int8(x)

	return nil
}

func (uint8Codec) Decode(buf Buffer, pos int) any { return buf.(Uint8Buffer)[pos] }
func (uint8Codec) Encode(buf Buffer, pos int, v any) error {
	x, ok := asWrappedInt(v)
	if !ok {
		return valueErrorf(Uint8, v)
	}
	buf.(Uint8Buffer)[pos] = uint8(x)

	return nil
}

func (uint8ClampedCodec) Decode(buf Buffer, pos int) any { return buf.(Uint8ClampedBuffer)[pos] }
func (uint8ClampedCodec) Encode(buf Buffer, pos int, v any) error {
	x, ok := asClampedUint8(v)
	if !ok {
		return valueErrorf(Uint8Clamped, v)
	}
	buf.(Uint8ClampedBuffer)[pos] = x

	return nil
}

func (int16Codec) Decode(buf Buffer, pos int) any { return buf.(Int16Buffer)[pos] }
func (int16Codec) Encode(buf Buffer, pos int, v any) error {
	x, ok := asWrappedInt(v)
	if !ok {
		return valueErrorf(Int16, v)
	}
	buf.(Int16Buffer)[pos] = int16(x)

	return nil
}

func (uint16Codec) Decode(buf Buffer, pos int) any { return buf.(Uint16Buffer)[pos] }
func (uint16Codec) Encode(buf Buffer, pos int, v any) error {
	x, ok := asWrappedInt(v)
	if !ok {
		return valueErrorf(Uint16, v)
	}
	buf.(Uint16Buffer)[pos] = uint16(x)

	return nil
}

func (int32Codec) Decode(buf Buffer, pos int) any { return buf.(Int32Buffer)[pos] }
func (int32Codec) Encode(buf Buffer, pos int, v any) error {
	x, ok := asWrappedInt(v)
	if !ok {
		return valueErrorf(Int32, v)
	}
	buf.(Int32Buffer)[pos] = int32(x)

	return nil
}

func (uint32Codec) Decode(buf Buffer, pos int) any { return buf.(Uint32Buffer)[pos] }
func (uint32Codec) Encode(buf Buffer, pos int, v any) error {
	x, ok := asWrappedInt(v)
	if !ok {
		return valueErrorf(Uint32, v)
	}
	buf.(Uint32Buffer)[pos] = uint32(x)

	return nil
}

func (float16Codec) Decode(buf Buffer, pos int) any { return buf.(Float16Buffer)[pos].Float32() }
func (float16Codec) Encode(buf Buffer, pos int, v any) error {
	if h, ok := v.(float16.Float16); ok {
		buf.(Float16Buffer)[pos] = h
		return nil
	}
	f, ok := asFloat64(v)
	if !ok {
		return valueErrorf(Float16, v)
	}
	buf.(Float16Buffer)[pos] = float16.Fromfloat32(float32(f))

	return nil
}

func (float32Codec) Decode(buf Buffer, pos int) any { return buf.(Float32Buffer)[pos] }
func (float32Codec) Encode(buf Buffer, pos int, v any) error {
	f, ok := asFloat64(v)
	if !ok {
		return valueErrorf(Float32, v)
	}
	buf.(Float32Buffer)[pos] = float32(f)

	return nil
}

func (float64Codec) Decode(buf Buffer, pos int) any { return buf.(Float64Buffer)[pos] }
func (float64Codec) Encode(buf Buffer, pos int, v any) error {
	f, ok := asFloat64(v)
	if !ok {
		return valueErrorf(Float64, v)
	}
	buf.(Float64Buffer)[pos] = f

	return nil
}

// complex elements occupy slots 2*pos (re) and 2*pos+1 (im)

func (complex64Codec) Decode(buf Buffer, pos int) any {
	b := buf.(Complex64Buffer)
	return complex(b[2*pos], b[2*pos+1])
}
func (complex64Codec) Encode(buf Buffer, pos int, v any) error {
	c, ok := asComplex128(v)
	if !ok {
		return valueErrorf(Complex64, v)
	}
	b := buf.(Complex64Buffer)
	b[2*pos] = float32(real(c))
	b[2*pos+1] = float32(imag(c))

	return nil
}

func (complex128Codec) Decode(buf Buffer, pos int) any {
	b := buf.(Complex128Buffer)
	return complex(b[2*pos], b[2*pos+1])
}
func (complex128Codec) Encode(buf Buffer, pos int, v any) error {
	c, ok := asComplex128(v)
	if !ok {
		return valueErrorf(Complex128, v)
	}
	b := buf.(Complex128Buffer)
	b[2*pos] = real(c)
	b[2*pos+1] = imag(c)

	return nil
}

func (genericCodec) Decode(buf Buffer, pos int) any { return buf.(GenericBuffer)[pos] }
func (genericCodec) Encode(buf Buffer, pos int, v any) error {
	buf.(GenericBuffer)[pos] = v
	return nil
}

// ToFloat64 widens a decoded real element to float64.
//
// Errors:
//   - ErrValueType for complex, bool and non-numeric values.
func ToFloat64(v any) (float64, error) {
	f, ok := asFloat64(v)
	if !ok {
		return 0, fmt.Errorf("ToFloat64(%T): %w", v, ErrValueType)
	}

	return f, nil
}

// ToComplex128 widens a decoded element (real or complex) to complex128.
//
// Errors:
//   - ErrValueType for bool and non-numeric values.
func ToComplex128(v any) (complex128, error) {
	c, ok := asComplex128(v)
	if !ok {
		return 0, fmt.Errorf("ToComplex128(%T): %w", v, ErrValueType)
	}

	return c, nil
}
