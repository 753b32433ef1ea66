// SPDX-License-Identifier: MIT

// Package dtype - typed buffers.
//
// Purpose:
//   - Give each DType a concrete storage type so codecs can address it without
//     reflection.
//
// Ownership:
//   - A buffer is a slice header. Copying the header shares storage; views keep
//     the header they were given and never reallocate it.
package dtype

import (
	"fmt"

	"github.com/x448/float16"
)

// Buffer is a linearly addressable, externally owned element store.
// Len counts logical elements: complex buffers hold two slots per element.
type Buffer interface {
	DType() DType
	Len() int
}

type (
	Int8Buffer         []int8
	Uint8Buffer        []uint8
	Uint8ClampedBuffer []uint8
	Int16Buffer        []int16
	Uint16Buffer       []uint16
	Int32Buffer        []int32
	Uint32Buffer       []uint32
	Float16Buffer      []float16.Float16
	Float32Buffer      []float32
	Float64Buffer      []float64
	// Complex64Buffer interleaves real and imaginary parts: [re0, im0, re1, im1, ...].
	Complex64Buffer []float32
	// Complex128Buffer interleaves real and imaginary parts: [re0, im0, re1, im1, ...].
	Complex128Buffer []float64
	GenericBuffer    []any
)

// Compile-time assertions for Buffer conformance.
var (
	_ Buffer = Int8Buffer(nil)
	_ Buffer = Uint8Buffer(nil)
	_ Buffer = Uint8ClampedBuffer(nil)
	_ Buffer = Int16Buffer(nil)
	_ Buffer = Uint16Buffer(nil)
	_ Buffer = Int32Buffer(nil)
	_ Buffer = Uint32Buffer(nil)
	_ Buffer = Float16Buffer(nil)
	_ Buffer = Float32Buffer(nil)
	_ Buffer = Float64Buffer(nil)
	_ Buffer = Complex64Buffer(nil)
	_ Buffer = Complex128Buffer(nil)
	_ Buffer = GenericBuffer(nil)
)

func (b Int8Buffer) DType() DType         { return Int8 }
func (b Uint8Buffer) DType() DType        { return Uint8 }
func (b Uint8ClampedBuffer) DType() DType { return Uint8Clamped }
func (b Int16Buffer) DType() DType        { return Int16 }
func (b Uint16Buffer) DType() DType       { return Uint16 }
func (b Int32Buffer) DType() DType        { return Int32 }
func (b Uint32Buffer) DType() DType       { return Uint32 }
func (b Float16Buffer) DType() DType      { return Float16 }
func (b Float32Buffer) DType() DType      { return Float32 }
func (b Float64Buffer) DType() DType      { return Float64 }
func (b Complex64Buffer) DType() DType    { return Complex64 }
func (b Complex128Buffer) DType() DType   { return Complex128 }
func (b GenericBuffer) DType() DType      { return Generic }

func (b Int8Buffer) Len() int         { return len(b) }
func (b Uint8Buffer) Len() int        { return len(b) }
func (b Uint8ClampedBuffer) Len() int { return len(b) }
func (b Int16Buffer) Len() int        { return len(b) }
func (b Uint16Buffer) Len() int       { return len(b) }
func (b Int32Buffer) Len() int        { return len(b) }
func (b Uint32Buffer) Len() int       { return len(b) }
func (b Float16Buffer) Len() int      { return len(b) }
func (b Float32Buffer) Len() int      { return len(b) }
func (b Float64Buffer) Len() int      { return len(b) }
func (b GenericBuffer) Len() int      { return len(b) }

// Len returns the number of complete (re, im) pairs; a trailing odd slot is ignored.
func (b Complex64Buffer) Len() int { return len(b) / 2 }

// Len returns the number of complete (re, im) pairs; a trailing odd slot is ignored.
func (b Complex128Buffer) Len() int { return len(b) / 2 }

// NewComplex64Buffer packs values into interleaved storage.
func NewComplex64Buffer(vals ...complex64) Complex64Buffer {
	b := make(Complex64Buffer, 2*len(vals))
	for i, v := range vals {
		b[2*i] = real(v)
		b[2*i+1] = imag(v)
	}

	return b
}

// NewComplex128Buffer packs values into interleaved storage.
func NewComplex128Buffer(vals ...complex128) Complex128Buffer {
	b := make(Complex128Buffer, 2*len(vals))
	for i, v := range vals {
		b[2*i] = real(v)
		b[2*i+1] = imag(v)
	}

	return b
}

// NewFloat16Buffer converts float32 values to binary16 storage.
func NewFloat16Buffer(vals ...float32) Float16Buffer {
	b := make(Float16Buffer, len(vals))
	for i, v := range vals {
		b[i] = float16.Fromfloat32(v)
	}

	return b
}

// New allocates a zero-filled buffer of n logical elements for dt.
//
// Errors:
//   - ErrUnknownDType, ErrNegativeLength.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(dt DType, n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%s, %d): %w", dt, n, ErrNegativeLength)
	}

	switch dt {
	case Int8:
		return make(Int8Buffer, n), nil
	case Uint8:
		return make(Uint8Buffer, n), nil
	case Uint8Clamped:
		return make(Uint8ClampedBuffer, n), nil
	case Int16:
		return make(Int16Buffer, n), nil
	case Uint16:
		return make(Uint16Buffer, n), nil
	case Int32:
		return make(Int32Buffer, n), nil
	case Uint32:
		return make(Uint32Buffer, n), nil
	case Float16:
		return make(Float16Buffer, n), nil
	case Float32:
		return make(Float32Buffer, n), nil
	case Float64:
		return make(Float64Buffer, n), nil
	case Complex64:
		return make(Complex64Buffer, 2*n), nil
	case Complex128:
		return make(Complex128Buffer, 2*n), nil
	case Generic:
		return make(GenericBuffer, n), nil
	}

	return nil, fmt.Errorf("New(%s, %d): %w", dt, n, ErrUnknownDType)
}

// Check verifies that buf is non-nil and stores dt elements.
//
// Errors:
//   - ErrUnknownDType, ErrBufferMismatch.
func Check(dt DType, buf Buffer) error {
	if !dt.Valid() {
		return fmt.Errorf("Check(%s): %w", dt, ErrUnknownDType)
	}
	if buf == nil {
		return fmt.Errorf("Check(%s): nil buffer: %w", dt, ErrBufferMismatch)
	}
	if got := buf.DType(); got != dt {
		return fmt.Errorf("Check(%s): buffer holds %s: %w", dt, got, ErrBufferMismatch)
	}

	return nil
}
