// SPDX-License-Identifier: MIT

// Package dtype - the element-type enumeration.
//
// AI-Hints:
//   - Size reports bytes per logical element; complex types count both slots.
//   - Generic has no fixed width and reports 0.
package dtype

import (
	"fmt"
	"strings"
)

// DType tags the element type of a buffer.
type DType uint8

const (
	// Unknown is the zero value and is never valid.
	Unknown DType = iota
	Int8
	Uint8
	// Uint8Clamped stores uint8 but saturates and rounds half to even on write.
	Uint8Clamped
	Int16
	Uint16
	Int32
	Uint32
	// Float16 is IEEE 754 binary16, decoded as float32.
	Float16
	Float32
	Float64
	// Complex64 stores interleaved float32 (re, im) pairs.
	Complex64
	// Complex128 stores interleaved float64 (re, im) pairs.
	Complex128
	// Generic stores arbitrary values with no width constraint.
	Generic
)

var _names = [...]string{
	Unknown:      "unknown",
	Int8:         "int8",
	Uint8:        "uint8",
	Uint8Clamped: "uint8c",
	Int16:        "int16",
	Uint16:       "uint16",
	Int32:        "int32",
	Uint32:       "uint32",
	Float16:      "float16",
	Float32:      "float32",
	Float64:      "float64",
	Complex64:    "complex64",
	Complex128:   "complex128",
	Generic:      "generic",
}

var _sizes = [...]int{
	Int8:         1,
	Uint8:        1,
	Uint8Clamped: 1,
	Int16:        2,
	Uint16:       2,
	Int32:        4,
	Uint32:       4,
	Float16:      2,
	Float32:      4,
	Float64:      8,
	Complex64:    8,
	Complex128:   16,
	Generic:      0,
}

// DTypes returns every valid DType in declaration order.
func DTypes() []DType {
	out := make([]DType, 0, int(Generic))
	for d := Int8; d <= Generic; d++ {
		out = append(out, d)
	}

	return out
}

// Valid reports whether d names a supported element type.
func (d DType) Valid() bool { return d >= Int8 && d <= Generic }

// String returns the canonical name ("float64", "complex128", "generic", ...).
func (d DType) String() string {
	if int(d) < len(_names) {
		return _names[d]
	}

	return fmt.Sprintf("DType(%d)", uint8(d))
}

// Size returns the number of bytes per logical element (0 for Generic and
// for invalid tags).
func (d DType) Size() int {
	if !d.Valid() {
		return 0
	}

	return _sizes[d]
}

// IsComplex reports whether elements occupy two adjacent (re, im) slots.
func (d DType) IsComplex() bool { return d == Complex64 || d == Complex128 }

// IsFloating reports whether d is a real floating-point type.
func (d DType) IsFloating() bool { return d == Float16 || d == Float32 || d == Float64 }

// IsInteger reports whether d is an integer type (including Uint8Clamped).
func (d DType) IsInteger() bool { return d >= Int8 && d <= Uint32 }

// IsNumeric reports whether d is any typed (non-Generic) element type.
func (d DType) IsNumeric() bool { return d >= Int8 && d <= Complex128 }

// Parse maps a dtype name to its DType. Matching is case-insensitive.
//
// Errors:
//   - ErrUnknownDType for names outside the enumeration.
func Parse(s string) (DType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := Int8; d <= Generic; d++ {
		if _names[d] == name {
			return d, nil
		}
	}

	return Unknown, fmt.Errorf("Parse(%q): %w", s, ErrUnknownDType)
}

// MarshalText implements encoding.TextMarshaler.
func (d DType) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("DType.MarshalText(%d): %w", uint8(d), ErrUnknownDType)
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DType) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = v

	return nil
}
