// SPDX-License-Identifier: MIT

package index

import (
	"fmt"
	"strings"
)

// Order decides which dimension varies fastest when a view is flattened.
// It only affects linear-index translation; strides are applied as given.
type Order uint8

const (
	// RowMajor makes the last dimension vary fastest (C order).
	RowMajor Order = iota
	// ColumnMajor makes the first dimension vary fastest (Fortran order).
	ColumnMajor
)

const (
	_nameRowMajor    = "row-major"
	_nameColumnMajor = "column-major"
)

// Valid reports whether o is a member of the enumeration.
func (o Order) Valid() bool { return o <= ColumnMajor }

// String returns "row-major" or "column-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return _nameRowMajor
	case ColumnMajor:
		return _nameColumnMajor
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder maps "row-major" / "column-major" to an Order.
//
// Errors:
//   - ErrInvalidOrder for anything else.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case _nameRowMajor:
		return RowMajor, nil
	case _nameColumnMajor:
		return ColumnMajor, nil
	}

	return RowMajor, fmt.Errorf("ParseOrder(%q): %w", s, ErrInvalidOrder)
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("Order.MarshalText(%d): %w", uint8(o), ErrInvalidOrder)
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(b []byte) error {
	v, err := ParseOrder(string(b))
	if err != nil {
		return err
	}
	*o = v

	return nil
}
