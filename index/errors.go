// SPDX-License-Identifier: MIT

// Package index: sentinel error set.
// Callers match these with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX)
// when adding context.
package index

import "errors"

var (
	// ErrOutOfRange indicates that an index still falls outside [0, n) after
	// mode resolution, or that the extent is zero and no element exists.
	ErrOutOfRange = errors.New("index: index out of range")

	// ErrInvalidMode indicates a Mode value (or mode name) outside the enumeration.
	ErrInvalidMode = errors.New("index: invalid index mode")

	// ErrInvalidOrder indicates an Order value (or order name) outside the enumeration.
	ErrInvalidOrder = errors.New("index: invalid memory order")

	// ErrOverflow indicates an element count or buffer footprint that does not fit in int.
	ErrOverflow = errors.New("index: integer overflow")
)
