// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every public operation returns these sentinels (possibly wrapped with
// context); tests and callers match them via errors.Is. User input never
// triggers a panic.

package ndarray

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strided/index"
)

// ERROR KINDS
// -----------
// InvalidArgument   → ErrInvalidArgument and the refinements below it.
// ArityMismatch     → ErrArityMismatch.
// InvalidIndexType  → ErrInvalidIndexType.
// IndexOutOfRange   → ErrIndexOutOfRange (same value as index.ErrOutOfRange).
// ReadOnlyViolation → ErrReadOnly.
//
// ERROR PRIORITY (constructor, first violation wins):
// dtype -> buffer -> shape -> strides -> offset -> order -> options -> buffer fit.

var (
	// ErrInvalidArgument marks a constructor or setter input that violates its
	// static contract. Every refinement below also matches it.
	ErrInvalidArgument = errors.New("ndarray: invalid argument")

	// ErrBadShape indicates a negative extent.
	ErrBadShape = fmt.Errorf("%w: negative shape extent", ErrInvalidArgument)

	// ErrStridesMismatch indicates len(strides) != len(shape).
	ErrStridesMismatch = fmt.Errorf("%w: strides length does not match shape", ErrInvalidArgument)

	// ErrNegativeOffset indicates offset < 0.
	ErrNegativeOffset = fmt.Errorf("%w: negative offset", ErrInvalidArgument)

	// ErrBufferTooShort indicates that shape/strides/offset reach positions
	// outside the buffer.
	ErrBufferTooShort = fmt.Errorf("%w: buffer too short for view", ErrInvalidArgument)

	// ErrLayoutOverflow indicates a shape whose element count, or a
	// shape/strides/offset whose reachable buffer range, does not fit in int.
	ErrLayoutOverflow = fmt.Errorf("%w: view layout overflows int", ErrInvalidArgument)

	// ErrNilView indicates a nil *Ndarray where a view is required.
	ErrNilView = fmt.Errorf("%w: nil view", ErrInvalidArgument)

	// ErrMalformedStruct indicates a protobuf Struct that does not describe a view.
	ErrMalformedStruct = fmt.Errorf("%w: malformed ndarray struct", ErrInvalidArgument)

	// ErrArityMismatch indicates a subscript count different from the rank.
	ErrArityMismatch = errors.New("ndarray: subscript count does not match rank")

	// ErrInvalidIndexType indicates a subscript that is not representable as an integer.
	ErrInvalidIndexType = errors.New("ndarray: index is not an integer")

	// ErrReadOnly indicates a write through a read-only view.
	ErrReadOnly = errors.New("ndarray: view is read-only")
)

// ErrIndexOutOfRange is index.ErrOutOfRange re-exported so callers of this
// package need not import index to match it.
var ErrIndexOutOfRange = index.ErrOutOfRange

// IndexError reports which subscript (or linear index) failed to resolve.
// It unwraps to the underlying sentinel.
type IndexError struct {
	Op    string // operation tag: "Get", "Set", "IGet", "ISet"
	Dim   int    // failing dimension; -1 for a linear index
	Index int    // index as supplied by the caller
	Err   error  // sentinel cause (ErrIndexOutOfRange, index.ErrInvalidMode)
}

// Error implements error.
func (e *IndexError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("Ndarray.%s: linear index %d: %v", e.Op, e.Index, e.Err)
	}

	return fmt.Sprintf("Ndarray.%s: dimension %d: index %d: %v", e.Op, e.Dim, e.Index, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *IndexError) Unwrap() error { return e.Err }

// ndErrorf wraps err with a uniform Ndarray method context.
func ndErrorf(method string, err error) error {
	return fmt.Errorf("Ndarray.%s: %w", method, err)
}
