// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Provide a single source of truth for the constructor and setter checks.
//  - Keep New minimal by delegating each field check here, in priority order.
//  - Return wrapped sentinels so call sites match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and O(rank); only ValidateLayout touches the buffer,
//    and only through Len().
//
// AI-Hints:
//  - Use ValidateLayout before handing caller-supplied strides to any kernel
//    that indexes a buffer without bounds checks.

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/strided/dtype"
	"github.com/katalvlaran/strided/index"
)

// validatorErrorf tags an error with the validator that produced it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDType checks dt against the enumeration and buf against dt.
//
// Errors: ErrInvalidArgument (wrapping dtype.ErrUnknownDType or dtype.ErrBufferMismatch).
// Complexity: O(1).
func ValidateDType(dt dtype.DType, buf dtype.Buffer) error {
	if err := dtype.Check(dt, buf); err != nil {
		return validatorErrorf("ValidateDType", fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	return nil
}

// ValidateShape rejects negative extents.
//
// Errors: ErrBadShape naming the first offending dimension.
// Complexity: O(rank).
func ValidateShape(shape []int) error {
	for d, n := range shape {
		if n < 0 {
			return validatorErrorf("ValidateShape", fmt.Errorf("shape[%d]=%d: %w", d, n, ErrBadShape))
		}
	}

	return nil
}

// ValidateStrides requires one stride per dimension. Any sign is allowed.
//
// Errors: ErrStridesMismatch.
// Complexity: O(1).
func ValidateStrides(shape, strides []int) error {
	if len(strides) != len(shape) {
		return validatorErrorf("ValidateStrides",
			fmt.Errorf("len(strides)=%d, len(shape)=%d: %w", len(strides), len(shape), ErrStridesMismatch))
	}

	return nil
}

// ValidateOffset rejects negative offsets.
//
// Errors: ErrNegativeOffset.
// Complexity: O(1).
func ValidateOffset(offset int) error {
	if offset < 0 {
		return validatorErrorf("ValidateOffset", fmt.Errorf("offset=%d: %w", offset, ErrNegativeOffset))
	}

	return nil
}

// ValidateOrder checks enum membership.
//
// Errors: ErrInvalidArgument wrapping index.ErrInvalidOrder.
// Complexity: O(1).
func ValidateOrder(o index.Order) error {
	if !o.Valid() {
		return validatorErrorf("ValidateOrder", fmt.Errorf("%w: %w", ErrInvalidArgument, index.ErrInvalidOrder))
	}

	return nil
}

// ValidateMode checks enum membership.
//
// Errors: ErrInvalidArgument wrapping index.ErrInvalidMode.
// Complexity: O(1).
func ValidateMode(m index.Mode) error {
	if !m.Valid() {
		return validatorErrorf("ValidateMode", fmt.Errorf("%s: %w: %w", m, ErrInvalidArgument, index.ErrInvalidMode))
	}

	return nil
}

// ValidateSubmodes checks every entry of a submode list. An empty list is valid.
//
// Errors: ErrInvalidArgument wrapping index.ErrInvalidMode.
// Complexity: O(len(ms)).
func ValidateSubmodes(ms []index.Mode) error {
	for d, m := range ms {
		if !m.Valid() {
			return validatorErrorf("ValidateSubmodes",
				fmt.Errorf("submode[%d]=%s: %w: %w", d, m, ErrInvalidArgument, index.ErrInvalidMode))
		}
	}

	return nil
}

// ValidateBufferFit ensures every position reachable through the view lies
// in [0, buf.Len()) and that the element count and reachable range fit in
// int. Views with a zero extent reach nothing and always fit.
//
// Errors: ErrLayoutOverflow, then ErrBufferTooShort.
// Complexity: O(rank).
func ValidateBufferFit(buf dtype.Buffer, shape, strides []int, offset int) error {
	n, err := index.NumelChecked(shape)
	if err != nil {
		return validatorErrorf("ValidateBufferFit", fmt.Errorf("%w: %w", ErrLayoutOverflow, err))
	}
	if n == 0 {
		return nil
	}
	lo, hi, err := index.MinMaxBufferIndexChecked(shape, strides, offset)
	if err != nil {
		return validatorErrorf("ValidateBufferFit", fmt.Errorf("%w: %w", ErrLayoutOverflow, err))
	}
	if lo < 0 || hi >= buf.Len() {
		return validatorErrorf("ValidateBufferFit",
			fmt.Errorf("reaches [%d, %d], buffer length %d: %w", lo, hi, buf.Len(), ErrBufferTooShort))
	}

	return nil
}

// ValidateLayout – Composite: DType → Shape → Strides → Offset → Order → BufferFit.
//
// Errors: the first violation found, in that order.
// Complexity: O(rank).
func ValidateLayout(dt dtype.DType, buf dtype.Buffer, shape, strides []int, offset int, order index.Order) error {
	if err := ValidateDType(dt, buf); err != nil {
		return err
	}
	if err := ValidateShape(shape); err != nil {
		return err
	}
	if err := ValidateStrides(shape, strides); err != nil {
		return err
	}
	if err := ValidateOffset(offset); err != nil {
		return err
	}
	if err := ValidateOrder(order); err != nil {
		return err
	}

	return ValidateBufferFit(buf, shape, strides, offset)
}
