// SPDX-License-Identifier: MIT

// Package index - overflow-checked layout arithmetic.
//
// Purpose:
//   - Reject shapes and strides whose element count or reachable buffer range
//     does not fit in int, before any view trusts them.
//
// AI-Hints:
//   - A view accepted through these helpers computes every Offset without
//     overflow: each partial sum lies between the checked lo and hi.
package index

import (
	"fmt"
	"math"
	"math/bits"

	"fortio.org/safecast"
)

// NumelChecked returns Numel(shape), or ErrOverflow when the product does not
// fit in int. Any zero extent yields 0 regardless of the other extents.
// Extents must be non-negative.
// Complexity: O(rank).
func NumelChecked(shape []int) (int, error) {
	for _, s := range shape {
		if s == 0 {
			return 0, nil
		}
	}

	n := 1
	for d, s := range shape {
		var err error
		if n, err = mulInt(n, s); err != nil {
			return 0, fmt.Errorf("shape %v, dimension %d: %w", shape, d, err)
		}
	}

	return n, nil
}

// MinMaxBufferIndexChecked is MinMaxBufferIndex with every product
// strides[d]*(shape[d]-1) and every running sum checked.
//
// Errors:
//   - ErrOverflow when a term or the lo/hi accumulation leaves the int range.
//
// Complexity: O(rank).
func MinMaxBufferIndexChecked(shape, strides []int, offset int) (lo, hi int, err error) {
	for _, n := range shape {
		if n == 0 {
			return offset, offset, nil
		}
	}

	lo, hi = offset, offset
	for d, n := range shape {
		term, err := mulInt(strides[d], n-1)
		if err != nil {
			return 0, 0, fmt.Errorf("dimension %d: stride %d: %w", d, strides[d], err)
		}
		if term > 0 {
			hi, err = addInt(hi, term)
		} else {
			lo, err = addInt(lo, term)
		}
		if err != nil {
			return 0, 0, fmt.Errorf("dimension %d: stride %d: %w", d, strides[d], err)
		}
	}

	return lo, hi, nil
}

// mulInt returns a*b for b >= 0.
func mulInt(a, b int) (int, error) {
	if b < 0 {
		return 0, ErrOverflow
	}
	mag := uint64(a)
	if a < 0 {
		mag = -mag
	}
	carry, prod := bits.Mul64(mag, uint64(b))
	if carry != 0 {
		return 0, ErrOverflow
	}
	if a >= 0 {
		r, err := safecast.Conv[int](prod)
		if err != nil {
			return 0, ErrOverflow
		}
		return r, nil
	}
	if prod == 0 {
		return 0, nil
	}
	// -(prod-1)-1 reaches math.MinInt without overflowing.
	r, err := safecast.Conv[int](prod - 1)
	if err != nil {
		return 0, ErrOverflow
	}

	return -r - 1, nil
}

// addInt returns a+b.
func addInt(a, b int) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, ErrOverflow
	}

	return a + b, nil
}
