// SPDX-License-Identifier: MIT

// Package index - layout helpers for (shape, strides, offset) triples.
//
// Purpose:
//   - Describe the buffer footprint of a view without touching any buffer:
//     element count, canonical strides, reachable index range, contiguity.
//
// AI-Hints:
//   - Use MinMaxBufferIndex before trusting caller-supplied strides against a buffer.
//   - Use StridesToOffset + negative strides to build reversed views.
package index

// Layout classifies strides by their magnitude ordering.
type Layout uint8

const (
	// LayoutNone means the strides follow neither ordering.
	LayoutNone Layout = iota
	// LayoutRowMajor means |strides| is non-increasing left to right.
	LayoutRowMajor
	// LayoutColumnMajor means |strides| is non-decreasing left to right.
	LayoutColumnMajor
	// LayoutBoth means both orderings hold (rank 1, or equal magnitudes).
	LayoutBoth
)

// String names the layout.
func (l Layout) String() string {
	switch l {
	case LayoutRowMajor:
		return _nameRowMajor
	case LayoutColumnMajor:
		return _nameColumnMajor
	case LayoutBoth:
		return "both"
	default:
		return "none"
	}
}

// Numel returns the number of elements described by shape (1 for rank 0).
// The product is not checked; use NumelChecked on untrusted shapes.
// Complexity: O(rank).
func Numel(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}

// ShapeToStrides returns the canonical contiguous strides for shape under order.
// Complexity: O(rank).
func ShapeToStrides(shape []int, order Order) []int {
	strides := make([]int, len(shape))
	s := 1
	if order == ColumnMajor {
		for d := 0; d < len(shape); d++ {
			strides[d] = s
			s *= shape[d]
		}
		return strides
	}
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = s
		s *= shape[d]
	}

	return strides
}

// StridesToOffset returns the buffer index of the first indexed element when
// the view starts at buffer index 0 and some strides are negative.
// Complexity: O(rank).
func StridesToOffset(shape, strides []int) int {
	var off int
	for d, s := range strides {
		if s < 0 && shape[d] > 0 {
			off -= s * (shape[d] - 1)
		}
	}

	return off
}

// MinMaxBufferIndex returns the smallest and largest buffer indices a view
// can reach. A view with any zero extent reaches nothing and reports
// (offset, offset). Sums are not checked; use MinMaxBufferIndexChecked on
// untrusted layouts.
// Complexity: O(rank).
func MinMaxBufferIndex(shape, strides []int, offset int) (lo, hi int) {
	lo, hi = offset, offset
	for d, n := range shape {
		if n == 0 {
			return offset, offset
		}
		s := strides[d]
		if s > 0 {
			hi += s * (n - 1)
		} else if s < 0 {
			lo += s * (n - 1)
		}
	}

	return lo, hi
}

// StridesToOrder classifies strides as row-major, column-major, both or none.
// Complexity: O(rank).
func StridesToOrder(strides []int) Layout {
	if len(strides) == 0 {
		return LayoutNone
	}
	if len(strides) == 1 {
		return LayoutBoth
	}

	row, col := true, true
	prev := abs(strides[0])
	for _, s := range strides[1:] {
		cur := abs(s)
		if cur > prev {
			row = false
		}
		if cur < prev {
			col = false
		}
		if !row && !col {
			return LayoutNone
		}
		prev = cur
	}

	switch {
	case row && col:
		return LayoutBoth
	case row:
		return LayoutRowMajor
	default:
		return LayoutColumnMajor
	}
}

// IsContiguous reports whether the view covers one gap-free span of the
// buffer in a recognised ordering. Empty views are never contiguous.
// Complexity: O(rank).
func IsContiguous(shape, strides []int, offset int) bool {
	n, err := NumelChecked(shape)
	if err != nil || n == 0 {
		return false
	}
	if len(shape) == 0 {
		return true
	}
	lo, hi, err := MinMaxBufferIndexChecked(shape, strides, offset)
	if err != nil || hi-lo != n-1 {
		return false
	}

	return StridesToOrder(strides) != LayoutNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
