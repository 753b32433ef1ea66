// SPDX-License-Identifier: MIT

// Package index - linear index ⇄ subscript translation.
//
// Purpose:
//   - Decompose a flattened position into per-dimension subscripts and back,
//     with dimension significance chosen by Order.
//
// Determinism & Performance:
//   - Fixed loop directions; no allocation when the caller supplies out.
//
// AI-Hints:
//   - ToSubscripts resolves the linear index first; Unravel assumes it is in range.
//   - Strides play no part here; combine the result with Offset.
package index

// ToSubscripts resolves idx against the element count of shape under mode m
// and decomposes the result into subscripts.
// MAIN DESCRIPTION:
//   - Linear-index entry point for views (IGet/ISet).
//
// Implementation:
//   - Stage 1: Resolve(idx, Numel(shape), m).
//   - Stage 2: Unravel into out (reused when its capacity suffices).
//
// Behavior highlights:
//   - Rank 0: Numel is 1, so only idx 0 survives Throw; returns an empty tuple.
//   - Any zero extent: Numel is 0 and every mode fails with ErrOutOfRange.
//
// Errors:
//   - ErrInvalidMode, ErrOutOfRange.
//
// Complexity:
//   - Time O(rank), Space O(rank) only when out is too small.
func ToSubscripts(idx int, shape []int, order Order, m Mode, out []int) ([]int, error) {
	r, err := Resolve(idx, Numel(shape), m)
	if err != nil {
		return nil, err
	}

	return Unravel(r, shape, order, out), nil
}

// Unravel decomposes an in-range linear index into subscripts.
// Row-major walks dimensions last to first, column-major first to last.
// The result is written into out when cap(out) >= len(shape).
// Complexity: O(rank).
func Unravel(idx int, shape []int, order Order, out []int) []int {
	rank := len(shape)
	if cap(out) >= rank {
		out = out[:rank]
	} else {
		out = make([]int, rank)
	}

	var d, n int
	if order == ColumnMajor {
		for d = 0; d < rank; d++ {
			n = shape[d]
			out[d] = idx % n
			idx /= n
		}
		return out
	}
	for d = rank - 1; d >= 0; d-- {
		n = shape[d]
		out[d] = idx % n
		idx /= n
	}

	return out
}

// ToLinearIndex is the inverse of Unravel: sum(subs[d] * weight[d]) where the
// weights are cumulative extents in the order's traversal direction.
// The empty tuple maps to 0.
// Complexity: O(rank).
func ToLinearIndex(subs, shape []int, order Order) int {
	var d, idx int
	w := 1
	if order == ColumnMajor {
		for d = 0; d < len(shape); d++ {
			idx += subs[d] * w
			w *= shape[d]
		}
		return idx
	}
	for d = len(shape) - 1; d >= 0; d-- {
		idx += subs[d] * w
		w *= shape[d]
	}

	return idx
}
