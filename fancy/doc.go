// Package fancy wraps an ndarray.Ndarray with a dynamically typed accessor
// surface: subscripts and linear indices arrive as `any` and are checked at
// run time instead of by the compiler.
//
// What
//
//   - Get(args...) / Set(args..., value): one argument per dimension, plus the
//     value for Set.
//   - IGet(idx) / ISet(idx, value): linear access in the view's memory order.
//   - Float64 / Complex128: typed reads for callers that know the element kind.
//
// Why
//
//   - Indices decoded from JSON, YAML or scripting layers arrive as float64 or
//     as assorted integer kinds; fancy accepts any value that denotes an exact
//     integer and rejects everything else before touching the buffer.
//
// Argument checks (in this order)
//
//   - Arity: len(args) must equal the rank (rank+1 for Set), else
//     ndarray.ErrArityMismatch.
//   - Type: every index must be a Go integer, or a finite float with no
//     fractional part, representable as int; else ndarray.ErrInvalidIndexType.
//     bool, string, nil and complex values are always rejected.
//   - Range: resolved by the wrapped view's modes, as in package ndarray.
//
// Complex dtypes
//
//	Get returns complex64/complex128 assembled from two adjacent storage slots.
//	Set accepts a complex value, a real number (imaginary part 0) or a
//	[2]float64 / [2]float32 (re, im) pair, and writes both slots.
//
// Usage
//
//	a, err := fancy.New(dtype.Float64, buf, []int{2, 3}, []int{3, 1}, 0, index.RowMajor)
//	v, err := a.Get(1, 2.0)        // float64 index with no fraction is accepted
//	_, err = a.Set(int8(0), 0, 7.5) // 7.5 as a value is fine
//	_, err = a.Get(true, 0)        // ndarray.ErrInvalidIndexType
package fancy
