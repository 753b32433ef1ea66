// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures for views over float64 buffers.

package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/strided/dtype"
	"github.com/katalvlaran/strided/index"
	"github.com/katalvlaran/strided/ndarray"
	"github.com/stretchr/testify/require"
)

// mustView builds a float64 view or fails the test.
func mustView(t testing.TB, buf dtype.Float64Buffer, shape, strides []int, offset int, order index.Order, opts ...ndarray.Option) *ndarray.Ndarray {
	t.Helper()
	a, err := ndarray.New(dtype.Float64, buf, shape, strides, offset, order, opts...)
	require.NoError(t, err)

	return a
}

// column131 is the [1,3,1] fixture over [1, 2, 3] with row-major strides.
func column131(t testing.TB, opts ...ndarray.Option) *ndarray.Ndarray {
	t.Helper()

	return mustView(t, dtype.Float64Buffer{1, 2, 3}, []int{1, 3, 1}, []int{3, 1, 1}, 0, index.RowMajor, opts...)
}

// seq returns a float64 buffer holding 0..n-1.
func seq(n int) dtype.Float64Buffer {
	b := make(dtype.Float64Buffer, n)
	for i := range b {
		b[i] = float64(i)
	}

	return b
}
