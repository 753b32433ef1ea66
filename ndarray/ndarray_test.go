// Package ndarray_test contains unit tests for view construction and metadata.
package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/strided/dtype"
	"github.com/katalvlaran/strided/index"
	"github.com/katalvlaran/strided/ndarray"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsMalformedFields walks the constructor priority list.
func TestNewRejectsMalformedFields(t *testing.T) {
	buf := seq(6)
	cases := []struct {
		name    string
		dt      dtype.DType
		buf     dtype.Buffer
		shape   []int
		strides []int
		offset  int
		order   index.Order
		opts    []ndarray.Option
		want    error
	}{
		{"unknown dtype", dtype.Unknown, buf, []int{6}, []int{1}, 0, index.RowMajor, nil, dtype.ErrUnknownDType},
		{"nil buffer", dtype.Float64, nil, []int{6}, []int{1}, 0, index.RowMajor, nil, dtype.ErrBufferMismatch},
		{"dtype mismatch", dtype.Float32, buf, []int{6}, []int{1}, 0, index.RowMajor, nil, dtype.ErrBufferMismatch},
		{"negative extent", dtype.Float64, buf, []int{2, -3}, []int{3, 1}, 0, index.RowMajor, nil, ndarray.ErrBadShape},
		{"strides length", dtype.Float64, buf, []int{2, 3}, []int{1}, 0, index.RowMajor, nil, ndarray.ErrStridesMismatch},
		{"negative offset", dtype.Float64, buf, []int{6}, []int{1}, -1, index.RowMajor, nil, ndarray.ErrNegativeOffset},
		{"bad order", dtype.Float64, buf, []int{6}, []int{1}, 0, index.Order(7), nil, index.ErrInvalidOrder},
		{"bad mode", dtype.Float64, buf, []int{6}, []int{1}, 0, index.RowMajor,
			[]ndarray.Option{ndarray.WithMode(index.Mode(9))}, index.ErrInvalidMode},
		{"bad submode", dtype.Float64, buf, []int{6}, []int{1}, 0, index.RowMajor,
			[]ndarray.Option{ndarray.WithSubmodes(index.Wrap, index.Mode(9))}, index.ErrInvalidMode},
		{"buffer too short", dtype.Float64, buf, []int{2, 4}, []int{4, 1}, 0, index.RowMajor, nil, ndarray.ErrBufferTooShort},
		{"negative reach", dtype.Float64, buf, []int{4}, []int{-1}, 2, index.RowMajor, nil, ndarray.ErrBufferTooShort},
		{"scalar past end", dtype.Float64, buf, nil, nil, 6, index.RowMajor, nil, ndarray.ErrBufferTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ndarray.New(tc.dt, tc.buf, tc.shape, tc.strides, tc.offset, tc.order, tc.opts...)
			require.Nil(t, a)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
		})
	}
}

// TestNewFirstViolationWins ensures the shape error is reported before the offset error.
func TestNewFirstViolationWins(t *testing.T) {
	_, err := ndarray.New(dtype.Float64, seq(4), []int{-1}, []int{1}, -5, index.RowMajor)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
	require.NotErrorIs(t, err, ndarray.ErrNegativeOffset)
}

// TestNewRejectsOverflowingLayouts ensures a layout whose element count or
// reachable range wraps around int never becomes a view.
func TestNewRejectsOverflowingLayouts(t *testing.T) {
	cases := []struct {
		name    string
		buf     dtype.Float64Buffer
		shape   []int
		strides []int
	}{
		{"count wraps to zero", dtype.Float64Buffer{}, []int{1 << 32, 1 << 32}, []int{0, 0}},
		{"count wraps, broadcast fits", dtype.Float64Buffer{1}, []int{1 << 32, 1 << 32}, []int{0, 0}},
		{"stride term wraps negative", dtype.Float64Buffer{1}, []int{4}, []int{1 << 62}},
		{"negative stride term", dtype.Float64Buffer{1}, []int{4}, []int{-(1 << 62)}},
		{"sum of terms wraps", dtype.Float64Buffer{1}, []int{3, 3}, []int{1 << 61, 1 << 61}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ndarray.New(dtype.Float64, tc.buf, tc.shape, tc.strides, 0, index.RowMajor)
			require.Nil(t, a)
			require.ErrorIs(t, err, ndarray.ErrLayoutOverflow)
			require.ErrorIs(t, err, index.ErrOverflow)
			require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
		})
	}

	// A literal zero extent reaches nothing, however large the rest.
	a, err := ndarray.New(dtype.Float64, dtype.Float64Buffer{}, []int{1 << 40, 1 << 40, 0}, []int{1 << 62, 1, 1}, 0, index.RowMajor)
	require.NoError(t, err)
	require.Equal(t, 0, a.Len())
	_, err = a.Get(0, 0, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
}

// TestNewAcceptsEmptyAndScalar covers zero-size and rank-0 views.
func TestNewAcceptsEmptyAndScalar(t *testing.T) {
	empty := mustView(t, dtype.Float64Buffer{}, []int{0, 2}, []int{2, 1}, 0, index.RowMajor)
	require.Equal(t, 0, empty.Len())
	require.Equal(t, 2, empty.Ndims())

	scalar := mustView(t, dtype.Float64Buffer{4, 5}, nil, nil, 1, index.RowMajor)
	require.Equal(t, 1, scalar.Len())
	require.Equal(t, 0, scalar.Ndims())
	v, err := scalar.Get()
	require.NoError(t, err)
	require.Equal(t, 5.0, v)
}

// TestMetadataIsDefensive ensures shape/strides cannot be mutated from outside.
func TestMetadataIsDefensive(t *testing.T) {
	shape := []int{2, 3}
	strides := []int{3, 1}
	a := mustView(t, seq(6), shape, strides, 0, index.RowMajor)

	shape[0], strides[0] = 99, 99
	require.Equal(t, []int{2, 3}, a.Shape())
	require.Equal(t, []int{3, 1}, a.Strides())

	got := a.Shape()
	got[1] = 42
	require.Equal(t, []int{2, 3}, a.Shape())

	require.Equal(t, dtype.Float64, a.DType())
	require.Equal(t, 6, a.Len())
	require.Equal(t, 8, a.BytesPerElement())
	require.Equal(t, 48, a.ByteLength())
	require.Equal(t, index.RowMajor, a.Order())
	require.Equal(t, 0, a.Offset())
	require.Equal(t, index.Throw, a.Mode())
	require.Nil(t, a.Submodes())
	require.False(t, a.ReadOnly())
}

// TestNewContiguous derives canonical strides from the order.
func TestNewContiguous(t *testing.T) {
	a, err := ndarray.NewContiguous(dtype.Float64, seq(6), []int{2, 3}, index.ColumnMajor)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, a.Strides())
	v, err := a.Get(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = ndarray.NewContiguous(dtype.Float64, seq(6), []int{-2, 3}, index.RowMajor)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}

// TestBuffersAreShared verifies aliasing: two views over one buffer see each other's writes.
func TestBuffersAreShared(t *testing.T) {
	buf := seq(6)
	rows := mustView(t, buf, []int{2, 3}, []int{3, 1}, 0, index.RowMajor)
	cols := mustView(t, buf, []int{3, 2}, []int{1, 3}, 0, index.RowMajor) // transpose

	_, err := rows.Set(42.0, 1, 0)
	require.NoError(t, err)

	v, err := cols.Get(0, 1)
	require.NoError(t, err)
	require.Equal(t, 42.0, v)
	require.Equal(t, 42.0, buf[3])
}

// TestSetModeAndSubmodes validates setter inputs and leaves the view unchanged on failure.
func TestSetModeAndSubmodes(t *testing.T) {
	a := column131(t)

	require.ErrorIs(t, a.SetMode(index.Mode(8)), ndarray.ErrInvalidArgument)
	require.Equal(t, index.Throw, a.Mode())

	require.NoError(t, a.SetMode(index.Clamp))
	require.Equal(t, index.Clamp, a.Mode())

	require.ErrorIs(t, a.SetSubmodes(index.Wrap, index.Mode(8)), index.ErrInvalidMode)
	require.Nil(t, a.Submodes())

	require.NoError(t, a.SetSubmodes(index.Wrap))
	require.Equal(t, []index.Mode{index.Wrap}, a.Submodes())

	require.NoError(t, a.SetSubmodes())
	require.Nil(t, a.Submodes())
}

// TestSubmodeStickiness checks a one-entry submode list over three dimensions.
func TestSubmodeStickiness(t *testing.T) {
	a := mustView(t, seq(8), []int{2, 2, 2}, []int{4, 2, 1}, 0, index.RowMajor,
		ndarray.WithMode(index.Throw), ndarray.WithSubmodes(index.Wrap))

	for d := 0; d < 3; d++ {
		require.Equal(t, index.Wrap, ndarray.SubmodeFor_TestOnly(a, d))
	}
	// Every dimension wraps even though the default mode is Throw.
	v, err := a.Get(3, -1, 5)
	require.NoError(t, err)
	require.Equal(t, 7.0, v) // (1,1,1)

	// Linear access ignores submodes.
	_, err = a.IGet(8)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)

	require.NoError(t, a.SetSubmodes(index.Throw, index.Clamp))
	require.Equal(t, index.Throw, ndarray.SubmodeFor_TestOnly(a, 0))
	require.Equal(t, index.Clamp, ndarray.SubmodeFor_TestOnly(a, 1))
	require.Equal(t, index.Clamp, ndarray.SubmodeFor_TestOnly(a, 2))
	v, err = a.Get(0, 9, 9)
	require.NoError(t, err)
	require.Equal(t, 3.0, v) // (0,1,1)
	_, err = a.Get(2, 0, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
}

// TestUnsetSubmodesFollowDefaultMode ensures SetMode also governs dimensions
// when no submodes were configured.
func TestUnsetSubmodesFollowDefaultMode(t *testing.T) {
	a := column131(t)
	_, err := a.Get(0, 5, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)

	require.NoError(t, a.SetMode(index.Wrap))
	v, err := a.Get(0, 5, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}
