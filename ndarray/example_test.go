package ndarray_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strided/dtype"
	"github.com/katalvlaran/strided/index"
	"github.com/katalvlaran/strided/ndarray"
)

// ExampleNdarray_Get shows the three resolving modes on one out-of-range call.
func ExampleNdarray_Get() {
	buf := dtype.Float64Buffer{1, 2, 3}
	for _, m := range []index.Mode{index.Wrap, index.Clamp, index.Throw} {
		a, _ := ndarray.New(dtype.Float64, buf, []int{1, 3, 1}, []int{3, 1, 1}, 0, index.RowMajor,
			ndarray.WithMode(m))
		v, err := a.Get(2, 6, 100)
		fmt.Println(m, v, errors.Is(err, ndarray.ErrIndexOutOfRange))
	}

	// Output:
	// wrap 1 false
	// clamp 3 false
	// throw <nil> true
}

// ExampleNdarray_ISet writes through a reversed view.
func ExampleNdarray_ISet() {
	buf := dtype.Float64Buffer{1, 2, 3, 4}
	rev, _ := ndarray.New(dtype.Float64, buf, []int{4}, []int{-1}, 3, index.RowMajor)

	_, _ = rev.ISet(0, 5.0)
	fmt.Println(buf)
	fmt.Println(rev)

	// Output:
	// [1 2 3 5]
	// ndarray( 'float64', [ 5, 3, 2, 1 ], [ 4 ], [ 1 ], 0, 'row-major' )
}

// ExampleWithSubmodes wraps the columns of a matrix while its rows stay strict.
func ExampleWithSubmodes() {
	a, _ := ndarray.NewContiguous(dtype.Int32, dtype.Int32Buffer{1, 2, 3, 4, 5, 6}, []int{2, 3}, index.RowMajor,
		ndarray.WithSubmodes(index.Throw, index.Wrap))

	v, _ := a.Get(1, -1)
	fmt.Println(v)
	_, err := a.Get(2, 0)
	fmt.Println(err)

	// Output:
	// 6
	// Ndarray.Get: dimension 0: index 2: index: index out of range
}
