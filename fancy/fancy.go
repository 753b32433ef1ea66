// SPDX-License-Identifier: MIT

package fancy

import (
	"fmt"

	"github.com/katalvlaran/strided/dtype"
	"github.com/katalvlaran/strided/index"
	"github.com/katalvlaran/strided/ndarray"
)

// error context tags
const (
	ctxGet        = "Get"
	ctxSet        = "Set"
	ctxIGet       = "IGet"
	ctxISet       = "ISet"
	ctxFloat64    = "Float64"
	ctxComplex128 = "Complex128"
	_stackArgs    = 8
)

// Array is an ndarray.Ndarray accessed through dynamically typed arguments.
// It holds no state of its own: modes, read-only policy and the buffer all
// live in the wrapped view, so changes made through Base() are visible here.
type Array struct {
	base *ndarray.Ndarray
}

// New builds the underlying view with ndarray.New and wraps it.
// Errors and validation order are those of ndarray.New.
func New(dt dtype.DType, buf dtype.Buffer, shape, strides []int, offset int, order index.Order, opts ...ndarray.Option) (*Array, error) {
	a, err := ndarray.New(dt, buf, shape, strides, offset, order, opts...)
	if err != nil {
		return nil, err
	}

	return &Array{base: a}, nil
}

// Wrap adopts an existing view. The view is shared, not copied.
//
// Errors: ndarray.ErrNilView.
func Wrap(a *ndarray.Ndarray) (*Array, error) {
	if a == nil {
		return nil, fmt.Errorf("Wrap: %w", ndarray.ErrNilView)
	}

	return &Array{base: a}, nil
}

// Base returns the wrapped view.
func (f *Array) Base() *ndarray.Ndarray { return f.base }

// DType returns the element type.
func (f *Array) DType() dtype.DType { return f.base.DType() }

// Shape returns a copy of the extents.
func (f *Array) Shape() []int { return f.base.Shape() }

// Ndims returns the rank.
func (f *Array) Ndims() int { return f.base.Ndims() }

// Len returns the number of elements.
func (f *Array) Len() int { return f.base.Len() }

// String renders the wrapped view.
func (f *Array) String() string { return f.base.String() }

// Get returns the element at the given subscripts.
// MAIN DESCRIPTION:
//   - Dynamic counterpart of ndarray.Ndarray.Get.
//
// Implementation:
//   - Stage 1: arity (before any per-argument work).
//   - Stage 2: convert every argument to int.
//   - Stage 3: delegate to the view (modes, range, decode).
//
// Errors:
//   - ndarray.ErrArityMismatch, ndarray.ErrInvalidIndexType, then the view's errors.
//
// Complexity:
//   - Time O(rank); no allocation for rank <= 8 and plain int arguments.
func (f *Array) Get(args ...any) (any, error) {
	if err := checkArity(ctxGet, len(args), f.base.Ndims()); err != nil {
		return nil, err
	}
	var scratch [_stackArgs]int
	subs, err := toIndices(args, scratch[:0])
	if err != nil {
		return nil, fancyErrorf(ctxGet, err)
	}

	return f.base.Get(subs...)
}

// Set writes the last argument at the subscripts given by the others and
// returns the receiver for chaining.
//
// Errors:
//   - ndarray.ErrArityMismatch when len(args) != rank+1,
//     ndarray.ErrInvalidIndexType, then the view's errors (ErrReadOnly,
//     ErrIndexOutOfRange, ErrInvalidArgument wrapping dtype.ErrValueType).
func (f *Array) Set(args ...any) (*Array, error) {
	rank := f.base.Ndims()
	if err := checkArity(ctxSet, len(args), rank+1); err != nil {
		return nil, err
	}
	var scratch [_stackArgs]int
	subs, err := toIndices(args[:rank], scratch[:0])
	if err != nil {
		return nil, fancyErrorf(ctxSet, err)
	}
	if _, err = f.base.Set(args[rank], subs...); err != nil {
		return nil, err
	}

	return f, nil
}

// IGet returns the element at a linear index in the view's order.
//
// Errors: ndarray.ErrInvalidIndexType, then the view's errors.
func (f *Array) IGet(idx any) (any, error) {
	i, err := toIndex(0, idx)
	if err != nil {
		return nil, fancyErrorf(ctxIGet, err)
	}

	return f.base.IGet(i)
}

// ISet writes v at a linear index and returns the receiver for chaining.
//
// Errors: ndarray.ErrInvalidIndexType, then the view's errors.
func (f *Array) ISet(idx, v any) (*Array, error) {
	i, err := toIndex(0, idx)
	if err != nil {
		return nil, fancyErrorf(ctxISet, err)
	}
	if _, err = f.base.ISet(i, v); err != nil {
		return nil, err
	}

	return f, nil
}

// Float64 is Get followed by a conversion to float64.
// It serves every real dtype, and generic views holding real numbers.
//
// Errors: those of Get; dtype.ErrValueType for complex or non-numeric elements.
func (f *Array) Float64(args ...any) (float64, error) {
	v, err := f.Get(args...)
	if err != nil {
		return 0, err
	}
	x, err := dtype.ToFloat64(v)
	if err != nil {
		return 0, fancyErrorf(ctxFloat64, err)
	}

	return x, nil
}

// Complex128 is Get followed by a conversion to complex128; real elements
// get a zero imaginary part.
//
// Errors: those of Get; dtype.ErrValueType for non-numeric elements.
func (f *Array) Complex128(args ...any) (complex128, error) {
	v, err := f.Get(args...)
	if err != nil {
		return 0, err
	}
	c, err := dtype.ToComplex128(v)
	if err != nil {
		return 0, fancyErrorf(ctxComplex128, err)
	}

	return c, nil
}

func checkArity(op string, got, want int) error {
	if got != want {
		return fancyErrorf(op, fmt.Errorf("got %d arguments, want %d: %w", got, want, ndarray.ErrArityMismatch))
	}

	return nil
}

// fancyErrorf wraps err with a uniform Array method context.
func fancyErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}
