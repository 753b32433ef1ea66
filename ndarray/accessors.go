// SPDX-License-Identifier: MIT

// Package ndarray - element access by subscripts and by linear index.
//
// Purpose:
//   - Resolve every index with its mode, combine with strides, then touch the
//     buffer exactly once.
//
// Behavior highlights:
//   - All validation happens before the buffer access: a failed call never
//     writes anything.
//   - Subscript access uses the per-dimension submodes (sticky); linear access
//     uses the default mode only.
//   - Errors are terminal for the call and are never retried or logged.
//
// AI-Hints:
//   - Use the *WithModes variants to resolve one call under a different policy
//     without reconfiguring a shared view.
package ndarray

import (
	"fmt"

	"github.com/katalvlaran/strided/index"
)

// Get returns the element at subs.
// MAIN DESCRIPTION:
//   - Subscript read resolved with the configured submodes.
//
// Implementation:
//   - Stage 1: arity check (len(subs) == rank).
//   - Stage 2: resolve each subscript with submodeFor(dim).
//   - Stage 3: index.Offset, then decode.
//
// Errors:
//   - ErrArityMismatch; *IndexError wrapping ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(rank), no allocation for rank <= 8.
func (a *Ndarray) Get(subs ...int) (any, error) {
	pos, err := a.position(ctxGet, nil, subs)
	if err != nil {
		return nil, err
	}

	return a.codec.Decode(a.buf, pos), nil
}

// GetWithModes is Get resolved with modes (sticky) instead of the configured
// submodes. An empty modes list falls back to the configured submodes.
//
// Errors:
//   - ErrInvalidArgument for invalid modes, then as Get.
func (a *Ndarray) GetWithModes(modes []index.Mode, subs ...int) (any, error) {
	if err := ValidateSubmodes(modes); err != nil {
		return nil, ndErrorf(ctxGet, err)
	}
	pos, err := a.position(ctxGet, modes, subs)
	if err != nil {
		return nil, err
	}

	return a.codec.Decode(a.buf, pos), nil
}

// Set writes v at subs and returns the view for chaining.
// MAIN DESCRIPTION:
//   - Subscript write; same resolution path as Get.
//
// Implementation:
//   - Stage 1: reject read-only views.
//   - Stage 2: resolve position as in Get.
//   - Stage 3: encode v (the codec writes nothing when v is unencodable).
//
// Errors:
//   - ErrReadOnly, ErrArityMismatch, *IndexError, ErrInvalidArgument wrapping
//     dtype.ErrValueType.
//
// Complexity:
//   - Time O(rank).
func (a *Ndarray) Set(v any, subs ...int) (*Ndarray, error) {
	return a.set(ctxSet, nil, v, subs)
}

// SetWithModes is Set resolved with modes instead of the configured submodes.
func (a *Ndarray) SetWithModes(modes []index.Mode, v any, subs ...int) (*Ndarray, error) {
	if err := ValidateSubmodes(modes); err != nil {
		return nil, ndErrorf(ctxSet, err)
	}

	return a.set(ctxSet, modes, v, subs)
}

// IGet returns the element at linear index idx in the view's order.
// MAIN DESCRIPTION:
//   - Linear read resolved with the default mode; submodes are ignored.
//
// Implementation:
//   - Stage 1: index.ToSubscripts (resolve against Len(), then decompose).
//   - Stage 2: index.Offset, then decode.
//
// Errors:
//   - *IndexError (Dim == -1) wrapping ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(rank).
func (a *Ndarray) IGet(idx int) (any, error) {
	return a.iget(ctxIGet, a.mode, idx)
}

// IGetWithMode is IGet resolved with m instead of the default mode.
func (a *Ndarray) IGetWithMode(m index.Mode, idx int) (any, error) {
	if err := ValidateMode(m); err != nil {
		return nil, ndErrorf(ctxIGet, err)
	}

	return a.iget(ctxIGet, m, idx)
}

// ISet writes v at linear index idx and returns the view for chaining.
//
// Errors:
//   - ErrReadOnly, *IndexError (Dim == -1), ErrInvalidArgument wrapping
//     dtype.ErrValueType.
func (a *Ndarray) ISet(idx int, v any) (*Ndarray, error) {
	return a.iset(ctxISet, a.mode, idx, v)
}

// ISetWithMode is ISet resolved with m instead of the default mode.
func (a *Ndarray) ISetWithMode(m index.Mode, idx int, v any) (*Ndarray, error) {
	if err := ValidateMode(m); err != nil {
		return nil, ndErrorf(ctxISet, err)
	}

	return a.iset(ctxISet, m, idx, v)
}

// position resolves subs to a buffer position.
// modes == nil selects the configured submodes.
func (a *Ndarray) position(op string, modes []index.Mode, subs []int) (int, error) {
	rank := len(a.shape)
	if len(subs) != rank {
		return 0, ndErrorf(op, fmt.Errorf("got %d subscripts for rank %d: %w", len(subs), rank, ErrArityMismatch))
	}

	var scratch [_stackRank]int
	resolved := scratch[:0]
	if rank > _stackRank {
		resolved = make([]int, 0, rank)
	}

	var m index.Mode
	for d, i := range subs {
		if len(modes) == 0 {
			m = a.submodeFor(d)
		} else {
			m = index.ModeFor(modes, d, a.mode)
		}
		r, err := index.Resolve(i, a.shape[d], m)
		if err != nil {
			return 0, &IndexError{Op: op, Dim: d, Index: i, Err: err}
		}
		resolved = append(resolved, r)
	}

	return index.Offset(resolved, a.strides, a.offset), nil
}

// linearPosition resolves a linear index to a buffer position under m.
func (a *Ndarray) linearPosition(op string, m index.Mode, idx int) (int, error) {
	var scratch [_stackRank]int
	subs, err := index.ToSubscripts(idx, a.shape, a.order, m, scratch[:0])
	if err != nil {
		return 0, &IndexError{Op: op, Dim: -1, Index: idx, Err: err}
	}

	return index.Offset(subs, a.strides, a.offset), nil
}

func (a *Ndarray) set(op string, modes []index.Mode, v any, subs []int) (*Ndarray, error) {
	if a.readOnly {
		return nil, ndErrorf(op, ErrReadOnly)
	}
	pos, err := a.position(op, modes, subs)
	if err != nil {
		return nil, err
	}
	if err = a.codec.Encode(a.buf, pos, v); err != nil {
		return nil, ndErrorf(op, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	return a, nil
}

func (a *Ndarray) iget(op string, m index.Mode, idx int) (any, error) {
	pos, err := a.linearPosition(op, m, idx)
	if err != nil {
		return nil, err
	}

	return a.codec.Decode(a.buf, pos), nil
}

func (a *Ndarray) iset(op string, m index.Mode, idx int, v any) (*Ndarray, error) {
	if a.readOnly {
		return nil, ndErrorf(op, ErrReadOnly)
	}
	pos, err := a.linearPosition(op, m, idx)
	if err != nil {
		return nil, err
	}
	if err = a.codec.Encode(a.buf, pos, v); err != nil {
		return nil, ndErrorf(op, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}

	return a, nil
}
