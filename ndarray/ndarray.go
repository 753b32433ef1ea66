// SPDX-License-Identifier: MIT

// Package ndarray - the view descriptor and its constructor.
//
// Purpose:
//   - Bind a borrowed buffer to (shape, strides, offset, order) and a boundary
//     policy, validating every field eagerly.
//   - Expose read-only metadata with defensive copies so shape and strides stay
//     immutable for the lifetime of the view.
//
// AI-Hints:
//   - Build reversed or transposed views over the same buffer by passing other
//     strides/offsets; views alias storage, they never copy it.
//   - index.ShapeToStrides gives canonical strides for a fresh contiguous view.
//
// Complexity quicksheet:
//   - New: O(rank); metadata accessors: O(1) or O(rank) for copies.

package ndarray

import (
	"slices"

	"github.com/katalvlaran/strided/dtype"
	"github.com/katalvlaran/strided/index"
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"
	ctxGet         = "Get"
	ctxSet         = "Set"
	ctxIGet        = "IGet"
	ctxISet        = "ISet"
	ctxSetMode     = "SetMode"
	ctxSetSubmodes = "SetSubmodes"
	ctxClone       = "Clone"
	ctxToStruct    = "ToStruct"
	ctxFromStruct  = "FromStruct"
)

// _stackRank is the rank up to which per-call scratch space stays on the stack.
const _stackRank = 8

// Ndarray is a strided view over a borrowed buffer.
//   - shape/strides are private copies, immutable after New.
//   - mode/submodes/readOnly are the only mutable configuration.
//   - buf is shared with the caller and with any other view built on it.
//
// Ndarray is not safe for concurrent use when any goroutine writes, either
// through this view or through another view or slice aliasing the same buffer.
type Ndarray struct {
	dt    dtype.DType
	buf   dtype.Buffer
	codec dtype.Codec

	shape   []int
	strides []int
	offset  int
	order   index.Order
	numel   int

	mode     index.Mode
	submodes []index.Mode
	readOnly bool
}

// New builds a view over buf.
// MAIN DESCRIPTION:
//   - Public constructor with eager validation of every field.
//
// Implementation:
//   - Stage 1: validate dtype/buffer, shape, strides, offset, order.
//   - Stage 2: gather options (mode, submodes, read-only).
//   - Stage 3: check that the element count and reachable range fit in int
//     and that every reachable position lies inside buf.
//   - Stage 4: copy shape/strides and pick the element codec.
//
// Behavior highlights:
//   - The first violation wins; nothing is allocated for a rejected view.
//   - buf is borrowed, not copied.
//
// Inputs:
//   - dt: element type; must equal buf.DType().
//   - buf: storage; Len() counts logical elements.
//   - shape: non-negative extents; rank = len(shape) (0 for a scalar view).
//   - strides: one signed stride per dimension.
//   - offset: buffer index of the all-zero subscript.
//   - order: row-major or column-major, for linear indices only.
//
// Errors:
//   - ErrInvalidArgument and its refinements (ErrBadShape, ErrStridesMismatch,
//     ErrNegativeOffset, ErrLayoutOverflow, ErrBufferTooShort).
//
// Complexity:
//   - Time O(rank), Space O(rank).
func New(dt dtype.DType, buf dtype.Buffer, shape, strides []int, offset int, order index.Order, opts ...Option) (*Ndarray, error) {
	if err := ValidateDType(dt, buf); err != nil {
		return nil, ndErrorf(ctxNew, err)
	}
	if err := ValidateShape(shape); err != nil {
		return nil, ndErrorf(ctxNew, err)
	}
	if err := ValidateStrides(shape, strides); err != nil {
		return nil, ndErrorf(ctxNew, err)
	}
	if err := ValidateOffset(offset); err != nil {
		return nil, ndErrorf(ctxNew, err)
	}
	if err := ValidateOrder(order); err != nil {
		return nil, ndErrorf(ctxNew, err)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, ndErrorf(ctxNew, err)
	}
	if err = ValidateBufferFit(buf, shape, strides, offset); err != nil {
		return nil, ndErrorf(ctxNew, err)
	}
	codec, err := dtype.CodecFor(dt)
	if err != nil {
		return nil, ndErrorf(ctxNew, err)
	}

	return &Ndarray{
		dt:       dt,
		buf:      buf,
		codec:    codec,
		shape:    append([]int{}, shape...),
		strides:  append([]int{}, strides...),
		offset:   offset,
		order:    order,
		numel:    index.Numel(shape),
		mode:     o.mode,
		submodes: o.submodes,
		readOnly: o.readOnly,
	}, nil
}

// NewContiguous builds a view with canonical strides for order and offset 0.
// Complexity: O(rank).
func NewContiguous(dt dtype.DType, buf dtype.Buffer, shape []int, order index.Order, opts ...Option) (*Ndarray, error) {
	if err := ValidateShape(shape); err != nil {
		return nil, ndErrorf(ctxNew, err)
	}

	return New(dt, buf, shape, index.ShapeToStrides(shape, order), 0, order, opts...)
}

// DType returns the element type.
func (a *Ndarray) DType() dtype.DType { return a.dt }

// Data returns the borrowed buffer (shared, not a copy).
func (a *Ndarray) Data() dtype.Buffer { return a.buf }

// Shape returns a copy of the extents.
func (a *Ndarray) Shape() []int { return append([]int{}, a.shape...) }

// Strides returns a copy of the strides.
func (a *Ndarray) Strides() []int { return append([]int{}, a.strides...) }

// Offset returns the buffer index of the all-zero subscript.
func (a *Ndarray) Offset() int { return a.offset }

// Order returns the memory order used for linear indices.
func (a *Ndarray) Order() index.Order { return a.order }

// Ndims returns the rank.
func (a *Ndarray) Ndims() int { return len(a.shape) }

// Len returns the number of elements (1 for a scalar view, 0 if any extent is 0).
func (a *Ndarray) Len() int { return a.numel }

// BytesPerElement returns the element width in bytes (0 for Generic).
func (a *Ndarray) BytesPerElement() int { return a.dt.Size() }

// ByteLength returns Len()*BytesPerElement().
func (a *Ndarray) ByteLength() int { return a.numel * a.dt.Size() }

// Mode returns the default mode.
func (a *Ndarray) Mode() index.Mode { return a.mode }

// Submodes returns a copy of the configured per-dimension modes (nil if unset).
func (a *Ndarray) Submodes() []index.Mode { return slices.Clone(a.submodes) }

// ReadOnly reports whether writes are rejected.
func (a *Ndarray) ReadOnly() bool { return a.readOnly }

// SetMode replaces the default mode.
//
// Errors:
//   - ErrInvalidArgument wrapping index.ErrInvalidMode; the view is unchanged.
func (a *Ndarray) SetMode(m index.Mode) error {
	if err := ValidateMode(m); err != nil {
		return ndErrorf(ctxSetMode, err)
	}
	a.mode = m

	return nil
}

// SetSubmodes replaces the per-dimension modes. No arguments clears them so
// that every dimension follows the default mode.
//
// Errors:
//   - ErrInvalidArgument wrapping index.ErrInvalidMode; the view is unchanged.
func (a *Ndarray) SetSubmodes(ms ...index.Mode) error {
	if err := ValidateSubmodes(ms); err != nil {
		return ndErrorf(ctxSetSubmodes, err)
	}
	if len(ms) == 0 {
		a.submodes = nil
		return nil
	}
	a.submodes = slices.Clone(ms)

	return nil
}

// submodeFor returns the mode for dimension dim: submodes are sticky, and an
// unset list falls back to the default mode.
func (a *Ndarray) submodeFor(dim int) index.Mode {
	return index.ModeFor(a.submodes, dim, a.mode)
}
