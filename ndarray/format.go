// SPDX-License-Identifier: MIT

// Package ndarray - traversal, copies, flags and serialization.
//
// Purpose:
//   - Walk a view in its logical order without knowing its strides.
//   - Materialize an independent contiguous copy (Clone).
//   - Report contiguity flags and render the view for logs or JSON.
//
// Determinism:
//   - Every traversal runs linear indices 0..Len()-1 in the view's order.
package ndarray

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/strided/dtype"
	"github.com/katalvlaran/strided/index"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen       = "ndarray( "
	_fmtClose      = " )"
	_fmtSep        = ", "
	_fmtListOpen   = "[ "
	_fmtListClose  = " ]"
	_fmtEllipsis   = "..."
	_maxStringElem = 10000 // above this, String prints head and tail only
	_edgeElems     = 3     // elements kept at each end when truncated
)

// Flags describes the memory layout of a view.
type Flags struct {
	RowMajorContiguous    bool
	ColumnMajorContiguous bool
	ReadOnly              bool
}

// Flags reports contiguity and the read-only policy.
// Complexity: O(rank).
func (a *Ndarray) Flags() Flags {
	f := Flags{ReadOnly: a.readOnly}
	if len(a.shape) == 0 {
		f.RowMajorContiguous, f.ColumnMajorContiguous = true, true
		return f
	}
	if !index.IsContiguous(a.shape, a.strides, a.offset) {
		return f
	}
	switch index.StridesToOrder(a.strides) {
	case index.LayoutBoth:
		f.RowMajorContiguous, f.ColumnMajorContiguous = true, true
	case index.LayoutRowMajor:
		f.RowMajorContiguous = true
	case index.LayoutColumnMajor:
		f.ColumnMajorContiguous = true
	}

	return f
}

// Do visits each element in the view's logical order and calls f(subs, v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Behavior highlights:
//   - subs is reused between calls; copy it if it must outlive the callback.
//
// Complexity:
//   - Time O(Len()*rank), Space O(rank).
func (a *Ndarray) Do(f func(subs []int, v any) bool) {
	subs := make([]int, len(a.shape))
	for i := 0; i < a.numel; i++ {
		subs = index.Unravel(i, a.shape, a.order, subs)
		if !f(subs, a.codec.Decode(a.buf, index.Offset(subs, a.strides, a.offset))) {
			return
		}
	}
}

// values returns the elements in logical order.
func (a *Ndarray) values() []any {
	out := make([]any, 0, a.numel)
	a.Do(func(_ []int, v any) bool {
		out = append(out, v)
		return true
	})

	return out
}

// Clone copies the view into a new contiguous buffer with canonical strides
// for its order and offset 0. Modes and the read-only flag are preserved.
// MAIN DESCRIPTION:
//   - Independent copy: writes to the clone never reach the original buffer.
//
// Errors:
//   - Propagates buffer allocation / construction errors (not expected for a
//     valid view).
//
// Complexity:
//   - Time O(Len()*rank), Space O(Len()).
func (a *Ndarray) Clone() (*Ndarray, error) {
	buf, err := dtype.New(a.dt, a.numel)
	if err != nil {
		return nil, ndErrorf(ctxClone, err)
	}
	var i int
	a.Do(func(_ []int, v any) bool {
		err = a.codec.Encode(buf, i, v)
		i++
		return err == nil
	})
	if err != nil {
		return nil, ndErrorf(ctxClone, err)
	}

	opts := []Option{WithMode(a.mode), WithSubmodes(a.submodes...)}
	if a.readOnly {
		opts = append(opts, WithReadOnly())
	}

	return NewContiguous(a.dt, buf, a.shape, a.order, opts...)
}

// String renders the view as a constructor-like expression over its logical
// contents, e.g. ndarray( 'float64', [ 1, 2, 3 ], [ 3 ], [ 1 ], 0, 'row-major' ).
// Views longer than 10000 elements print the first and last three only.
// Complexity: O(Len()).
func (a *Ndarray) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	fmt.Fprintf(&b, "'%s'", a.dt)
	b.WriteString(_fmtSep)

	vals := a.values()
	if len(vals) > _maxStringElem {
		head := vals[:_edgeElems]
		tail := vals[len(vals)-_edgeElems:]
		vals = append(append(append([]any{}, head...), _fmtEllipsis), tail...)
	}
	writeList(&b, vals)
	b.WriteString(_fmtSep)
	writeList(&b, toAny(a.shape))
	b.WriteString(_fmtSep)
	writeList(&b, toAny(index.ShapeToStrides(a.shape, a.order)))
	b.WriteString(_fmtSep)
	b.WriteString("0")
	b.WriteString(_fmtSep)
	fmt.Fprintf(&b, "'%s'", a.order)
	b.WriteString(_fmtClose)

	return b.String()
}

func writeList(b *strings.Builder, vals []any) {
	if len(vals) == 0 {
		b.WriteString("[]")
		return
	}
	b.WriteString(_fmtListOpen)
	for i, v := range vals {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(b, "%v", v)
	}
	b.WriteString(_fmtListClose)
}

func toAny(xs []int) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}

	return out
}

// jsonView is the serialized form of a view.
type jsonView struct {
	Type    string          `json:"type"`
	DType   dtype.DType     `json:"dtype"`
	Flags   map[string]bool `json:"flags"`
	Order   index.Order     `json:"order"`
	Shape   []int           `json:"shape"`
	Strides []int           `json:"strides"`
	Data    []any           `json:"data"`
}

// MarshalJSON implements json.Marshaler.
// Data is written in logical order, so strides are the canonical ones for the
// view's order. Complex elements are written as [re, im].
//
// Errors:
//   - Propagates encoding/json errors (e.g. NaN or ±Inf elements).
func (a *Ndarray) MarshalJSON() ([]byte, error) {
	vals := a.values()
	for i, v := range vals {
		switch c := v.(type) {
		case complex128:
			vals[i] = [2]float64{real(c), imag(c)}
		case complex64:
			vals[i] = [2]float32{real(c), imag(c)}
		}
	}

	return json.Marshal(jsonView{
		Type:    "ndarray",
		DType:   a.dt,
		Flags:   map[string]bool{"READONLY": a.readOnly},
		Order:   a.order,
		Shape:   a.Shape(),
		Strides: index.ShapeToStrides(a.shape, a.order),
		Data:    vals,
	})
}
