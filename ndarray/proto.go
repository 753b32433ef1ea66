// SPDX-License-Identifier: MIT

// Package ndarray - protobuf interchange.
//
// Purpose:
//   - Carry a view across process boundaries as a google.protobuf.Struct with
//     the same fields as MarshalJSON: type, dtype, flags, order, shape,
//     strides and data (logical order).
//   - Rebuild an independent contiguous view from that Struct.
//
// Behavior highlights:
//   - Real elements travel as protobuf numbers (float64), complex elements as
//     [re, im] lists, generic elements as whatever structpb.NewValue accepts.
//   - Decoding never aliases the message: FromStruct allocates a fresh buffer.
package ndarray

import (
	"fmt"
	"math"

	"fortio.org/safecast"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/katalvlaran/strided/dtype"
	"github.com/katalvlaran/strided/index"
)

// Struct field names.
const (
	_keyType    = "type"
	_keyDType   = "dtype"
	_keyFlags   = "flags"
	_keyRO      = "READONLY"
	_keyOrder   = "order"
	_keyShape   = "shape"
	_keyStrides = "strides"
	_keyData    = "data"
	_typeName   = "ndarray"
)

// ToStruct encodes the view as a protobuf Struct.
// MAIN DESCRIPTION:
//   - Same layout as MarshalJSON; strides are the canonical ones for the
//     view's order because data is written in logical order.
//
// Errors:
//   - Generic elements structpb cannot represent (wrapped dtype.ErrValueType).
//
// Complexity:
//   - Time O(Len()*rank), Space O(Len()).
func (a *Ndarray) ToStruct() (*structpb.Struct, error) {
	data := make([]any, 0, a.numel)
	var err error
	a.Do(func(_ []int, v any) bool {
		var e any
		e, err = a.protoElem(v)
		data = append(data, e)
		return err == nil
	})
	if err != nil {
		return nil, ndErrorf(ctxToStruct, err)
	}

	s, err := structpb.NewStruct(map[string]any{
		_keyType:    _typeName,
		_keyDType:   a.dt.String(),
		_keyFlags:   map[string]any{_keyRO: a.readOnly},
		_keyOrder:   a.order.String(),
		_keyShape:   toAny(a.shape),
		_keyStrides: toAny(index.ShapeToStrides(a.shape, a.order)),
		_keyData:    data,
	})
	if err != nil {
		return nil, ndErrorf(ctxToStruct, fmt.Errorf("%v: %w", err, dtype.ErrValueType))
	}

	return s, nil
}

// MarshalProto returns the deterministic wire encoding of ToStruct.
func (a *Ndarray) MarshalProto() ([]byte, error) {
	s, err := a.ToStruct()
	if err != nil {
		return nil, err
	}
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(s)
	if err != nil {
		return nil, ndErrorf(ctxToStruct, err)
	}

	return b, nil
}

// protoElem maps a decoded element to a value structpb.NewValue accepts.
func (a *Ndarray) protoElem(v any) (any, error) {
	switch {
	case a.dt.IsComplex():
		c, err := dtype.ToComplex128(v)
		if err != nil {
			return nil, err
		}
		return []any{real(c), imag(c)}, nil
	case a.dt.IsInteger(), a.dt.IsFloating():
		f, err := dtype.ToFloat64(v)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return v, nil
	}
}

// FromStruct rebuilds a contiguous view from a Struct produced by ToStruct.
// MAIN DESCRIPTION:
//   - Allocates a new buffer of the encoded dtype and fills it in the encoded
//     order; strides in the message are ignored and recomputed.
//
// Implementation:
//   - Stage 1: read type, dtype, order and shape (integral entries within int).
//   - Stage 2: check that Numel(shape) fits in int and equals len(data), then
//     encode every element.
//   - Stage 3: NewContiguous with READONLY (if set) followed by opts.
//
// Errors:
//   - ErrMalformedStruct for missing or ill-typed fields and for shapes whose
//     entries or element count do not fit in int; dtype.ErrUnknownDType,
//     index.ErrInvalidOrder for bad names; constructor errors from New.
//
// Complexity:
//   - Time O(Len()), Space O(Len()).
func FromStruct(s *structpb.Struct, opts ...Option) (*Ndarray, error) {
	if s == nil {
		return nil, ndErrorf(ctxFromStruct, fmt.Errorf("nil struct: %w", ErrMalformedStruct))
	}
	f := s.GetFields()
	if f[_keyType].GetStringValue() != _typeName {
		return nil, ndErrorf(ctxFromStruct, fmt.Errorf("type %q: %w", f[_keyType].GetStringValue(), ErrMalformedStruct))
	}

	dt, err := dtype.Parse(f[_keyDType].GetStringValue())
	if err != nil {
		return nil, ndErrorf(ctxFromStruct, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}
	order, err := index.ParseOrder(f[_keyOrder].GetStringValue())
	if err != nil {
		return nil, ndErrorf(ctxFromStruct, fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}
	shape, err := listToInts(f[_keyShape])
	if err != nil {
		return nil, ndErrorf(ctxFromStruct, fmt.Errorf("shape: %w", err))
	}
	if err = ValidateShape(shape); err != nil {
		return nil, ndErrorf(ctxFromStruct, err)
	}

	data := f[_keyData].GetListValue().GetValues()
	n, err := index.NumelChecked(shape)
	if err != nil {
		return nil, ndErrorf(ctxFromStruct, fmt.Errorf("shape: %w: %w", ErrMalformedStruct, err))
	}
	if len(data) != n {
		return nil, ndErrorf(ctxFromStruct,
			fmt.Errorf("data has %d elements, shape needs %d: %w", len(data), n, ErrMalformedStruct))
	}
	buf, err := dtype.New(dt, n)
	if err != nil {
		return nil, ndErrorf(ctxFromStruct, err)
	}
	codec, err := dtype.CodecFor(dt)
	if err != nil {
		return nil, ndErrorf(ctxFromStruct, err)
	}
	for i, v := range data {
		if err = codec.Encode(buf, i, elemFromProto(dt, v)); err != nil {
			return nil, ndErrorf(ctxFromStruct, fmt.Errorf("data[%d]: %w: %w", i, ErrMalformedStruct, err))
		}
	}

	if f[_keyFlags].GetStructValue().GetFields()[_keyRO].GetBoolValue() {
		opts = append([]Option{WithReadOnly()}, opts...)
	}

	return NewContiguous(dt, buf, shape, order, opts...)
}

// UnmarshalProto decodes bytes produced by MarshalProto.
func UnmarshalProto(b []byte, opts ...Option) (*Ndarray, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return nil, ndErrorf(ctxFromStruct, fmt.Errorf("%v: %w", err, ErrMalformedStruct))
	}

	return FromStruct(&s, opts...)
}

// elemFromProto converts one data entry to a value the dtype codecs accept.
// A malformed entry is passed through so that Encode reports ErrValueType.
func elemFromProto(dt dtype.DType, v *structpb.Value) any {
	if !dt.IsNumeric() {
		return v.AsInterface()
	}
	if l, ok := v.GetKind().(*structpb.Value_ListValue); ok && dt.IsComplex() {
		vals := l.ListValue.GetValues()
		if len(vals) != 2 {
			return l
		}
		return [2]float64{vals[0].GetNumberValue(), vals[1].GetNumberValue()}
	}
	if num, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
		return num.NumberValue
	}

	return v.AsInterface()
}

// listToInts reads a list of integral numbers.
func listToInts(v *structpb.Value) ([]int, error) {
	l := v.GetListValue()
	if l == nil {
		return nil, ErrMalformedStruct
	}
	out := make([]int, len(l.GetValues()))
	for i, e := range l.GetValues() {
		num, ok := e.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMalformedStruct)
		}
		f := num.NumberValue
		// int(f) is implementation-defined outside this range.
		if math.IsNaN(f) || f < math.MinInt || f >= math.MaxInt || f != math.Trunc(f) {
			return nil, fmt.Errorf("entry %d (%v): %w", i, f, ErrMalformedStruct)
		}
		n, err := safecast.Convert[int](f)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%v): %w: %w", i, f, ErrMalformedStruct, err)
		}
		out[i] = n
	}

	return out, nil
}
