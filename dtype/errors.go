// SPDX-License-Identifier: MIT

package dtype

import "errors"

var (
	// ErrUnknownDType indicates a DType tag (or name) outside the enumeration.
	ErrUnknownDType = errors.New("dtype: unknown data type")

	// ErrBufferMismatch indicates a nil buffer or a buffer whose storage type
	// differs from the requested DType.
	ErrBufferMismatch = errors.New("dtype: buffer does not match data type")

	// ErrValueType indicates a value that cannot be encoded into the element type
	// (e.g. a complex value into a real buffer, or a bool into any numeric buffer).
	ErrValueType = errors.New("dtype: value cannot be encoded for data type")

	// ErrNegativeLength indicates a negative element count passed to New.
	ErrNegativeLength = errors.New("dtype: negative buffer length")
)
