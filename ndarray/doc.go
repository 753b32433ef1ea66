// Package ndarray defines Ndarray, a strided N-dimensional view over a
// borrowed typed buffer.
//
// What & Why:
//
//	An Ndarray is the record {buffer, dtype, shape, strides, offset, order,
//	mode, submodes, read-only}. It answers "get/set the element at these
//	subscripts" and "get/set the element at this linear index" by composing
//	the pure helpers of package index with the element codec of package dtype:
//
//	  subscripts ─ Resolve(per-dim submode) ─┐
//	                                         ├─ Offset ─ Codec.Decode/Encode ─ buffer
//	linear idx ─ Resolve(mode) ─ Unravel ────┘
//
// Boundary modes:
//
//	Throw (default) fails outside [0, n); Wrap takes a floored modulo; Clamp pins
//	to the nearest edge; Normalize maps [-n, -1] to [0, n-1] and fails otherwise.
//	Submodes apply per dimension and are sticky: a list shorter than the rank
//	reuses its last entry. Linear indices always use the default mode.
//
// Errors:
//
//	Constructor and setter faults match ErrInvalidArgument. Accessors return
//	ErrArityMismatch, ErrReadOnly, or an *IndexError wrapping
//	ErrIndexOutOfRange. A failed call never writes to the buffer.
//
// Ownership & concurrency:
//
//	Views borrow their buffer and never copy, free or reallocate it; several
//	views may alias one buffer with overlapping strides. Nothing here is
//	synchronized: Get/Set on views sharing a buffer need external locking as
//	soon as any goroutine writes.
//
// Interchange:
//
//	String and MarshalJSON render the logical contents with canonical strides.
//	ToStruct/MarshalProto carry the same fields as a google.protobuf.Struct,
//	and FromStruct/UnmarshalProto rebuild a contiguous view from it.
//
// Complexity:
//
//	New is O(rank). Get/Set/IGet/ISet are O(rank) and allocation-free for
//	rank <= 8. Do, Clone, String, MarshalJSON and ToStruct are O(Len()*rank).
package ndarray
