// Package index implements the integer arithmetic behind strided ndarray views.
//
// What & Why:
//
//	A strided view maps a tuple of logical subscripts onto one position of a flat
//	buffer. This package holds the three pure building blocks of that mapping, so
//	the view layer (package ndarray) only composes them:
//
//	  - Resolve: boundary-mode resolution of a single index against an extent
//	    (Throw, Wrap, Clamp, Normalize).
//	  - ToSubscripts / Unravel / ToLinearIndex: linear index ⇄ subscript tuple
//	    under a memory Order (RowMajor, ColumnMajor).
//	  - Offset: subscripts · strides + offset.
//
//	Layout helpers (Numel, ShapeToStrides, StridesToOffset, MinMaxBufferIndex,
//	StridesToOrder, IsContiguous) describe a (shape, strides, offset) triple
//	without touching any buffer. NumelChecked and MinMaxBufferIndexChecked do
//	the same arithmetic with overflow detection and are what untrusted
//	layouts must go through.
//
// Complexity:
//
//	Resolve and Offset are O(1) and O(rank). Translation is O(rank).
//	Nothing here allocates unless the caller passes a nil output slice.
//
// Concurrency:
//
//	Every function is pure and safe for concurrent use.
package index
