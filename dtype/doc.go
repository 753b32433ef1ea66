// Package dtype defines the element types a strided view can address, the
// typed buffers that store them, and one element codec per type.
//
// What & Why:
//
//	A view never interprets raw storage itself. It asks a Codec, picked once
//	from the DType tag, to Decode the element at a buffer position or to Encode
//	a Go value into it. Real types store one slot per element; complex types
//	store two adjacent slots (re, im); Generic stores arbitrary boxed values.
//
// Buffers:
//
//	Every buffer is a named Go slice type (Float64Buffer, Complex128Buffer, ...).
//	Passing a buffer to a view shares the backing array: views never copy or
//	free storage, and several views may alias one buffer.
//
// Concurrency:
//
//	Buffers are plain slices and are not synchronized. Concurrent writers to a
//	shared buffer need external locking.
package dtype
