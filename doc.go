// Package strided is an N-dimensional strided-array indexing engine: typed
// buffers, views over them, and the index arithmetic that connects the two.
//
// 🚀 What is strided?
//
//	A small, allocation-conscious library that brings together:
//		• Boundary modes: throw, wrap, clamp, normalize; per-dimension and sticky
//		• Linear indices: row-major / column-major translation to subscripts
//		• Views: shape, strides (any sign), offset over a borrowed buffer
//		• Typed storage: int8…uint32, uint8c, float16/32/64, complex64/128, generic
//		• Dynamic access: subscripts as `any`, validated at run time
//		• Interchange: String, JSON and protobuf Struct encodings of a view
//
// ✨ Why choose strided?
//
//   - Zero-copy – transposes, reversals and channel planes are just new strides
//   - Explicit errors – every failure is a wrapped sentinel, nothing panics on input
//   - No reflection on the element path – codecs are picked once per view
//
// Under the hood, everything is organized under four subpackages:
//
//	index/   - Mode, Order, Resolve, ToSubscripts/ToLinearIndex, Offset, layout helpers
//	dtype/   - DType tags, typed Buffer slices, element codecs
//	ndarray/ - Ndarray view: New, Get/Set, IGet/ISet, Flags, Clone, String, JSON, protobuf
//	fancy/   - Array: Get/Set/IGet/ISet with dynamically typed indices
//
// Quick ASCII example:
//
//	buffer  [ 1  2  3  4  5  6 ]
//	shape   [2 3], strides [3 1]   →  [ 1 2 3 ; 4 5 6 ]
//	shape   [3 2], strides [1 3]   →  [ 1 4 ; 2 5 ; 3 6 ]   (transpose, same buffer)
//
// Runnable walkthroughs live in examples/.
//
//	go get github.com/katalvlaran/strided
package strided
