// SPDX-License-Identifier: MIT

package index

// Offset returns offset + Σ subs[d]*strides[d].
// Subscripts must already be resolved; nothing is validated here.
// Complexity: O(rank).
func Offset(subs, strides []int, offset int) int {
	pos := offset
	for d, s := range subs {
		pos += s * strides[d]
	}

	return pos
}
