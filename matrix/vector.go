// SPDX-License-Identifier: MIT

// Package matrix: bulk diagonal/column primitives.
//
// These two functions exist for exactly one caller: the node-label
// projection, which reads every label matrix's diagonal into a dense
// vector and writes that vector into one column of the combined
// node-label matrix. O(n) per label, run once per load.
package matrix

// Diagonal extracts the first n diagonal entries of m into a dense vector:
// out[i] is true iff cell (i, i) is present and true.
// Complexity: O(n)
func Diagonal(m *Sparse[bool], n uint64) []bool {
	out := make([]bool, n)
	for i := uint64(0); i < n; i++ {
		if v, ok := m.Extract(i, i); ok && v {
			out[i] = true
		}
	}
	return out
}

// AssignColumn writes vec into column col of dst under an implicit mask:
// only true entries are assigned, false entries leave the target cell
// untouched (absent stays absent). This matches the masked subassign the
// projection step needs — label bits are only ever added during a load.
// Complexity: O(len(vec))
func AssignColumn(dst *Sparse[bool], vec []bool, col uint64) {
	for i, set := range vec {
		if set {
			dst.Set(uint64(i), col, true)
		}
	}
}
