// SPDX-License-Identifier: MIT

// Package matrix: coordinate-keyed sparse storage.
//
// Sparse[V] is a dictionary-of-keys matrix: one map entry per stored cell.
// The storage core's access pattern is point-wise single-cell mutation
// during load, so DOK wins over compressed formats (no row rebuilds, O(1)
// set/extract, cells can hold arbitrary value types — boolean adjacency
// bits, uint64 edge ids, or tagged edge-cell variants).
package matrix

// coord is an ordered (row, column) cell address.
type coord struct {
	row, col uint64
}

// Sparse is a mutable sparse matrix over values of type V.
// The zero value is not usable; construct with NewSparse.
type Sparse[V any] struct {
	cells map[coord]V
}

// NewSparse returns an empty sparse matrix.
// Complexity: O(1)
func NewSparse[V any]() *Sparse[V] {
	return &Sparse[V]{cells: make(map[coord]V)}
}

// Set stores v at (row, col), overwriting any existing value.
// Complexity: O(1)
func (m *Sparse[V]) Set(row, col uint64, v V) {
	m.cells[coord{row, col}] = v
}

// Extract returns the value at (row, col) and whether the cell is present.
// Absence is not an error: it is the ordinary "no entry here" branch, and
// it is distinct from a present cell holding V's zero value.
// Complexity: O(1)
func (m *Sparse[V]) Extract(row, col uint64) (V, bool) {
	v, ok := m.cells[coord{row, col}]
	return v, ok
}

// Delete removes the cell at (row, col) if present.
// Complexity: O(1)
func (m *Sparse[V]) Delete(row, col uint64) {
	delete(m.cells, coord{row, col})
}

// NNZ returns the number of stored (non-absent) cells.
// Complexity: O(1)
func (m *Sparse[V]) NNZ() int { return len(m.cells) }
