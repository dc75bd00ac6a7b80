// SPDX-License-Identifier: MIT

// Package matrix: forward/transpose matrix pairing.
//
// Every connectivity matrix in the graph (adjacency, each relation matrix)
// must answer both "edges out of src" and "edges into dest" without a
// scan, so each is stored twice: forward M[src,dest] and transpose
// TM[dest,src]. Keeping the two in sync by hand at every call site is how
// orientations drift apart; Bidirectional removes that failure mode by
// making the paired write the only public mutator.
package matrix

// Bidirectional couples a forward sparse matrix with its transpose and
// guarantees, by construction, that the two never disagree: Set writes
// both orientations in one call and there is no single-sided mutator.
type Bidirectional[V any] struct {
	m  *Sparse[V] // forward: (row, col)
	tm *Sparse[V] // transpose: (col, row)
}

// NewBidirectional returns an empty forward/transpose pair.
// Complexity: O(1)
func NewBidirectional[V any]() *Bidirectional[V] {
	return &Bidirectional[V]{
		m:  NewSparse[V](),
		tm: NewSparse[V](),
	}
}

// Set stores v at forward (row, col) and at transpose (col, row). Both
// writes happen in the same call; callers never observe one without the
// other.
// Complexity: O(1)
func (b *Bidirectional[V]) Set(row, col uint64, v V) {
	b.m.Set(row, col, v)
	b.tm.Set(col, row, v)
}

// Extract reads the forward cell (row, col).
// Complexity: O(1)
func (b *Bidirectional[V]) Extract(row, col uint64) (V, bool) {
	return b.m.Extract(row, col)
}

// ExtractTranspose reads the transpose cell (row, col), i.e. the mirror of
// forward (col, row). Incoming-edge traversal reads through here.
// Complexity: O(1)
func (b *Bidirectional[V]) ExtractTranspose(row, col uint64) (V, bool) {
	return b.tm.Extract(row, col)
}

// Forward returns the forward matrix for read paths that iterate cells.
// Mutating through it bypasses the pairing guarantee; writers must use Set.
func (b *Bidirectional[V]) Forward() *Sparse[V] { return b.m }

// Transpose returns the transpose matrix. Same read-only caveat as Forward.
func (b *Bidirectional[V]) Transpose() *Sparse[V] { return b.tm }

// NNZ returns the number of stored forward cells (the transpose holds the
// same count by construction).
// Complexity: O(1)
func (b *Bidirectional[V]) NNZ() int { return b.m.NNZ() }
