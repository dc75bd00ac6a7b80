// SPDX-License-Identifier: MIT

// Package matrix provides the sparse matrix primitives the graph storage
// core is built on. It is deliberately minimal: the storage layer needs
// point-wise reads and writes, presence checks, one bulk diagonal/column
// primitive pair for label projection, and nothing else — no algebra.
//
// Primitives:
//
//   - Sparse[V]: coordinate-keyed sparse matrix. Extract distinguishes
//     "absent" from "present with the zero value", which is what lets a
//     relation cell encode edge id 0.
//   - Diagonal: reads the true diagonal entries of a boolean matrix into
//     a dense column vector.
//   - AssignColumn: masked bulk write of that vector into one column of a
//     target matrix (only true entries are assigned; absent stays absent).
//   - Bidirectional[V]: a forward matrix and its transpose kept in sync by
//     a single mutator, so reverse-direction lookups never drift from
//     forward ones.
//
// Matrices here are logically unbounded: coordinates are uint64 and no
// dimension is enforced. The graph layer owns the dimension (it knows the
// entity arena's capacity); these primitives trust their callers, per the
// storage core's trusted-input contract.
//
// None of the types in this package are safe for concurrent mutation.
package matrix
