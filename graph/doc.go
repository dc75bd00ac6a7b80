// Package graph owns the matrix-backed topology of one graph instance:
// the boolean adjacency matrix, one diagonal boolean matrix per label, one
// edge-cell matrix per relation type (each connectivity matrix paired with
// an always-in-sync transpose), the derived node-label matrix, and the
// per-relation edge counters.
//
// Connectivity writes go through two routines that mirror the two shapes
// a dataset can take:
//
//   - ConnectSingle: fast path for relations known to hold at most one
//     edge per ordered node pair. No existing-cell check; adjacency bits,
//     relation cell, transpose mirrors and the counter, four writes flat.
//   - ConnectMulti: general path. Reads the existing relation cell and
//     either seeds it, promotes a single cell to a multi cell (exactly
//     once, first id preserved), or appends in place to an existing multi
//     cell. Parallel edges keep insertion order — it is the enumeration
//     order later traversal sees.
//
// A relation matrix cell is an EdgeCell: a two-case variant holding either
// exactly one edge id or an owning reference to a growable, ordered id
// sequence shared by the forward and transpose cells.
//
// Label membership is a diagonal bit per label matrix ([id,id] = true).
// ProjectNodeLabels materializes the combined node-label matrix from those
// diagonals in one bulk pass per label; it is idempotent-and-complete, so
// calling it again (or before any nodes exist) is safe.
//
// The whole package is single-writer by contract: a connection is several
// non-atomic writes, and the graph is only consistent once each call
// returns. No locking is provided here.
package graph
