// Package grix is the storage core of a matrix-backed property-graph
// engine: graph topology lives in sparse boolean and edge-id matrices
// rather than adjacency lists.
//
// What lives where:
//
//	core/   — entity identifiers, the Entity property block, and the
//	          DataBlock arena (out-of-order allocation, tombstones,
//	          ordered deleted-id lists)
//	matrix/ — the sparse matrix primitives: point-wise set/extract with
//	          presence checks, diagonal extraction, bulk column
//	          assignment, and the Bidirectional forward/transpose pair
//	graph/  — the Graph instance: adjacency, per-label and per-relation
//	          matrices, the Single/Multi edge cell encoding, and
//	          per-relation edge statistics
//	loader/ — the bulk-load surface a snapshot-restore driver calls:
//	          SetNode, SetEdge, SetNodeLabels, deletion tombstones and
//	          deleted-id views
//
// Why matrices?
//
//   - Constant-time edge existence via adjacency[src,dest].
//   - Incoming-edge traversal as cheap as outgoing: every connectivity
//     matrix is paired with an always-in-sync transpose.
//   - Per-label membership as diagonal bits, projected once per load
//     into a combined node-label matrix.
//
// The module is a single-writer bulk-load core: no operation blocks,
// spawns goroutines, or retries. Invariant violations surface as
// sentinel errors the loading driver is expected to abort on.
//
//	go get github.com/grixdb/grix
package grix
