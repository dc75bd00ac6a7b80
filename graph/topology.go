// File: topology.go
// Role: edge connection routines and the node-label projection.
//
// A connection is several non-atomic writes (adjacency bit, relation cell,
// transpose mirrors, counter). The graph is consistent only between calls;
// single-writer execution is the caller's contract.
package graph

import (
	"github.com/grixdb/grix/core"
	"github.com/grixdb/grix/matrix"
)

// ConnectSingle forms the connection src→dest for edge id under relation r
// on the fast path: the caller guarantees this relation never holds more
// than one edge per ordered pair for this dataset, so no existing-cell
// check is performed — an occupied cell is simply overwritten.
//
// Writes, all in this one call: adjacency forward+transpose bits, relation
// forward+transpose single cells, and a +1 on relation r's edge counter.
// Complexity: O(1)
func (g *Graph) ConnectSingle(src, dest core.NodeID, id core.EdgeID, r core.RelationID) {
	rel := g.RelationMatrix(r)

	// rows are source nodes, columns are destination nodes
	g.adjacency.Set(uint64(src), uint64(dest), true)
	rel.Set(uint64(src), uint64(dest), SingleCell(id))

	g.stats.IncEdgeCount(r, 1)
}

// ConnectMulti forms the connection src→dest for edge id under relation r
// on the general path, used whenever the dataset may contain parallel
// edges of the same type between the same ordered pair.
//
// The adjacency bits are set identically to ConnectSingle. The relation
// cell is then merged rather than overwritten:
//
//   - absent: seeded with a single cell, mirrored to the transpose;
//   - single: promoted to a multi cell seeded with the existing id then
//     the new one, both orientations rewritten to reference the same list;
//   - multi: the new id is appended in place — the forward and transpose
//     cells share the list, so neither cell needs rewriting.
//
// The relation's edge counter increases by 1 on every branch.
// Complexity: amortized O(1)
func (g *Graph) ConnectMulti(src, dest core.NodeID, id core.EdgeID, r core.RelationID) {
	rel := g.RelationMatrix(r)
	row, col := uint64(src), uint64(dest)

	g.adjacency.Set(row, col, true)

	cell, ok := rel.Extract(row, col)
	switch {
	case !ok:
		// no edge of this type between this pair yet
		rel.Set(row, col, SingleCell(id))
	case !cell.IsMulti():
		// second parallel edge: promote single → multi exactly once
		rel.Set(row, col, multiCell(cell.id, id))
	default:
		// already multi: order-preserving in-place append
		cell.appendEdge(id)
	}

	g.stats.IncEdgeCount(r, 1)
}

// ProjectNodeLabels materializes the combined node-label matrix from the
// per-label diagonal matrices: column l of the result is the diagonal of
// label l's matrix. The projection is idempotent-and-complete — it always
// reflects the current label matrix state over the full current dimension,
// so running it twice, or before any nodes exist, is harmless. It is
// intended to run once per load, after all labels are known.
// Complexity: O(label_count × node_count)
func (g *Graph) ProjectNodeLabels() {
	dim := g.RequiredMatrixDim()
	for l, lm := range g.labels {
		v := matrix.Diagonal(lm, dim)
		matrix.AssignColumn(g.nodeLabels, v, uint64(l))
	}
}
