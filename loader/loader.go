// File: loader.go
// Role: the deserialization API — node/edge creation at caller-supplied
// ids, label projection, deletion tombstones, deleted-id views.
package loader

import (
	"fmt"

	"github.com/grixdb/grix/core"
	"github.com/grixdb/grix/graph"
)

// Loader drives one graph instance through a bulk load. It owns no state
// of its own beyond the graph handle; all ordering and id assignment come
// from the caller.
type Loader struct {
	g *graph.Graph
}

// New returns a Loader over g.
// Returns ErrGraphNil if g is nil.
func New(g *graph.Graph) (*Loader, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return &Loader{g: g}, nil
}

// Graph returns the Loader's underlying graph instance.
func (ld *Loader) Graph() *graph.Graph { return ld.g }

// SetNode creates node id out of order: it allocates the entity slot (zero
// properties) and sets the diagonal bit [id,id] in every named label
// matrix. Label ids are trusted, pre-resolved registry values.
//
// Returns the populated node handle, or a wrapped core.ErrAlreadyAllocated
// if the id is already live — fatal to the load.
// Complexity: O(len(labels)) amortized
func (ld *Loader) SetNode(id core.NodeID, labels []core.LabelID) (*core.Node, error) {
	en, err := ld.g.Nodes().AllocateOutOfOrder(uint64(id))
	if err != nil {
		return nil, fmt.Errorf("loader: SetNode(%d): %w", id, err)
	}

	for _, l := range labels {
		ld.g.LabelMatrix(l).Set(uint64(id), uint64(id), true)
	}

	return &core.Node{ID: id, Entity: en}, nil
}

// SetEdge creates edge id out of order: it allocates the entity slot,
// fills the edge's relation and endpoint fields, and forms the matrix
// connection. multiEdge picks the path: true routes through the general
// merge-capable routine, false through the single-occupancy fast path —
// the caller asserts, per dataset and relation type, which one holds.
//
// Returns the populated edge handle, or a wrapped core.ErrAlreadyAllocated
// if the id is already live — fatal to the load.
// Complexity: amortized O(1)
func (ld *Loader) SetEdge(multiEdge bool, id core.EdgeID, src, dest core.NodeID, r core.RelationID) (*core.Edge, error) {
	en, err := ld.g.Edges().AllocateOutOfOrder(uint64(id))
	if err != nil {
		return nil, fmt.Errorf("loader: SetEdge(%d): %w", id, err)
	}

	e := &core.Edge{
		ID:       id,
		Entity:   en,
		Relation: r,
		SrcID:    src,
		DestID:   dest,
	}

	if multiEdge {
		ld.g.ConnectMulti(src, dest, id, r)
	} else {
		ld.g.ConnectSingle(src, dest, id, r)
	}

	return e, nil
}

// SetNodeLabels projects all per-label matrices into the combined
// node-label matrix. Call it once, after the node phase has written every
// label bit; it is idempotent-and-complete, so a repeat call (or a call on
// a graph with no labels yet) is safe and reflects current state.
// Complexity: O(label_count × node_count)
func (ld *Loader) SetNodeLabels() {
	ld.g.ProjectNodeLabels()
}

// MarkNodeDeleted tombstones node id out of order. No matrix cell is
// touched and no neighbor knowledge is required; dangling references are
// the compaction pass's problem, not the load's.
func (ld *Loader) MarkNodeDeleted(id core.NodeID) {
	ld.g.Nodes().MarkDeletedOutOfOrder(uint64(id))
}

// MarkEdgeDeleted tombstones edge id out of order, same contract as
// MarkNodeDeleted.
func (ld *Loader) MarkEdgeDeleted(id core.EdgeID) {
	ld.g.Edges().MarkDeletedOutOfOrder(uint64(id))
}

// DeletedNodeIDs returns the node deletion list, ordered by deletion time.
// Read-only view, no copy.
func (ld *Loader) DeletedNodeIDs() []uint64 {
	return ld.g.Nodes().DeletedIDs()
}

// DeletedEdgeIDs returns the edge deletion list, ordered by deletion time.
// Read-only view, no copy.
func (ld *Loader) DeletedEdgeIDs() []uint64 {
	return ld.g.Edges().DeletedIDs()
}
