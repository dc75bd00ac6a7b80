// Package loader is the bulk-load surface a snapshot-restore driver calls
// to repopulate a graph.Graph from serialized records, in whatever order
// the stream presents them. The byte-level record format is the
// serialization framework's concern; by the time this API is called, every
// argument is already decoded and every id pre-resolved.
//
// A load runs in two phases per graph:
//
//  1. Node phase: SetNode for each node record (entity slot at the
//     caller-supplied id, diagonal bit in each named label matrix),
//     then exactly one SetNodeLabels call to project the per-label
//     matrices into the combined node-label matrix.
//  2. Edge phase: SetEdge for each edge record; the multiEdge flag picks
//     the single- or multi-edge connection routine depending on whether
//     the dataset may contain parallel edges of that type.
//
// MarkNodeDeleted and MarkEdgeDeleted are out-of-order tombstones: they
// record the id in the entity store's deletion list without touching any
// matrix cell. DeletedNodeIDs/DeletedEdgeIDs expose those lists verbatim.
//
// The loader generates no ids and checks no ranges: id uniqueness and
// validity are the driver's contract (duplicate allocation is the one
// violation caught defensively, surfacing core.ErrAlreadyAllocated — on
// any error the driver must abort the load, since the graph may already
// hold a partial, unrepairable write).
//
// Exactly one driver per graph instance, no interleaved readers or
// writers: every operation here is a sequence of non-atomic matrix and
// arena updates.
package loader
