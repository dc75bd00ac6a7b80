// File: cell.go
// Role: the relation matrix cell variant.
//
// A sparse matrix cell natively holds one value, but a relation may carry
// several parallel edges between the same ordered node pair. EdgeCell is
// the explicit two-case variant that encodes both shapes: Single(id) for
// the common case, Multi(list) once a second parallel edge arrives. The
// promotion happens exactly once per cell and never reverts while any of
// the edges survive.
package graph

import "github.com/grixdb/grix/core"

// edgeList is the growable, insertion-ordered id sequence behind a multi
// cell. The forward and transpose cells reference the same list, so an
// in-place append is observed from both orientations without rewriting
// either cell.
type edgeList struct {
	ids []core.EdgeID
}

// EdgeCell is one relation matrix cell: either exactly one edge id
// (list == nil) or an owning reference to the parallel-edge list. The zero
// value is a valid Single cell for edge id 0; cells are only meaningful
// when present in a matrix, since presence itself is the third state
// ("no edge of this type between this pair").
type EdgeCell struct {
	id   core.EdgeID
	list *edgeList
}

// SingleCell returns a cell holding exactly one edge id.
// Complexity: O(1)
func SingleCell(id core.EdgeID) EdgeCell {
	return EdgeCell{id: id}
}

// multiCell promotes a single cell: it allocates the shared list, seeded
// with the existing id followed by the newly inserted one.
func multiCell(first, second core.EdgeID) EdgeCell {
	return EdgeCell{list: &edgeList{ids: []core.EdgeID{first, second}}}
}

// appendEdge grows a multi cell's list in place. Must only be called on a
// multi cell; single cells are promoted via multiCell instead.
func (c EdgeCell) appendEdge(id core.EdgeID) {
	c.list.ids = append(c.list.ids, id)
}

// IsMulti reports whether the cell references a parallel-edge list.
// Complexity: O(1)
func (c EdgeCell) IsMulti() bool { return c.list != nil }

// Count returns the number of edges the cell encodes.
// Complexity: O(1)
func (c EdgeCell) Count() int {
	if c.list == nil {
		return 1
	}
	return len(c.list.ids)
}

// EdgeIDs enumerates the cell's edge ids in insertion order. For a multi
// cell the returned slice is a read-only view of the shared list, not a
// copy; callers must not mutate it.
// Complexity: O(1) for multi, O(1) single-element allocation for single
func (c EdgeCell) EdgeIDs() []core.EdgeID {
	if c.list == nil {
		return []core.EdgeID{c.id}
	}
	return c.list.ids
}
