// Package core: id handles, Entity property block, Node and Edge types,
// and the package sentinel errors.
//
// Errors:
//
//	ErrAlreadyAllocated - out-of-order allocation hit a live slot.
//	ErrNotAllocated     - lookup referenced a slot that is not live.
package core

import "errors"

// Sentinel errors for entity storage operations.
var (
	// ErrAlreadyAllocated indicates an out-of-order allocation targeted an id
	// that is already occupied and not tombstoned. This is a caller-contract
	// violation; the load driver must abort, since continuing would alias two
	// entities onto one slot.
	ErrAlreadyAllocated = errors.New("core: slot already allocated")

	// ErrNotAllocated indicates an operation referenced an id with no live slot.
	ErrNotAllocated = errors.New("core: slot not allocated")
)

// NodeID identifies a node. It is dense enough to be used directly as a
// matrix row/column coordinate.
type NodeID uint64

// EdgeID identifies an edge. Relation matrix cells store EdgeIDs.
type EdgeID uint64

// LabelID identifies a node label; it indexes the per-label matrix set and
// the columns of the combined node-label matrix.
type LabelID int

// RelationID identifies a relation type; it indexes the per-relation matrix
// set and the per-relation edge counters.
type RelationID int

// AttrID identifies a property attribute within an Entity. Attribute name
// resolution belongs to an external registry, not this layer.
type AttrID int

// Property is one attribute/value pair on an Entity. Values are opaque to
// the storage core.
type Property struct {
	// Attr is the attribute identifier, pre-resolved by the caller.
	Attr AttrID

	// Value is the decoded property value.
	Value interface{}
}

// Entity is the property block shared by nodes and edges: an
// insertion-ordered list of properties, owned exclusively by the DataBlock
// slot it lives in. Freshly allocated entities carry zero properties.
type Entity struct {
	props []Property
}

// PropCount returns the number of properties currently attached.
// Complexity: O(1)
func (e *Entity) PropCount() int { return len(e.props) }

// AddProperty appends one attribute/value pair. The storage core does not
// deduplicate attributes; that is the property decoder's contract.
// Complexity: amortized O(1)
func (e *Entity) AddProperty(attr AttrID, value interface{}) {
	e.props = append(e.props, Property{Attr: attr, Value: value})
}

// Properties returns the entity's property list in insertion order.
// The returned slice is a read-only view, not a copy.
// Complexity: O(1)
func (e *Entity) Properties() []Property { return e.props }

// reset returns the entity to the freshly-allocated state. Used when a
// tombstoned slot is re-allocated.
func (e *Entity) reset() { e.props = nil }

// Node wraps a node id and its entity slot. Topology is not stored here:
// label membership and connectivity live in the graph's matrices.
type Node struct {
	// ID is the node's identifier (matrix coordinate).
	ID NodeID

	// Entity is the node's property block, owned by the node DataBlock.
	Entity *Entity
}

// Edge wraps an edge id, its entity slot, its relation type, and the
// ordered endpoint pair. The same connectivity is witnessed redundantly in
// the adjacency and relation matrices; keeping the fields here lets
// consumers resolve an edge without a matrix scan.
type Edge struct {
	// ID is the edge's identifier (relation matrix cell payload).
	ID EdgeID

	// Entity is the edge's property block, owned by the edge DataBlock.
	Entity *Entity

	// Relation is the edge's relation type.
	Relation RelationID

	// SrcID is the source node id (matrix row).
	SrcID NodeID

	// DestID is the destination node id (matrix column).
	DestID NodeID
}
