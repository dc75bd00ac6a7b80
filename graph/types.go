// File: types.go
// Role: the Graph instance, its functional options, and matrix accessors.
package graph

import (
	"fmt"

	"github.com/grixdb/grix/core"
	"github.com/grixdb/grix/matrix"
)

// Defaults for the Graph constructor. Capacities are hints: every store
// grows on demand when an id exceeds them.
const (
	// DefaultNodeCapacity pre-sizes the node arena.
	DefaultNodeCapacity = 16384

	// DefaultEdgeCapacity pre-sizes the edge arena.
	DefaultEdgeCapacity = 16384
)

// Option configures a Graph before creation.
type Option func(*config)

type config struct {
	nodeCapacity  uint64
	edgeCapacity  uint64
	labelCount    int
	relationCount int
}

// WithNodeCapacity hints the expected number of nodes (arena pre-size).
func WithNodeCapacity(n uint64) Option {
	return func(c *config) { c.nodeCapacity = n }
}

// WithEdgeCapacity hints the expected number of edges (arena pre-size).
func WithEdgeCapacity(n uint64) Option {
	return func(c *config) { c.edgeCapacity = n }
}

// WithLabelCount pre-creates n label matrices. Panics if n is negative
// (programmer error, not a runtime condition).
func WithLabelCount(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("graph: WithLabelCount(%d): negative count", n))
	}
	return func(c *config) { c.labelCount = n }
}

// WithRelationCount pre-creates n relation matrices. Panics if n is
// negative.
func WithRelationCount(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("graph: WithRelationCount(%d): negative count", n))
	}
	return func(c *config) { c.relationCount = n }
}

// Graph is one graph instance: two entity arenas (nodes, edges) and the
// sparse matrices encoding its topology. All matrix handles are long-lived
// and mutated in place by every insertion.
//
// Not safe for concurrent use; the load sequence is single-writer.
type Graph struct {
	nodes *core.DataBlock // node entities, keyed by NodeID
	edges *core.DataBlock // edge entities, keyed by EdgeID

	adjacency  *matrix.Bidirectional[bool]       // (src,dest) = true iff any edge src→dest
	labels     []*matrix.Sparse[bool]            // per label: diagonal [id,id] = true iff node id carries it
	relations  []*matrix.Bidirectional[EdgeCell] // per relation: (src,dest) = edge id(s), created lazily
	nodeLabels *matrix.Sparse[bool]              // derived: (node,label) view, materialized by ProjectNodeLabels

	stats Statistics // per-relation edge counters
}

// New creates an empty Graph.
// Complexity: O(nodeCapacity + edgeCapacity + labelCount + relationCount)
func New(opts ...Option) *Graph {
	cfg := config{
		nodeCapacity: DefaultNodeCapacity,
		edgeCapacity: DefaultEdgeCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		nodes:      core.NewDataBlock(cfg.nodeCapacity),
		edges:      core.NewDataBlock(cfg.edgeCapacity),
		adjacency:  matrix.NewBidirectional[bool](),
		nodeLabels: matrix.NewSparse[bool](),
	}
	for i := 0; i < cfg.labelCount; i++ {
		g.labels = append(g.labels, matrix.NewSparse[bool]())
	}
	for i := 0; i < cfg.relationCount; i++ {
		g.relations = append(g.relations, matrix.NewBidirectional[EdgeCell]())
	}

	return g
}

// Nodes returns the node entity arena.
func (g *Graph) Nodes() *core.DataBlock { return g.nodes }

// Edges returns the edge entity arena.
func (g *Graph) Edges() *core.DataBlock { return g.edges }

// Adjacency returns the type-independent adjacency pair.
func (g *Graph) Adjacency() *matrix.Bidirectional[bool] { return g.adjacency }

// NodeLabelMatrix returns the combined node-label matrix. Its contents are
// only meaningful after ProjectNodeLabels has run.
func (g *Graph) NodeLabelMatrix() *matrix.Sparse[bool] { return g.nodeLabels }

// LabelMatrix returns the diagonal membership matrix for label l, creating
// it (and any lower-numbered gaps) on first use. Label ids arrive
// pre-resolved from an external registry and are trusted to be dense.
// Complexity: amortized O(1)
func (g *Graph) LabelMatrix(l core.LabelID) *matrix.Sparse[bool] {
	for len(g.labels) <= int(l) {
		g.labels = append(g.labels, matrix.NewSparse[bool]())
	}
	return g.labels[l]
}

// RelationMatrix returns the forward/transpose cell-matrix pair for
// relation r, creating it lazily the first time an edge of a new type is
// inserted.
// Complexity: amortized O(1)
func (g *Graph) RelationMatrix(r core.RelationID) *matrix.Bidirectional[EdgeCell] {
	for len(g.relations) <= int(r) {
		g.relations = append(g.relations, matrix.NewBidirectional[EdgeCell]())
	}
	return g.relations[r]
}

// LabelCount returns the number of label matrices currently materialized.
func (g *Graph) LabelCount() int { return len(g.labels) }

// RelationCount returns the number of relation matrices currently
// materialized.
func (g *Graph) RelationCount() int { return len(g.relations) }

// RequiredMatrixDim returns the square dimension every topology matrix is
// logically defined over: the node arena's current capacity.
func (g *Graph) RequiredMatrixDim() uint64 { return g.nodes.Cap() }

// Stats returns the graph's per-relation edge counters.
func (g *Graph) Stats() *Statistics { return &g.stats }
